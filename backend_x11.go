package appf

import (
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/dawgfoto/appf/internal/x11"
)

// x11Backend adapts the X connection to the Backend interface.
type x11Backend struct {
	conn *x11.Conn
}

var _ Backend = (*x11Backend)(nil)

// NewX11Backend opens a display connection and returns it as a
// Backend. An empty display name selects the default display.
func NewX11Backend(display string) (Backend, error) {
	conn, err := x11.Open(display)
	if err != nil {
		return nil, err
	}
	return &x11Backend{conn: conn}, nil
}

func (b *x11Backend) Root() xproto.Window {
	return b.conn.Root
}

func (b *x11Backend) CreateWindow(parent xproto.Window, r Rect) (xproto.Window, error) {
	return b.conn.CreateWindow(parent, r.X, r.Y, r.Width, r.Height)
}

func (b *x11Backend) DestroyWindow(id xproto.Window) error {
	return b.conn.DestroyWindow(id)
}

func (b *x11Backend) MapWindow(id xproto.Window) error {
	return b.conn.MapWindow(id)
}

func (b *x11Backend) UnmapWindow(id xproto.Window) error {
	return b.conn.UnmapWindow(id)
}

func (b *x11Backend) MoveResizeWindow(id xproto.Window, r Rect) error {
	return b.conn.MoveResizeWindow(id, r.X, r.Y, r.Width, r.Height)
}

func (b *x11Backend) WindowGeometry(id xproto.Window) (Rect, error) {
	x, y, width, height, err := b.conn.WindowGeometry(id)
	if err != nil {
		return Rect{}, err
	}
	return Rect{X: x, Y: y, Width: width, Height: height}, nil
}

func (b *x11Backend) WindowTitle(id xproto.Window) (string, error) {
	return b.conn.WindowTitle(id)
}

func (b *x11Backend) SetWindowTitle(id xproto.Window, title string) error {
	return b.conn.SetWindowTitle(id, title)
}

func (b *x11Backend) InternAtoms(names []string) (map[string]xproto.Atom, error) {
	return b.conn.InternAtoms(names)
}

func (b *x11Backend) SetProtocols(id xproto.Window, protocols []xproto.Atom) error {
	return b.conn.SetProtocols(id, protocols)
}

func (b *x11Backend) SelectInput(id xproto.Window, mask uint32) error {
	return b.conn.SelectInput(id, mask)
}

func (b *x11Backend) WaitForEvent() (xgb.Event, xgb.Error) {
	return b.conn.XUtil.Conn().WaitForEvent()
}

func (b *x11Backend) PollForEvent() (xgb.Event, xgb.Error) {
	return b.conn.XUtil.Conn().PollForEvent()
}

func (b *x11Backend) SendClientMessage(dest xproto.Window, mask uint32, ev xproto.ClientMessageEvent) error {
	return b.conn.SendClientMessage(dest, mask, ev)
}

func (b *x11Backend) Close() error {
	b.conn.Close()
	return nil
}
