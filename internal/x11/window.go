package x11

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/xwindow"
)

// CreateWindow creates an unmapped InputOutput window of the given
// geometry under the given parent.
func (c *Conn) CreateWindow(parent xproto.Window, x, y, width, height int) (xproto.Window, error) {
	win, err := xwindow.Generate(c.XUtil)
	if err != nil {
		return 0, fmt.Errorf("allocate window id: %w", err)
	}
	err = win.CreateChecked(parent, x, y, width, height,
		xproto.CwBackPixel, c.Screen.WhitePixel)
	if err != nil {
		return 0, fmt.Errorf("create window: %w", err)
	}
	return win.Id, nil
}

// DestroyWindow destroys the window and releases its handle.
func (c *Conn) DestroyWindow(win xproto.Window) error {
	return xproto.DestroyWindowChecked(c.XUtil.Conn(), win).Check()
}

// MapWindow makes the window visible. Mapping a mapped window is a
// no-op.
func (c *Conn) MapWindow(win xproto.Window) error {
	return xproto.MapWindowChecked(c.XUtil.Conn(), win).Check()
}

// UnmapWindow hides the window. Unmapping an unmapped window is a
// no-op.
func (c *Conn) UnmapWindow(win xproto.Window) error {
	return xproto.UnmapWindowChecked(c.XUtil.Conn(), win).Check()
}

// MoveResizeWindow moves and resizes the window in one request.
func (c *Conn) MoveResizeWindow(win xproto.Window, x, y, width, height int) error {
	mask := uint16(xproto.ConfigWindowX | xproto.ConfigWindowY |
		xproto.ConfigWindowWidth | xproto.ConfigWindowHeight)
	values := []uint32{uint32(x), uint32(y), uint32(width), uint32(height)}
	return xproto.ConfigureWindowChecked(c.XUtil.Conn(), win, mask, values).Check()
}

// WindowGeometry returns the window's size and its position translated
// to root coordinates, so the result is meaningful for reparented
// (decorated) windows too.
func (c *Conn) WindowGeometry(win xproto.Window) (x, y, width, height int, err error) {
	geom, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(win)).Reply()
	if err != nil {
		return 0, 0, 0, 0, fmt.Errorf("get geometry: %w", err)
	}
	translate, err := xproto.TranslateCoordinates(c.XUtil.Conn(), win, c.Root, 0, 0).Reply()
	if err != nil {
		return 0, 0, 0, 0, fmt.Errorf("translate coordinates: %w", err)
	}
	return int(translate.DstX), int(translate.DstY), int(geom.Width), int(geom.Height), nil
}

// WindowTitle reads the window title, preferring _NET_WM_NAME and
// falling back to the ICCCM WM_NAME property.
func (c *Conn) WindowTitle(win xproto.Window) (string, error) {
	title, err := ewmh.WmNameGet(c.XUtil, win)
	if err == nil && strings.TrimSpace(title) != "" {
		return title, nil
	}
	title, err = icccm.WmNameGet(c.XUtil, win)
	if err != nil {
		return "", fmt.Errorf("get window title: %w", err)
	}
	return title, nil
}

// SetWindowTitle sets both the EWMH and ICCCM title properties so that
// older window managers pick the name up as well.
func (c *Conn) SetWindowTitle(win xproto.Window, title string) error {
	if err := ewmh.WmNameSet(c.XUtil, win, title); err != nil {
		return fmt.Errorf("set window title: %w", err)
	}
	if err := icccm.WmNameSet(c.XUtil, win, title); err != nil {
		return fmt.Errorf("set window title: %w", err)
	}
	return nil
}

// SetProtocols replaces the window's WM_PROTOCOLS property with the
// given protocol atoms.
func (c *Conn) SetProtocols(win xproto.Window, protocols []xproto.Atom) error {
	data := make([]byte, 4*len(protocols))
	for i, atom := range protocols {
		binary.LittleEndian.PutUint32(data[i*4:], uint32(atom))
	}
	return xproto.ChangePropertyChecked(
		c.XUtil.Conn(),
		xproto.PropModeReplace,
		win,
		c.wmProtocols,
		xproto.AtomAtom,
		32,
		uint32(len(protocols)),
		data,
	).Check()
}

// SelectInput selects which event kinds the window reports.
func (c *Conn) SelectInput(win xproto.Window, mask uint32) error {
	return xproto.ChangeWindowAttributesChecked(
		c.XUtil.Conn(),
		win,
		xproto.CwEventMask,
		[]uint32{mask},
	).Check()
}

// SendClientMessage delivers a client message event to dest.
func (c *Conn) SendClientMessage(dest xproto.Window, mask uint32, ev xproto.ClientMessageEvent) error {
	return xproto.SendEventChecked(
		c.XUtil.Conn(),
		false,
		dest,
		mask,
		string(ev.Bytes()),
	).Check()
}
