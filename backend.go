package appf

import (
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// Backend abstracts the native window-system operations the library
// consumes. The dispatch loop and windows never touch a display
// connection directly, so the whole core can run against a synthetic
// backend in tests. The real implementation lives in backend_x11.go.
type Backend interface {
	// Root returns the root window of the selected screen.
	Root() xproto.Window

	CreateWindow(parent xproto.Window, r Rect) (xproto.Window, error)
	DestroyWindow(id xproto.Window) error
	MapWindow(id xproto.Window) error
	UnmapWindow(id xproto.Window) error
	MoveResizeWindow(id xproto.Window, r Rect) error
	WindowGeometry(id xproto.Window) (Rect, error)
	WindowTitle(id xproto.Window) (string, error)
	SetWindowTitle(id xproto.Window, title string) error

	// InternAtoms resolves the named atoms in one pass.
	InternAtoms(names []string) (map[string]xproto.Atom, error)
	// SetProtocols declares the window-manager protocols the given
	// window participates in.
	SetProtocols(id xproto.Window, protocols []xproto.Atom) error
	// SelectInput selects which native event kinds the given window
	// reports.
	SelectInput(id xproto.Window, mask uint32) error

	// WaitForEvent dequeues the next native event, suspending the
	// calling goroutine until one is available. A nil event with a nil
	// error means the connection is gone.
	WaitForEvent() (xgb.Event, xgb.Error)
	// PollForEvent dequeues the next native event if one is pending
	// and returns nil, nil otherwise. It never blocks.
	PollForEvent() (xgb.Event, xgb.Error)
	// SendClientMessage delivers a client message to the destination
	// window with the given event mask.
	SendClientMessage(dest xproto.Window, mask uint32, ev xproto.ClientMessageEvent) error

	Close() error
}
