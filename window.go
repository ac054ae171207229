package appf

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
)

// Window is an opaque handle to one native window together with the
// shared connection backend and an optional event handler. The handler
// is a non-owning reference: the window stays valid and destructible
// regardless of handler lifetime.
type Window struct {
	backend Backend
	id      xproto.Window
	handler Handler
}

// NewWindow requests a top-level native window of the given rectangle.
// The window starts hidden; call Show to map it. The handler may be
// nil, in which case routed events are dropped. An empty rectangle is
// rejected with ErrInvalidRect before any native call is made.
func NewWindow(b Backend, r Rect, h Handler) (*Window, error) {
	return newWindow(b, b.Root(), r, h)
}

// NewSubWindow creates a native child window of w. Sub-windows are
// never registered with a dispatch loop and never receive events; they
// exist as child surfaces for application-managed rendering.
func (w *Window) NewSubWindow(r Rect) (*Window, error) {
	return newWindow(w.backend, w.id, r, nil)
}

func newWindow(b Backend, parent xproto.Window, r Rect, h Handler) (*Window, error) {
	if r.Empty() {
		return nil, ErrInvalidRect
	}
	id, err := b.CreateWindow(parent, r)
	if err != nil {
		return nil, fmt.Errorf("appf: create window: %w", err)
	}
	return &Window{backend: b, id: id, handler: h}, nil
}

// ID returns the native window handle. The handle is unique while the
// window exists; it must not be cached across destruction.
func (w *Window) ID() xproto.Window {
	return w.id
}

// SetHandler replaces the window's event handler. It may be called at
// any time, including from inside a handler; the replacement takes
// effect on the next routed event.
func (w *Window) SetHandler(h Handler) {
	w.handler = h
}

// Handler returns the currently installed handler, or nil.
func (w *Window) Handler() Handler {
	return w.handler
}

// Show maps the window. Showing an already visible window is a no-op
// on the window system's side.
func (w *Window) Show() error {
	return w.backend.MapWindow(w.id)
}

// Hide unmaps the window. Hiding an already hidden window is a no-op
// on the window system's side.
func (w *Window) Hide() error {
	return w.backend.UnmapWindow(w.id)
}

// Geometry returns the window's current rectangle in root coordinates.
func (w *Window) Geometry() (Rect, error) {
	return w.backend.WindowGeometry(w.id)
}

// MoveResize moves and resizes the window.
func (w *Window) MoveResize(r Rect) error {
	return w.backend.MoveResizeWindow(w.id, r)
}

// Title returns the window title.
func (w *Window) Title() (string, error) {
	return w.backend.WindowTitle(w.id)
}

// SetTitle sets the window title.
func (w *Window) SetTitle(title string) error {
	return w.backend.SetWindowTitle(w.id, title)
}

// destroy releases the native window. Callers must unregister the
// window from its loop first.
func (w *Window) destroy() error {
	return w.backend.DestroyWindow(w.id)
}
