package appf

import (
	"fmt"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// WaitMode selects how Dispatch behaves when no native event is
// pending.
type WaitMode int

const (
	// Block suspends the calling goroutine until an event arrives.
	Block WaitMode = iota
	// NoBlock polls: if nothing is pending, Dispatch returns
	// immediately without side effects; otherwise it processes
	// exactly one event.
	NoBlock
)

// inputEventMask is the set of native event kinds selected on every
// registered window.
const inputEventMask = xproto.EventMaskExposure |
	xproto.EventMaskButtonPress |
	xproto.EventMaskButtonRelease |
	xproto.EventMaskPointerMotion |
	xproto.EventMaskKeyPress |
	xproto.EventMaskKeyRelease |
	xproto.EventMaskStructureNotify |
	xproto.EventMaskVisibilityChange

// wmAtoms is the fixed table of window-manager protocol atoms, resolved
// once per loop and immutable thereafter.
type wmAtoms struct {
	protocols    xproto.Atom // WM_PROTOCOLS
	deleteWindow xproto.Atom // WM_DELETE_WINDOW
	ping         xproto.Atom // _NET_WM_PING
}

var wmAtomNames = []string{"WM_PROTOCOLS", "WM_DELETE_WINDOW", "_NET_WM_PING"}

// Loop owns the window registry and pumps the native event queue,
// translating events to the portable model and routing them to window
// handlers. All registration and dispatch must happen on one goroutine;
// the loop performs no internal locking.
type Loop struct {
	backend Backend
	atoms   wmAtoms

	// windows maps native handles to registered windows. A handle
	// appears at most once and lookups check object identity, so a
	// handle reused by a newer window never resolves to a stale one.
	windows map[xproto.Window]*Window

	// exposed accumulates the union of batched expose areas per window
	// until the batching counter reaches zero.
	exposed map[xproto.Window]Rect
}

// NewLoop resolves the protocol atom table against the backend and
// returns a loop with an empty registry. Failing to resolve the atoms
// is not recoverable: the graceful-close contract cannot be
// established without them.
func NewLoop(b Backend) (*Loop, error) {
	resolved, err := b.InternAtoms(wmAtomNames)
	if err != nil {
		return nil, fmt.Errorf("appf: resolve window manager atoms: %w", err)
	}
	return &Loop{
		backend: b,
		atoms: wmAtoms{
			protocols:    resolved["WM_PROTOCOLS"],
			deleteWindow: resolved["WM_DELETE_WINDOW"],
			ping:         resolved["_NET_WM_PING"],
		},
		windows: make(map[xproto.Window]*Window),
		exposed: make(map[xproto.Window]Rect),
	}, nil
}

// AddWindow registers w with the loop, selects its input event mask
// and declares the supported window-manager protocols. It fails with
// ErrConfigMismatch when w was created on a different connection and
// with ErrDuplicateWindow when w's handle is already registered. A
// rejected protocol declaration unregisters the window again and is
// returned as an error: without it the close/ping contract would not
// hold.
func (l *Loop) AddWindow(w *Window) error {
	if w == nil || w.backend != l.backend {
		return ErrConfigMismatch
	}
	if _, ok := l.windows[w.id]; ok {
		return ErrDuplicateWindow
	}
	l.windows[w.id] = w
	if err := l.backend.SelectInput(w.id, inputEventMask); err != nil {
		delete(l.windows, w.id)
		return fmt.Errorf("appf: select input events: %w", err)
	}
	protocols := []xproto.Atom{l.atoms.deleteWindow, l.atoms.ping}
	if err := l.backend.SetProtocols(w.id, protocols); err != nil {
		delete(l.windows, w.id)
		return fmt.Errorf("appf: declare window manager protocols: %w", err)
	}
	return nil
}

// RemoveWindow unregisters w. The window is hidden before the mapping
// is removed, so no event can reach an unregistered, still-visible
// window on a later dequeue. It returns false when w is nil, not
// registered, or when the registered entry under w's handle is a
// different window.
func (l *Loop) RemoveWindow(w *Window) bool {
	if w == nil {
		return false
	}
	cur, ok := l.windows[w.id]
	if !ok || cur != w {
		return false
	}
	_ = w.Hide()
	delete(l.windows, w.id)
	delete(l.exposed, w.id)
	return true
}

// HasWindow reports whether w itself is registered. This is an
// identity check, not a handle presence check: a different window
// occupying the same (reused) handle does not count.
func (l *Loop) HasWindow(w *Window) bool {
	if w == nil {
		return false
	}
	cur, ok := l.windows[w.id]
	return ok && cur == w
}

// WindowCount returns the number of registered windows.
func (l *Loop) WindowCount() int {
	return len(l.windows)
}

// Windows returns a snapshot of the registered windows. The snapshot
// stays valid while handlers mutate the registry.
func (l *Loop) Windows() []*Window {
	ws := make([]*Window, 0, len(l.windows))
	for _, w := range l.windows {
		ws = append(ws, w)
	}
	return ws
}

// Dispatch retrieves, translates and routes one native event. It
// returns false when no window is registered (without touching the
// native queue) or when the connection is gone; in every other case it
// returns true, including when NoBlock finds the queue empty. Protocol
// errors read off the queue are absorbed.
func (l *Loop) Dispatch(mode WaitMode) bool {
	if len(l.windows) == 0 {
		return false
	}

	var ev xgb.Event
	var xerr xgb.Error
	if mode == NoBlock {
		ev, xerr = l.backend.PollForEvent()
		if ev == nil && xerr == nil {
			return true
		}
	} else {
		ev, xerr = l.backend.WaitForEvent()
		if ev == nil && xerr == nil {
			return false
		}
	}
	if xerr != nil {
		return true
	}
	return l.process(ev)
}

// Run pumps Dispatch(Block) until the registry drains or the
// connection goes away. This is the application's main loop.
func (l *Loop) Run() {
	for l.Dispatch(Block) {
	}
}

func (l *Loop) process(ev xgb.Event) bool {
	switch e := ev.(type) {
	case xproto.ClientMessageEvent:
		return l.clientMessage(e)

	case xproto.ExposeEvent:
		area := Rect{X: int(e.X), Y: int(e.Y), Width: int(e.Width), Height: int(e.Height)}
		union := l.exposed[e.Window].Union(area)
		if e.Count > 0 {
			l.exposed[e.Window] = union
			return true
		}
		delete(l.exposed, e.Window)
		l.route(e.Window, Redraw{Area: union})

	case xproto.ButtonPressEvent:
		l.routeMouse(e.Event, e.EventX, e.EventY, buttonFromDetail(byte(e.Detail)), e.State)

	case xproto.ButtonReleaseEvent:
		l.routeMouse(e.Event, e.EventX, e.EventY, buttonFromDetail(byte(e.Detail)), e.State)

	case xproto.MotionNotifyEvent:
		l.routeMouse(e.Event, e.EventX, e.EventY, buttonFromState(e.State), e.State)

	case xproto.ConfigureNotifyEvent:
		area := Rect{X: int(e.X), Y: int(e.Y), Width: int(e.Width), Height: int(e.Height)}
		l.route(e.Window, Resize{Area: area})
	}
	// Everything else is not an error, just uninteresting.
	return true
}

// clientMessage handles the WM_PROTOCOLS conversation: graceful close
// requests unregister the target window, liveness pings are echoed to
// the root window with the payload otherwise unchanged.
func (l *Loop) clientMessage(e xproto.ClientMessageEvent) bool {
	if e.Type != l.atoms.protocols || e.Format != 32 {
		return true
	}
	data := e.Data.Data32
	if len(data) == 0 {
		return true
	}
	switch xproto.Atom(data[0]) {
	case l.atoms.deleteWindow:
		if w, ok := l.windows[e.Window]; ok {
			l.RemoveWindow(w)
		}
		return len(l.windows) > 0
	case l.atoms.ping:
		root := l.backend.Root()
		e.Window = root
		mask := uint32(xproto.EventMaskSubstructureNotify | xproto.EventMaskSubstructureRedirect)
		_ = l.backend.SendClientMessage(root, mask, e)
	}
	return true
}

func (l *Loop) routeMouse(id xproto.Window, x, y int16, b Button, state uint16) {
	l.route(id, MouseButton{
		Pos:    Point{X: int(x), Y: int(y)},
		Button: b,
		Mod:    Modifiers(state),
	})
}

// route delivers ev to the handler of the window registered under id.
// Unknown handles and nil handlers drop the event silently; handlers
// are optional and handles can go stale when a handler destroys
// windows mid-dispatch.
func (l *Loop) route(id xproto.Window, ev Event) {
	w, ok := l.windows[id]
	if !ok || w.handler == nil {
		return
	}
	w.handler.HandleEvent(ev, w)
}
