package appf

import "github.com/BurntSushi/xgb/xproto"

// Event is the portable event representation delivered to window
// handlers. The set of variants is closed: Redraw, Resize and
// MouseButton. Events carry only value data; no native structures
// survive translation.
type Event interface {
	event()
}

// Redraw reports that an area of the window needs repainting.
// Batched native expose notifications are coalesced: only the last of a
// batch produces a Redraw, carrying the union of the batched areas.
type Redraw struct {
	Area Rect
}

// Resize reports the window's new geometry after a configure
// notification.
type Resize struct {
	Area Rect
}

// MouseButton reports pointer input: button presses, releases and
// motion. For motion the button is the first one held during the move,
// or ButtonNone when none is held.
type MouseButton struct {
	Pos    Point
	Button Button
	Mod    Modifiers
}

func (Redraw) event()      {}
func (Resize) event()      {}
func (MouseButton) event() {}

// Button identifies a core pointer button.
type Button uint8

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
	ButtonScrollUp
	ButtonScrollDown
)

// Modifiers is the keyboard and pointer-button state snapshot carried
// by mouse events. The values match the X modifier masks.
type Modifiers uint16

const (
	ModShift   Modifiers = xproto.ModMaskShift
	ModLock    Modifiers = xproto.ModMaskLock
	ModControl Modifiers = xproto.ModMaskControl
	Mod1       Modifiers = xproto.ModMask1
	Mod2       Modifiers = xproto.ModMask2
	Mod3       Modifiers = xproto.ModMask3
	Mod4       Modifiers = xproto.ModMask4
	Mod5       Modifiers = xproto.ModMask5

	ModButton1 Modifiers = xproto.ButtonMask1
	ModButton2 Modifiers = xproto.ButtonMask2
	ModButton3 Modifiers = xproto.ButtonMask3
	ModButton4 Modifiers = xproto.ButtonMask4
	ModButton5 Modifiers = xproto.ButtonMask5
)

// Has reports whether all modifiers in m are set.
func (mod Modifiers) Has(m Modifiers) bool {
	return mod&m == m
}

// Handler receives routed events. Handlers run synchronously on the
// dispatch thread and may call back into the loop, including destroying
// the window they were invoked for.
type Handler interface {
	HandleEvent(ev Event, win *Window)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ev Event, win *Window)

// HandleEvent calls f(ev, win).
func (f HandlerFunc) HandleEvent(ev Event, win *Window) {
	f(ev, win)
}

// buttonFromDetail maps a native button number to a Button.
// X numbers the core buttons 1 (left) through 5 (scroll down).
func buttonFromDetail(detail byte) Button {
	if detail >= 1 && detail <= 5 {
		return Button(detail)
	}
	return ButtonNone
}

// buttonFromState returns the first button held in a pointer state
// snapshot, so drag motion keeps reporting its button.
func buttonFromState(state uint16) Button {
	switch {
	case state&uint16(ModButton1) != 0:
		return ButtonLeft
	case state&uint16(ModButton2) != 0:
		return ButtonMiddle
	case state&uint16(ModButton3) != 0:
		return ButtonRight
	case state&uint16(ModButton4) != 0:
		return ButtonScrollUp
	case state&uint16(ModButton5) != 0:
		return ButtonScrollDown
	}
	return ButtonNone
}
