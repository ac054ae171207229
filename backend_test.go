package appf

import (
	"errors"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// queued is one native queue entry: either an event or a protocol
// error.
type queued struct {
	ev   xgb.Event
	xerr xgb.Error
}

type sentMessage struct {
	dest xproto.Window
	mask uint32
	ev   xproto.ClientMessageEvent
}

// fakeBackend is a scripted native boundary. Events are served from a
// queue; every mutating call is recorded.
type fakeBackend struct {
	root     xproto.Window
	nextID   xproto.Window
	nextAtom xproto.Atom

	queue []queued
	waits int
	polls int

	created   []xproto.Window
	destroyed []xproto.Window
	mapped    []xproto.Window
	unmapped  []xproto.Window
	sent      []sentMessage

	atoms     map[string]xproto.Atom
	masks     map[xproto.Window]uint32
	protocols map[xproto.Window][]xproto.Atom
	titles    map[xproto.Window]string
	geoms     map[xproto.Window]Rect

	internErr   error
	protocolErr error
	closed      bool
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		root:      1,
		nextID:    100,
		nextAtom:  500,
		atoms:     make(map[string]xproto.Atom),
		masks:     make(map[xproto.Window]uint32),
		protocols: make(map[xproto.Window][]xproto.Atom),
		titles:    make(map[xproto.Window]string),
		geoms:     make(map[xproto.Window]Rect),
	}
}

func (b *fakeBackend) push(ev xgb.Event) {
	b.queue = append(b.queue, queued{ev: ev})
}

func (b *fakeBackend) pushError(xerr xgb.Error) {
	b.queue = append(b.queue, queued{xerr: xerr})
}

func (b *fakeBackend) pop() (xgb.Event, xgb.Error) {
	if len(b.queue) == 0 {
		return nil, nil
	}
	q := b.queue[0]
	b.queue = b.queue[1:]
	return q.ev, q.xerr
}

func (b *fakeBackend) atom(name string) xproto.Atom {
	if a, ok := b.atoms[name]; ok {
		return a
	}
	a := b.nextAtom
	b.nextAtom++
	b.atoms[name] = a
	return a
}

func (b *fakeBackend) Root() xproto.Window { return b.root }

func (b *fakeBackend) CreateWindow(parent xproto.Window, r Rect) (xproto.Window, error) {
	id := b.nextID
	b.nextID++
	b.created = append(b.created, id)
	b.geoms[id] = r
	return id, nil
}

func (b *fakeBackend) DestroyWindow(id xproto.Window) error {
	b.destroyed = append(b.destroyed, id)
	return nil
}

func (b *fakeBackend) MapWindow(id xproto.Window) error {
	b.mapped = append(b.mapped, id)
	return nil
}

func (b *fakeBackend) UnmapWindow(id xproto.Window) error {
	b.unmapped = append(b.unmapped, id)
	return nil
}

func (b *fakeBackend) MoveResizeWindow(id xproto.Window, r Rect) error {
	b.geoms[id] = r
	return nil
}

func (b *fakeBackend) WindowGeometry(id xproto.Window) (Rect, error) {
	r, ok := b.geoms[id]
	if !ok {
		return Rect{}, errors.New("no such window")
	}
	return r, nil
}

func (b *fakeBackend) WindowTitle(id xproto.Window) (string, error) {
	return b.titles[id], nil
}

func (b *fakeBackend) SetWindowTitle(id xproto.Window, title string) error {
	b.titles[id] = title
	return nil
}

func (b *fakeBackend) InternAtoms(names []string) (map[string]xproto.Atom, error) {
	if b.internErr != nil {
		return nil, b.internErr
	}
	atoms := make(map[string]xproto.Atom, len(names))
	for _, name := range names {
		atoms[name] = b.atom(name)
	}
	return atoms, nil
}

func (b *fakeBackend) SetProtocols(id xproto.Window, protocols []xproto.Atom) error {
	if b.protocolErr != nil {
		return b.protocolErr
	}
	b.protocols[id] = protocols
	return nil
}

func (b *fakeBackend) SelectInput(id xproto.Window, mask uint32) error {
	b.masks[id] = mask
	return nil
}

func (b *fakeBackend) WaitForEvent() (xgb.Event, xgb.Error) {
	b.waits++
	return b.pop()
}

func (b *fakeBackend) PollForEvent() (xgb.Event, xgb.Error) {
	b.polls++
	return b.pop()
}

func (b *fakeBackend) SendClientMessage(dest xproto.Window, mask uint32, ev xproto.ClientMessageEvent) error {
	b.sent = append(b.sent, sentMessage{dest: dest, mask: mask, ev: ev})
	return nil
}

func (b *fakeBackend) Close() error {
	b.closed = true
	return nil
}

type fakeXError struct{}

func (fakeXError) SequenceId() uint16 { return 0 }
func (fakeXError) BadId() uint32      { return 0 }
func (fakeXError) Error() string      { return "fake X error" }

// recorder collects routed events.
type recorder struct {
	events  []Event
	windows []*Window
}

func (r *recorder) HandleEvent(ev Event, win *Window) {
	r.events = append(r.events, ev)
	r.windows = append(r.windows, win)
}

// protocolMessage builds a WM_PROTOCOLS client message carrying the
// named protocol atom, the way a window manager would send it.
func protocolMessage(b *fakeBackend, win xproto.Window, protocol string, rest ...uint32) xproto.ClientMessageEvent {
	data := []uint32{uint32(b.atom(protocol)), 0, 0, 0, 0}
	for i, v := range rest {
		data[i+1] = v
	}
	return xproto.ClientMessageEvent{
		Format: 32,
		Window: win,
		Type:   b.atom("WM_PROTOCOLS"),
		Data:   xproto.ClientMessageDataUnionData32New(data),
	}
}
