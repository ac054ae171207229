// Package x11 wraps the X connection and the thin native calls the
// windowing layer consumes.
package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
)

// Conn bundles the X connection with the screen it was opened on. It
// is created once at application start, is read-only afterwards, and
// is shared by every window and by the dispatch loop.
type Conn struct {
	XUtil  *xgbutil.XUtil
	Screen *xproto.ScreenInfo
	Root   xproto.Window

	// wmProtocols is the property atom windows declare their supported
	// window-manager protocols under, resolved once at connect time.
	wmProtocols xproto.Atom
}

// Open establishes a connection to the X server and selects the
// default screen. An empty display name uses the DISPLAY environment
// variable.
func Open(display string) (*Conn, error) {
	var xu *xgbutil.XUtil
	var err error
	if display == "" {
		xu, err = xgbutil.NewConn()
	} else {
		xu, err = xgbutil.NewConnDisplay(display)
	}
	if err != nil {
		return nil, fmt.Errorf("connect to X server: %w", err)
	}

	c := &Conn{
		XUtil:  xu,
		Screen: xu.Screen(),
		Root:   xu.RootWin(),
	}

	atoms, err := c.InternAtoms([]string{"WM_PROTOCOLS"})
	if err != nil {
		xu.Conn().Close()
		return nil, err
	}
	c.wmProtocols = atoms["WM_PROTOCOLS"]
	return c, nil
}

// Close disconnects from the X server.
func (c *Conn) Close() {
	c.XUtil.Conn().Close()
}

// InternAtoms resolves the named atoms against the server in order.
func (c *Conn) InternAtoms(names []string) (map[string]xproto.Atom, error) {
	atoms := make(map[string]xproto.Atom, len(names))
	for _, name := range names {
		reply, err := xproto.InternAtom(c.XUtil.Conn(), false,
			uint16(len(name)), name).Reply()
		if err != nil {
			return nil, fmt.Errorf("intern atom %s: %w", name, err)
		}
		atoms[name] = reply.Atom
	}
	return atoms, nil
}
