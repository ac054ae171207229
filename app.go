// Package appf is a minimal cross-platform windowing layer. It creates
// native on-screen windows, translates native input, redraw and
// configuration events into a small portable event model, and routes
// them to application handlers from a single blocking message loop.
// There is no widget stack and no rendering: the library only reports
// that a window area needs repainting.
//
// The model is single-threaded and cooperative. All window creation,
// registration and dispatch belong on one goroutine; handlers run
// synchronously on that goroutine and may create or destroy windows
// during their own invocation.
package appf

import "fmt"

// App owns the display connection and the dispatch loop and exposes
// the application-facing surface: window creation and destruction,
// event dispatch and shutdown.
type App struct {
	backend Backend
	loop    *Loop
}

// New connects to the display and prepares a dispatch loop. An empty
// display name selects the default display from the environment.
// Failure to establish the connection is the one unrecoverable startup
// error; everything downstream assumes a valid connection.
func New(display string) (*App, error) {
	b, err := NewX11Backend(display)
	if err != nil {
		return nil, fmt.Errorf("appf: open display: %w", err)
	}
	app, err := NewWithBackend(b)
	if err != nil {
		_ = b.Close()
		return nil, err
	}
	return app, nil
}

// NewWithBackend prepares a dispatch loop on an existing backend. The
// caller keeps ownership of the backend's connection.
func NewWithBackend(b Backend) (*App, error) {
	loop, err := NewLoop(b)
	if err != nil {
		return nil, err
	}
	return &App{backend: b, loop: loop}, nil
}

// Backend returns the native backend shared by all windows of this app.
func (a *App) Backend() Backend {
	return a.backend
}

// CreateWindow creates a top-level window and registers it with the
// dispatch loop. The window stays hidden until Show is called on it.
func (a *App) CreateWindow(r Rect, h Handler) (*Window, error) {
	w, err := NewWindow(a.backend, r, h)
	if err != nil {
		return nil, err
	}
	if err := a.loop.AddWindow(w); err != nil {
		_ = w.destroy()
		return nil, err
	}
	return w, nil
}

// DestroyWindow hides and unregisters w, then releases the native
// window. It returns false when w is not registered with this app.
func (a *App) DestroyWindow(w *Window) bool {
	if !a.loop.RemoveWindow(w) {
		return false
	}
	_ = w.destroy()
	return true
}

// Dispatch processes one native event; see Loop.Dispatch.
func (a *App) Dispatch(mode WaitMode) bool {
	return a.loop.Dispatch(mode)
}

// Run pumps blocking dispatch until the last window is destroyed and
// returns the process exit code.
func (a *App) Run() int {
	a.loop.Run()
	return 0
}

// Quit destroys every registered window, which drains the registry and
// ends the loop.
func (a *App) Quit() {
	for _, w := range a.loop.Windows() {
		a.DestroyWindow(w)
	}
}

// Loop returns the dispatch loop for applications that register
// windows directly.
func (a *App) Loop() *Loop {
	return a.loop
}

// Close tears down the display connection. Windows must not be used
// afterwards.
func (a *App) Close() error {
	return a.backend.Close()
}
