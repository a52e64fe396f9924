package desktop

import (
	"math"
	"sync"

	"github.com/OpenNHP/opennhp/nhp/log"
)

type WindowState int

const (
	Uninitialized WindowState = iota
	Hidden
	Visible
	FullScreen
	Terminated
)

func (s WindowState) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Hidden:
		return "hidden"
	case Visible:
		return "visible"
	case FullScreen:
		return "fullscreen"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}

const (
	fullScreenTitle = "Fullscreen Enabled"
	fullScreenBody  = "Press Esc key to leave full screen mode."
)

// Window tracks the lifecycle of the single main window.
type Window struct {
	app *App

	mu    sync.Mutex
	state WindowState
}

func (w *Window) State() WindowState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

func (w *Window) init() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state == Uninitialized {
		w.state = Hidden
	}
}

// ShowAndCenter brings the window up in the middle of the primary display
// and focuses it. A full screen window stays full screen. Host calls are made
// under the lock so the recorded state follows the order the toolkit saw.
func (w *Window) ShowAndCenter() {
	w.mu.Lock()
	defer w.mu.Unlock()

	prev := w.state
	switch prev {
	case Uninitialized, Terminated:
		return
	case Hidden:
		w.state = Visible
	}

	host := w.app.host
	if prev != FullScreen {
		w.center()
	}
	host.WindowShow()
	host.WindowFocus()
	w.app.Tray.ClearUnread()
}

func (w *Window) center() {
	host := w.app.host
	width, height, ok := host.PrimaryWorkArea()
	if !ok {
		host.WindowCenter()
		return
	}
	x := int(math.Round(float64(width)/2 - float64(w.app.opts.Width)/2))
	y := int(math.Round(float64(height)/2 - float64(w.app.opts.Height)/2))
	host.WindowSetPosition(x, y)
}

// RequestClose decides what a window close does. Until the app is quitting
// the window is only hidden and prevent is true.
func (w *Window) RequestClose() (prevent bool) {
	if w.app.Quitting() {
		w.terminate()
		return false
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	prev := w.state
	if prev != Terminated {
		w.state = Hidden
	}

	if prev == FullScreen {
		w.app.host.WindowSetFullScreen(false)
	}
	w.app.host.WindowHide()
	log.Debug("window close intercepted, hidden to tray")
	return true
}

// ToggleFullScreen switches between Visible and FullScreen.
func (w *Window) ToggleFullScreen() {
	w.mu.Lock()
	var on bool
	switch w.state {
	case Visible:
		w.state = FullScreen
		on = true
	case FullScreen:
		w.state = Visible
	default:
		w.mu.Unlock()
		return
	}
	w.app.host.WindowSetFullScreen(on)
	w.mu.Unlock()

	w.app.host.Notify(fullScreenTitle, fullScreenBody)
}

// LeaveFullScreen is the Esc shortcut.
func (w *Window) LeaveFullScreen() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state != FullScreen {
		return
	}
	w.state = Visible
	w.app.host.WindowSetFullScreen(false)
}

func (w *Window) terminate() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.state = Terminated
}
