package ui

import "sync"

// trayIndicator owns the system tray icon. The icon may be changed before
// the tray loop is ready; the latest one is applied once it is.
type trayIndicator struct {
	tooltip string
	onClick func()
	onShow  func()
	onQuit  func()

	mu      sync.Mutex
	icon    []byte
	ready   bool
	stopped bool
}

// Icon returns the last icon handed to the tray.
func (t *trayIndicator) Icon() []byte {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.icon
}
