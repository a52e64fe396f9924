//go:build darwin

package ui

import "github.com/OpenNHP/opennhp/nhp/log"

// On macOS the tray library and Wails both need the main thread and the
// application delegate, so no status item is created. The Dock icon restores
// the hidden window and the unread state is kept for when it is shown.
func (t *trayIndicator) run() {
	log.Info("status bar icon disabled on macOS, the Dock icon restores the window")
}

func (t *trayIndicator) setIcon(icon []byte) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.icon = icon
}

func (t *trayIndicator) stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopped = true
}
