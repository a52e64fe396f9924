package desktop

import (
	"sync"

	"github.com/OpenNHP/opennhp/nhp/log"
)

// Tray tracks the tray icon and its unread indicator.
type Tray struct {
	app *App

	mu        sync.Mutex
	unread    bool
	destroyed bool
}

func (t *Tray) init() {
	t.app.host.SetTrayIcon(t.app.opts.Icon)
}

func (t *Tray) Unread() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.unread
}

// MarkUnread swaps in the event icon. It reports false when the indicator
// was already showing. The icon is changed under the lock so the flag always
// matches the icon on screen.
func (t *Tray) MarkUnread() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.unread || t.destroyed {
		return false
	}
	t.unread = true
	t.app.host.SetTrayIcon(t.app.opts.EventIcon)
	return true
}

// ClearUnread restores the default icon.
func (t *Tray) ClearUnread() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.unread || t.destroyed {
		return false
	}
	t.unread = false
	t.app.host.SetTrayIcon(t.app.opts.Icon)
	return true
}

// Click handles a single click on the tray icon.
func (t *Tray) Click() {
	t.Show()
}

// Show is the tray menu "Show" entry.
func (t *Tray) Show() {
	t.app.Window.ShowAndCenter()
}

// Quit is the tray menu "Quit" entry.
func (t *Tray) Quit() {
	t.app.Quit()
}

func (t *Tray) destroy() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.destroyed {
		return
	}
	t.destroyed = true
	log.Debug("destroying tray icon")
	t.app.host.DestroyTray()
}
