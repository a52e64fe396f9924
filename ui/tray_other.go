//go:build !darwin

package ui

import (
	"runtime"

	"github.com/OpenNHP/opennhp/nhp/log"
	"github.com/energye/systray"
)

func (t *trayIndicator) run() {
	go systray.Run(t.onReady, func() {
		log.Debug("tray loop finished")
	})
}

func (t *trayIndicator) onReady() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		systray.Quit()
		return
	}

	systray.SetTooltip(t.tooltip)
	if t.icon != nil {
		systray.SetIcon(trayIcon(t.icon, runtime.GOOS))
	}
	systray.SetOnClick(func(systray.IMenu) {
		t.onClick()
	})
	// double clicks arrive after a click and need no extra handling
	systray.SetOnDClick(func(systray.IMenu) {})
	systray.SetOnRClick(func(m systray.IMenu) {
		if m == nil {
			return
		}
		if err := m.ShowMenu(); err != nil {
			log.Error("failed to show tray menu: %v", err)
		}
	})

	systray.AddMenuItem("Show", "Show the window").Click(t.onShow)
	systray.AddSeparator()
	systray.AddMenuItem("Quit", "Quit the application").Click(t.onQuit)

	t.ready = true
	log.Debug("tray icon ready")
}

func (t *trayIndicator) setIcon(icon []byte) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.icon = icon
	if t.ready && !t.stopped {
		systray.SetIcon(trayIcon(icon, runtime.GOOS))
	}
}

func (t *trayIndicator) stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return
	}
	t.stopped = true
	if t.ready {
		systray.Quit()
	}
}
