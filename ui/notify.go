package ui

import (
	"github.com/OpenNHP/opennhp/nhp/log"
	"github.com/ncruces/zenity"
)

// Notify shows a native desktop notification without blocking the caller.
func (a *App) Notify(title, body string) {
	go func() {
		if err := zenity.Notify(body, zenity.Title(title)); err != nil {
			log.Warning("failed to show notification %q: %v", title, err)
		}
	}()
}
