package desktop

import (
	"fmt"
	"sync"
	"time"

	"github.com/OpenNHP/opennhp/nhp/log"

	"github.com/olubunmitosin/kesty-whatsapp/common"
)

const darkJS = `window.__kesty ? window.__kesty.setDark(true) : document.body.classList.toggle("dark", true);`

// Theme injects the dark style into the hosted page. Going back to light
// reloads the page rather than removing the style in place.
type Theme struct {
	app *App

	mu    sync.Mutex
	timer *time.Timer
}

// Select is the Theme menu action. Selecting the active theme does nothing.
func (t *Theme) Select(theme string) (changed bool, err error) {
	if theme == t.app.settings.Theme() {
		return false, nil
	}

	switch theme {
	case common.ThemeDark:
		if err := t.app.settings.SetTheme(common.ThemeDark); err != nil {
			return false, fmt.Errorf("store theme: %w", err)
		}
		t.ApplyDark()
	case common.ThemeLight:
		if err := t.ApplyLight(); err != nil {
			return false, err
		}
	default:
		return false, fmt.Errorf("unknown theme %q", theme)
	}
	return true, nil
}

func (t *Theme) ApplyDark() {
	t.app.host.ExecJS(darkJS)
}

// ApplyLight stores the light theme and reloads the page so no injected
// style survives.
func (t *Theme) ApplyLight() error {
	t.stop()
	if err := t.app.settings.SetTheme(common.ThemeLight); err != nil {
		return fmt.Errorf("store theme: %w", err)
	}
	t.app.host.ReloadPage()
	return nil
}

// PageLoaded schedules the dark theme after a finished load when it is the
// stored theme. The delay lets page scripts settle first.
func (t *Theme) PageLoaded() {
	if t.app.settings.Theme() != common.ThemeDark {
		return
	}

	delay := time.Duration(t.app.darkWait.Load())
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		t.timer.Stop()
	}
	t.timer = time.AfterFunc(delay, func() {
		if t.app.Quitting() || t.app.settings.Theme() != common.ThemeDark {
			return
		}
		log.Debug("applying dark theme")
		t.ApplyDark()
	})
}

func (t *Theme) stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}
