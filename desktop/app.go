package desktop

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/OpenNHP/opennhp/nhp/log"
	"golang.org/x/sync/singleflight"

	"github.com/olubunmitosin/kesty-whatsapp/common"
)

type Options struct {
	Width     int
	Height    int
	Icon      []byte
	EventIcon []byte
	// DarkThemeDelay is how long after a finished page load the dark theme
	// is injected.
	DarkThemeDelay time.Duration
	UserDataDir    string
	// Args are the command line arguments without the program name.
	Args []string
}

// App is the explicit application state shared by the controllers.
type App struct {
	host     Host
	settings Settings
	opts     Options

	quitting atomic.Bool
	darkWait atomic.Int64
	oneShot  singleflight.Group

	Window        *Window
	Tray          *Tray
	Theme         *Theme
	Notifications *Notifications
}

func NewApp(host Host, settings Settings, opts Options) *App {
	if opts.Width <= 0 {
		opts.Width = common.WindowWidth
	}
	if opts.Height <= 0 {
		opts.Height = common.WindowHeight
	}
	a := &App{
		host:     host,
		settings: settings,
		opts:     opts,
	}
	a.darkWait.Store(int64(opts.DarkThemeDelay))
	a.Window = &Window{app: a}
	a.Tray = &Tray{app: a}
	a.Theme = &Theme{app: a}
	a.Notifications = &Notifications{app: a}
	return a
}

// Start creates the tray icon, the hidden window and the application menu.
func (a *App) Start() {
	a.Tray.init()
	a.Window.init()
	a.ReloadMenu()
	log.Info("desktop started, theme=%s muted=%t", a.settings.Theme(), a.settings.SoundMuted())
}

// Quitting reports whether the quit sequence has begun. It never goes back
// to false.
func (a *App) Quitting() bool {
	return a.quitting.Load()
}

func (a *App) SetDarkThemeDelay(d time.Duration) {
	a.darkWait.Store(int64(d))
}

// Quit sets the quitting flag, terminates the window, removes the tray icon
// and stops the toolkit loop. Later calls are ignored.
func (a *App) Quit() {
	if !a.quitting.CompareAndSwap(false, true) {
		return
	}
	log.Info("quit requested")
	a.Theme.stop()
	a.Window.terminate()
	a.Tray.destroy()
	a.host.Quit()
}

// PageLoaded is called each time the hosted page finishes loading.
func (a *App) PageLoaded() {
	if a.settings.SoundMuted() {
		a.host.ExecJS(muteJS(true))
	}
	a.Theme.PageLoaded()
}

// DomReady is called when the hosted page reports its DOM is ready.
func (a *App) DomReady() {
	a.Window.ShowAndCenter()
}

// ToggleSound flips the muted setting, rebuilds the menu so the label
// follows it, mutes the page and tells the user.
func (a *App) ToggleSound() error {
	muted := !a.settings.SoundMuted()
	if err := a.settings.SetSoundMuted(muted); err != nil {
		return fmt.Errorf("toggle sound: %w", err)
	}
	a.ReloadMenu()
	a.host.ExecJS(muteJS(muted))
	a.Notifications.soundToggled(muted)
	return nil
}

// ReloadMenu rebuilds the whole menu from the current settings and installs
// it.
func (a *App) ReloadMenu() {
	a.host.SetMenu(BuildMenu(a.settings, a.menuActions()))
}

func (a *App) menuActions() MenuActions {
	return MenuActions{
		Exit: a.Quit,
		SelectTheme: func(theme string) {
			if _, err := a.Theme.Select(theme); err != nil {
				log.Error("select theme %s: %v", theme, err)
			}
		},
		ToggleSound: func() {
			if err := a.ToggleSound(); err != nil {
				log.Error("%v", err)
			}
		},
		ClearAppData: func() {
			go func() {
				if err := a.ClearAppData(); err != nil {
					log.Error("clear app data: %v", err)
				}
			}()
		},
		Reload: func() {
			if err := a.Relaunch(); err != nil {
				log.Error("reload application: %v", err)
			}
		},
		ToggleFullScreen: a.Window.ToggleFullScreen,
	}
}

func muteJS(muted bool) string {
	return fmt.Sprintf("window.__kesty && window.__kesty.setMuted(%t);", muted)
}
