package ui

import (
	"context"
	"sync"

	"github.com/OpenNHP/opennhp/nhp/log"
	wailsRuntime "github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/olubunmitosin/kesty-whatsapp/desktop"
)

// App binds the desktop controllers to the Wails runtime and the tray.
type App struct {
	ctx   context.Context
	desk  *desktop.App
	tray  *trayIndicator
	title string

	exitOnce sync.Once
}

var _ desktop.Host = (*App)(nil)

// startup is called when the application starts
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
	for _, signal := range desktop.Signals() {
		signal := signal
		wailsRuntime.EventsOn(ctx, signal, func(data ...interface{}) {
			a.desk.Notifications.Handle(signal, data...)
		})
	}
	a.tray.run()
	a.desk.Start()
}

// onDomReady runs for every load of the hosted page.
func (a *App) onDomReady(ctx context.Context) {
	log.Debug("page dom ready")
	a.desk.DomReady()
	a.desk.PageLoaded()
}

// beforeClose decides whether a close request hides the window instead.
func (a *App) beforeClose(ctx context.Context) (prevent bool) {
	return a.desk.Window.RequestClose()
}

func (a *App) shutdown(ctx context.Context) {
	a.tray.stop()
	a.banner("stopped")
	log.Close()
}

// secondInstance brings the running window forward when the app is started
// again.
func (a *App) secondInstance(args []string) {
	log.Info("second instance launched with %v", args)
	if a.ctx == nil {
		return
	}
	a.desk.Window.ShowAndCenter()
}

func (a *App) banner(state string) {
	log.Info("=========================================================")
	log.Info("================ %s %s ================", a.title, state)
	log.Info("=========================================================")
}
