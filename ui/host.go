package ui

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/Bios-Marcel/wastebasket/v2"
	"github.com/OpenNHP/opennhp/nhp/log"
	"github.com/skratchdot/open-golang/open"
	wailsRuntime "github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/olubunmitosin/kesty-whatsapp/desktop"
)

func (a *App) WindowShow() {
	wailsRuntime.WindowShow(a.ctx)
}

func (a *App) WindowHide() {
	wailsRuntime.WindowHide(a.ctx)
}

// WindowFocus raises the window above others without pinning it there.
func (a *App) WindowFocus() {
	wailsRuntime.WindowUnminimise(a.ctx)
	wailsRuntime.WindowSetAlwaysOnTop(a.ctx, true)
	wailsRuntime.WindowSetAlwaysOnTop(a.ctx, false)
}

func (a *App) WindowCenter() {
	wailsRuntime.WindowCenter(a.ctx)
}

func (a *App) WindowSetPosition(x, y int) {
	wailsRuntime.WindowSetPosition(a.ctx, x, y)
}

func (a *App) WindowSetFullScreen(on bool) {
	if on {
		wailsRuntime.WindowFullscreen(a.ctx)
		return
	}
	wailsRuntime.WindowUnfullscreen(a.ctx)
}

func (a *App) PrimaryWorkArea() (int, int, bool) {
	screens, err := wailsRuntime.ScreenGetAll(a.ctx)
	if err != nil {
		log.Warning("failed to list screens: %v", err)
		return 0, 0, false
	}
	for _, s := range screens {
		if s.IsPrimary {
			return s.Size.Width, s.Size.Height, s.Size.Width > 0 && s.Size.Height > 0
		}
	}
	return 0, 0, false
}

func (a *App) SetTrayIcon(icon []byte) {
	a.tray.setIcon(icon)
}

func (a *App) DestroyTray() {
	a.tray.stop()
}

func (a *App) ExecJS(js string) {
	wailsRuntime.WindowExecJS(a.ctx, js)
}

func (a *App) ReloadPage() {
	wailsRuntime.WindowReload(a.ctx)
}

func (a *App) SetMenu(groups []desktop.MenuGroup) {
	wailsRuntime.MenuSetApplicationMenu(a.ctx, buildAppMenu(groups))
	wailsRuntime.MenuUpdateApplicationMenu(a.ctx)
}

func (a *App) OpenExternal(url string) error {
	log.Info("opening %s in the default browser", url)
	return open.Start(url)
}

func (a *App) TrashDir(path string) error {
	return TrashDir(path)
}

// TrashDir moves path to the platform trash.
func TrashDir(path string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}
	return wastebasket.Trash(path)
}

// Relaunch starts a detached copy of this executable with args.
func (a *App) Relaunch(args []string) error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("locate executable: %w", err)
	}
	cmd := exec.Command(exe, args...)
	detach(cmd)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", exe, err)
	}
	log.Info("relaunched as pid %d with %v", cmd.Process.Pid, args)
	return cmd.Process.Release()
}

func (a *App) Quit() {
	wailsRuntime.Quit(a.ctx)
}

func (a *App) Exit(code int) {
	a.exitOnce.Do(func() {
		a.banner("exiting")
		log.Close()
		os.Exit(code)
	})
}
