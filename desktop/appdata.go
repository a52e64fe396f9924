package desktop

import (
	"errors"
	"fmt"

	"github.com/OpenNHP/opennhp/nhp/log"

	"github.com/olubunmitosin/kesty-whatsapp/common"
)

var errNoUserData = errors.New("user data directory is not set")

// ClearAppData moves the user data directory to the trash and relaunches.
// When the trash step fails nothing else happens. Concurrent calls share one
// run.
func (a *App) ClearAppData() error {
	_, err, _ := a.oneShot.Do("clear-app-data", func() (any, error) {
		dir := a.opts.UserDataDir
		if dir == "" {
			return nil, errNoUserData
		}
		if err := a.host.TrashDir(dir); err != nil {
			log.Error("Error moving to trash: %v", err)
			return nil, fmt.Errorf("trash %s: %w", dir, err)
		}
		log.Info("moved %s to trash", dir)
		return nil, a.relaunch()
	})
	return err
}

// Relaunch starts a new copy of the process and exits this one.
func (a *App) Relaunch() error {
	_, err, _ := a.oneShot.Do("relaunch", func() (any, error) {
		return nil, a.relaunch()
	})
	return err
}

func (a *App) relaunch() error {
	args := RelaunchArgs(a.opts.Args)
	if err := a.host.Relaunch(args); err != nil {
		return fmt.Errorf("relaunch: %w", err)
	}
	a.quitting.Store(true)
	a.Window.terminate()
	a.Tray.destroy()
	a.host.Exit(0)
	return nil
}

// RelaunchArgs returns args with exactly one relaunch marker appended.
func RelaunchArgs(args []string) []string {
	marker := "--" + common.RelaunchFlag
	out := make([]string, 0, len(args)+1)
	for _, arg := range args {
		if arg == marker {
			continue
		}
		out = append(out, arg)
	}
	return append(out, marker)
}
