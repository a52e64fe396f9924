package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/OpenNHP/opennhp/nhp/log"
	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"
	"github.com/wailsapp/wails/v2/pkg/options/mac"
	"github.com/wailsapp/wails/v2/pkg/options/windows"

	"github.com/olubunmitosin/kesty-whatsapp/common"
	"github.com/olubunmitosin/kesty-whatsapp/config"
	"github.com/olubunmitosin/kesty-whatsapp/desktop"
	"github.com/olubunmitosin/kesty-whatsapp/settings"
	"github.com/olubunmitosin/kesty-whatsapp/version"
	"github.com/olubunmitosin/kesty-whatsapp/webhost"
)

// relaunchGrace gives the previous process time to release the single
// instance lock.
const relaunchGrace = 750 * time.Millisecond

type RunOptions struct {
	// ConfigFile overrides <userData>/etc/app.toml.
	ConfigFile string
	// LogLevel overrides the configured level when non-negative.
	LogLevel   int
	Relaunched bool
	// Args are replayed on relaunch.
	Args []string
}

// Run starts the desktop application and blocks until it exits.
func Run(ro RunOptions) error {
	if ro.Relaunched {
		time.Sleep(relaunchGrace)
	}

	exe, err := os.Executable()
	if err != nil {
		return err
	}
	common.ExeDirPath = filepath.Dir(exe)
	common.UserDataDir = config.UserDataDir()

	confFile := ro.ConfigFile
	if confFile == "" {
		confFile = config.DefaultPath(common.UserDataDir)
	}
	conf, confErr := config.Load(confFile)
	level := conf.LogLevel
	if ro.LogLevel >= 0 {
		level = ro.LogLevel
	}
	logger := common.InitLogger(common.UserDataDir, level, "desktop")

	a := &App{title: conf.Title}
	a.banner("started")
	log.Info("version %s, user data %s", version.Get(), common.UserDataDir)
	if confErr != nil {
		log.Error("%v, using defaults", confErr)
	}

	proxy, err := webhost.New(conf.URL, conf.UserAgent)
	if err != nil {
		return fmt.Errorf("page host: %w", err)
	}

	store := settings.Open(common.UserDataDir, conf.StorageKey)
	icon := IconPNG(false)
	a.desk = desktop.NewApp(a, store, desktop.Options{
		Width:          conf.Width,
		Height:         conf.Height,
		Icon:           icon,
		EventIcon:      IconPNG(true),
		DarkThemeDelay: conf.DarkThemeDelay(),
		UserDataDir:    common.UserDataDir,
		Args:           ro.Args,
	})
	a.tray = &trayIndicator{
		tooltip: conf.Title,
		onClick: a.desk.Tray.Click,
		onShow:  a.desk.Tray.Show,
		onQuit:  a.desk.Tray.Quit,
	}

	watcher := config.Watch(confFile, func(c *config.Config) {
		if ro.LogLevel < 0 {
			logger.SetLogLevel(c.LogLevel)
		}
		proxy.SetUserAgent(c.UserAgent)
		a.desk.SetDarkThemeDelay(c.DarkThemeDelay())
	})
	defer watcher.Close()

	err = wails.Run(&options.App{
		Title:       conf.Title,
		Width:       conf.Width,
		Height:      conf.Height,
		StartHidden: true,
		AssetServer: &assetserver.Options{
			Handler: proxy,
		},
		OnStartup:     a.startup,
		OnDomReady:    a.onDomReady,
		OnBeforeClose: a.beforeClose,
		OnShutdown:    a.shutdown,
		Logger:        wailsLogger{},
		LogLevel:      wailsLogLevel(level),
		SingleInstanceLock: &options.SingleInstanceLock{
			UniqueId: common.AppID,
			OnSecondInstanceLaunch: func(data options.SecondInstanceData) {
				a.secondInstance(data.Args)
			},
		},
		Windows: &windows.Options{
			WebviewUserDataPath: filepath.Join(common.UserDataDir, "webview"),
		},
		Mac: &mac.Options{
			About: &mac.AboutInfo{
				Title:   conf.Title,
				Message: "Version " + version.Get().String(),
				Icon:    icon,
			},
		},
		Linux: &linux.Options{
			Icon:        icon,
			ProgramName: conf.Title,
		},
	})
	if err != nil {
		log.Error("desktop runtime failed: %v", err)
		log.Close()
		return err
	}
	return nil
}
