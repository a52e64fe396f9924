package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/olubunmitosin/kesty-whatsapp/common"
	"github.com/olubunmitosin/kesty-whatsapp/config"
	"github.com/olubunmitosin/kesty-whatsapp/settings"
	"github.com/olubunmitosin/kesty-whatsapp/ui"
	"github.com/olubunmitosin/kesty-whatsapp/version"
)

// A desktop launch (double click, dock, start menu) passes no arguments and
// goes straight to the window.
func main() {
	if len(os.Args) == 1 {
		if err := ui.Run(ui.RunOptions{LogLevel: -1}); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Usage: "path of the app config file",
		},
		&cli.IntFlag{
			Name:  "log-level",
			Usage: "override the configured log level",
			Value: -1,
		},
		&cli.BoolFlag{
			Name:   common.RelaunchFlag,
			Hidden: true,
		},
	}
}

func runAction(c *cli.Context) error {
	return ui.Run(ui.RunOptions{
		ConfigFile: c.String("config"),
		LogLevel:   c.Int("log-level"),
		Relaunched: c.Bool(common.RelaunchFlag),
		Args:       os.Args[1:],
	})
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = common.AppName
	app.Usage = "desktop wrapper for " + common.DefaultURL
	app.Version = version.Get().String()
	app.Flags = runFlags()
	app.Action = runAction

	runCmd := &cli.Command{
		Name:   "run",
		Usage:  "open the desktop window",
		Flags:  runFlags(),
		Action: runAction,
	}

	clearCmd := &cli.Command{
		Name:  "clear-data",
		Usage: "move the user data directory to the trash",
		Action: func(c *cli.Context) error {
			dir := config.UserDataDir()
			if err := ui.TrashDir(dir); err != nil {
				return fmt.Errorf("move to trash: %w", err)
			}
			fmt.Fprintf(c.App.Writer, "moved %s to trash\n", dir)
			return nil
		},
	}

	settingsCmd := &cli.Command{
		Name:  "settings",
		Usage: "inspect or change stored settings",
		Subcommands: []*cli.Command{
			{
				Name:      "get",
				Usage:     "print one setting, or all of them",
				ArgsUsage: "[name]",
				Action: func(c *cli.Context) error {
					return printSettings(c.App.Writer, openStore(), c.Args().First())
				},
			},
			{
				Name:      "set",
				Usage:     "store a setting",
				ArgsUsage: "<name> <value>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 2 {
						return cli.Exit("settings set needs <name> <value>", 2)
					}
					return setSetting(openStore(), c.Args().Get(0), c.Args().Get(1))
				},
			},
		},
	}

	app.Commands = []*cli.Command{
		runCmd,
		clearCmd,
		settingsCmd,
	}
	return app
}

func openStore() *settings.Store {
	dir := config.UserDataDir()
	conf, err := config.Load(config.DefaultPath(dir))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	return settings.Open(dir, conf.StorageKey)
}

func printSettings(w io.Writer, store *settings.Store, name string) error {
	if name != "" {
		v, ok := store.Get(name)
		if !ok {
			return fmt.Errorf("setting %q is not set", name)
		}
		fmt.Fprintln(w, v)
		return nil
	}
	for _, n := range store.Names() {
		v, _ := store.Get(n)
		fmt.Fprintf(w, "%s = %v\n", n, v)
	}
	return nil
}

func setSetting(store *settings.Store, name, raw string) error {
	switch name {
	case settings.KeyTheme:
		return store.SetTheme(raw)
	case settings.KeySound:
		muted, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("sound must be true or false: %w", err)
		}
		return store.SetSoundMuted(muted)
	default:
		return store.Set(name, raw)
	}
}
