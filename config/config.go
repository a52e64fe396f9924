package config

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/OpenNHP/opennhp/nhp/log"
	"github.com/OpenNHP/opennhp/nhp/utils"
	"github.com/pelletier/go-toml/v2"

	"github.com/olubunmitosin/kesty-whatsapp/common"
)

var errLoadConfig = fmt.Errorf("app config load error")

type Config struct {
	URL              string `toml:"url"`
	Title            string `toml:"title"`
	Width            int    `toml:"width"`
	Height           int    `toml:"height"`
	UserAgent        string `toml:"userAgent"`
	DarkThemeDelayMs int    `toml:"darkThemeDelayMs"`
	LogLevel         int    `toml:"logLevel"`
	StorageKey       string `toml:"storageKey"`
}

func Default() *Config {
	return &Config{
		URL:              common.DefaultURL,
		Title:            common.AppName,
		Width:            common.WindowWidth,
		Height:           common.WindowHeight,
		DarkThemeDelayMs: common.DarkThemeDelayMs,
		LogLevel:         common.DefaultLogLevel,
		StorageKey:       common.StorageKey,
	}
}

func (c *Config) DarkThemeDelay() time.Duration {
	return time.Duration(c.DarkThemeDelayMs) * time.Millisecond
}

// UserDataDir is the per-user directory holding settings, logs and config.
func UserDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir, _ = os.UserHomeDir()
	}
	return filepath.Join(dir, "kesty-whatsapp")
}

// DefaultPath is <userData>/etc/app.toml.
func DefaultPath(userDataDir string) string {
	return filepath.Join(userDataDir, "etc", "app.toml")
}

// Load reads file on top of the defaults. A missing file is not an error.
func Load(file string) (conf *Config, err error) {
	defer utils.CatchPanicThenRun(func() {
		err = errLoadConfig
	})

	conf = Default()
	content, err := os.ReadFile(file)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return conf, nil
		}
		return conf, fmt.Errorf("read app config: %w", err)
	}

	if err := toml.Unmarshal(content, conf); err != nil {
		return Default(), fmt.Errorf("unmarshal app config: %w", err)
	}
	conf.normalize()

	if !validURL(conf.URL) {
		log.Warning("invalid url %q in %s, using %s", conf.URL, file, common.DefaultURL)
		conf.URL = common.DefaultURL
	}
	return conf, nil
}

// validURL accepts absolute http and https URLs with a host.
func validURL(raw string) bool {
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func (c *Config) normalize() {
	d := Default()
	if c.URL == "" {
		c.URL = d.URL
	}
	if c.Title == "" {
		c.Title = d.Title
	}
	if c.Width <= 0 {
		c.Width = d.Width
	}
	if c.Height <= 0 {
		c.Height = d.Height
	}
	if c.DarkThemeDelayMs < 0 {
		c.DarkThemeDelayMs = d.DarkThemeDelayMs
	}
	if c.StorageKey == "" {
		c.StorageKey = d.StorageKey
	}
}

// Watch reloads file whenever it changes and hands the result to onChange.
// Reload errors are logged and the previous config stays in effect.
func Watch(file string, onChange func(*Config)) io.Closer {
	return utils.WatchFile(file, func() {
		log.Info("app config: %s has been updated", file)
		conf, err := Load(file)
		if err != nil {
			log.Error("failed to reload app config: %v", err)
			return
		}
		onChange(conf)
	})
}
