package ui

import (
	"github.com/OpenNHP/opennhp/nhp/log"
	"github.com/wailsapp/wails/v2/pkg/logger"
)

// wailsLogger sends toolkit log lines to the process logger.
type wailsLogger struct{}

var _ logger.Logger = wailsLogger{}

func (wailsLogger) Print(message string)   { log.Info("[wails] %s", message) }
func (wailsLogger) Trace(message string)   { log.Debug("[wails] %s", message) }
func (wailsLogger) Debug(message string)   { log.Debug("[wails] %s", message) }
func (wailsLogger) Info(message string)    { log.Info("[wails] %s", message) }
func (wailsLogger) Warning(message string) { log.Warning("[wails] %s", message) }
func (wailsLogger) Error(message string)   { log.Error("[wails] %s", message) }
func (wailsLogger) Fatal(message string)   { log.Critical("[wails] %s", message) }

// wailsLogLevel maps the nhp level to the toolkit's own filter.
func wailsLogLevel(level int) logger.LogLevel {
	switch {
	case level >= 5:
		return logger.DEBUG
	case level >= 4:
		return logger.INFO
	case level >= 3:
		return logger.WARNING
	default:
		return logger.ERROR
	}
}
