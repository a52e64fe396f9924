package common

import (
	"path/filepath"

	"github.com/OpenNHP/opennhp/nhp/log"
)

// InitLogger creates the process logger under <dir>/logs and installs it as
// the global nhp logger.
func InitLogger(dir string, level int, name string) *log.Logger {
	l := log.NewLogger("Kesty", level, filepath.Join(dir, "logs"), name)
	log.SetGlobalLogger(l)
	return l
}
