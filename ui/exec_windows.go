//go:build windows

package ui

import (
	"os/exec"
	"syscall"

	"golang.org/x/sys/windows"
)

// detach lets the child outlive this process without a console window.
func detach(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		HideWindow:    true,
		CreationFlags: windows.CREATE_NEW_PROCESS_GROUP | windows.DETACHED_PROCESS,
	}
}
