//go:build windows

package sched

import (
	"os/exec"
	"syscall"
)

const (
	createNewProcessGroup = 0x00000200
	detachedProcess       = 0x00000008
)

// shellCommand builds the shell invocation for a script line. PowerShell
// aliases sleep to Start-Sleep, so the sleep-then-notify line works as-is.
func shellCommand(script string) *exec.Cmd {
	return exec.Command("powershell", "-NoProfile", "-Command", script)
}

// detach starts the child without a console and outside our process group so
// it survives the parent's exit.
func detach(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CreationFlags: createNewProcessGroup | detachedProcess,
	}
}
