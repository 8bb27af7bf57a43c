//go:build unix

package sched

import (
	"os/exec"
	"syscall"
)

// shellCommand builds the shell invocation for a script line
func shellCommand(script string) *exec.Cmd {
	return exec.Command("/bin/sh", "-c", script)
}

// detach puts the child in its own session so it survives the parent's exit
// and any terminal hangup.
func detach(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
}
