package sched

import (
	"fmt"
	"os"
	"strings"
)

// Launch starts the detached sleep-then-notify process and returns its pid.
// The child is fully decoupled: the parent exits before it completes and
// never observes its outcome. stdin, when non-empty, becomes the child's
// standard input (the diagnostic block for custom command templates).
//
// The block is handed over as a real pipe end written before the child
// starts: an *os.File stdin is inherited directly by the child, so delivery
// does not depend on this process living long enough to copy it.
func Launch(script, stdin string) (int, error) {
	cmd := shellCommand(script)
	detach(cmd)
	if stdin != "" {
		r, w, err := os.Pipe()
		if err != nil {
			return 0, fmt.Errorf("failed to create stdin pipe: %w", err)
		}
		// The block is a few lines, far below the pipe buffer, so this
		// write completes without a reader.
		if _, err := w.WriteString(stdin); err != nil {
			w.Close()
			r.Close()
			return 0, fmt.Errorf("failed to write stdin pipe: %w", err)
		}
		w.Close()
		cmd.Stdin = r
		defer r.Close()
	}

	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("failed to start timer process: %w", err)
	}
	pid := cmd.Process.Pid

	// Drop the ownership link; the child must outlive this process.
	if err := cmd.Process.Release(); err != nil {
		return pid, fmt.Errorf("failed to release timer process: %w", err)
	}
	return pid, nil
}

// Run executes a command template through the shell in the foreground, with
// stdin as its standard input. Used by --wait for custom commands.
func Run(command, stdin string) error {
	cmd := shellCommand(command)
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("command failed: %w", err)
	}
	return nil
}
