// Package progress renders the foreground countdown used by --wait.
package progress

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"golang.org/x/term"
)

// Countdown blocks until the delay elapses, showing a spinner on a TTY and a
// plain line otherwise. Returns the context error when ctx is cancelled
// first.
func Countdown(ctx context.Context, delay time.Duration, description string) error {
	msg := fmt.Sprintf("Waiting %s", description)

	if isTTY(os.Stderr) {
		sp := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		sp.Writer = os.Stderr // keep stdout clean for the confirmation line
		sp.Suffix = " " + msg
		sp.Start()
		defer sp.Stop()
	} else {
		fmt.Fprintln(os.Stderr, msg)
	}

	t := time.NewTimer(delay)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// isTTY checks if the file is connected to a terminal
func isTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
