// snooze - Delay Notification Timer
// Author: Ariel Frischer
// Source: https://github.com/ariel-frischer/snooze

// Package cli provides the Cobra-based command surface for snooze. The root
// command owns the whole pipeline: scan arguments, load settings, resolve the
// timer, then either launch the detached sleep-then-notify process (default)
// or wait in the foreground (--wait).
package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/ariel-frischer/snooze/internal/config"
	"github.com/ariel-frischer/snooze/internal/logging"
	"github.com/ariel-frischer/snooze/internal/notify"
	"github.com/ariel-frischer/snooze/internal/parse"
	"github.com/ariel-frischer/snooze/internal/progress"
	"github.com/ariel-frischer/snooze/internal/sched"
	"github.com/ariel-frischer/snooze/internal/timer"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "snooze [duration]... [message] [title]",
	Short: "Set a timer that fires a desktop notification",
	Long: `snooze delay-notification timer

Accepts duration tokens, an optional message and an optional title, then
schedules a detached timer that fires a desktop notification and exits
immediately.

Duration tokens match <digits><unit> where the unit is d (days), h (hours),
m (minutes) or s (seconds), case-insensitive; a bare number counts as
seconds. All duration tokens are summed, in any order. The first remaining
argument becomes the notification message, the second becomes the title
(default "Timer"). Without any duration tokens the timer fires after 5
seconds.

The words "version", "help" and "completion" invoke the built-in commands
when given as the first argument; start with a duration token to use one of
them as a message.

Flags:
  -h, --help           Show this help text
  -c, --command <cmd>  Run <cmd> through the shell instead of the desktop
                       notifier; a diagnostic block (timestamp, delay in
                       seconds, title, message) is piped to its stdin
  -w, --wait           Stay in the foreground and notify from this process
  -d, --debug          Enable debug logging on stderr`,
	Example: `  # Tea in five minutes
  snooze 5m Tea

  # One hour and ten minutes, message "Laundry"
  snooze 1h 10m Laundry

  # 45 seconds with an explicit message and title
  snooze 45 "Fresh is best" Pasta

  # Pipe the reminder into a custom command instead of the notifier
  snooze 10m "Stand up" -c 'wall'`,
	Args: cobra.ArbitraryArgs,
	// The token grammar owns flag handling: "1h" must not look like a flag
	// value and a trailing -c must not be an error.
	DisableFlagParsing: true,
	SilenceUsage:       true,
	RunE:               run,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// launchTimer is swapped in tests so they do not spawn real processes.
var launchTimer = sched.Launch

func run(cmd *cobra.Command, args []string) error {
	scanned := parse.Scan(args)
	if scanned.Help {
		return cmd.Help()
	}

	logging.Setup(scanned.Debug)
	for _, extra := range scanned.Ignored {
		slog.Debug("ignoring extra argument", "arg", extra)
	}

	settings, err := config.Load()
	if err != nil {
		return err
	}

	resolved := timer.Resolve(timer.Request{
		DelaySeconds: scanned.DelaySeconds,
		Title:        scanned.Title,
		TitleSet:     scanned.TitleSet,
		Message:      scanned.Message,
		MessageSet:   scanned.MessageSet,
		Command:      scanned.Command,
		CommandSet:   scanned.CommandSet,
	}, settings)
	slog.Debug("resolved timer",
		"delay_seconds", resolved.DelaySeconds,
		"title", resolved.Title,
		"message", resolved.Message,
		"custom", resolved.Custom,
	)

	if scanned.Wait {
		return runForeground(cmd, settings, resolved)
	}
	return runDetached(cmd, settings, resolved)
}

// runDetached spawns the sleep-then-notify process and reports its pid. The
// child's outcome is never observed; only a failure to spawn is fatal.
func runDetached(cmd *cobra.Command, settings *config.Settings, resolved timer.Resolved) error {
	var script, stdin string
	if resolved.Custom {
		script = sched.BuildCustomScript(resolved.DelaySeconds, resolved.Command)
		stdin = resolved.DiagnosticBlock(time.Now())
	} else {
		n := notify.NewNotification(resolved.Title, resolved.Message, notify.Urgency(settings.Urgency))
		script = sched.BuildScript(resolved.DelaySeconds, notify.NewSender().VisualCommand(n))
	}
	slog.Debug("launching timer", "script", script)

	pid, err := launchTimer(script, stdin)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "[%d] Set timer for %s.\n", pid, resolved.TimeDescription)
	return nil
}

// runForeground sleeps in-process and dispatches the notification directly.
func runForeground(cmd *cobra.Command, settings *config.Settings, resolved timer.Resolved) error {
	if err := progress.Countdown(cmd.Context(), resolved.Duration(), resolved.TimeDescription); err != nil {
		return err
	}

	if resolved.Custom {
		return sched.Run(resolved.Command, resolved.DiagnosticBlock(time.Now()))
	}

	handler := notify.NewHandler(notify.OutputType(settings.NotifyType), settings.SoundFile)
	return handler.Send(notify.NewNotification(resolved.Title, resolved.Message, notify.Urgency(settings.Urgency)))
}
