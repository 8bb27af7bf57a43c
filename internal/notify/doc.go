// Package notify provides cross-platform desktop notification support for
// snooze.
//
// Each supported operating system gets a Sender backed by native OS tools
// called through os/exec, with graceful no-op degradation when those tools
// are missing:
//
//   - macOS: osascript for visual notifications, afplay for sound
//   - Linux: notify-send for visual notifications, paplay for sound
//   - Windows: PowerShell for toast notifications and sound
//
// Senders expose the visual invocation in two forms: SendVisual runs it
// directly (the --wait foreground path), and VisualCommand returns the argv
// so the detached sleep-then-notify script can embed the exact same command.
package notify
