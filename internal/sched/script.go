// Package sched assembles the sleep-then-notify shell line and launches it as
// a detached background process.
package sched

import (
	"fmt"
	"regexp"
	"strings"
)

// safeWord matches argv words that need no quoting in a shell line.
var safeWord = regexp.MustCompile(`^[a-zA-Z0-9_@%+=:,./-]+$`)

// BuildScript assembles the shell line executed by the detached process:
// sleep for the delay, then run the notifier argv. Each argv word is quoted,
// so user-supplied titles and messages are never interpreted by the shell.
func BuildScript(delaySeconds int64, argv []string) string {
	return fmt.Sprintf("sleep %d; %s", delaySeconds, JoinArgs(argv))
}

// BuildCustomScript runs the user's command template verbatim after the
// sleep. The template is the user's own shell line; it is not quoted.
func BuildCustomScript(delaySeconds int64, command string) string {
	return fmt.Sprintf("sleep %d; %s", delaySeconds, command)
}

// JoinArgs renders an argv as a single shell line.
func JoinArgs(argv []string) string {
	quoted := make([]string, len(argv))
	for i, a := range argv {
		quoted[i] = Quote(a)
	}
	return strings.Join(quoted, " ")
}

// Quote single-quotes s for POSIX sh, escaping embedded single quotes.
// Words that are already shell-safe pass through unquoted.
func Quote(s string) string {
	if s == "" {
		return "''"
	}
	if safeWord.MatchString(s) {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
