// Package timer defines the timer value object and the defaults resolution
// that turns scanned arguments into a fully determined timer.
package timer

import (
	"strconv"
	"strings"
	"time"

	"github.com/ariel-frischer/snooze/internal/config"
)

// Request is the raw outcome of argument scanning: the accumulated delay and
// which optional fields the user actually supplied.
type Request struct {
	DelaySeconds int64
	Title        string
	TitleSet     bool
	Message      string
	MessageSet   bool
	Command      string
	CommandSet   bool
}

// Resolved is a fully determined timer. All fields are final; the command to
// execute is derived from these exactly once, downstream.
type Resolved struct {
	DelaySeconds    int64
	Title           string
	Message         string
	TimeDescription string

	// Custom is true when the user supplied a command template via -c.
	Custom  bool
	Command string
}

// Resolve fills unset fields from settings. A zero delay becomes the minimum
// delay, an unset title becomes the default title, and an unset message
// becomes the human-readable time description. Resolution is deterministic:
// resolving an already-resolved timer changes nothing.
func Resolve(req Request, s *config.Settings) Resolved {
	r := Resolved{
		DelaySeconds: req.DelaySeconds,
		Title:        req.Title,
		Message:      req.Message,
		Custom:       req.CommandSet,
		Command:      req.Command,
	}

	if r.DelaySeconds == 0 {
		r.DelaySeconds = s.MinDelay
	}
	r.TimeDescription = Describe(r.DelaySeconds)

	if !req.TitleSet {
		r.Title = s.DefaultTitle
	}
	if !req.MessageSet {
		r.Message = r.TimeDescription
	}
	return r
}

// DiagnosticBlock renders the text piped to a custom command's standard
// input: timestamp, delay in seconds, title and message, one per line.
func (r Resolved) DiagnosticBlock(now time.Time) string {
	lines := []string{
		now.Format(time.RFC1123),
		strconv.FormatInt(r.DelaySeconds, 10),
		r.Title,
		r.Message,
	}
	return strings.Join(lines, "\n") + "\n"
}

// Duration returns the delay as a time.Duration.
func (r Resolved) Duration() time.Duration {
	return time.Duration(r.DelaySeconds) * time.Second
}
