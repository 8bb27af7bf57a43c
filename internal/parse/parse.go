// Package parse implements the snooze argument grammar: duration tokens,
// positional message/title assignment, and the small case-insensitive flag set.
// Nothing here is ever a parse error; tokens that are not durations and not
// flags fall through to the positional slots.
package parse

import (
	"regexp"
	"strconv"
	"strings"
)

// Result is the outcome of scanning an argument list.
type Result struct {
	// DelaySeconds is the sum of all duration tokens.
	DelaySeconds int64

	// Message is the first non-duration, non-flag argument.
	Message    string
	MessageSet bool

	// Title is the second non-duration, non-flag argument.
	Title    string
	TitleSet bool

	// Command is the argument following -c/--command, verbatim.
	Command    string
	CommandSet bool

	// Help is true when -h/--help was encountered; scanning stops there.
	Help bool

	// Wait selects the foreground countdown mode (-w/--wait).
	Wait bool

	// Debug enables debug logging (-d/--debug).
	Debug bool

	// Ignored collects arguments beyond the message and title slots.
	Ignored []string
}

// durationToken matches <digits><unit>? with an optional d/h/m/s unit.
var durationToken = regexp.MustCompile(`^([0-9]+)([dhms])?$`)

// unitSeconds maps a unit letter to its multiplier in seconds.
var unitSeconds = map[string]int64{
	"d": 86400,
	"h": 3600,
	"m": 60,
	"s": 1,
	"":  1,
}

// Scan consumes args left to right. Duration tokens accumulate into
// DelaySeconds in any order; -h/--help short-circuits immediately; the
// argument after -c/--command is taken verbatim (a trailing -c with nothing
// after it is ignored). Remaining arguments fill the message and title slots
// in that order, and anything further lands in Ignored.
func Scan(args []string) Result {
	var res Result
	for i := 0; i < len(args); i++ {
		arg := args[i]

		switch strings.ToLower(arg) {
		case "-h", "--help":
			res.Help = true
			return res
		case "-c", "--command":
			if i+1 < len(args) {
				i++
				res.Command = args[i]
				res.CommandSet = true
			}
			continue
		case "-w", "--wait":
			res.Wait = true
			continue
		case "-d", "--debug":
			res.Debug = true
			continue
		}

		if m := durationToken.FindStringSubmatch(strings.ToLower(arg)); m != nil {
			n, err := strconv.ParseInt(m[1], 10, 64)
			if err == nil {
				res.DelaySeconds += n * unitSeconds[m[2]]
				continue
			}
			// A digit run too large for int64 falls through to the
			// positional slots like any other non-duration token.
		}

		switch {
		case !res.MessageSet:
			res.Message = arg
			res.MessageSet = true
		case !res.TitleSet:
			res.Title = arg
			res.TitleSet = true
		default:
			res.Ignored = append(res.Ignored, arg)
		}
	}
	return res
}
