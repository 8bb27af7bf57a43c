// Package parse tests the argument scanner: duration accrual, positional
// message/title assignment, and flag handling.
// Related: internal/parse/parse.go
// Tags: parse, duration, flags, positional
package parse

import (
	"reflect"
	"testing"
)

func TestScanDurationAccrual(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		args      []string
		wantDelay int64
	}{
		"no arguments":             {args: nil, wantDelay: 0},
		"bare number is seconds":   {args: []string{"45"}, wantDelay: 45},
		"explicit seconds":         {args: []string{"45s"}, wantDelay: 45},
		"minutes":                  {args: []string{"5m"}, wantDelay: 300},
		"hours":                    {args: []string{"2h"}, wantDelay: 7200},
		"days":                     {args: []string{"1d"}, wantDelay: 86400},
		"uppercase unit":           {args: []string{"2H"}, wantDelay: 7200},
		"tokens sum":               {args: []string{"1h", "10m"}, wantDelay: 4200},
		"order independent":        {args: []string{"10m", "1h"}, wantDelay: 4200},
		"repeated units sum":       {args: []string{"30", "30", "1m"}, wantDelay: 120},
		"all units":                {args: []string{"1d", "1h", "1m", "1s"}, wantDelay: 90061},
		"zero token":               {args: []string{"0"}, wantDelay: 0},
		"interleaved with message": {args: []string{"1h", "Laundry", "10m"}, wantDelay: 4200},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			res := Scan(test.args)
			if res.DelaySeconds != test.wantDelay {
				t.Errorf("Scan(%v) delay = %d, want %d", test.args, res.DelaySeconds, test.wantDelay)
			}
		})
	}
}

func TestScanPositional(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		args        []string
		wantMessage string
		wantMsgSet  bool
		wantTitle   string
		wantTitle2  bool
		wantIgnored []string
	}{
		"message only": {
			args:        []string{"5m", "Tea"},
			wantMessage: "Tea",
			wantMsgSet:  true,
		},
		"message then title": {
			args:        []string{"45", "Fresh is best", "Pasta"},
			wantMessage: "Fresh is best",
			wantMsgSet:  true,
			wantTitle:   "Pasta",
			wantTitle2:  true,
		},
		"extra arguments dropped": {
			args:        []string{"10s", "msg", "title", "extra", "more"},
			wantMessage: "msg",
			wantMsgSet:  true,
			wantTitle:   "title",
			wantTitle2:  true,
			wantIgnored: []string{"extra", "more"},
		},
		"malformed duration becomes message": {
			args:        []string{"5x"},
			wantMessage: "5x",
			wantMsgSet:  true,
		},
		"overlong digit run becomes message": {
			args:        []string{"99999999999999999999"},
			wantMessage: "99999999999999999999",
			wantMsgSet:  true,
		},
		"unknown dash token becomes message": {
			args:        []string{"-x"},
			wantMessage: "-x",
			wantMsgSet:  true,
		},
		"no positionals": {
			args: []string{"5m"},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			res := Scan(test.args)
			if res.Message != test.wantMessage || res.MessageSet != test.wantMsgSet {
				t.Errorf("message = %q (set=%v), want %q (set=%v)",
					res.Message, res.MessageSet, test.wantMessage, test.wantMsgSet)
			}
			if res.Title != test.wantTitle || res.TitleSet != test.wantTitle2 {
				t.Errorf("title = %q (set=%v), want %q (set=%v)",
					res.Title, res.TitleSet, test.wantTitle, test.wantTitle2)
			}
			if !reflect.DeepEqual(res.Ignored, test.wantIgnored) {
				t.Errorf("ignored = %v, want %v", res.Ignored, test.wantIgnored)
			}
		})
	}
}

func TestScanCommandFlag(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		args        []string
		wantCommand string
		wantSet     bool
	}{
		"short flag":             {args: []string{"5m", "-c", "wall"}, wantCommand: "wall", wantSet: true},
		"long flag":              {args: []string{"--command", "echo hi", "5m"}, wantCommand: "echo hi", wantSet: true},
		"case insensitive":       {args: []string{"-C", "wall"}, wantCommand: "wall", wantSet: true},
		"uppercase long flag":    {args: []string{"--COMMAND", "wall"}, wantCommand: "wall", wantSet: true},
		"trailing flag ignored":  {args: []string{"5m", "-c"}, wantSet: false},
		"value taken verbatim":   {args: []string{"-c", "-h"}, wantCommand: "-h", wantSet: true},
		"duration value consumed": {args: []string{"-c", "5m"}, wantCommand: "5m", wantSet: true},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			res := Scan(test.args)
			if res.Command != test.wantCommand || res.CommandSet != test.wantSet {
				t.Errorf("command = %q (set=%v), want %q (set=%v)",
					res.Command, res.CommandSet, test.wantCommand, test.wantSet)
			}
			if res.Help {
				t.Error("help should not trigger")
			}
		})
	}
}

func TestScanCommandValueNotReinterpreted(t *testing.T) {
	t.Parallel()

	// "-c 5m": the value is consumed verbatim and must not add to the delay.
	res := Scan([]string{"-c", "5m"})
	if res.DelaySeconds != 0 {
		t.Errorf("delay = %d, want 0", res.DelaySeconds)
	}
}

func TestScanHelpShortCircuit(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		args     []string
		wantHelp bool
		// fields that must remain untouched because scanning stopped
		wantMsgSet bool
	}{
		"leading help":           {args: []string{"-h", "Tea"}, wantHelp: true, wantMsgSet: false},
		"long form":              {args: []string{"--help"}, wantHelp: true},
		"case insensitive":       {args: []string{"--HELP"}, wantHelp: true},
		"help after tokens":      {args: []string{"5m", "-h", "Tea"}, wantHelp: true, wantMsgSet: false},
		"no help":                {args: []string{"5m", "Tea"}, wantHelp: false, wantMsgSet: true},
		"help hidden as value":   {args: []string{"-c", "--help"}, wantHelp: false},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			res := Scan(test.args)
			if res.Help != test.wantHelp {
				t.Errorf("help = %v, want %v", res.Help, test.wantHelp)
			}
			if res.MessageSet != test.wantMsgSet {
				t.Errorf("messageSet = %v, want %v", res.MessageSet, test.wantMsgSet)
			}
		})
	}
}

func TestScanModeFlags(t *testing.T) {
	t.Parallel()

	res := Scan([]string{"-w", "--DEBUG", "5m"})
	if !res.Wait {
		t.Error("expected wait mode")
	}
	if !res.Debug {
		t.Error("expected debug mode")
	}
	if res.DelaySeconds != 300 {
		t.Errorf("delay = %d, want 300", res.DelaySeconds)
	}
	if res.MessageSet {
		t.Errorf("unexpected message %q", res.Message)
	}
}
