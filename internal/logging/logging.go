// Package logging configures the process-wide logger. Log records go to
// stderr; stdout is reserved for the single confirmation line.
package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
)

// NewHandler returns an slog handler backed by charmbracelet/log writing to
// w. Debug mode lowers the level to debug and adds timestamps; otherwise only
// warnings and errors are reported.
func NewHandler(debug bool, w io.Writer) slog.Handler {
	if w == nil {
		w = os.Stderr
	}

	lvl := log.WarnLevel
	reportTimestamp := false
	if debug {
		lvl = log.DebugLevel
		reportTimestamp = true
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: reportTimestamp,
		Level:           lvl,
	})
}

// Setup installs the handler as the slog default logger.
func Setup(debug bool) {
	slog.SetDefault(slog.New(NewHandler(debug, os.Stderr)))
}
