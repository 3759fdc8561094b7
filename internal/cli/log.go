package cli

import (
	"os"

	"github.com/charmbracelet/log"
)

// NewLogger creates the stderr logger both tools share. Verbose runs get
// debug-level output (per-row skip diagnostics, timing); otherwise only
// warnings and errors surface. Timestamps are formatted as "HH:MM:SS.ms".
func NewLogger(verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}
