// =============================================================================
// Entry Form Tool - Default Logger
// =============================================================================

package pipeline

import (
	"fmt"
	"os"
)

// stderrLogger is the default Logger implementation. Debug output is
// suppressed unless verbose is enabled.
type stderrLogger struct {
	verbose bool
}

// NewLogger returns the default stderr logger.
func NewLogger(verbose bool) Logger {
	return &stderrLogger{verbose: verbose}
}

func (l *stderrLogger) Debug(msg string, args ...interface{}) {
	if l.verbose {
		fmt.Fprintf(os.Stderr, "[DEBUG] "+msg+"\n", args...)
	}
}

func (l *stderrLogger) Info(msg string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "[INFO]  "+msg+"\n", args...)
}

func (l *stderrLogger) Warn(msg string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "[WARN]  "+msg+"\n", args...)
}

func (l *stderrLogger) Error(msg string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "[ERROR] "+msg+"\n", args...)
}
