// Package logtest implements Loggers for tests.
package logtest

import (
	"fmt"
	"strings"
	"sync"

	"github.com/jacobpatterson1549/wordfilter/log"
)

// DiscardLogger is a Logger that ignores all messages.
var DiscardLogger log.Logger = discardLogger{}

// discardLogger is a logger that logs nothing.
type discardLogger struct{}

// Printf implements the log.Logger interface
func (discardLogger) Printf(format string, v ...interface{}) {
	// NOOP
}

// Logger records each formatted message as a line.
type Logger struct {
	lines []string
	mu    sync.Mutex
}

// Logger implements the log.Logger interface.
var _ log.Logger = new(Logger)

// Printf implements the log.Logger interface
func (l *Logger) Printf(format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, fmt.Sprintf(format, v...))
}

// Lines returns a copy of the recorded messages.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	lines := make([]string, len(l.lines))
	copy(lines, l.lines)
	return lines
}

// Contains determines if any recorded message contains the substring.
func (l *Logger) Contains(substr string) bool {
	for _, line := range l.Lines() {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}
