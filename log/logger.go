// Package log provides an abstraction over log.Logger.
package log

// Logger is the interface of log.Logger used to report progress, so tests can record or discard messages.
type Logger interface {
	// Printf writes the formatted string with values to the logger.
	// Arguments are handled in the manner of fmt.Printf.
	Printf(format string, v ...interface{})
}
