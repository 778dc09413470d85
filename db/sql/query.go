package sql

import (
	"fmt"
	"strings"
)

type (
	// Query is a message that is sent to the database.
	Query interface {
		// Cmd is the injection-safe message to send to the database.
		Cmd() string
		// Args are the user-provided properties of the message which should be escaped.
		Args() []interface{}
	}

	// ExecFunction is a Query that calls a database function to change exactly one row.
	ExecFunction struct {
		name      string
		arguments []interface{}
	}

	// RawQuery is a Query with no arguments, such as a setup script.
	RawQuery string
)

// NewExecFunction creates a Query to call the named function with the arguments.
func NewExecFunction(name string, args ...interface{}) ExecFunction {
	e := ExecFunction{
		name:      name,
		arguments: args,
	}
	return e
}

// Cmd returns a SQL string to execute the function with positional arguments.
func (e ExecFunction) Cmd() string {
	argIndexes := make([]string, len(e.arguments))
	for i := range argIndexes {
		argIndexes[i] = fmt.Sprintf("$%d", i+1)
	}
	return fmt.Sprintf("SELECT %s(%s)", e.name, strings.Join(argIndexes, ", "))
}

// Args returns the arguments of the function.
func (e ExecFunction) Args() []interface{} {
	return e.arguments
}

// Cmd returns the raw query.
func (q RawQuery) Cmd() string {
	return string(q)
}

// Args returns no arguments.
func (RawQuery) Args() []interface{} {
	return nil
}
