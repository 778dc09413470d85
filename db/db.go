// Package db stores word lists so other programs can read them from a database.
package db

import "time"

// Config contains common database settings.
type Config struct {
	// QueryPeriod is the amount of time each database operation is allowed to run before it is cancelled.
	QueryPeriod time.Duration
}
