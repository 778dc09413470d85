// Package postgres stores word lists in a Postgres SQL database.
package postgres

import (
	"context"
	"fmt"
	"io"

	"github.com/jacobpatterson1549/wordfilter/db/sql"
	"github.com/jacobpatterson1549/wordfilter/word"
	"github.com/lib/pq"
)

type (
	// WordBackend manages word lists in a Postgres database.
	WordBackend struct {
		Database
	}

	// Database runs queries on the database.
	Database interface {
		// Setup initializes the database by reading the files.
		Setup(ctx context.Context, files []io.Reader) error
		// Exec makes a change to existing data in a single transaction.
		Exec(ctx context.Context, queries ...sql.Query) error
	}
)

// Save replaces the words of the list with the name.
// The list is cleared and all of the words are added as an array in a single transaction.
func (wb *WordBackend) Save(ctx context.Context, name string, words word.List) error {
	a := []string(words)
	if a == nil {
		a = []string{} // an empty array, not NULL
	}
	queries := []sql.Query{
		sql.NewExecFunction("word_list_clear", name),
		sql.NewExecFunction("word_list_add", name, pq.Array(a)),
	}
	if err := wb.Database.Exec(ctx, queries...); err != nil {
		return fmt.Errorf("replacing word list: %w", err)
	}
	return nil
}
