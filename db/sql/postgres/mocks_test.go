package postgres

import (
	"context"
	"io"

	"github.com/jacobpatterson1549/wordfilter/db/sql"
)

// mockDatabase implements the Database interface.
type mockDatabase struct {
	SetupFunc func(ctx context.Context, files []io.Reader) error
	ExecFunc  func(ctx context.Context, queries ...sql.Query) error
}

func (m mockDatabase) Setup(ctx context.Context, files []io.Reader) error {
	return m.SetupFunc(ctx, files)
}

func (m mockDatabase) Exec(ctx context.Context, queries ...sql.Query) error {
	return m.ExecFunc(ctx, queries...)
}
