package export

import (
	"context"

	"github.com/jacobpatterson1549/wordfilter/word"
)

// mockSink implements the Sink interface.
type mockSink struct {
	SaveFunc func(ctx context.Context, words word.List, data []byte) error
}

func (m mockSink) Save(ctx context.Context, words word.List, data []byte) error {
	return m.SaveFunc(ctx, words, data)
}

// mockWordBackend implements the WordBackend interface.
type mockWordBackend struct {
	SaveFunc func(ctx context.Context, name string, words word.List) error
}

func (m mockWordBackend) Save(ctx context.Context, name string, words word.List) error {
	return m.SaveFunc(ctx, name, words)
}
