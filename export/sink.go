package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jacobpatterson1549/wordfilter/word"
)

type (
	// Sink is a destination for sorted words.
	Sink interface {
		// Save replaces the destination's words.
		// The data is the json encoding of the words.
		Save(ctx context.Context, words word.List, data []byte) error
	}

	// FileSink writes the json encoding of words to a file.
	FileSink struct {
		// Path is the name of the file to overwrite.
		Path string
	}

	// WordBackend stores named lists of words in a database.
	WordBackend interface {
		// Save replaces the list with the name with the words.
		Save(ctx context.Context, name string, words word.List) error
	}

	// DatabaseSink saves words to a named list in a database.
	DatabaseSink struct {
		// Kind describes the type of database, such as "postgres".
		Kind string
		// Name is the key of the list in the database.
		Name string
		// Backend stores the words.
		Backend WordBackend
	}
)

// outputFileMode is the permission of files created by a FileSink.
const outputFileMode os.FileMode = 0644

// Save writes the data to a temporary file in the directory of the path, then renames it to the path.
// The file at the path is not changed if the data cannot be fully written.
func (s FileSink) Save(ctx context.Context, words word.List, data []byte) error {
	dir, base := filepath.Split(s.Path)
	if len(dir) == 0 {
		dir = "."
	}
	f, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return &FileAccessError{Op: "creating", Path: s.Path, Err: err}
	}
	tempName := f.Name()
	if err := writeFile(f, data); err != nil {
		os.Remove(tempName)
		return &FileAccessError{Op: "writing", Path: s.Path, Err: err}
	}
	if err := os.Rename(tempName, s.Path); err != nil {
		os.Remove(tempName)
		return &FileAccessError{Op: "replacing", Path: s.Path, Err: err}
	}
	return nil
}

// writeFile writes the data to the file, syncs it, and closes it.
func writeFile(f *os.File, data []byte) error {
	_, err := f.Write(data)
	if err == nil {
		err = f.Chmod(outputFileMode)
	}
	if err == nil {
		err = f.Sync()
	}
	if err2 := f.Close(); err == nil {
		err = err2
	}
	return err
}

// String describes the file.
func (s FileSink) String() string {
	return "file " + s.Path
}

// Save saves the words in the backend.
func (s DatabaseSink) Save(ctx context.Context, words word.List, data []byte) error {
	if err := s.Backend.Save(ctx, s.Name, words); err != nil {
		return fmt.Errorf("saving %v word list %q: %w", s.Kind, s.Name, err)
	}
	return nil
}

// String describes the database list.
func (s DatabaseSink) String() string {
	return fmt.Sprintf("%v word list %q", s.Kind, s.Name)
}
