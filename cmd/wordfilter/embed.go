package main

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"io/fs"
	"path"
)

//go:embed embed/sql
var embeddedSQLFS embed.FS

// unembedFS returns the embed/subdirectory subdirectory of the file system.
func unembedFS(fsys fs.FS, subdirectory string) (fs.FS, error) {
	dir := path.Join("embed", subdirectory)
	return fs.Sub(fsys, dir)
}

// sqlFiles reads the database setup queries from the sql subdirectory of the file system, sorted by file name.
func sqlFiles(fsys fs.FS) ([]io.Reader, error) {
	sqlFS, err := unembedFS(fsys, "sql")
	if err != nil {
		return nil, fmt.Errorf("unembedding sql directory: %w", err)
	}
	entries, err := fs.ReadDir(sqlFS, ".")
	if err != nil {
		return nil, fmt.Errorf("reading sql directory: %w", err)
	}
	files := make([]io.Reader, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		b, err := fs.ReadFile(sqlFS, e.Name())
		if err != nil {
			return nil, fmt.Errorf("reading sql file %v: %w", e.Name(), err)
		}
		files = append(files, bytes.NewReader(b))
	}
	return files, nil
}
