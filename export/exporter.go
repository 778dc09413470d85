// Package export writes filtered words from a word list to destinations.
package export

import (
	"context"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/jacobpatterson1549/wordfilter/log"
	"github.com/jacobpatterson1549/wordfilter/word"
	"golang.org/x/crypto/blake2b"
)

type (
	// Exporter reads words from a file and saves the filtered, sorted words to sinks.
	Exporter struct {
		log       log.Logger
		wordsFile string
		extractor *word.Extractor
		sinks     []Sink
	}

	// Config contains the properties to create an exporter.
	Config struct {
		// Log is used to report each saved destination.
		Log log.Logger
		// WordsFile is the name of the file with a word on each line.
		WordsFile string
		// Extractor filters the lines of the words file.
		Extractor *word.Extractor
		// Sinks are the destinations of the words, saved in order.
		Sinks []Sink
	}

	// Result describes the exported words.
	Result struct {
		// Count is the number of words exported.
		Count int
		// Digest is the hex encoded BLAKE2b-256 hash of the json encoding of the words.
		Digest string
	}
)

// NewExporter creates an exporter from the configuration.
func (cfg Config) NewExporter() (*Exporter, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("creating exporter: validation: %w", err)
	}
	sinks := make([]Sink, len(cfg.Sinks))
	copy(sinks, cfg.Sinks)
	e := Exporter{
		log:       cfg.Log,
		wordsFile: cfg.WordsFile,
		extractor: cfg.Extractor,
		sinks:     sinks,
	}
	return &e, nil
}

// validate ensures the configuration has no errors.
func (cfg Config) validate() error {
	switch {
	case cfg.Log == nil:
		return fmt.Errorf("log required")
	case len(cfg.WordsFile) == 0:
		return fmt.Errorf("words file required")
	case cfg.Extractor == nil:
		return fmt.Errorf("word extractor required")
	case len(cfg.Sinks) == 0:
		return fmt.Errorf("at least one sink required")
	}
	for i, s := range cfg.Sinks {
		if s == nil {
			return fmt.Errorf("sink %v is nil", i)
		}
	}
	return nil
}

// Export reads the words file and saves its words to each sink.
// Nothing is saved if the words file cannot be read or the words cannot be encoded.
func (e Exporter) Export(ctx context.Context) (*Result, error) {
	words, err := e.readWords()
	if err != nil {
		return nil, err
	}
	data, err := words.MarshalJSON() // not json.Marshal, which would compact the spacing
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	for _, s := range e.sinks {
		if err := s.Save(ctx, words, data); err != nil {
			return nil, fmt.Errorf("saving words to %v: %w", s, err)
		}
		e.log.Printf("saved %v words to %v", len(words), s)
	}
	sum := blake2b.Sum256(data)
	r := Result{
		Count:  len(words),
		Digest: hex.EncodeToString(sum[:]),
	}
	return &r, nil
}

// readWords extracts the sorted words from the words file.
func (e Exporter) readWords() (word.List, error) {
	f, err := os.Open(e.wordsFile)
	if err != nil {
		return nil, &FileAccessError{Op: "opening", Path: e.wordsFile, Err: err}
	}
	defer f.Close()
	s, err := e.extractor.Extract(f)
	if err != nil {
		return nil, &FileAccessError{Op: "reading", Path: e.wordsFile, Err: err}
	}
	return s.Sorted(), nil
}
