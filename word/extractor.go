// Package word extracts short words from word lists.
package word

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
	"unicode"
)

type (
	// Extractor reads words of a limited length from lines of text.
	Extractor struct {
		minLength int
		maxLength int
	}

	// Config contains the properties to create an extractor.
	Config struct {
		// MinLength is the shortest length of words to keep.
		MinLength int
		// MaxLength is the longest length of words to keep.
		MaxLength int
	}

	// Set contains unique words.
	Set map[string]struct{}
)

// NewExtractor creates an extractor that keeps words with lengths between the minimum and maximum lengths, inclusive.
func (cfg Config) NewExtractor() (*Extractor, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("creating word extractor: validation: %w", err)
	}
	e := Extractor{
		minLength: cfg.MinLength,
		maxLength: cfg.MaxLength,
	}
	return &e, nil
}

// validate ensures the configuration has no errors.
func (cfg Config) validate() error {
	switch {
	case cfg.MinLength <= 0:
		return fmt.Errorf("minimum word length must be positive")
	case cfg.MaxLength < cfg.MinLength:
		return fmt.Errorf("maximum word length must not be less than minimum word length (%v)", cfg.MinLength)
	}
	return nil
}

// Extract reads each line of the reader as a candidate word.
// Candidates that are normalized to an allowed length are kept.
func (e Extractor) Extract(r io.Reader) (Set, error) {
	if r == nil {
		return nil, errors.New("reader required to extract words from")
	}
	s := make(Set)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, math.MaxInt) // lines are only limited by memory
	scanner.Split(scanLines)
	for scanner.Scan() {
		w := Normalize(scanner.Text())
		if e.allowed(w) {
			s[w] = struct{}{}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning lines: %w", err)
	}
	return s, nil
}

// allowed determines if the normalized word has an allowed length.
func (e Extractor) allowed(w string) bool {
	n := len(w) // normalized words are ascii
	return e.minLength <= n && n <= e.maxLength
}

// scanLines is a bufio.SplitFunc that returns each line without its line ending.
// Lines end at "\n", "\r\n", or a lone "\r".
// Derived from bufio.ScanLines.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	i := bytes.IndexAny(data, "\r\n")
	switch {
	case i < 0:
		if atEOF {
			return len(data), data, nil
		}
	case data[i] == '\n':
		return i + 1, data[:i], nil
	case i+1 < len(data):
		if data[i+1] == '\n' {
			return i + 2, data[:i], nil
		}
		return i + 1, data[:i], nil
	case atEOF:
		return i + 1, data[:i], nil
	}
	// Request more data.
	return 0, nil, nil
}

// Normalize lowercases the line and removes all characters that are not a-z.
// Punctuation and spaces are removed rather than splitting the line, so "top-secret" becomes "topsecret".
func Normalize(line string) string {
	return strings.Map(func(r rune) rune {
		r = unicode.ToLower(r)
		if 'a' <= r && r <= 'z' {
			return r
		}
		return -1
	}, line)
}

// Sorted creates a list of the words in ascending order.
func (s Set) Sorted() List {
	l := make(List, 0, len(s))
	for w := range s {
		l = append(l, w)
	}
	sort.Strings(l)
	return l
}
