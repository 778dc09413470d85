// Package firestore stores word lists in a google cloud firestore database.
package firestore

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/jacobpatterson1549/wordfilter/db"
	"github.com/jacobpatterson1549/wordfilter/word"
)

const (
	wordsField = "words"
	countField = "count"
	// maxListBytes is kept below the 1 MiB document size limit to leave room for the document name and other fields.
	maxListBytes = 1000 * 1000
	// maxListWords is kept below the limit of 40,000 index entries for a document.
	maxListWords = 20000
)

// ErrListTooLarge is returned when a word list cannot fit in a single document.
var ErrListTooLarge = errors.New("word list too large for a firestore document")

// WordBackend is a backend manager for word lists.
type WordBackend struct {
	client *firestore.Client
	db.Config
}

// NewWordBackend creates a backend manager for word lists in the project.
func NewWordBackend(ctx context.Context, cfg db.Config, projectID string) (*WordBackend, error) {
	client, err := firestore.NewClient(ctx, projectID) // do not timeout context - the client is used by the backend
	if err != nil {
		return nil, fmt.Errorf("creating firestore client: %w", err)
	}
	wb := WordBackend{
		client: client,
		Config: cfg,
	}
	return &wb, nil
}

func (wb *WordBackend) listsCollection() *firestore.CollectionRef {
	return wb.client.Collection("services").Doc("wordfilter").Collection("word_lists")
}

// Save overwrites the document for the list with the name.
// Lists that are too large to be stored are rejected before the database is contacted.
func (wb *WordBackend) Save(ctx context.Context, name string, words word.List) error {
	data, err := listData(words)
	if err != nil {
		return err
	}
	ctx, cancelFunc := context.WithTimeout(ctx, wb.QueryPeriod)
	defer cancelFunc()
	docRef := wb.listsCollection().Doc(name)
	if _, err := docRef.Set(ctx, data); err != nil {
		return fmt.Errorf("setting word list: %w", err)
	}
	return nil
}

// Close closes the client.
func (wb *WordBackend) Close() error {
	return wb.client.Close()
}

// listData creates the fields of a list document.
// The words are stored as a single array field in list order.
func listData(words word.List) (map[string]interface{}, error) {
	if len(words) > maxListWords {
		return nil, fmt.Errorf("%w: %v words is more than %v", ErrListTooLarge, len(words), maxListWords)
	}
	n := 0
	for _, w := range words {
		n += len(w) + 1 // string values are stored as their length plus one
	}
	if n > maxListBytes {
		return nil, fmt.Errorf("%w: %v bytes of words is more than %v", ErrListTooLarge, n, maxListBytes)
	}
	a := []string(words)
	if a == nil {
		a = []string{}
	}
	data := map[string]interface{}{
		wordsField: a,
		countField: len(words),
	}
	return data, nil
}
