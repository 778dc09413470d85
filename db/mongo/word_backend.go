// Package mongo stores word lists in a mongodb database.
package mongo

import (
	"context"
	"fmt"

	"github.com/jacobpatterson1549/wordfilter/db"
	"github.com/jacobpatterson1549/wordfilter/word"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	databaseName   = "wordfilter-db"
	collectionName = "word_lists"
	nameField      = "name"
	wordsField     = "words"
	countField     = "count"
)

// WordBackend is a backend manager for a word lists collection.
// Each list is a single document whose words are kept in sorted order.
type WordBackend struct {
	Lists *mongo.Collection
	db.Config
}

// NewWordBackend connects to the database and creates a backend manager for the word lists collection.
func NewWordBackend(ctx context.Context, cfg db.Config, databaseURL string) (*WordBackend, error) {
	clientOptions := options.Client()
	clientOptions.ApplyURI(databaseURL)
	ctx, cancelFunc := context.WithTimeout(ctx, cfg.QueryPeriod)
	defer cancelFunc()
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %w", err)
	}
	lists := client.Database(databaseName).Collection(collectionName)
	wb := WordBackend{
		Lists:  lists,
		Config: cfg,
	}
	return &wb, nil
}

// Setup ensures each list name is unique.
func (wb *WordBackend) Setup(ctx context.Context) error {
	indexOptions := options.Index()
	indexOptions.SetUnique(true)
	model := mongo.IndexModel{
		Keys:    d(e(nameField, 1)),
		Options: indexOptions,
	}
	ctx, cancelFunc := context.WithTimeout(ctx, wb.QueryPeriod)
	defer cancelFunc()
	if _, err := wb.Lists.Indexes().CreateOne(ctx, model); err != nil {
		return fmt.Errorf("creating unique list name index: %w", err)
	}
	return nil
}

// Save replaces the document for the list with the name, creating it if needed.
func (wb *WordBackend) Save(ctx context.Context, name string, words word.List) error {
	filter := d(e(nameField, name))
	replacement := listDocument(name, words)
	replaceOptions := options.Replace()
	replaceOptions.SetUpsert(true)
	ctx, cancelFunc := context.WithTimeout(ctx, wb.QueryPeriod)
	defer cancelFunc()
	if _, err := wb.Lists.ReplaceOne(ctx, filter, replacement, replaceOptions); err != nil {
		return fmt.Errorf("replacing word list: %w", err)
	}
	return nil
}

// Close disconnects the client of the collection.
func (wb *WordBackend) Close(ctx context.Context) error {
	ctx, cancelFunc := context.WithTimeout(ctx, wb.QueryPeriod)
	defer cancelFunc()
	return wb.Lists.Database().Client().Disconnect(ctx)
}

// listDocument creates the document for the list.
// The words are an ordered document so the order of the list is stored.
func listDocument(name string, words word.List) bson.D {
	wordsDocument := make(bson.D, len(words))
	for i, w := range words {
		wordsDocument[i] = e(w, word.Value)
	}
	return d(
		e(nameField, name),
		e(wordsField, wordsDocument),
		e(countField, len(words)),
	)
}

// d is a helper function to create bson.D elements.
func d(e ...bson.E) bson.D {
	return bson.D(e)
}

// e is a helper function to create bson.E elements.
func e(key string, value interface{}) bson.E {
	return bson.E{Key: key, Value: value}
}
