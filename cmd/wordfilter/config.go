package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jacobpatterson1549/wordfilter/db"
	"github.com/jacobpatterson1549/wordfilter/db/firestore"
	"github.com/jacobpatterson1549/wordfilter/db/mongo"
	"github.com/jacobpatterson1549/wordfilter/db/sql"
	"github.com/jacobpatterson1549/wordfilter/db/sql/postgres"
	"github.com/jacobpatterson1549/wordfilter/export"
	"github.com/jacobpatterson1549/wordfilter/word"
)

// exporterConfig creates the configuration to export words.
// The returned function closes any database connections that were opened.
// The output file is saved before the words are saved to any databases.
func (m mainFlags) exporterConfig(ctx context.Context, log *log.Logger, sqlDriverName string) (*export.Config, func(), error) {
	extractorCfg := word.Config{
		MinLength: m.minLength,
		MaxLength: m.maxLength,
	}
	extractor, err := extractorCfg.NewExtractor()
	if err != nil {
		return nil, nil, err
	}
	if m.querySec <= 0 && m.usesDatabase() {
		return nil, nil, fmt.Errorf("database query seconds must be positive")
	}
	var closers []func() error
	cleanup := func() {
		for _, c := range closers {
			if err := c(); err != nil {
				log.Printf("closing database: %v", err)
			}
		}
	}
	sinks := []export.Sink{
		export.FileSink{Path: m.outputFile},
	}
	dbCfg := db.Config{
		QueryPeriod: time.Duration(m.querySec) * time.Second,
	}
	if len(m.databaseURL) != 0 {
		sqlDB, err := sqlDatabase(ctx, m, sqlDriverName)
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("setting up SQL database: %w", err)
		}
		closers = append(closers, sqlDB.Close)
		wb := postgres.WordBackend{
			Database: sqlDB,
		}
		sinks = append(sinks, m.databaseSink("postgres", &wb))
	}
	if len(m.mongoURI) != 0 {
		wb, err := mongo.NewWordBackend(ctx, dbCfg, m.mongoURI)
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("creating mongodb word backend: %w", err)
		}
		closers = append(closers, func() error {
			return wb.Close(ctx)
		})
		if err := wb.Setup(ctx); err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("setting up mongodb word backend: %w", err)
		}
		sinks = append(sinks, m.databaseSink("mongodb", wb))
	}
	if len(m.firestoreProjectID) != 0 {
		wb, err := firestore.NewWordBackend(ctx, dbCfg, m.firestoreProjectID)
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("creating firestore word backend: %w", err)
		}
		closers = append(closers, wb.Close)
		sinks = append(sinks, m.databaseSink("firestore", wb))
	}
	cfg := export.Config{
		Log:       log,
		WordsFile: m.wordsFile,
		Extractor: extractor,
		Sinks:     sinks,
	}
	return &cfg, cleanup, nil
}

// sqlDatabase creates a SQL database to save word lists in, creating the tables and functions it uses.
func sqlDatabase(ctx context.Context, m mainFlags, driverName string) (*sql.Database, error) {
	cfg := sql.DatabaseConfig{
		DriverName:  driverName,
		DatabaseURL: m.databaseURL,
		QueryPeriod: time.Duration(m.querySec) * time.Second,
	}
	sqlDB, err := cfg.NewDatabase()
	if err != nil {
		return nil, err
	}
	files, err := sqlFiles(embeddedSQLFS)
	if err != nil {
		sqlDB.Close()
		return nil, err
	}
	if err := sqlDB.Setup(ctx, files); err != nil {
		sqlDB.Close()
		return nil, err
	}
	return sqlDB, nil
}

// databaseSink creates a sink for the word list in the backend.
func (m mainFlags) databaseSink(kind string, wb export.WordBackend) export.DatabaseSink {
	return export.DatabaseSink{
		Kind:    kind,
		Name:    m.listName,
		Backend: wb,
	}
}

// usesDatabase determines if the words are saved to any databases.
func (m mainFlags) usesDatabase() bool {
	return len(m.databaseURL) != 0 || len(m.mongoURI) != 0 || len(m.firestoreProjectID) != 0
}
