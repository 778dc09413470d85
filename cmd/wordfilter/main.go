// Package main saves the short words of a word list as a json object after configuring it from supplied or standard arguments.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	_ "github.com/lib/pq" // register "postgres" database driver from package init() function
)

// main configures and runs the export.
func main() {
	ctx := context.Background()
	logFlags := log.Ldate | log.Ltime | log.LUTC | log.Lshortfile | log.Lmsgprefix
	log := log.New(os.Stdout, "", logFlags)
	m := newMainFlags(os.Args, os.LookupEnv)
	if err := run(ctx, m, log, "postgres"); err != nil {
		log.Fatalf("exporting words: %v", err)
	}
}

// run exports the words from the words file to the output file and any configured databases.
func run(ctx context.Context, m mainFlags, log *log.Logger, sqlDriverName string) error {
	cfg, cleanup, err := m.exporterConfig(ctx, log, sqlDriverName)
	if err != nil {
		return fmt.Errorf("configuring exporter: %w", err)
	}
	defer cleanup()
	e, err := cfg.NewExporter()
	if err != nil {
		return err
	}
	r, err := e.Export(ctx)
	if err != nil {
		return err
	}
	log.Printf("filtered %v words with lengths from %v to %v from %v (blake2b-256: %v)", r.Count, m.minLength, m.maxLength, m.wordsFile, r.Digest)
	log.Printf("Filtered words saved to %v", m.outputFile)
	return nil
}
