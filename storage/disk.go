package storage

import (
	"fmt"
	"log/slog"

	"message-board/internal"

	"github.com/dgraph-io/badger/v4"
)

// Open opens the Badger database described by the configuration.
// Badger's own logger only reports errors; board events are logged through log.
func Open(config internal.Config, log *slog.Logger) (*badger.DB, error) {
	options := badger.DefaultOptions(config.BadgerFilepath)
	if config.InMemory {
		options = badger.DefaultOptions("").WithInMemory(true)
	}
	db, err := badger.Open(options.WithLoggingLevel(badger.ERROR))
	if err != nil {
		return nil, fmt.Errorf("database opening failed: %w", err)
	}
	log.Debug("BadgerDB opened", "path", config.BadgerFilepath, "in_memory", config.InMemory)
	return db, nil
}
