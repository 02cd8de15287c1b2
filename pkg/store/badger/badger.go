package badger

import (
	"context"
	"errors"
	"fmt"
	"os"

	badgerdb "github.com/dgraph-io/badger/v4"

	"github.com/OFFIS-RIT/carekg/pkg/logger"
	"github.com/OFFIS-RIT/carekg/pkg/store"
)

const keyPrefix = "graph/"

// Config holds configuration for the embedded database.
type Config struct {
	// Path is the database directory. Ignored when InMemory is true.
	Path string
	// InMemory keeps all data in memory. Useful for testing.
	InMemory   bool
	SyncWrites bool
}

// BadgerGraphStorage stores encoded graphs in an embedded BadgerDB.
type BadgerGraphStorage struct {
	db *badgerdb.DB
}

// Open opens or creates the database described by cfg. The caller must call
// Close when done.
func Open(cfg Config) (*BadgerGraphStorage, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, errors.New("path is required for persistent database")
	}

	var opts badgerdb.Options
	if cfg.InMemory {
		opts = badgerdb.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
			return nil, fmt.Errorf("create database directory %s: %w", cfg.Path, err)
		}
		opts = badgerdb.DefaultOptions(cfg.Path)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites).
		WithNumVersionsToKeep(1).
		WithLogger(badgerLogger{})

	db, err := badgerdb.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger database: %w", err)
	}
	return &BadgerGraphStorage{db: db}, nil
}

func (s *BadgerGraphStorage) Close() error {
	return s.db.Close()
}

func (s *BadgerGraphStorage) SaveGraph(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := s.db.Update(func(txn *badgerdb.Txn) error {
		return txn.Set([]byte(keyPrefix+key), data)
	})
	if err != nil {
		return fmt.Errorf("write graph %q: %w", key, err)
	}
	return nil
}

func (s *BadgerGraphStorage) LoadGraph(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var data []byte
	err := s.db.View(func(txn *badgerdb.Txn) error {
		item, err := txn.Get([]byte(keyPrefix + key))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badgerdb.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: %s", store.ErrGraphNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("read graph %q: %w", key, err)
	}
	return data, nil
}

// badgerLogger forwards the database's internal logging to pkg/logger.
// Info and debug chatter is reported at debug level.
type badgerLogger struct{}

func (badgerLogger) Errorf(format string, args ...any) {
	logger.Error("[Badger] " + fmt.Sprintf(format, args...))
}

func (badgerLogger) Warningf(format string, args ...any) {
	logger.Warn("[Badger] " + fmt.Sprintf(format, args...))
}

func (badgerLogger) Infof(format string, args ...any) {
	logger.Debug("[Badger] " + fmt.Sprintf(format, args...))
}

func (badgerLogger) Debugf(format string, args ...any) {
	logger.Debug("[Badger] " + fmt.Sprintf(format, args...))
}
