package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/ppinet/core"
)

// keyPrefix namespaces graph artifacts inside the database.
const keyPrefix = "graph/"

// BadgerConfig holds configuration for a BadgerStore.
type BadgerConfig struct {
	// Path is the database directory. Ignored when InMemory is true.
	Path string

	// InMemory keeps everything in RAM. Useful for testing.
	InMemory bool

	// SyncWrites fsyncs every commit.
	SyncWrites bool

	// Logger receives badger's internal messages. Nil disables them.
	Logger logrus.FieldLogger
}

// DefaultBadgerConfig returns durable on-disk defaults.
func DefaultBadgerConfig() BadgerConfig {
	return BadgerConfig{SyncWrites: true}
}

// InMemoryBadgerConfig returns a configuration for tests.
func InMemoryBadgerConfig() BadgerConfig {
	return BadgerConfig{InMemory: true}
}

// badgerLogger adapts logrus to badger's Logger interface.
type badgerLogger struct {
	log logrus.FieldLogger
}

func (l badgerLogger) Errorf(format string, args ...interface{}) { l.log.Errorf(format, args...) }
func (l badgerLogger) Warningf(format string, args ...interface{}) { l.log.Warnf(format, args...) }
func (l badgerLogger) Infof(format string, args ...interface{}) { l.log.Infof(format, args...) }
func (l badgerLogger) Debugf(format string, args ...interface{}) { l.log.Debugf(format, args...) }

// BadgerStore keeps every graph under the key graph/<name>.
type BadgerStore struct {
	db *badger.DB
}

// OpenBadger opens or creates the database described by cfg.
// The caller must Close the store.
func OpenBadger(cfg BadgerConfig) (*BadgerStore, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, errors.New("store: path is required for persistent database")
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
			return nil, fmt.Errorf("store: create database directory %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites).WithNumVersionsToKeep(1)
	if cfg.Logger != nil {
		opts = opts.WithLogger(badgerLogger{log: cfg.Logger})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("store: open badger database: %w", err)
	}

	return &BadgerStore{db: db}, nil
}

func key(name string) []byte { return []byte(keyPrefix + name) }

// Save stores g under name, replacing any previous artifact.
func (s *BadgerStore) Save(ctx context.Context, name string, g *core.Graph) (Meta, error) {
	if err := ValidateName(name); err != nil {
		return Meta{}, err
	}
	if err := ctx.Err(); err != nil {
		return Meta{}, err
	}
	var buf bytes.Buffer
	meta, err := Encode(&buf, g)
	if err != nil {
		return Meta{}, err
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(name), buf.Bytes())
	})
	if err != nil {
		return Meta{}, fmt.Errorf("store: save %q: %w", name, err)
	}

	return meta, nil
}

// Load reads the graph stored under name.
func (s *BadgerStore) Load(ctx context.Context, name string) (*core.Graph, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var raw []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(name))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("store: load %q: %w", name, err)
	}

	return Decode(bytes.NewReader(raw))
}

// List returns the stored names in lexical order.
func (s *BadgerStore) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var names []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(keyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			names = append(names, string(it.Item().Key()[len(keyPrefix):]))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("store: list: %w", err)
	}

	return names, nil
}

// Close releases the database.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}
