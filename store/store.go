// Package store persists graphs as versioned binary artifacts.
//
// Encode and Decode round-trip vertices, edges, edge IDs, attributes and
// the edge sequence counter exactly. FileStore keeps one artifact per file
// in a directory; BadgerStore keeps them in an embedded badger database.
// Both implement Store.
package store

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/katalvlaran/ppinet/core"
)

var (
	// ErrNotFound is returned by Load for an unknown name.
	ErrNotFound = errors.New("store: graph not found")

	// ErrInvalidName is returned for names outside [A-Za-z0-9._-].
	ErrInvalidName = errors.New("store: invalid graph name")

	// ErrGraphNil is returned when Save receives a nil graph.
	ErrGraphNil = errors.New("store: graph is nil")

	// ErrUnknownKind is returned by Open for an unsupported backend.
	ErrUnknownKind = errors.New("store: unknown store kind")
)

// Store saves and loads named graphs.
type Store interface {
	Save(ctx context.Context, name string, g *core.Graph) (Meta, error)
	Load(ctx context.Context, name string) (*core.Graph, error)
	List(ctx context.Context) ([]string, error)
	Close() error
}

// Backend kinds accepted by Open.
const (
	KindFile   = "file"
	KindBadger = "badger"
)

var validName = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// ValidateName checks that name is usable as a file name and a key suffix.
func ValidateName(name string) error {
	if !validName.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	return nil
}

// Open returns the backend of the given kind rooted at path.
func Open(kind, path string) (Store, error) {
	switch kind {
	case KindFile, "":
		return NewFileStore(path)
	case KindBadger:
		cfg := DefaultBadgerConfig()
		cfg.Path = path
		return OpenBadger(cfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}
