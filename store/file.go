package store

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/katalvlaran/ppinet/core"
)

// FileExt is the extension of artifact files.
const FileExt = ".graph"

// FileStore keeps every graph in <dir>/<name>.graph.
type FileStore struct {
	dir string
}

// NewFileStore returns a FileStore rooted at dir, creating it if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, errors.New("store: directory is required")
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("store: create directory %s: %w", dir, err)
	}

	return &FileStore{dir: dir}, nil
}

// Path returns the file that holds name.
func (s *FileStore) Path(name string) string {
	return filepath.Join(s.dir, name+FileExt)
}

// Save writes g atomically: the artifact goes to a temporary file that is
// renamed into place only after a successful encode.
func (s *FileStore) Save(ctx context.Context, name string, g *core.Graph) (Meta, error) {
	if err := ValidateName(name); err != nil {
		return Meta{}, err
	}
	if err := ctx.Err(); err != nil {
		return Meta{}, err
	}
	tmp, err := os.CreateTemp(s.dir, "."+name+"-*")
	if err != nil {
		return Meta{}, fmt.Errorf("store: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := bufio.NewWriter(tmp)
	meta, err := Encode(w, g)
	if err == nil {
		err = w.Flush()
	}
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return Meta{}, err
	}
	if err = os.Rename(tmp.Name(), s.Path(name)); err != nil {
		return Meta{}, fmt.Errorf("store: %w", err)
	}

	return meta, nil
}

// Load reads the graph called name.
func (s *FileStore) Load(ctx context.Context, name string) (*core.Graph, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.Path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}
	defer f.Close()

	return Decode(bufio.NewReader(f))
}

// List returns the stored names in lexical order.
func (s *FileStore) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}
	var names []string
	for _, e := range entries {
		n := e.Name()
		if e.IsDir() || !strings.HasSuffix(n, FileExt) || strings.HasPrefix(n, ".") {
			continue
		}
		names = append(names, strings.TrimSuffix(n, FileExt))
	}
	sort.Strings(names)

	return names, nil
}

// Close is a no-op for FileStore.
func (s *FileStore) Close() error { return nil }
