package store_test

import (
	"bytes"
	"context"
	"encoding/gob"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ppinet/core"
	"github.com/katalvlaran/ppinet/store"
)

func sample(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	_, err := g.AddEdge("JAK2", "STAT3", core.Attrs{"combined_score": 0.999, "source": "string"})
	require.NoError(t, err)
	_, err = g.AddEdge("STAT3", "IL6", core.Attrs{"combined_score": 0.95})
	require.NoError(t, err)
	_, err = g.AddEdge("IL6", "IL6R", nil)
	require.NoError(t, err)
	require.NoError(t, g.AddVertex("TP53"))

	return g
}

func assertSameGraph(t *testing.T, want, got *core.Graph) {
	t.Helper()
	assert.Equal(t, want.Vertices(), got.Vertices())
	assert.Equal(t, want.Sequence(), got.Sequence())
	we, ge := want.Edges(), got.Edges()
	require.Len(t, ge, len(we))
	for i := range we {
		assert.Equal(t, we[i].ID, ge[i].ID)
		assert.Equal(t, we[i].From, ge[i].From)
		assert.Equal(t, we[i].To, ge[i].To)
		assert.Equal(t, we[i].Attrs, ge[i].Attrs)
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	g := sample(t)
	var buf bytes.Buffer
	meta, err := store.Encode(&buf, g)
	require.NoError(t, err)
	assert.NotEmpty(t, meta.ID)
	assert.Equal(t, 5, meta.Vertices)
	assert.Equal(t, 3, meta.Edges)

	got, err := store.Decode(&buf)
	require.NoError(t, err)
	assertSameGraph(t, g, got)

	// restored counter keeps new IDs fresh
	id, err := got.AddEdge("TP53", "JAK2", nil)
	require.NoError(t, err)
	assert.Equal(t, "e4", id)
}

func TestEncodeDecode_Empty(t *testing.T) {
	var buf bytes.Buffer
	_, err := store.Encode(&buf, core.NewGraph())
	require.NoError(t, err)
	got, err := store.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 0, got.VertexCount())

	_, err = store.Encode(&buf, nil)
	assert.ErrorIs(t, err, store.ErrGraphNil)
}

func TestDecode_BadFormat(t *testing.T) {
	_, err := store.Decode(bytes.NewReader([]byte("not a graph")))
	assert.ErrorIs(t, err, store.ErrFormat)

	for _, a := range []store.Artifact{
		{Magic: "other", Version: store.Version},
		{Magic: store.Magic, Version: 99},
	} {
		var buf bytes.Buffer
		require.NoError(t, gob.NewEncoder(&buf).Encode(a))
		_, err = store.Decode(&buf)
		assert.ErrorIs(t, err, store.ErrFormat)
	}
}

// exerciseStore runs the shared Store contract against s.
func exerciseStore(t *testing.T, s store.Store) {
	t.Helper()
	ctx := context.Background()
	g := sample(t)

	names, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)

	_, err = s.Load(ctx, "master")
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.Save(ctx, "master", g)
	require.NoError(t, err)
	sub := core.InducedOn(g, []string{"JAK2", "STAT3"})
	_, err = s.Save(ctx, "JAK2_STAT3", sub)
	require.NoError(t, err)

	got, err := s.Load(ctx, "master")
	require.NoError(t, err)
	assertSameGraph(t, g, got)

	names, err = s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"JAK2_STAT3", "master"}, names)

	// overwrite
	_, err = s.Save(ctx, "master", sub)
	require.NoError(t, err)
	got, err = s.Load(ctx, "master")
	require.NoError(t, err)
	assert.Equal(t, 2, got.VertexCount())

	_, err = s.Save(ctx, "../escape", g)
	assert.ErrorIs(t, err, store.ErrInvalidName)
}

func TestFileStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "graphs")
	s, err := store.NewFileStore(dir)
	require.NoError(t, err)
	defer s.Close()

	exerciseStore(t, s)

	_, err = os.Stat(s.Path("master"))
	assert.NoError(t, err)

	// stray files are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o600))
	names, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"JAK2_STAT3", "master"}, names)
}

func TestFileStore_Corrupt(t *testing.T) {
	s, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(s.Path("broken"), []byte("garbage"), 0o600))
	_, err = s.Load(context.Background(), "broken")
	assert.ErrorIs(t, err, store.ErrFormat)
}

func TestBadgerStore(t *testing.T) {
	s, err := store.OpenBadger(store.InMemoryBadgerConfig())
	require.NoError(t, err)
	defer s.Close()

	exerciseStore(t, s)
}

func TestOpen(t *testing.T) {
	s, err := store.Open(store.KindFile, t.TempDir())
	require.NoError(t, err)
	assert.IsType(t, &store.FileStore{}, s)
	require.NoError(t, s.Close())

	b, err := store.Open(store.KindBadger, t.TempDir())
	require.NoError(t, err)
	assert.IsType(t, &store.BadgerStore{}, b)
	require.NoError(t, b.Close())

	_, err = store.Open("s3", "bucket")
	assert.ErrorIs(t, err, store.ErrUnknownKind)
}

func TestSave_Cancelled(t *testing.T) {
	s, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Save(ctx, "master", sample(t))
	assert.ErrorIs(t, err, context.Canceled)
}
