package builder_test

import (
	"errors"
	"math/rand"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ppinet/builder"
	"github.com/katalvlaran/ppinet/core"
)

func TestDeterministicConstructors(t *testing.T) {
	cases := []struct {
		name     string
		ctor     builder.Constructor
		vertices int
		edges    int
	}{
		{"Path5", builder.Path(5), 5, 4},
		{"Star4", builder.Star("HUB", 4), 5, 4},
		{"Complete4", builder.Complete(4), 4, 6},
		{"Complete1", builder.Complete(1), 1, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.vertices, g.VertexCount())
			assert.Equal(t, tc.edges, g.EdgeCount())
		})
	}
}

func TestIDSchemes(t *testing.T) {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithIDScheme(builder.PrefixIDFn("P"))},
		builder.Path(3),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"P1", "P2", "P3"}, g.Vertices())

	assert.Equal(t, "A", builder.ExcelColumnIDFn(0))
	assert.Equal(t, "Z", builder.ExcelColumnIDFn(25))
	assert.Equal(t, "AA", builder.ExcelColumnIDFn(26))
	assert.Equal(t, "7", builder.DefaultIDFn(7))

	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
}

func TestRandomStar(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(7)}
	g, err := builder.BuildGraph(opts, builder.RandomStar("PTX4", 20, 1, 5))
	require.NoError(t, err)

	assert.Equal(t, 21, g.VertexCount())
	assert.Equal(t, 20, g.EdgeCount())
	deg, err := g.Degree("PTX4")
	require.NoError(t, err)
	assert.Equal(t, 20, deg)

	name := regexp.MustCompile(`^[a-z]{5}$`)
	for _, e := range g.Edges() {
		leaf := e.Other("PTX4")
		assert.Regexp(t, name, leaf)
		r, ok := e.Attrs["radius"].(float64)
		require.True(t, ok)
		assert.GreaterOrEqual(t, r, 1.0)
		assert.Less(t, r, 5.0)
		assert.Contains(t, e.Attrs, "angle")
	}

	again, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(7)}, builder.RandomStar("PTX4", 20, 1, 5))
	require.NoError(t, err)
	assert.Equal(t, g.Vertices(), again.Vertices(), "same seed must give same graph")
}

func TestRandomSparse(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithRand(rng)}, builder.RandomSparse(10, 0))
	require.NoError(t, err)
	assert.Equal(t, 10, g.VertexCount())
	assert.Zero(t, g.EdgeCount())

	full, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(6, 1))
	require.NoError(t, err)
	assert.Equal(t, 15, full.EdgeCount())
}

func TestScores(t *testing.T) {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(3), builder.WithScores(0.4, 0.9)},
		builder.Star("HUB", 3),
	)
	require.NoError(t, err)
	for _, e := range g.Edges() {
		s, ok := e.Attrs["combined_score"].(float64)
		require.True(t, ok)
		assert.True(t, s >= 0.4 && s < 0.9, "score %v out of range", s)
	}

	_, err = builder.BuildGraph([]builder.BuilderOption{builder.WithScores(0, 1)}, builder.Path(2))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestConstructorErrors(t *testing.T) {
	seeded := []builder.BuilderOption{builder.WithSeed(1)}
	cases := []struct {
		name string
		opts []builder.BuilderOption
		ctor builder.Constructor
		want error
	}{
		{"PathTooShort", nil, builder.Path(1), builder.ErrTooFewVertices},
		{"StarEmpty", nil, builder.Star("X", 0), builder.ErrTooFewVertices},
		{"CompleteEmpty", nil, builder.Complete(0), builder.ErrTooFewVertices},
		{"RandomStarNoRNG", nil, builder.RandomStar("X", 3, 1, 2), builder.ErrNeedRandSource},
		{"RandomStarRange", seeded, builder.RandomStar("X", 3, 2, 2), builder.ErrInvalidRange},
		{"RandomSparseP", seeded, builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"RandomSparseNoRNG", nil, builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"StarLoop", nil, builder.Star("0", 1), core.ErrLoopNotAllowed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildGraph(tc.opts, tc.ctor)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}
