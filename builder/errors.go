package builder

import "errors"

var (
	// ErrTooFewVertices indicates a size parameter below the constructor minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates a probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrInvalidRange indicates an empty or negative numeric interval.
	ErrInvalidRange = errors.New("builder: invalid range")

	// ErrNeedRandSource indicates a stochastic constructor ran without an RNG.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrConstructFailed indicates the constructor gave up, e.g. after
	// exhausting attempts to draw a fresh vertex name.
	ErrConstructFailed = errors.New("builder: construction failed")
)
