package lhs

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/exp/rand"
)

//////
// Errors.
//////

var (
	// ErrUnknownType is returned when Config.Type is not one of the
	// supported sampling types.
	ErrUnknownType = errors.New("lhs: unknown sampling type")

	// ErrUnknownCriterion is returned when Config.Criterion is not one of
	// the supported optimization criteria.
	ErrUnknownCriterion = errors.New("lhs: unknown criterion")

	// ErrNonPositiveIterations is returned when an optimizing criterion is
	// configured with Iterations < 1.
	ErrNonPositiveIterations = errors.New("lhs: iterations must be positive")

	// ErrNonPositiveSamples is returned when Generate is asked for fewer
	// than one sample.
	ErrNonPositiveSamples = errors.New("lhs: sample count must be positive")
)

//////
// Types.
//////

// Type selects how samples are placed inside their strata.
type Type string

const (
	// TypeClassic places each sample at a uniformly random offset inside
	// its stratum. This is the default.
	TypeClassic Type = "classic"

	// TypeCentered places each sample exactly at the midpoint of its
	// stratum, so the pre-permutation layout is fully deterministic.
	TypeCentered Type = "centered"
)

// Criterion selects the spatial-quality metric used to rank candidate
// layouts during optimization.
type Criterion string

const (
	// CriterionNone disables optimization: exactly one candidate layout is
	// generated and returned. This is the zero value of Criterion.
	CriterionNone Criterion = ""

	// CriterionCorrelation minimizes the maximum absolute off-diagonal
	// entry of the inter-dimension correlation matrix.
	CriterionCorrelation Criterion = "correlation"

	// CriterionMaximin maximizes the minimum pairwise Euclidean distance
	// between sample points. This is the DefaultConfig choice.
	CriterionMaximin Criterion = "maximin"

	// CriterionRatio minimizes the ratio of the maximum to the minimum
	// pairwise Euclidean distance.
	CriterionRatio Criterion = "ratio"
)

// ProgressUpdate represents the state of the optimization loop after one
// candidate layout has been scored. Updates are emitted through
// Config.ProgressChan, if set.
type ProgressUpdate struct {
	// Iteration is the current iteration number, starting at 1.
	Iteration int

	// TotalIterations is the configured iteration budget.
	TotalIterations int

	// Score is the score of the candidate generated this iteration.
	Score float64

	// BestScore is the running best score after considering this candidate.
	BestScore float64

	// Improved reports whether this candidate strictly improved on the
	// previous best and became the new best.
	Improved bool
}

// Config holds all configuration for Latin hypercube generation.
//
// Fields explanation:
// - Type: how samples are placed inside their strata
// - Criterion: spatial-quality metric used to rank candidate layouts
// - Iterations: number of candidate layouts tried during optimization
// - RandomState: seeded random number generator for reproducible layouts
// - ProgressChan: optional channel for per-iteration progress updates
//
// Usage example:
//
//	config := lhs.DefaultConfig()
//
//	// Reproducible results.
//	config.RandomState = lhs.NewRNG(42)
//
//	// Smaller search budget.
//	config.Iterations = 100
//
// Note:
// - Create separate configs (and RandomStates) for concurrent calls.
type Config struct {
	// Type selects classic or centered stratified sampling.
	// Must be TypeClassic or TypeCentered.
	Type Type

	// Criterion selects the optimization criterion, or CriterionNone for a
	// single un-optimized layout.
	Criterion Criterion

	// Iterations determines how many fresh candidate layouts are generated
	// and scored after the initial one. Ignored when Criterion is
	// CriterionNone. Recommended range: 100-5000.
	Iterations int

	// RandomState is the random number generator driving stratum offsets
	// and column permutations. The same generator seed yields the same
	// final layout. If nil, a time-seeded generator is used.
	//
	// Warning:
	// - Do NOT share a RandomState between concurrent Generate calls.
	RandomState *rand.Rand

	// ProgressChan receives one ProgressUpdate per optimization iteration.
	// Sends are non-blocking; updates are dropped if the channel is full.
	// If nil, no updates are sent.
	ProgressChan chan<- ProgressUpdate
}

// DefaultConfig returns a default configuration: classic sampling, maximin
// criterion, 1000 iterations, time-seeded randomness.
func DefaultConfig() Config {
	return Config{
		Type:        TypeClassic,
		Criterion:   CriterionMaximin,
		Iterations:  1000,
		RandomState: NewRNG(uint64(time.Now().UnixNano())),
	}
}

// validate checks the configuration before any sampling work happens.
func (c Config) validate() error {
	switch c.Type {
	case TypeClassic, TypeCentered:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownType, c.Type)
	}

	switch c.Criterion {
	case CriterionNone, CriterionCorrelation, CriterionMaximin, CriterionRatio:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCriterion, c.Criterion)
	}

	if c.Criterion != CriterionNone && c.Iterations < 1 {
		return fmt.Errorf("%w: got %d", ErrNonPositiveIterations, c.Iterations)
	}

	return nil
}
