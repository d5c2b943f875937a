package lhs

import (
	"time"

	"golang.org/x/exp/rand"

	"github.com/thalesfsp/lhs/space"
)

//////
// Exported functionalities.
//////

// Generate creates a Latin hypercube sample over the given search space:
// nSamples points spread across the dimensions such that, per dimension,
// exactly one point falls in each of nSamples equal-width strata.
//
// Parameters:
// - config: Config controlling sampling type, criterion and iteration budget
// - nSamples: number of points to generate
// - dims: one or more space.Dimension defining the search space
//
// Returns:
// - [][]space.Value: nSamples rows of domain values, one column per dimension
// - error: a configuration error, or nil
//
// Usage example:
//
//	config := lhs.DefaultConfig()
//	config.RandomState = lhs.NewRNG(42)
//
//	layout, err := lhs.Generate(
//	    config,
//	    20,
//	    space.NewReal(0.0001, 0.1, space.PriorLogUniform), // Learning rate
//	    space.NewInteger(1, 32),                           // Worker count
//	    space.NewCategorical("adam", "sgd"),               // Optimizer
//	)
//
// How it works:
//  1. Validates the configuration and the search space up front
//  2. Builds a stratified unit-cube layout and independently permutes each
//     column, decorrelating dimensions while preserving stratification
//  3. With an optimizing criterion, repeats step 2 for Iterations rounds and
//     keeps the candidate with the best score (maximum minimal pairwise
//     distance, minimal distance ratio, or minimal inter-dimension
//     correlation); scoring uses a numeric encoding in which categorical
//     columns become label indices
//  4. Returns the best layout mapped to domain values
//
// Important notes:
// - One static batch per call; no state persists across calls
// - With CriterionNone or nSamples == 1 exactly one candidate is generated
// - Identical RandomState seeds yield identical layouts for every criterion
// - Safe for concurrent calls as long as RandomStates are not shared
func Generate(config Config, nSamples int, dims ...space.Dimension) ([][]space.Value, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}

	if nSamples < 1 {
		return nil, ErrNonPositiveSamples
	}

	sp, err := space.New(dims...)
	if err != nil {
		return nil, err
	}

	// One RNG handle per call, threaded through every draw, so a seeded
	// generator produces a single reproducible sequence.
	rng := config.RandomState
	if rng == nil {
		rng = NewRNG(uint64(time.Now().UnixNano()))
	}

	if config.Criterion == CriterionNone || nSamples == 1 {
		return singleCandidate(config, sp, nSamples, rng)
	}

	return optimize(config, sp, nSamples, rng)
}

//////
// Internal collaborators.
//////

// singleCandidate generates exactly one layout and maps it to domain values.
// No scoring takes place.
func singleCandidate(config Config, sp *space.Space, nSamples int, rng *rand.Rand) ([][]space.Value, error) {
	unit, err := sample(sp.NDims(), nSamples, config.Type, rng)
	if err != nil {
		return nil, err
	}

	return sp.FromUnit(unit)
}

// optimize runs the candidate-generation loop and returns the best-scoring
// domain layout under the configured criterion.
func optimize(config Config, sp *space.Space, nSamples int, rng *rand.Rand) ([][]space.Value, error) {
	score, better, err := criterionScore(config.Criterion)
	if err != nil {
		return nil, err
	}

	// candidate generates one fresh layout and scores it on the numeric
	// encoding. The domain layout is what gets retained and returned; the
	// scoring layout never leaves the loop.
	candidate := func() ([][]space.Value, float64, error) {
		unit, err := sample(sp.NDims(), nSamples, config.Type, rng)
		if err != nil {
			return nil, 0, err
		}

		domain, err := sp.FromUnit(unit)
		if err != nil {
			return nil, 0, err
		}

		scoring, err := sp.Scoring(domain)
		if err != nil {
			return nil, 0, err
		}

		return domain, score(scoring), nil
	}

	// sendProgress emits a non-blocking per-iteration update.
	sendProgress := func(iteration int, candidateScore, bestScore float64, improved bool) {
		if config.ProgressChan == nil {
			return
		}

		update := ProgressUpdate{
			Iteration:       iteration,
			TotalIterations: config.Iterations,
			Score:           candidateScore,
			BestScore:       bestScore,
			Improved:        improved,
		}

		select {
		case config.ProgressChan <- update:
		default:
			// Skip update if channel is full.
		}
	}

	// The unoptimized first candidate seeds the running best.
	best, bestScore, err := candidate()
	if err != nil {
		return nil, err
	}

	for i := 0; i < config.Iterations; i++ {
		domain, s, err := candidate()
		if err != nil {
			return nil, err
		}

		// Strict improvement only; ties keep the earlier candidate.
		improved := better(s, bestScore)
		if improved {
			best, bestScore = domain, s
		}

		sendProgress(i+1, s, bestScore, improved)
	}

	return best, nil
}
