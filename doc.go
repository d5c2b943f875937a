// Package lhs generates Latin hypercube samples: batches of points spread
// across a mixed continuous/integer/categorical search space such that, per
// dimension, exactly one point falls in each equal-width stratum. It produces
// well-distributed initial points for black-box optimization and
// design-of-experiments workflows.
//
// # Features
//
// The package includes the following key features:
//
//   - Stratified Sampling: classic (random offset per stratum) and centered
//     (stratum midpoint) placement
//   - Layout Optimization: a fixed-budget search that keeps the candidate
//     layout best satisfying a spatial-spread criterion
//   - Multiple Criteria: maximin pairwise distance, max/min distance ratio,
//     and inter-dimension correlation minimization
//   - Mixed Search Spaces: real, integer and categorical dimensions via the
//     space subpackage, including log-uniform priors for real dimensions
//   - Reproducibility: a single seeded generator drives every random draw,
//     so identical seeds yield identical layouts
//   - Progress Monitoring: per-iteration updates on the optimization loop
//     via channels
//
// # Installation
//
// To install the package, use:
//
//	go get github.com/thalesfsp/lhs
//
// # Criteria
//
// The library provides three optimization criteria:
//
// 1. Maximin:
//
//   - Maximizes the minimum pairwise Euclidean distance between points
//
//   - Default choice, works well in most cases
//
//     config := lhs.DefaultConfig() // Uses maximin by default
//
// 2. Ratio:
//
//   - Minimizes max pairwise distance / min pairwise distance
//
//   - Evens out point spacing
//
//     config := lhs.DefaultConfig()
//     config.Criterion = lhs.CriterionRatio
//
// 3. Correlation:
//
//   - Minimizes the largest absolute inter-dimension correlation
//
//   - Good when downstream models are sensitive to collinear inputs
//
//     config := lhs.DefaultConfig()
//     config.Criterion = lhs.CriterionCorrelation
//
// Setting Criterion to CriterionNone skips optimization entirely and returns
// a single stratified layout.
//
// # Configuration
//
// The Config struct allows customization of the generation process:
//
//	type Config struct {
//	    Type         Type                  // Classic or centered placement
//	    Criterion    Criterion             // Layout-quality metric
//	    Iterations   int                   // Optimization budget
//	    RandomState  *rand.Rand            // Seeded randomness source
//	    ProgressChan chan<- ProgressUpdate // For progress monitoring
//	}
//
// Recommended settings:
//   - Iterations: 100-5000 (more = better layouts but longer runtime)
//   - Type: TypeClassic unless exact midpoint placement is required
//
// # Determinism
//
// All randomness flows through Config.RandomState. Use NewRNG with a fixed
// seed for reproducible layouts; the tie-break policy (only strict score
// improvements replace the running best) keeps results deterministic for a
// deterministic random sequence.
//
// # Thread Safety
//
// Generate keeps no state across calls and is safe for concurrent use as
// long as each call gets its own RandomState. The space.Space built from the
// dimensions is immutable.
package lhs
