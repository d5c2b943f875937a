// Package space models mixed continuous/integer/categorical search spaces
// and the transforms between the normalized unit cube and domain values.
//
// A Space is built from one or more Dimension descriptors:
//
//   - Real: a bounded continuous dimension, optionally with a log-uniform
//     prior for scale-like parameters (learning rates, regularization
//     strengths, ...)
//   - Integer: a bounded integer dimension
//   - Categorical: an explicit set of category values
//
// The package provides two one-way transforms:
//
//   - FromUnit maps points in [0,1)^d to domain values (floats, ints, or
//     category values depending on the dimension type).
//   - Scoring re-encodes domain values as a purely numeric matrix, with
//     categorical columns replaced by their label index. This encoding is
//     meant for distance and correlation computations only; it is never a
//     user-facing representation.
//
// A Space is immutable after construction, so both transforms are safe to
// use from concurrent callers.
//
// Usage example:
//
//	sp, err := space.New(
//	    space.NewReal(0.0001, 0.1, space.PriorLogUniform), // Learning rate
//	    space.NewInteger(1, 32),                           // Worker count
//	    space.NewCategorical("adam", "sgd", "rmsprop"),    // Optimizer
//	)
//	if err != nil {
//	    // Invalid bounds, empty category set, etc.
//	}
package space
