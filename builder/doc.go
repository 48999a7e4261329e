// Package builder provides deterministic constructors for the fixed
// topologies exercised by the treewidth engine's own test suite: paths,
// cycles, complete graphs, and the Petersen graph. It centralizes ID
// schemes, edge-weight distributions, and configuration so fixtures stay
// consistent and testable across the builder and cleanandglue test suites.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – builderConfig:  holds RNG, ID-scheme, and weight function.
//   - Edge-weight distributions (WeightFn implementations):
//     – DefaultWeightFn:   constant weight DefaultEdgeWeight.
//     – ConstantWeightFn:  fixed user-provided value.
//     – UniformWeightFn:   uniform ∼U[min,max].
//     – NormalWeightFn:    Gaussian ∼N(mean,stddev), clipped.
//     – ExponentialWeightFn: exponential ∼Exp(rate).
//
// Guarantees:
//
//   - Vertices are added idempotently. Edges are not: re-running a builder on a g
//     that already holds its edges adds each edge again, which core rejects with
//     ErrMultiEdgeNotAllowed unless multi-edges are enabled (then edges are duplicated).
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Structured runtime errors (sentinel + %w) for invalid build parameters.
//   - Documented algorithmic complexity per constructor.
package builder
