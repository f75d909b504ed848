// Package loss implements the loss-function layer of the molnet training
// pipeline: per-element training losses for regression, classification,
// multiclass and spectral targets, plus the dataset-type dispatch that
// resolves a configured (dataset type, loss name) pair to a Loss.
//
// Every loss is unreduced: Forward returns a tensor whose aggregation
// (weighted sum or mean) is the training loop's responsibility. Losses
// are pure and stateless; calling one twice with the same inputs yields
// the same output, and no input tensor is ever mutated.
//
// Numerical policy: there is no epsilon stabilization. A zero row sum,
// an all-masked spectrum or a degenerate confusion matrix propagates
// NaN/Inf through IEEE-754 arithmetic instead of raising an error.
package loss
