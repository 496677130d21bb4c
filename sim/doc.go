// Package sim provides the Monte Carlo permutation-resampling engine for
// hyperparameter-search baselines.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - simulator.go: running-best curves, single-run simulation, the ensemble loop
//   - aggregate.go: per-position median and quantile aggregation across an ensemble
//   - rng.go: deterministic per-run seed derivation from a master SimulationKey
//
// # Architecture
//
// The sim package holds the pure simulation logic; collaborators live in
// sub-packages:
//   - sim/evallog/: evaluation-log and reference-curve loading
//   - sim/chart/: figure construction and rendering
//
// Given a recorded evaluation log of N validation errors, a simulated
// random-search run draws a uniform permutation of the N evaluations and
// tracks the best (lowest) error seen so far at each position. Repeating
// this R times yields an ensemble whose per-position median estimates how
// random search would typically have performed on the same trials.
package sim
