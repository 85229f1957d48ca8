// Package testutil provides testing utilities for nearpoint.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random point sets and computing the
// exact nearest point with a sequential scan.
//
// # Random Point Generation
//
//	rng := testutil.NewRNG(seed)
//	set := rng.UniformSet(1000, 100)   // coordinates uniform in [0, 100)
//	q := rng.UniformPoint(100)
//
// # Exact Search (Ground Truth)
//
//	best := testutil.BruteForce(set, q)
package testutil
