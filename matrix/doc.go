// SPDX-License-Identifier: MIT
// Package matrix provides the minimal dense-matrix surface the solver
// consumes: a read/write Matrix interface, a row-major Dense implementation,
// and a Euclidean distance-matrix builder from 2-D points.
//
// Design:
//   - Strict sentinels, no panics on user input; callers match via errors.Is.
//   - Dense stores elements in one flat slice for cache friendliness.
//   - Builders are deterministic: fixed loop orders, no hidden allocations.
//
// Use NewEuclidean when the instance is given as planar coordinates; pass
// any square non-negative Matrix directly when distances are precomputed.
package matrix
