// Package heldkarp is an exact, in-memory Traveling Salesman Problem
// solver built around the Bellman–Held–Karp dynamic program.
//
// 🚀 What is heldkarp?
//
//	A small, deterministic library that solves TSP instances exactly:
//		• Naive recursion    — the textbook recurrence, used as a correctness oracle
//		• Top-down memoized  — cache + choice table, O(n²·2ⁿ) time, O(n·2ⁿ) memory
//		• Bottom-up tabulated — iterative fill in descending mask order, same bounds
//
// All three evaluate the same recurrence
//
//	f(i, V) = min over j ∉ V of d(i,j) + f(j, V ∪ {j}),  f(i, FULL) = d(i,0)
//
// and all three return the optimal cost together with one optimal tour,
// a slice of n+1 city indices starting and ending at city 0.
//
// ✨ Why choose heldkarp?
//
//   - Exact – these are not heuristics; the returned cost is the optimum
//   - Deterministic – ties broken toward the lowest city index, stable costs
//   - Pure Go – no cgo; algorithm kernels depend only on the standard library
//
// Everything is organized under two subpackages plus a demo binary:
//
//	matrix/ — Matrix interface, dense row-major storage, Euclidean builder
//	tsp/    — the three Held–Karp evaluators, validation, tour utilities
//	cmd/    — `heldkarp` CLI: load cities or a matrix, solve, print the tour
//
// The state space is 2ⁿ subsets × n cities, so instances beyond n ≈ 20 are
// impractical on ordinary hardware; bounding n is the caller's job.
//
//	go get github.com/katalvlaran/heldkarp/tsp
package heldkarp
