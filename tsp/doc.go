// Package tsp solves the Traveling Salesman Problem exactly with the
// Bellman–Held–Karp dynamic program.
//
// Three interchangeable evaluators compute the same recurrence
//
//	f(i, V) = min over j ∉ V of d(i,j) + f(j, V ∪ {j}),  f(i, FULL) = d(i,0)
//
// over states (current city, visited-set bitmask):
//
//   - SolveNaive     — direct recursion, no caching. O((n−1)!) time; the
//     correctness oracle for small instances (n ≲ 10).
//   - SolveMemoized  — top-down recursion over a write-once cache plus a
//     per-state choice table. O(n²·2ⁿ) time, O(n·2ⁿ) memory.
//   - SolveTabulated — bottom-up fill of the same cache in descending mask
//     order. Same bounds, better locality, no recursion depth.
//
// All three return the optimal cost and one optimal tour of length n+1
// starting and ending at city 0; ties are broken toward the lowest city
// index, so results are deterministic across evaluators.
//
// Inputs are square non-negative matrices with a zero diagonal; a value of
// +Inf ("no edge") is rejected — the solvers require a complete graph.
// The state space is n·2ⁿ, so bound n before calling (n ≈ 20 is the
// practical ceiling; n > 30 is rejected outright).
//
// Use Solve with Options to pick an evaluator, or call one directly.
package tsp
