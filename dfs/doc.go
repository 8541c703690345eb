// Package dfs implements depth-first trail search on core.Graph: finding a
// walk from a start vertex to a goal vertex that never reuses an edge, subject
// to a caller-supplied acceptance predicate over the edges collected so far.
//
// A trail may revisit vertices but never edges. Edges are identified by
// Edge.ID, so parallel edges are distinct and each may be used once.
//
// Key features:
//   - FindTrail(g, start, goal, opts...): existence search, returns the first
//     accepted trail in deterministic order (core.Neighbors sorts by Edge.ID).
//   - Accept predicate: evaluated whenever the goal is reached; the search
//     never extends a trail through the goal.
//   - FilterEdge: exclude edges from traversal altogether.
//   - Budget: MaxSteps bounds the total number of edge expansions;
//     cancellation via context.Context.
//
// Success is propagated as a return value up the recursion; the first
// accepted trail stops every pending branch.
//
// Complexity:
//
//   - Time:   exponential in the worst case (number of simple trails), bounded
//     by MaxSteps when set.
//   - Memory: O(E) for the used-edge set and the recursion stack.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if start or goal is missing.
//   - ErrOptionViolation        for negative budgets.
//   - ErrStepBudgetExceeded     when MaxSteps is exhausted before a verdict.
//   - context.Canceled / DeadlineExceeded if ctx is done.
package dfs
