// Package obstruction finds every cell where one extra obstruction traps
// the guard of package patrol in a permanent loop.
//
// What
//
//   - Candidates are the in-bounds cells that are neither the start cell nor
//     permanently blocked, taken in row-major order.
//   - For each candidate the grid hosts a temporary overlay obstruction and a
//     patrol.Detector decides whether the guard Exits or Loops.
//   - Count returns how many candidates loop; Positions returns them.
//
// Execution
//
//   - Serial (default): the caller's Grid is mutated one overlay at a time
//     through grid.WithOverlay, so it is back to its original state when the
//     search returns, even on error.
//   - Parallel (WithWorkers): each worker forks the Grid and owns its own
//     Detector; the caller's Grid is never touched.
//   - WithPathPruning restricts candidates to the cells of the unobstructed
//     walk. An obstruction off that path cannot change it, so the answer is
//     the same; it is opt-in and the full scan is the default.
//
// Complexity (N = W×H cells)
//
//   - Time:   O(N · N·4) worst case, N candidates each simulated up to N·4 steps.
//   - Memory: O(N·4) per worker.
//
// Errors
//
//   - ErrGridNil: nil grid.
//   - ErrOptionViolation: negative worker count or step cap.
//   - context errors when WithContext is cancelled; patrol errors are wrapped.
package obstruction
