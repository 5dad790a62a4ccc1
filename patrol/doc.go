// Package patrol simulates a guard walking a grid.Grid under a fixed
// turn/step rule, in two modes built on the same transition.
//
// What
//
//   - Step applies the rule once: if the cell ahead is outside the grid the
//     guard exits; if it is blocked the guard turns right in place; otherwise
//     the guard moves forward one cell.
//   - Walk (exhaustive mode) records every distinct cell the guard occupies
//     until it leaves the grid.
//   - Detector (cycle-aware mode) records every (position, heading) State and
//     reports Loops as soon as one repeats, or Exits once the guard leaves.
//
// Why
//
//   - A position alone cannot prove a loop: the guard may cross a cell twice
//     with different headings. A repeated State can, because the rule is
//     deterministic.
//   - There are exactly rows×cols×4 States, so a run that has neither exited
//     nor repeated within that many transitions is impossible. Both modes
//     enforce that bound (WithMaxSteps) and fail with ErrStepLimit instead of
//     spinning.
//
// Hooks
//
//   - WithOnStep(fn): called after every transition with the old and new State.
//     A turn yields the same Pos with the next Heading; an exit is not reported.
//
// Complexity (W×H = grid cells)
//
//   - Step:   O(1)
//   - Walk:   Time O(W×H×4), Memory O(W×H)
//   - Detect: Time O(W×H×4), Memory O(W×H×4), reused across runs of one Detector
//
// Errors
//
//   - ErrGridNil: nil grid.
//   - ErrOptionViolation: negative WithMaxSteps.
//   - ErrStepLimit: transition budget exhausted without a verdict.
//   - Grid errors from the transition are wrapped and returned; they signal
//     a logic error, never a transient condition.
package patrol
