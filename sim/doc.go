// Package sim provides the ball-drawing frequency simulator behind drawsim.
//
// # Reading Guide
//
//   - ball.go: Ball, a numbered draw target with a counter only its Pool mutates
//   - pool.go: Pool, one drawing over a contiguous range, and its draw loop
//   - composite.go: Drawing and CompositeSimulation, which runs pools together
//
// # Draw loop
//
// A Pool's Run picks a random budget (MinDraws plus a uniform extra in
// [MinExtraDraws, MaxExtraDraws]) and draws balls uniformly, with
// replacement, until the most-drawn ball has been drawn budget times. The
// total number of draws issued is therefore variable. Every budget/prints
// increments of the maximum count, a snapshot of the ranked top balls is
// recorded to the optional trace (see sim/trace).
//
// # Randomness
//
// All randomness goes through the Source interface. NewSource seeds from OS
// entropy; tests inject NewRandSource with a fixed generator or a scripted
// source from sim/internal/testutil.
//
// Nothing in this package is safe for concurrent use. Repetitions reuse
// the same objects through Reset.
package sim
