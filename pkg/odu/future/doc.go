// Package future lifts the solo primitives into pending outcomes: channels
// that deliver exactly one odu.Outcome and close. The transform runs on its
// own goroutine so it may block; context death resolves the pending with the
// context error as an ordinary failure.
//
// Aggregates over collections of pendings:
// - WaitAll: positional list of every outcome
// - WaitAllOrFirstError: all values, or the first failure by completion order
// - FirstSuccess: first success by completion order, joined errors otherwise
package future
