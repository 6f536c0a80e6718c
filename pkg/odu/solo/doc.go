// Package solo contains single-value, synchronous primitives that operate on
// odu.Outcome[T]. These functions form the core building blocks for
// error-aware flows without channels; a failure short-circuits every
// downstream transform with its error preserved by reference.
//
// Highlights:
// - Succeed/Fail: construct Outcome[T]
// - Validate/AndValidate: apply validation producing failure on invalid input
// - Switch: move from Outcome[In] to Outcome[Out]
// - Map/MapError: transform the success value or the error
// - Recover/RecoverWith: turn failures back into the success track
// - Try: call a function (Out, error) and convert error to failure
// - Tee/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/failure handlers
package solo
