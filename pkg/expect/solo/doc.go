// Package solo contains single-value, synchronous railway primitives that
// operate on Expected[T, error]. Cancellation is not a separate state: a
// failure whose error matches context.Canceled or context.DeadlineExceeded
// is routed to the cancel handlers.
//
// Highlights:
// - Succeed/Fail/Cancel: construct Result[T]
// - Validate/AndValidate/ValidateAll: apply validation producing failure on invalid input
// - Switch: move from Result[In] to Result[Out]
// - Map/DoubleMap: transform successful values (with optional error/cancel maps)
// - Try: call a function (Out, error) and convert error to failure
// - Tee/TeeIf/DoubleTee: side-effect helpers
// - Recover: turn a failure back into a value
// - Finally: reduce to a concrete value via success/error/cancel handlers
package solo
