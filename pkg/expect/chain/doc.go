// Package chain provides a fluent wrapper around Expected[T, error]
// for building synchronous Railway-Oriented chains using solo primitives.
//
// Key operations:
// - Start/FromValue/FromTry: begin a chain from a result, a value or a (value, error) pair
// - Then: switch to a new result via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value (T -> U)
// - Ensure/OnError: run side effects without changing the result
// - Or/And: pick among alternative or required chains
// - RepeatUntil/While: loop a step on the success track
// - Finally: collapse the chain into a final value via handlers
package chain
