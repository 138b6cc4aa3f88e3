// Package expect provides Expected[T, E], a value-or-error container, and
// Unexpected[E], the wrapper used to say "this is the error payload".
//
// An Expected is always in exactly one of two states: it holds a value or it
// holds an error. The zero value holds T's zero value. There is no third
// "empty" state reachable through any operation, including copies and
// assignments whose payload hooks panic midway.
//
// Highlights:
// - Of/Err/FromUnexpected/From: construct an Expected
// - Value/MustValue/Deref/Err/ValueOr/ErrorOr: observe it
// - Map/FlatMap/MapError/AndThen: compose it (plus *Move variants)
// - Clone/Move/CopyFrom/MoveFrom/Swap: copy and assign it explicitly
// - Void[E]: the same container without a success payload
// - Equal/Compare/Hash: comparison and hashing helpers
//
// Payloads that own resources may implement Destroyer and Cloner[T]. The
// container calls Destroy exactly once whenever a live payload is replaced
// or torn down, and Clone whenever it copies one. Payloads that implement
// neither are copied and dropped with plain Go assignment.
package expect
