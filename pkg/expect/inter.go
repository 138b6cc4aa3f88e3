package expect

// Outcome is the discriminant shared by Expected and Void.
type Outcome interface {
	// HasValue returns true if the operation succeeded
	HasValue() bool
	// HasError returns true if the operation failed
	HasError() bool
}

// ValueProvider defines containers that can hand out a value or report why not
type ValueProvider[T any] interface {
	Outcome
	// Value returns the value or a *BadAccessError
	Value() (T, error)
	// ValueOr returns the value or def
	ValueOr(def T) T
}

// ErrorProvider defines containers that expose their error payload
type ErrorProvider[E any] interface {
	Outcome
	// Err returns the error, or E's zero value on success
	Err() E
	// ErrorOr returns the error or def
	ErrorOr(def E) E
}

var (
	_ ValueProvider[int]    = Expected[int, string]{}
	_ ErrorProvider[string] = Expected[int, string]{}
	_ ErrorProvider[string] = Void[string]{}
)
