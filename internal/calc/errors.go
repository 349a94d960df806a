package calc

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Caller-input errors surfaced by the scope calculators. All are deterministic:
// retrying the same input cannot succeed. Resolution failures additionally
// surface factors.ErrUnknownEmissionSource.
var (
	// ErrMissingField indicates a required input field was empty.
	ErrMissingField = constError("missing required field")

	// ErrInvalidFieldValue indicates a field was supplied but holds a value
	// outside its enumeration (source category, scope 2 method, GHG category
	// number).
	ErrInvalidFieldValue = constError("invalid field value")

	// ErrInvalidActivityData indicates activity data was not a finite,
	// positive number.
	ErrInvalidActivityData = constError("invalid activity data")

	// ErrActivityDataOutOfRange indicates activity data exceeded the sanity
	// ceiling. This is a business rule to catch unit-entry mistakes (for
	// example liters entered where gallons were expected), not an overflow
	// concern.
	ErrActivityDataOutOfRange = constError("activity data out of range")
)
