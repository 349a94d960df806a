package factors

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

var (
	// ErrUnknownEmissionSource indicates the registry has no factor for the
	// requested (category, subcategory, scope) at all. This is a hard failure:
	// substituting a default factor would produce a materially wrong emissions
	// number.
	ErrUnknownEmissionSource = constError("unknown emission source")

	// ErrInvalidDataset indicates the embedded factor dataset failed to parse
	// or contained no rows.
	ErrInvalidDataset = constError("invalid emission factor dataset")
)
