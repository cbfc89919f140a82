package registry

import (
	"errors"
	"fmt"
)

// ValidationError reports a record that cannot be stored because a required
// attribute is missing or malformed, or because its identifier is already
// taken.
type ValidationError struct {
	Kind   string // record kind, e.g. "car"
	Field  string // offending attribute
	Reason string // human-readable explanation
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s %s", e.Kind, e.Field, e.Reason)
}

// NotFoundError reports a lookup for an identifier the registry does not hold.
type NotFoundError struct {
	Kind string
	ID   int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Kind, e.ID)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
