package assignment

import "errors"

// ValidationError marks a structurally invalid assignment request. It is
// raised before any gateway call, so a validation failure never touches
// persisted state.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// IsValidation reports whether err is a request validation failure, as opposed
// to a gateway failure. Callers use the distinction to pick user-facing copy.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
