package codec

import "fmt"

// FieldError reports a mandatory field that was missing or unusable on a
// message shape the codec had already matched. It is distinct from the
// "unrecognized message" outcome, which produces no event and no error, so
// callers can alert on bad data instead of silently dropping it.
type FieldError struct {
	// FIX field name, e.g. "OrdRejReason".
	Field string

	Err error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("decode field %s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func fieldError(field string, err error) *FieldError {
	return &FieldError{Field: field, Err: err}
}
