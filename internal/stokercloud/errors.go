package stokercloud

import (
	"errors"
	"fmt"
)

var (
	// ErrTokenInvalid reports a missing or rejected session token. The client
	// recovers from it once per fetch; a second occurrence is returned.
	ErrTokenInvalid = errors.New("stokercloud: session token invalid")

	// ErrNotConnected is returned when the service reports the boiler as offline.
	ErrNotConnected = errors.New("stokercloud: boiler not connected")

	// ErrFieldMissing is matched by *FieldMissingError.
	ErrFieldMissing = errors.New("stokercloud: field missing")

	// ErrUnknownState is matched by *UnknownStateError.
	ErrUnknownState = errors.New("stokercloud: unknown controller state")
)

// FieldMissingError names the section and identifier that could not be found
// in the status document.
type FieldMissingError struct {
	Section string
	ID      string
}

func (e *FieldMissingError) Error() string {
	return fmt.Sprintf("stokercloud: field %q missing from %s", e.ID, e.Section)
}

// Is lets errors.Is match ErrFieldMissing.
func (e *FieldMissingError) Is(target error) bool {
	return target == ErrFieldMissing
}

// FieldFormatError reports a field whose text could not be interpreted.
type FieldFormatError struct {
	Section string
	ID      string
	Text    string
	Err     error
}

func (e *FieldFormatError) Error() string {
	return fmt.Sprintf("stokercloud: field %q in %s has unexpected value %q: %v", e.ID, e.Section, e.Text, e.Err)
}

func (e *FieldFormatError) Unwrap() error {
	return e.Err
}

// UnknownStateError carries a controller state code that has no entry in the
// state table.
type UnknownStateError struct {
	Code string
}

func (e *UnknownStateError) Error() string {
	return fmt.Sprintf("stokercloud: unknown controller state code %q", e.Code)
}

// Is lets errors.Is match ErrUnknownState.
func (e *UnknownStateError) Is(target error) bool {
	return target == ErrUnknownState
}

// HTTPError is returned when an endpoint answers with a non-success status.
type HTTPError struct {
	Path       string
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("api %s returned status %d", e.Path, e.StatusCode)
}
