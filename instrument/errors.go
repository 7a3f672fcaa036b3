package instrument

import "fmt"

// MalformedInputError reports a field whose value could not be parsed,
// either a timestamp that does not match Layout or a non-numeric amount.
type MalformedInputError struct {
	Field string
	Value string
	Err   error
}

func (e *MalformedInputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed %s %q: %v", e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("malformed %s %q", e.Field, e.Value)
}

func (e *MalformedInputError) Unwrap() error { return e.Err }

// MissingFieldError reports a field that is not populated for the leg role
// that needs it, e.g. issuer.type on a cash leg.
type MissingFieldError struct {
	Field string
	Role  Role
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing %s on %s leg", e.Field, e.Role)
}

// DuplicateLegError reports a second record for a leg role in a document
// that describes a single repo.
type DuplicateLegError struct {
	Role  Role
	ID    string
	Index int
}

func (e *DuplicateLegError) Error() string {
	return fmt.Sprintf("record %d (%s): second %s leg in document", e.Index, e.ID, e.Role)
}
