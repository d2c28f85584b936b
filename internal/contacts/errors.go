package contacts

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is matched by every *ValidationError.
	ErrValidation = errors.New("invalid value")

	// ErrNotFound reports an operation referencing a contact or phone that does not exist.
	ErrNotFound = errors.New("not found")
)

// ValidationError is returned by the field constructors.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ContactNotFound reports a missing contact; the error matches ErrNotFound.
func ContactNotFound(name string) error {
	return fmt.Errorf("contact %q %w", name, ErrNotFound)
}

// PhoneNotFound reports a phone missing from the named contact.
func PhoneNotFound(name, phone string) error {
	return fmt.Errorf("phone %q of contact %q %w", phone, name, ErrNotFound)
}
