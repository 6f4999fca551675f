package wizard

import (
	"fmt"
	"regexp"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// FieldError names the field that blocks progress.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func fieldErr(field, reason string) error {
	return &FieldError{Field: field, Reason: reason}
}
