package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrVendorNotFound     = errors.New("vendor not found")
	ErrPostNotFound       = errors.New("blog post not found")
	ErrSubmissionNotFound = errors.New("business submission not found")
	ErrWeddingNotFound    = errors.New("wedding not found")
	ErrInvitationNotFound = errors.New("invitation not found")
	ErrAlreadyResponded   = errors.New("RSVP already submitted for this invitation")
	ErrForbidden          = errors.New("wedding secret does not match")
	ErrConflict           = errors.New("resource already exists")
)

// inputError carries a client-facing message and matches ErrInvalidInput.
type inputError struct {
	msg string
}

func (e *inputError) Error() string { return e.msg }

func (e *inputError) Is(target error) bool { return target == ErrInvalidInput }

func invalid(format string, args ...any) error {
	return &inputError{msg: fmt.Sprintf(format, args...)}
}

// notFound maps gorm.ErrRecordNotFound to sentinel and wraps anything else.
func notFound(err, sentinel error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return fmt.Errorf("%s: %w", op, err)
}
