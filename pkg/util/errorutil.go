package util

import (
	"errors"
	"fmt"
)

// ErrorKind classifies workflow errors.
type ErrorKind string

const (
	KindValidation ErrorKind = "VALIDATION"
	KindNetwork    ErrorKind = "NETWORK"
	KindServer     ErrorKind = "SERVER"
	KindConflict   ErrorKind = "CONFLICT"
)

// DomainError standardizes application errors. Validation errors never
// reach the network; network and server errors stay scoped to the active
// dialog or page and leave state intact for retry.
type DomainError struct {
	Kind    ErrorKind
	Message string
	Details map[string]any
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(kind ErrorKind, message string, details map[string]any) *DomainError {
	return &DomainError{Kind: kind, Message: message, Details: details}
}

func NewValidationError(message string, details map[string]any) error {
	return NewDomainError(KindValidation, message, details)
}

// NewServerError wraps a structured error message from the backend. The
// message is surfaced to the user verbatim.
func NewServerError(message string) error {
	return NewDomainError(KindServer, message, nil)
}

func NewNetworkError(err error) error {
	return &DomainError{Kind: KindNetwork, Message: "request failed", Err: err}
}

func NewConflict(message string, details map[string]any) error {
	return NewDomainError(KindConflict, message, details)
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return &DomainError{Kind: KindNetwork, Message: "request failed", Err: err}
}

// IsValidation reports whether err is a client-side validation error.
func IsValidation(err error) bool {
	var domainErr *DomainError
	return errors.As(err, &domainErr) && domainErr.Kind == KindValidation
}

// UserMessage returns the text to surface for err: server messages
// verbatim, everything else through DomainError formatting.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	return ToDomainError(err).Message
}
