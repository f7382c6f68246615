package options

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for option validation.
// Use errors.Is() to check for these errors through the error chain.
var (
	// ErrProxyRequired indicates the advanced level was requested without a
	// proxy configuration.
	ErrProxyRequired = errors.New("advanced signing level requires a proxy configuration")

	// ErrInvalidOptions indicates the requested options are inconsistent.
	ErrInvalidOptions = errors.New("invalid signing options")
)

// ExpiredError indicates the certificate validity window has already passed.
type ExpiredError struct {
	NotAfter time.Time
}

// Error implements the error interface.
func (e *ExpiredError) Error() string {
	return fmt.Sprintf("certificate expired on %s", e.NotAfter.Format(time.RFC3339))
}

// NotYetValidError indicates the certificate validity window has not started.
type NotYetValidError struct {
	NotBefore time.Time
}

// Error implements the error interface.
func (e *NotYetValidError) Error() string {
	return fmt.Sprintf("certificate not valid before %s", e.NotBefore.Format(time.RFC3339))
}
