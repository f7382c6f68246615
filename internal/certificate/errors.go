package certificate

import (
	"errors"
)

// ParseError reports a failure to decode or decrypt certificate material.
// Message is safe to show to callers; Err keeps the collaborator error for
// errors.Is/As inspection.
type ParseError struct {
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ParseError) Error() string { return e.Message }

// Unwrap returns the underlying error for errors.Is/As support.
func (e *ParseError) Unwrap() error { return e.Err }

func newParseError(message string, err error) *ParseError {
	return &ParseError{Message: message, Err: err}
}

// Sentinel errors for certificate resolution.
var (
	// ErrPassphraseRequired indicates the private key is encrypted but no
	// passphrase was supplied.
	ErrPassphraseRequired = errors.New("private key is encrypted but no passphrase provided")
)

// invalidPasswordMessage is the normalized message for a container that could
// not be decrypted with the supplied password.
const invalidPasswordMessage = "Invalid certificate password"
