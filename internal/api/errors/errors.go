// Package errors provides error handling and HTTP status code mapping.
package errors

import (
	"errors"
	"net/http"
	"time"

	"github.com/remiblancher/padsign/internal/api/dto"
	"github.com/remiblancher/padsign/internal/certificate"
	"github.com/remiblancher/padsign/internal/engine"
	"github.com/remiblancher/padsign/internal/options"
	"github.com/remiblancher/padsign/internal/signing"
)

// Error codes for API responses.
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeCertParse          = "CERTIFICATE_PARSE_ERROR"
	CodePassphraseRequired = "PASSPHRASE_REQUIRED"
	CodeCertExpired        = "CERT_EXPIRED"
	CodeCertNotYetValid    = "CERT_NOT_YET_VALID"
	CodeProxyRequired      = "PROXY_REQUIRED"
	CodeInvalidOptions     = "INVALID_OPTIONS"
	CodeSigningFailed      = "SIGNING_FAILED"
	CodeEngineUnavailable  = "ENGINE_UNAVAILABLE"
	CodeInternal           = "INTERNAL_ERROR"
)

// MapError maps an internal error to an HTTP status code and APIError.
func MapError(err error) (int, *dto.APIError) {
	if err == nil {
		return http.StatusOK, nil
	}

	switch {
	case errors.Is(err, certificate.ErrPassphraseRequired):
		return http.StatusBadRequest, &dto.APIError{
			Code:    CodePassphraseRequired,
			Message: err.Error(),
		}
	case errors.Is(err, options.ErrProxyRequired):
		return http.StatusUnprocessableEntity, &dto.APIError{
			Code:    CodeProxyRequired,
			Message: err.Error(),
		}
	case errors.Is(err, options.ErrInvalidOptions):
		return http.StatusBadRequest, &dto.APIError{
			Code:    CodeInvalidOptions,
			Message: err.Error(),
		}
	case errors.Is(err, engine.ErrUnavailable):
		return http.StatusServiceUnavailable, &dto.APIError{
			Code:    CodeEngineUnavailable,
			Message: err.Error(),
		}
	}

	var parseErr *certificate.ParseError
	if errors.As(err, &parseErr) {
		return http.StatusBadRequest, &dto.APIError{
			Code:    CodeCertParse,
			Message: parseErr.Error(),
		}
	}

	var expired *options.ExpiredError
	if errors.As(err, &expired) {
		return http.StatusUnprocessableEntity, &dto.APIError{
			Code:    CodeCertExpired,
			Message: expired.Error(),
			Details: map[string]string{"notAfter": expired.NotAfter.Format(time.RFC3339)},
		}
	}

	var notYet *options.NotYetValidError
	if errors.As(err, &notYet) {
		return http.StatusUnprocessableEntity, &dto.APIError{
			Code:    CodeCertNotYetValid,
			Message: notYet.Error(),
			Details: map[string]string{"notBefore": notYet.NotBefore.Format(time.RFC3339)},
		}
	}

	var engErr *signing.EngineError
	if errors.As(err, &engErr) {
		return http.StatusBadGateway, &dto.APIError{
			Code:    CodeSigningFailed,
			Message: engErr.Error(),
		}
	}

	return http.StatusInternalServerError, &dto.APIError{
		Code:    CodeInternal,
		Message: "An internal error occurred",
	}
}

// NewBadRequest creates a bad request error.
func NewBadRequest(message string) *dto.APIError {
	return &dto.APIError{
		Code:    CodeInvalidRequest,
		Message: message,
	}
}
