package options

import (
	"fmt"
	"strings"
	"time"

	"github.com/remiblancher/padsign/internal/certificate"
)

// Warning codes.
const (
	// WarnSelfSignedAdvanced flags a self-signed certificate at the advanced
	// level: long-term validation evidence for it cannot be chain-validated.
	WarnSelfSignedAdvanced = "self-signed-advanced"

	// WarnProxyTrailingSlash flags a proxy base URL ending in a slash; the
	// interceptor trims it.
	WarnProxyTrailingSlash = "proxy-trailing-slash"
)

// Warning is a non-fatal validation finding, surfaced to the caller for
// optional logging. Warnings never block execution.
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Validate runs ordered checks of the requested options against the resolved
// certificate metadata. The first hard failure short-circuits; otherwise the
// accumulated warnings are returned. The metadata is never mutated.
func Validate(opts *SigningOptions, info *certificate.Info) ([]Warning, error) {
	if opts.Level == LevelAdvanced && opts.Proxy == nil {
		return nil, ErrProxyRequired
	}

	now := time.Now()
	if now.After(info.NotAfter) {
		return nil, &ExpiredError{NotAfter: info.NotAfter}
	}
	if now.Before(info.NotBefore) {
		return nil, &NotYetValidError{NotBefore: info.NotBefore}
	}

	if opts.Visible != nil && opts.Visible.Image == nil && opts.Visible.Text == nil {
		return nil, fmt.Errorf("%w: visible signature requires an image or text appearance", ErrInvalidOptions)
	}

	var warnings []Warning
	if info.SelfSigned && opts.Level == LevelAdvanced {
		warnings = append(warnings, Warning{
			Code:    WarnSelfSignedAdvanced,
			Message: "certificate is self-signed; long-term validation evidence will not chain to a trusted root",
		})
	}
	if opts.Proxy != nil && strings.HasSuffix(opts.Proxy.BaseURL, "/") {
		warnings = append(warnings, Warning{
			Code:    WarnProxyTrailingSlash,
			Message: "proxy base URL ends with a slash; it will be trimmed",
		})
	}

	return warnings, nil
}
