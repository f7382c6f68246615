package dto

import (
	"github.com/remiblancher/padsign/internal/options"
)

// SignRequest carries a document, certificate material and signing options.
// The options shape mirrors options.SigningOptions; the certificate provider
// travels separately because it needs its own wire encoding.
type SignRequest struct {
	Document    *BinaryData            `json:"document"`
	Certificate *CertificateRequest    `json:"certificate"`
	Options     options.SigningOptions `json:"options"`
}

// SignResponse carries the signed document and any validation warnings.
type SignResponse struct {
	Document *BinaryData       `json:"document"`
	Warnings []options.Warning `json:"warnings,omitempty"`
}

// ValidateRequest asks for a dry-run validation of options against
// certificate material, without touching the engine.
type ValidateRequest struct {
	Certificate *CertificateRequest    `json:"certificate"`
	Options     options.SigningOptions `json:"options"`
}

// ValidateResponse reports the validation outcome.
type ValidateResponse struct {
	Valid    bool              `json:"valid"`
	Warnings []options.Warning `json:"warnings,omitempty"`
	Info     *CertificateInfo  `json:"info,omitempty"`
}
