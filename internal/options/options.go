// Package options defines the abstract signing request model and validates it
// against resolved certificate state before any signing attempt.
package options

import (
	"github.com/remiblancher/padsign/internal/certificate"
)

// Level selects the signature profile.
type Level string

const (
	// LevelBaseline produces a basic signature: no timestamp, no long-term
	// validation material.
	LevelBaseline Level = "baseline"

	// LevelAdvanced embeds a trusted timestamp and long-term validation
	// evidence. The engine fetches these over the network, so a proxy
	// configuration is mandatory at this level.
	LevelAdvanced Level = "advanced"
)

// RevocationMethod selects how long-term validation evidence is gathered.
type RevocationMethod string

const (
	// RevocationOCSPFallbackCRL queries OCSP first and falls back to CRL.
	RevocationOCSPFallbackCRL RevocationMethod = "ocsp-crl"

	// RevocationCRLOnly uses CRL exclusively.
	RevocationCRLOnly RevocationMethod = "crl"
)

// Permission is the DocMDP tier restricting modifications after signing.
type Permission int

const (
	// PermissionNoChanges disallows any change to the document.
	PermissionNoChanges Permission = 1

	// PermissionFormFill allows form filling and additional signatures.
	PermissionFormFill Permission = 2

	// PermissionFormFillAnnotate additionally allows annotations.
	PermissionFormFillAnnotate Permission = 3
)

// ProxyConfig points the engine's outbound fetches at a passthrough proxy.
type ProxyConfig struct {
	// BaseURL is the proxy origin; a trailing slash is trimmed downstream.
	BaseURL string `yaml:"base_url" json:"base_url"`

	// Headers are merged into every proxied request and take precedence
	// over headers the engine attaches itself.
	Headers map[string]string `yaml:"headers,omitempty" json:"headers,omitempty"`
}

// TimestampAuthority selects a custom RFC 3161 endpoint. When absent at the
// advanced level, a default preset is used instead.
type TimestampAuthority struct {
	URL     string            `yaml:"url,omitempty" json:"url,omitempty"`
	Headers map[string]string `yaml:"headers,omitempty" json:"headers,omitempty"`
}

// Position places a visible signature on the page. Page is 1-based; zero
// selects the engine's default page.
type Position struct {
	Page   int     `yaml:"page,omitempty" json:"page,omitempty"`
	X      float64 `yaml:"x" json:"x"`
	Y      float64 `yaml:"y" json:"y"`
	Width  float64 `yaml:"width" json:"width"`
	Height float64 `yaml:"height" json:"height"`
}

// SignatureImage is a raster appearance for a visible signature.
type SignatureImage struct {
	Bytes  []byte `yaml:"bytes" json:"bytes"`
	Format string `yaml:"format" json:"format"`
}

// SignatureText is a text appearance for a visible signature. Zero values
// leave the corresponding rendering choice to the engine.
type SignatureText struct {
	Content    string  `yaml:"content" json:"content"`
	Size       float64 `yaml:"size" json:"size"`
	Font       []byte  `yaml:"font,omitempty" json:"font,omitempty"`
	SubsetFont bool    `yaml:"subset_font,omitempty" json:"subset_font,omitempty"`
	Color      string  `yaml:"color,omitempty" json:"color,omitempty"`
	Alignment  string  `yaml:"alignment,omitempty" json:"alignment,omitempty"` // "left", "center" or "right"
	LineHeight float64 `yaml:"line_height,omitempty" json:"line_height,omitempty"`
}

// VisibleSignature describes an on-page signature appearance. At least one of
// Image or Text must be set; the validator rejects an empty appearance.
type VisibleSignature struct {
	Position Position        `yaml:"position" json:"position"`
	Image    *SignatureImage `yaml:"image,omitempty" json:"image,omitempty"`
	Text     *SignatureText  `yaml:"text,omitempty" json:"text,omitempty"`
}

// SigningOptions is the complete abstract request for one signing call.
type SigningOptions struct {
	Level Level `yaml:"level" json:"level"`

	// Provider carries the certificate material; it is populated
	// programmatically, never from a request file.
	Provider certificate.Provider `yaml:"-" json:"-"`

	Proxy     *ProxyConfig        `yaml:"proxy,omitempty" json:"proxy,omitempty"`
	Timestamp *TimestampAuthority `yaml:"timestamp,omitempty" json:"timestamp,omitempty"`
	Visible   *VisibleSignature   `yaml:"visible,omitempty" json:"visible,omitempty"`

	// Optional signature metadata. Empty means absent: the adapter never
	// forwards empty fields to the engine.
	Reason      string `yaml:"reason,omitempty" json:"reason,omitempty"`
	Location    string `yaml:"location,omitempty" json:"location,omitempty"`
	ContactInfo string `yaml:"contact_info,omitempty" json:"contact_info,omitempty"`
	Name        string `yaml:"name,omitempty" json:"name,omitempty"`

	// Permission zero means no DocMDP restriction is requested.
	Permission Permission `yaml:"permission,omitempty" json:"permission,omitempty"`

	// Revocation empty selects the default method at the advanced level.
	Revocation RevocationMethod `yaml:"revocation,omitempty" json:"revocation,omitempty"`

	Debug bool `yaml:"debug,omitempty" json:"debug,omitempty"`
}
