package dto

import (
	"fmt"
	"time"

	"github.com/remiblancher/padsign/internal/certificate"
)

// Certificate provider types accepted on the wire.
const (
	ProviderTypeContainer = "container"
	ProviderTypePEM       = "pem"
)

// CertificateRequest carries certificate material in one of two shapes:
// a PKCS#12 container with its password, or a PEM certificate/key pair.
type CertificateRequest struct {
	// Type selects the provider shape: "container" or "pem".
	Type string `json:"type"`

	// Container fields.
	Bytes    *BinaryData `json:"bytes,omitempty"`
	Password string      `json:"password,omitempty"`

	// PEM fields.
	Certificate *BinaryData `json:"certificate,omitempty"`
	PrivateKey  *BinaryData `json:"privateKey,omitempty"`
	Passphrase  string      `json:"passphrase,omitempty"`
}

// ToProvider converts the wire shape into a certificate provider.
func (r *CertificateRequest) ToProvider() (certificate.Provider, error) {
	if r == nil {
		return nil, fmt.Errorf("certificate is required")
	}
	switch r.Type {
	case ProviderTypeContainer:
		data, err := r.Bytes.Decode()
		if err != nil {
			return nil, fmt.Errorf("failed to decode container bytes: %w", err)
		}
		return certificate.Container{Bytes: data, Password: r.Password}, nil
	case ProviderTypePEM:
		certPEM, err := r.Certificate.Decode()
		if err != nil {
			return nil, fmt.Errorf("failed to decode certificate: %w", err)
		}
		keyPEM, err := r.PrivateKey.Decode()
		if err != nil {
			return nil, fmt.Errorf("failed to decode private key: %w", err)
		}
		return certificate.PEMPair{
			Certificate: certPEM,
			Key:         keyPEM,
			Passphrase:  r.Passphrase,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported certificate type: %q", r.Type)
	}
}

// CertificateInfo is the wire form of extracted certificate metadata.
type CertificateInfo struct {
	Subject      string `json:"subject"`
	Issuer       string `json:"issuer"`
	NotBefore    string `json:"notBefore"` // RFC3339
	NotAfter     string `json:"notAfter"`  // RFC3339
	SerialNumber string `json:"serialNumber"`
	SelfSigned   bool   `json:"selfSigned"`
	Expired      bool   `json:"expired"`
}

// NewCertificateInfo converts internal metadata to its wire form.
func NewCertificateInfo(info *certificate.Info) *CertificateInfo {
	return &CertificateInfo{
		Subject:      info.Subject,
		Issuer:       info.Issuer,
		NotBefore:    info.NotBefore.Format(time.RFC3339),
		NotAfter:     info.NotAfter.Format(time.RFC3339),
		SerialNumber: info.SerialNumber,
		SelfSigned:   info.SelfSigned,
		Expired:      info.IsExpired(),
	}
}

// InspectRequest asks for metadata extraction without signing.
type InspectRequest struct {
	Certificate *CertificateRequest `json:"certificate"`
}

// InspectResponse carries the extracted metadata.
type InspectResponse struct {
	Info *CertificateInfo `json:"info"`
}
