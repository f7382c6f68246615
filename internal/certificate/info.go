package certificate

import (
	"crypto/sha256"
	"crypto/x509"
	"crypto/x509/pkix"
	"strings"
	"time"
)

// Info is the human-meaningful metadata extracted from a certificate.
type Info struct {
	// Subject and Issuer are display strings: the Common Name when present,
	// otherwise the full distinguished name.
	Subject string
	Issuer  string

	// Validity window.
	NotBefore time.Time
	NotAfter  time.Time

	// SerialNumber is the certificate serial rendered as hex.
	SerialNumber string

	// SelfSigned reports whether the subject and issuer identities hash to
	// the same value. This is a structural heuristic, not a signature check:
	// crafted certificates can produce false positives or negatives.
	SelfSigned bool
}

// IsExpired reports whether the certificate validity window has passed. It is
// evaluated against the clock at call time, never cached.
func (i *Info) IsExpired() bool {
	return time.Now().After(i.NotAfter)
}

// extractInfo is a pure mapping from a decoded certificate to Info.
func extractInfo(cert *x509.Certificate) Info {
	subjectDigest := sha256.Sum256(cert.RawSubject)
	issuerDigest := sha256.Sum256(cert.RawIssuer)

	return Info{
		Subject:      displayName(cert.Subject),
		Issuer:       displayName(cert.Issuer),
		NotBefore:    cert.NotBefore,
		NotAfter:     cert.NotAfter,
		SerialNumber: cert.SerialNumber.Text(16),
		SelfSigned:   subjectDigest == issuerDigest,
	}
}

// attributeShortNames maps DN attribute OIDs to their short names.
var attributeShortNames = map[string]string{
	"2.5.4.3":                    "CN",
	"2.5.4.4":                    "SN",
	"2.5.4.5":                    "SERIALNUMBER",
	"2.5.4.6":                    "C",
	"2.5.4.7":                    "L",
	"2.5.4.8":                    "ST",
	"2.5.4.9":                    "STREET",
	"2.5.4.10":                   "O",
	"2.5.4.11":                   "OU",
	"2.5.4.17":                   "POSTALCODE",
	"2.5.4.42":                   "GN",
	"1.2.840.113549.1.9.1":       "E",
	"0.9.2342.19200300.100.1.1":  "UID",
	"0.9.2342.19200300.100.1.25": "DC",
}

// displayName prefers the Common Name; when the certificate carries none it
// falls back to joining every attribute as short=value in the order the
// certificate stores them.
func displayName(name pkix.Name) string {
	if name.CommonName != "" {
		return name.CommonName
	}

	var parts []string
	for _, atv := range name.Names {
		value, ok := atv.Value.(string)
		if !ok {
			continue
		}
		short, ok := attributeShortNames[atv.Type.String()]
		if !ok {
			short = atv.Type.String()
		}
		parts = append(parts, short+"="+value)
	}
	return strings.Join(parts, ", ")
}
