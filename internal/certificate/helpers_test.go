package certificate

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"testing"
	"time"

	"github.com/youmark/pkcs8"
	"software.sslmate.com/src/go-pkcs12"
)

// testCert holds generated certificate material shared by the tests.
type testCert struct {
	cert *x509.Certificate
	key  *ecdsa.PrivateKey
}

// newSelfSigned generates a currently-valid self-signed certificate with the
// given subject.
func newSelfSigned(t *testing.T, subject pkix.Name) *testCert {
	t.Helper()
	now := time.Now()
	return newSelfSignedAt(t, subject, now.Add(-time.Hour), now.Add(24*time.Hour))
}

// newSelfSignedAt generates a self-signed certificate valid over an explicit
// window.
func newSelfSignedAt(t *testing.T, subject pkix.Name, notBefore, notAfter time.Time) *testCert {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}

	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(0x1b2d4f),
		Subject:      subject,
		NotBefore:    notBefore,
		NotAfter:     notAfter,
		KeyUsage:     x509.KeyUsageDigitalSignature,
	}

	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	if err != nil {
		t.Fatalf("failed to create certificate: %v", err)
	}

	cert, err := x509.ParseCertificate(der)
	if err != nil {
		t.Fatalf("failed to parse certificate: %v", err)
	}

	return &testCert{cert: cert, key: key}
}

// newIssued generates a certificate signed by the given issuer.
func newIssued(t *testing.T, issuer *testCert, subject pkix.Name) *testCert {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}

	now := time.Now()
	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(0x77aa01),
		Subject:      subject,
		NotBefore:    now.Add(-time.Hour),
		NotAfter:     now.Add(24 * time.Hour),
		KeyUsage:     x509.KeyUsageDigitalSignature,
	}

	der, err := x509.CreateCertificate(rand.Reader, tmpl, issuer.cert, &key.PublicKey, issuer.key)
	if err != nil {
		t.Fatalf("failed to create certificate: %v", err)
	}

	cert, err := x509.ParseCertificate(der)
	if err != nil {
		t.Fatalf("failed to parse certificate: %v", err)
	}

	return &testCert{cert: cert, key: key}
}

func defaultSubject() pkix.Name {
	return pkix.Name{
		CommonName:   "Test Signer",
		Organization: []string{"ACME"},
		Country:      []string{"FR"},
	}
}

// encodeP12 packs the material into a PKCS#12 container.
func encodeP12(t *testing.T, c *testCert, password string) []byte {
	t.Helper()
	data, err := pkcs12.Modern.Encode(c.key, c.cert, nil, password)
	if err != nil {
		t.Fatalf("failed to encode PKCS#12: %v", err)
	}
	return data
}

// encodeCertPEM renders the certificate as PEM text.
func encodeCertPEM(t *testing.T, c *testCert) []byte {
	t.Helper()
	return pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: c.cert.Raw})
}

// encodeKeyPEM renders the private key as a PKCS#8 PEM block, optionally
// encrypted with the legacy DEK-Info scheme.
func encodeKeyPEM(t *testing.T, key crypto.PrivateKey, passphrase string) []byte {
	t.Helper()

	der, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		t.Fatalf("failed to marshal private key: %v", err)
	}

	block := &pem.Block{Type: "PRIVATE KEY", Bytes: der}
	if passphrase != "" {
		block, err = x509.EncryptPEMBlock(rand.Reader, block.Type, block.Bytes, []byte(passphrase), x509.PEMCipherAES256) //nolint:staticcheck
		if err != nil {
			t.Fatalf("failed to encrypt private key: %v", err)
		}
	}
	return pem.EncodeToMemory(block)
}

// encodePKCS8EncryptedKeyPEM renders the private key as an encrypted PKCS#8
// PEM block, the format modern OpenSSL emits by default.
func encodePKCS8EncryptedKeyPEM(t *testing.T, key crypto.PrivateKey, passphrase string) []byte {
	t.Helper()

	der, err := pkcs8.MarshalPrivateKey(key, []byte(passphrase), nil)
	if err != nil {
		t.Fatalf("failed to encrypt private key: %v", err)
	}
	return pem.EncodeToMemory(&pem.Block{Type: "ENCRYPTED PRIVATE KEY", Bytes: der})
}
