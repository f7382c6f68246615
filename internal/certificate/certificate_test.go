package certificate

import (
	"crypto/x509/pkix"
	"encoding/asn1"
	"errors"
	"strings"
	"testing"
	"time"
)

const testPassword = "container-secret"

func TestResolve_Container(t *testing.T) {
	tc := newSelfSigned(t, defaultSubject())
	p12 := encodeP12(t, tc, testPassword)

	resolved, err := Resolve(Container{Bytes: p12, Password: testPassword})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if string(resolved.Container) != string(p12) {
		t.Error("container bytes should pass through unchanged")
	}
	if resolved.Password != testPassword {
		t.Errorf("expected password %q, got %q", testPassword, resolved.Password)
	}
	if resolved.Info.Subject != "Test Signer" {
		t.Errorf("expected subject %q, got %q", "Test Signer", resolved.Info.Subject)
	}
	if !resolved.Info.SelfSigned {
		t.Error("self-signed certificate should be detected as self-signed")
	}
	if resolved.Info.IsExpired() {
		t.Error("certificate should not be expired")
	}
}

func TestResolve_ContainerWrongPassword(t *testing.T) {
	tc := newSelfSigned(t, defaultSubject())
	p12 := encodeP12(t, tc, testPassword)

	_, err := Resolve(Container{Bytes: p12, Password: "wrong"})
	if err == nil {
		t.Fatal("expected error for wrong password")
	}

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %T", err)
	}
	if parseErr.Message != "Invalid certificate password" {
		t.Errorf("expected normalized message, got %q", parseErr.Message)
	}
}

func TestResolve_ContainerGarbage(t *testing.T) {
	_, err := Resolve(Container{Bytes: []byte("not a container"), Password: "x"})
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if parseErr.Message == "Invalid certificate password" {
		t.Error("decode failure must not be reported as a password failure")
	}
}

func TestResolve_PEMPair(t *testing.T) {
	tc := newSelfSigned(t, defaultSubject())

	resolved, err := Resolve(PEMPair{
		Certificate: encodeCertPEM(t, tc),
		Key:         encodeKeyPEM(t, tc.key, ""),
	})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if len(resolved.Container) == 0 {
		t.Fatal("expected synthesized container bytes")
	}
	if resolved.Password == "" {
		t.Fatal("expected internal container password")
	}

	// The synthesized container must decode back to the same leaf.
	back, err := Resolve(Container{Bytes: resolved.Container, Password: resolved.Password})
	if err != nil {
		t.Fatalf("failed to reparse synthesized container: %v", err)
	}
	if back.Info != resolved.Info {
		t.Errorf("round-trip info mismatch: %+v vs %+v", back.Info, resolved.Info)
	}
}

// Resolving equivalent material through either provider variant must yield
// identical metadata.
func TestResolve_ContainerAndPEMPairAgree(t *testing.T) {
	tc := newSelfSigned(t, defaultSubject())

	fromContainer, err := Resolve(Container{Bytes: encodeP12(t, tc, testPassword), Password: testPassword})
	if err != nil {
		t.Fatalf("container resolve failed: %v", err)
	}

	fromPEM, err := Resolve(PEMPair{
		Certificate: encodeCertPEM(t, tc),
		Key:         encodeKeyPEM(t, tc.key, ""),
	})
	if err != nil {
		t.Fatalf("PEM resolve failed: %v", err)
	}

	if fromContainer.Info != fromPEM.Info {
		t.Errorf("info mismatch:\n container: %+v\n pem:       %+v", fromContainer.Info, fromPEM.Info)
	}
}

func TestResolve_EncryptedKeyWithoutPassphrase(t *testing.T) {
	tc := newSelfSigned(t, defaultSubject())

	_, err := Resolve(PEMPair{
		Certificate: encodeCertPEM(t, tc),
		Key:         encodeKeyPEM(t, tc.key, "key-secret"),
	})
	if !errors.Is(err, ErrPassphraseRequired) {
		t.Fatalf("expected ErrPassphraseRequired, got %v", err)
	}
}

func TestResolve_EncryptedKeyWrongPassphrase(t *testing.T) {
	tc := newSelfSigned(t, defaultSubject())

	_, err := Resolve(PEMPair{
		Certificate: encodeCertPEM(t, tc),
		Key:         encodeKeyPEM(t, tc.key, "key-secret"),
		Passphrase:  "wrong",
	})
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if !strings.Contains(parseErr.Message, "passphrase") {
		t.Errorf("expected passphrase framing, got %q", parseErr.Message)
	}
}

func TestResolve_EncryptedKeyCorrectPassphrase(t *testing.T) {
	tc := newSelfSigned(t, defaultSubject())

	resolved, err := Resolve(PEMPair{
		Certificate: encodeCertPEM(t, tc),
		Key:         encodeKeyPEM(t, tc.key, "key-secret"),
		Passphrase:  "key-secret",
	})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if resolved.Info.Subject != "Test Signer" {
		t.Errorf("unexpected subject %q", resolved.Info.Subject)
	}
}

func TestResolve_PKCS8EncryptedKeyWithoutPassphrase(t *testing.T) {
	tc := newSelfSigned(t, defaultSubject())

	_, err := Resolve(PEMPair{
		Certificate: encodeCertPEM(t, tc),
		Key:         encodePKCS8EncryptedKeyPEM(t, tc.key, "key-secret"),
	})
	if !errors.Is(err, ErrPassphraseRequired) {
		t.Fatalf("expected ErrPassphraseRequired, got %v", err)
	}
}

func TestResolve_PKCS8EncryptedKeyWrongPassphrase(t *testing.T) {
	tc := newSelfSigned(t, defaultSubject())

	_, err := Resolve(PEMPair{
		Certificate: encodeCertPEM(t, tc),
		Key:         encodePKCS8EncryptedKeyPEM(t, tc.key, "key-secret"),
		Passphrase:  "wrong",
	})
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if !strings.Contains(parseErr.Message, "passphrase") {
		t.Errorf("expected passphrase framing, got %q", parseErr.Message)
	}
}

func TestResolve_PKCS8EncryptedKeyCorrectPassphrase(t *testing.T) {
	tc := newSelfSigned(t, defaultSubject())

	resolved, err := Resolve(PEMPair{
		Certificate: encodeCertPEM(t, tc),
		Key:         encodePKCS8EncryptedKeyPEM(t, tc.key, "key-secret"),
		Passphrase:  "key-secret",
	})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if resolved.Info.Subject != "Test Signer" {
		t.Errorf("unexpected subject %q", resolved.Info.Subject)
	}
}

func TestResolve_MalformedPEM(t *testing.T) {
	_, err := Resolve(PEMPair{Certificate: []byte("garbage"), Key: []byte("garbage")})
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestResolve_NilProvider(t *testing.T) {
	_, err := Resolve(nil)
	if err == nil {
		t.Fatal("expected error for nil provider")
	}
}

func TestInspect_Idempotent(t *testing.T) {
	tc := newSelfSigned(t, defaultSubject())
	provider := Container{Bytes: encodeP12(t, tc, testPassword), Password: testPassword}

	first, err := Inspect(provider)
	if err != nil {
		t.Fatalf("first inspect failed: %v", err)
	}
	second, err := Inspect(provider)
	if err != nil {
		t.Fatalf("second inspect failed: %v", err)
	}
	if *first != *second {
		t.Errorf("inspect is not stable: %+v vs %+v", *first, *second)
	}
}

func TestInspect_PropagatesTaxonomyErrors(t *testing.T) {
	tc := newSelfSigned(t, defaultSubject())

	_, err := Inspect(PEMPair{
		Certificate: encodeCertPEM(t, tc),
		Key:         encodeKeyPEM(t, tc.key, "secret"),
	})
	if !errors.Is(err, ErrPassphraseRequired) {
		t.Fatalf("expected ErrPassphraseRequired unchanged, got %v", err)
	}
}

func TestInfo_NotSelfSigned(t *testing.T) {
	issuer := newSelfSigned(t, pkix.Name{CommonName: "Test CA"})
	issuer.cert.IsCA = true
	leaf := newIssued(t, issuer, pkix.Name{CommonName: "Leaf"})

	resolved, err := Resolve(PEMPair{
		Certificate: encodeCertPEM(t, leaf),
		Key:         encodeKeyPEM(t, leaf.key, ""),
	})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if resolved.Info.SelfSigned {
		t.Error("issued certificate must not be reported self-signed")
	}
	if resolved.Info.Issuer != "Test CA" {
		t.Errorf("expected issuer %q, got %q", "Test CA", resolved.Info.Issuer)
	}
}

func TestInfo_DistinguishedNameFallback(t *testing.T) {
	// No Common Name: the display string joins the remaining attributes.
	subject := pkix.Name{
		Organization:       []string{"ACME"},
		OrganizationalUnit: []string{"Signing"},
		Country:            []string{"FR"},
	}
	tc := newSelfSigned(t, subject)

	info, err := Inspect(PEMPair{
		Certificate: encodeCertPEM(t, tc),
		Key:         encodeKeyPEM(t, tc.key, ""),
	})
	if err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}

	for _, want := range []string{"O=ACME", "OU=Signing", "C=FR"} {
		if !strings.Contains(info.Subject, want) {
			t.Errorf("subject %q missing %q", info.Subject, want)
		}
	}
}

func TestInfo_UnknownAttributeFallsBackToOID(t *testing.T) {
	name := pkix.Name{ExtraNames: []pkix.AttributeTypeAndValue{{
		Type:  asn1.ObjectIdentifier{2, 5, 4, 65}, // pseudonym, not in the short-name table
		Value: "shadow",
	}}}
	tc := newSelfSigned(t, name)

	info, err := Inspect(PEMPair{
		Certificate: encodeCertPEM(t, tc),
		Key:         encodeKeyPEM(t, tc.key, ""),
	})
	if err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}
	if !strings.Contains(info.Subject, "2.5.4.65=shadow") {
		t.Errorf("expected OID fallback in subject, got %q", info.Subject)
	}
}

func TestInfo_SerialNumberHex(t *testing.T) {
	tc := newSelfSigned(t, defaultSubject())

	info, err := Inspect(PEMPair{
		Certificate: encodeCertPEM(t, tc),
		Key:         encodeKeyPEM(t, tc.key, ""),
	})
	if err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}
	if info.SerialNumber != "1b2d4f" {
		t.Errorf("expected serial 1b2d4f, got %q", info.SerialNumber)
	}
}

func TestInfo_IsExpired(t *testing.T) {
	now := time.Now()
	expired := newSelfSignedAt(t, defaultSubject(), now.Add(-48*time.Hour), now.Add(-24*time.Hour))

	info, err := Inspect(PEMPair{
		Certificate: encodeCertPEM(t, expired),
		Key:         encodeKeyPEM(t, expired.key, ""),
	})
	if err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}
	if !info.IsExpired() {
		t.Error("certificate past NotAfter must report expired")
	}
}
