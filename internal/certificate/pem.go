package certificate

import (
	"crypto"
	"crypto/x509"
	"encoding/pem"
	"fmt"

	"github.com/youmark/pkcs8"
	"software.sslmate.com/src/go-pkcs12"
)

// pemContainerPassword encrypts PEM-origin material into container form. The
// signing engine only accepts containers, so a fresh one is synthesized in
// memory for the duration of the call. The password is a fixed constant and
// not a security boundary: the key was already protected by its own
// passphrase upstream, and the container never leaves the process.
const pemContainerPassword = "padsign-pem-container"

// convertPEM parses a PEM certificate and private key and synthesizes an
// in-memory PKCS#12 container equivalent to parseContainer's output. The PEM
// path carries no CA chain.
func convertPEM(p PEMPair) (*Resolved, error) {
	cert, err := parsePEMCertificate(p.Certificate)
	if err != nil {
		return nil, err
	}

	key, err := parsePEMPrivateKey(p.Key, p.Passphrase)
	if err != nil {
		return nil, err
	}

	container, err := EncodeContainer(cert, key, pemContainerPassword)
	if err != nil {
		return nil, err
	}

	return &Resolved{
		Container: container,
		Password:  pemContainerPassword,
		Info:      extractInfo(cert),
	}, nil
}

// Convert builds a PKCS#12 container from a PEM pair, encrypted under a
// caller-chosen password. Unlike Resolve, the result is meant to leave the
// process (written to disk, shipped elsewhere).
func Convert(p PEMPair, password string) ([]byte, error) {
	cert, err := parsePEMCertificate(p.Certificate)
	if err != nil {
		return nil, err
	}
	key, err := parsePEMPrivateKey(p.Key, p.Passphrase)
	if err != nil {
		return nil, err
	}
	return EncodeContainer(cert, key, password)
}

// EncodeContainer packs a certificate and its private key into a PKCS#12
// container encrypted under the given password.
func EncodeContainer(cert *x509.Certificate, key crypto.PrivateKey, password string) ([]byte, error) {
	container, err := pkcs12.Modern.Encode(key, cert, nil, password)
	if err != nil {
		return nil, newParseError(fmt.Sprintf("failed to build certificate container: %v", err), err)
	}
	return container, nil
}

func parsePEMCertificate(data []byte) (*x509.Certificate, error) {
	block, _ := pem.Decode(data)
	if block == nil || block.Type != "CERTIFICATE" {
		return nil, newParseError("no certificate found in PEM input", nil)
	}
	cert, err := x509.ParseCertificate(block.Bytes)
	if err != nil {
		return nil, newParseError(fmt.Sprintf("failed to parse certificate: %v", err), err)
	}
	return cert, nil
}

// parsePEMPrivateKey decodes a PEM private key. Encrypted keys require a
// passphrase; both legacy DEK-Info encryption and encrypted PKCS#8 are
// supported.
func parsePEMPrivateKey(data []byte, passphrase string) (crypto.PrivateKey, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, newParseError("no private key found in PEM input", nil)
	}

	legacyEncrypted := x509.IsEncryptedPEMBlock(block) //nolint:staticcheck // legacy containers still use DEK-Info
	pkcs8Encrypted := block.Type == "ENCRYPTED PRIVATE KEY"

	if (legacyEncrypted || pkcs8Encrypted) && passphrase == "" {
		return nil, ErrPassphraseRequired
	}

	if legacyEncrypted {
		der, err := x509.DecryptPEMBlock(block, []byte(passphrase)) //nolint:staticcheck
		if err != nil {
			return nil, newParseError("wrong private key passphrase", err)
		}
		return parseKeyDER(block.Type, der)
	}

	if pkcs8Encrypted {
		key, err := pkcs8.ParsePKCS8PrivateKey(block.Bytes, []byte(passphrase))
		if err != nil {
			return nil, newParseError("wrong private key passphrase", err)
		}
		return key, nil
	}

	return parseKeyDER(block.Type, block.Bytes)
}

// parseKeyDER parses a decrypted key according to its PEM type.
func parseKeyDER(pemType string, der []byte) (crypto.PrivateKey, error) {
	var key crypto.PrivateKey
	var err error

	switch pemType {
	case "PRIVATE KEY":
		key, err = x509.ParsePKCS8PrivateKey(der)
	case "EC PRIVATE KEY":
		key, err = x509.ParseECPrivateKey(der)
	case "RSA PRIVATE KEY":
		key, err = x509.ParsePKCS1PrivateKey(der)
	default:
		return nil, newParseError(fmt.Sprintf("unknown PEM type: %s", pemType), nil)
	}
	if err != nil {
		return nil, newParseError(fmt.Sprintf("failed to parse private key: %v", err), err)
	}
	return key, nil
}
