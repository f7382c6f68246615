// Package certificate resolves user-supplied certificate material into the
// canonical container form consumed by the PDF-signing engine.
//
// Two provider variants are supported:
//   - Container: a binary PKCS#12 bundle protected by a password
//   - PEMPair: a PEM certificate plus PEM private key, optionally encrypted
//
// Both resolve to the same shape: container bytes, the password that opens
// them, and extracted certificate metadata.
package certificate

import (
	"errors"
	"fmt"
)

// Provider identifies the source of certificate material. It is a closed set:
// only Container and PEMPair implement it.
type Provider interface {
	provider()
}

// Container is a binary PKCS#12 bundle with the password that opens it.
type Container struct {
	Bytes    []byte
	Password string
}

func (Container) provider() {}

// PEMPair is a PEM-encoded certificate with its PEM-encoded private key.
// Passphrase is required when the key is encrypted.
type PEMPair struct {
	Certificate []byte
	Key         []byte
	Passphrase  string
}

func (PEMPair) provider() {}

// Resolved is the canonical certificate form handed to the signing engine.
// Container and Password are always a decryptable pair. Resolved values are
// never mutated after creation and are not persisted anywhere.
type Resolved struct {
	Container []byte
	Password  string
	Info      Info
}

// Resolve dispatches on the provider variant and produces the canonical form.
// Errors from the decoding collaborators are normalized into ParseError or
// ErrPassphraseRequired; they are never leaked as foreign types.
func Resolve(p Provider) (*Resolved, error) {
	switch v := p.(type) {
	case Container:
		return parseContainer(v)
	case PEMPair:
		return convertPEM(v)
	case nil:
		return nil, newParseError("no certificate provider supplied", nil)
	default:
		return nil, newParseError(fmt.Sprintf("unsupported certificate provider %T", p), nil)
	}
}

// Inspect resolves the provider and returns only its metadata, without any
// signing. Errors from the normal taxonomy propagate unchanged; anything
// unexpected is wrapped into a generic inspection failure.
func Inspect(p Provider) (*Info, error) {
	resolved, err := Resolve(p)
	if err != nil {
		var parseErr *ParseError
		if errors.Is(err, ErrPassphraseRequired) || errors.As(err, &parseErr) {
			return nil, err
		}
		return nil, fmt.Errorf("certificate inspection failed: %w", err)
	}
	info := resolved.Info
	return &info, nil
}
