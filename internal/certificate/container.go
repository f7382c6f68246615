package certificate

import (
	"errors"

	"software.sslmate.com/src/go-pkcs12"
)

// parseContainer decodes a PKCS#12 container and extracts metadata from its
// leaf certificate. The container bytes and password pass through unchanged:
// the signing engine opens the same bundle again with the same password.
//
// The certificate collection is ordered leaf-first with the CA chain behind
// it; the key may be stored shrouded (encrypted SafeBag) or, in legacy
// containers, as a plain key bag. Both forms are accepted by the decoder.
func parseContainer(c Container) (*Resolved, error) {
	_, leaf, _, err := pkcs12.DecodeChain(c.Bytes, c.Password)
	if err != nil {
		if errors.Is(err, pkcs12.ErrIncorrectPassword) {
			return nil, newParseError(invalidPasswordMessage, err)
		}
		return nil, newParseError(err.Error(), err)
	}
	if leaf == nil {
		return nil, newParseError("no certificate entry found in container", nil)
	}

	return &Resolved{
		Container: c.Bytes,
		Password:  c.Password,
		Info:      extractInfo(leaf),
	}, nil
}
