// Package engine defines the boundary to the external PDF-signing engine and
// the translation from the abstract options model into the engine's native
// configuration shape.
//
// The engine itself is a collaborator: padsign hands it a certificate
// container, a password and a Config, and receives signed document bytes or
// an error. An engine handle is constructed explicitly and passed into the
// pipeline; there is no process-wide singleton.
package engine

import (
	"context"
	"errors"
	"net/http"
)

// ErrUnavailable is returned by deployments that have no engine bound.
var ErrUnavailable = errors.New("no signing engine is bound")

// Engine signs PDF documents.
//
// Implementations must perform every outbound network fetch (timestamp
// authority, revocation status checks, certificate-chain retrieval) through
// the client returned by Client, so that callers can reroute that traffic
// for the duration of one signing call.
type Engine interface {
	// Sign produces the signed form of document according to cfg.
	Sign(ctx context.Context, document []byte, cfg *Config) ([]byte, error)

	// Client returns the HTTP client the engine uses for outbound fetches.
	Client() *http.Client
}
