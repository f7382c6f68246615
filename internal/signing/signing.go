// Package signing sequences certificate resolution, option validation,
// configuration building and the engine invocation for one signing call.
package signing

import (
	"context"
	"fmt"
	"sync"

	"github.com/remiblancher/padsign/internal/certificate"
	"github.com/remiblancher/padsign/internal/engine"
	"github.com/remiblancher/padsign/internal/fetch"
	"github.com/remiblancher/padsign/internal/options"
)

// EngineError wraps a failure inside the external signing engine. The engine
// call is the only place foreign errors can escape from; they are caught here
// and carried as the cause for diagnostics.
type EngineError struct {
	Err error
}

// Error implements the error interface.
func (e *EngineError) Error() string {
	return fmt.Sprintf("signing engine failed: %v", e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *EngineError) Unwrap() error { return e.Err }

// Signer runs the signing pipeline against an explicitly constructed engine
// handle.
type Signer struct {
	engine engine.Engine

	// mu serializes proxied engine calls: interception swaps the engine
	// client's transport, and two calls with different proxies must not
	// interleave on the same client.
	mu sync.Mutex
}

// New creates a Signer around the given engine handle.
func New(eng engine.Engine) *Signer {
	return &Signer{engine: eng}
}

// Sign resolves the certificate provider, validates the options against it,
// builds the engine's native configuration and invokes the engine. At the
// advanced level the engine's outbound fetches are routed through the
// configured proxy for the duration of the call, with the original transport
// restored on every exit path.
//
// Validation warnings are returned alongside the signed document; a hard
// validation failure aborts before the engine is touched.
func (s *Signer) Sign(ctx context.Context, document []byte, opts *options.SigningOptions) ([]byte, []options.Warning, error) {
	resolved, err := certificate.Resolve(opts.Provider)
	if err != nil {
		return nil, nil, err
	}

	warnings, err := options.Validate(opts, &resolved.Info)
	if err != nil {
		return nil, nil, err
	}

	cfg := engine.BuildConfig(opts, resolved)

	signed, err := s.invoke(ctx, document, cfg, opts)
	if err != nil {
		return nil, warnings, err
	}
	return signed, warnings, nil
}

// invoke calls the engine, installing proxy interception first when the
// options call for it.
func (s *Signer) invoke(ctx context.Context, document []byte, cfg *engine.Config, opts *options.SigningOptions) ([]byte, error) {
	if opts.Level == options.LevelAdvanced && opts.Proxy != nil {
		s.mu.Lock()
		defer s.mu.Unlock()

		restore := fetch.Install(s.engine.Client(), opts.Proxy)
		defer restore()
	}

	signed, err := s.engine.Sign(ctx, document, cfg)
	if err != nil {
		return nil, &EngineError{Err: err}
	}
	return signed, nil
}
