// Package tsa is a minimal RFC 3161 client used by engine implementations to
// obtain timestamp tokens. All traffic goes through the supplied HTTP client,
// so proxy interception applies to it like any other engine fetch.
package tsa

import (
	"bytes"
	"context"
	"crypto"
	"fmt"
	"io"
	"net/http"

	"github.com/digitorus/timestamp"

	"github.com/remiblancher/padsign/internal/engine"
)

const (
	requestContentType = "application/timestamp-query"

	// maxResponseSize bounds how much of a TSA response is read.
	maxResponseSize = 1 << 20
)

// Request obtains a timestamp token for the given message from the authority
// described by cfg. The message is hashed with SHA-256 and the authority is
// asked to include its certificate in the token.
func Request(ctx context.Context, client *http.Client, cfg *engine.TimestampConfig, message io.Reader) (*timestamp.Timestamp, error) {
	if cfg == nil || cfg.URL == "" {
		return nil, fmt.Errorf("no timestamp authority configured")
	}

	reqDER, err := timestamp.CreateRequest(message, &timestamp.RequestOptions{
		Hash:         crypto.SHA256,
		Certificates: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build timestamp request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, cfg.URL, bytes.NewReader(reqDER))
	if err != nil {
		return nil, fmt.Errorf("failed to build HTTP request: %w", err)
	}
	httpReq.Header.Set("Content-Type", requestContentType)
	for k, v := range cfg.Headers {
		httpReq.Header.Set(k, v)
	}

	resp, err := client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("timestamp authority unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("timestamp authority returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read timestamp response: %w", err)
	}

	token, err := timestamp.ParseResponse(body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse timestamp response: %w", err)
	}
	return token, nil
}
