// Package proxy implements the fetch-forwarding endpoint that the request
// interceptor targets. A deployment that routes engine traffic through
// "https://proxy.example.com" serves this handler at /fetch on that host.
package proxy

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// maxResponseBytes caps how much of an upstream response is relayed.
const maxResponseBytes = 8 << 20

// Handler forwards /fetch?url= requests to their upstream target.
type Handler struct {
	client *http.Client
}

// New creates a forwarding handler. A nil client gets a default with a
// request timeout suited to timestamp and revocation endpoints.
func New(client *http.Client) *Handler {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &Handler{client: client}
}

// Fetch relays the incoming request to the URL named in the "url" query
// parameter. The method, body and Content-Type are forwarded; the upstream
// status, Content-Type and body are relayed back.
func (h *Handler) Fetch(w http.ResponseWriter, r *http.Request) {
	target, err := parseTarget(r.URL.Query().Get("url"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	out, err := http.NewRequestWithContext(r.Context(), r.Method, target.String(), r.Body)
	if err != nil {
		http.Error(w, fmt.Sprintf("failed to build upstream request: %v", err), http.StatusBadRequest)
		return
	}
	if ct := r.Header.Get("Content-Type"); ct != "" {
		out.Header.Set("Content-Type", ct)
	}

	resp, err := h.client.Do(out)
	if err != nil {
		http.Error(w, fmt.Sprintf("upstream fetch failed: %v", err), http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); ct != "" {
		w.Header().Set("Content-Type", ct)
	}
	w.WriteHeader(resp.StatusCode)
	io.Copy(w, io.LimitReader(resp.Body, maxResponseBytes)) //nolint:errcheck
}

// parseTarget validates the forwarded URL: it must be absolute and use an
// http or https scheme.
func parseTarget(raw string) (*url.URL, error) {
	if raw == "" {
		return nil, fmt.Errorf("missing url parameter")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid url parameter: %v", err)
	}
	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return nil, fmt.Errorf("unsupported url scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("url parameter must be absolute")
	}
	return u, nil
}
