// Package fetch reroutes a signing engine's outbound HTTP traffic through a
// caller-supplied passthrough proxy for the duration of one signing call.
//
// The engine performs its timestamp, revocation and chain fetches through a
// single http.Client; Install swaps that client's transport for a rewriting
// one and hands back a restore function. The restore is idempotent and always
// returns the client to its exact pre-install transport, so no rerouting
// outlives the call that requested it.
package fetch

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/remiblancher/padsign/internal/options"
)

// RestoreFunc reinstates the transport that was active before Install.
// Invoking it more than once is safe; only the first call has an effect.
type RestoreFunc func()

// Install wraps the client's transport with proxy routing and returns the
// restore function. Exactly one restore is expected per install, on every
// exit path of the signing call.
//
// The swap mutates shared client state: callers must not interleave two
// installs with different proxies on the same client.
func Install(client *http.Client, proxy *options.ProxyConfig) RestoreFunc {
	prev := client.Transport
	client.Transport = NewTransport(prev, proxy)

	var once sync.Once
	return func() {
		once.Do(func() {
			client.Transport = prev
		})
	}
}

// Transport rewrites outbound requests to the proxy's /fetch endpoint.
type Transport struct {
	base    string // proxy origin, trailing slash trimmed
	headers map[string]string
	next    http.RoundTripper
}

// NewTransport builds the rewriting transport around next. A nil next falls
// back to http.DefaultTransport.
func NewTransport(next http.RoundTripper, proxy *options.ProxyConfig) *Transport {
	if next == nil {
		next = http.DefaultTransport
	}
	return &Transport{
		base:    strings.TrimRight(proxy.BaseURL, "/"),
		headers: proxy.Headers,
		next:    next,
	}
}

// RoundTrip implements http.RoundTripper. Requests that already target the
// proxy, or whose scheme is neither http nor https, pass through unmodified.
// Everything else is rewritten to {base}/fetch?url={percent-encoded target},
// with the proxy's headers taking precedence over headers the engine set.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.URL.Scheme != "http" && req.URL.Scheme != "https" {
		return t.next.RoundTrip(req)
	}

	target := req.URL.String()
	if target == t.base || strings.HasPrefix(target, t.base+"/") {
		return t.next.RoundTrip(req)
	}

	rewritten, err := url.Parse(RewriteURL(t.base, target))
	if err != nil {
		return nil, fmt.Errorf("failed to rewrite %s: %w", target, err)
	}

	out := req.Clone(req.Context())
	out.URL = rewritten
	out.Host = ""
	for k, v := range t.headers {
		out.Header.Set(k, v)
	}

	return t.next.RoundTrip(out)
}

// RewriteURL returns the proxied form of target under base. The base's
// trailing slash is trimmed and the target is percent-encoded as a single
// query value.
func RewriteURL(base, target string) string {
	return strings.TrimRight(base, "/") + "/fetch?url=" + url.QueryEscape(target)
}
