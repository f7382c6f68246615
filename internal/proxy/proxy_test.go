package proxy

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func TestFetchForwardsGet(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("upstream method = %s, want GET", r.Method)
		}
		w.Header().Set("Content-Type", "application/timestamp-reply")
		w.Write([]byte("token-bytes"))
	}))
	defer upstream.Close()

	h := New(nil)
	req := httptest.NewRequest(http.MethodGet, "/fetch?url="+url.QueryEscape(upstream.URL+"/ts"), nil)
	rec := httptest.NewRecorder()
	h.Fetch(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/timestamp-reply" {
		t.Fatalf("Content-Type = %q", ct)
	}
	if rec.Body.String() != "token-bytes" {
		t.Fatalf("body = %q", rec.Body.String())
	}
}

func TestFetchForwardsPostBody(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("upstream method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/timestamp-query" {
			t.Errorf("upstream Content-Type = %q", ct)
		}
		body, _ := io.ReadAll(r.Body)
		if string(body) != "tsq-bytes" {
			t.Errorf("upstream body = %q", body)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer upstream.Close()

	h := New(nil)
	req := httptest.NewRequest(http.MethodPost,
		"/fetch?url="+url.QueryEscape(upstream.URL), strings.NewReader("tsq-bytes"))
	req.Header.Set("Content-Type", "application/timestamp-query")
	rec := httptest.NewRecorder()
	h.Fetch(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
}

func TestFetchRelaysUpstreamStatus(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer upstream.Close()

	h := New(nil)
	req := httptest.NewRequest(http.MethodGet, "/fetch?url="+url.QueryEscape(upstream.URL), nil)
	rec := httptest.NewRecorder()
	h.Fetch(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}

func TestFetchRejectsBadTargets(t *testing.T) {
	h := New(nil)
	for _, raw := range []string{
		"",
		"ftp://files.example.com/a",
		"file:///etc/passwd",
		"/relative/path",
	} {
		req := httptest.NewRequest(http.MethodGet, "/fetch?url="+url.QueryEscape(raw), nil)
		rec := httptest.NewRecorder()
		h.Fetch(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("url %q: status = %d, want 400", raw, rec.Code)
		}
	}
}

func TestFetchUnreachableUpstream(t *testing.T) {
	h := New(nil)
	req := httptest.NewRequest(http.MethodGet,
		"/fetch?url="+url.QueryEscape("http://127.0.0.1:1/nothing"), nil)
	rec := httptest.NewRecorder()
	h.Fetch(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}
}
