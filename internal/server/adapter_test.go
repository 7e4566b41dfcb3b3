package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func echoPathHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(r.URL.Path))
	})
}

func TestPrefixAdapter(t *testing.T) {
	cases := []struct {
		name     string
		prefix   string
		path     string
		wantPath string
	}{
		{"strips prefix", "/api", "/api/login", "/login"},
		{"prefix without leading slash", "api", "/api/login", "/login"},
		{"trailing slash in prefix", "/api/", "/api/exchange-rates", "/exchange-rates"},
		{"exact prefix becomes root", "/api", "/api", "/"},
		{"non-matching path passes through", "/api", "/health", "/health"},
		{"partial segment does not match", "/api", "/apifoo", "/apifoo"},
		{"nested prefix", "/functions/app", "/functions/app/conversions", "/conversions"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewPrefixAdapter(tc.prefix, echoPathHandler())

			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))

			if got := w.Body.String(); got != tc.wantPath {
				t.Fatalf("dispatched path = %q, want %q", got, tc.wantPath)
			}
		})
	}
}

func TestPrefixAdapter_EmptyPrefixUnwrapped(t *testing.T) {
	inner := echoPathHandler()
	if got := NewPrefixAdapter("", inner); got == nil {
		t.Fatal("expected handler")
	}

	w := httptest.NewRecorder()
	NewPrefixAdapter("", inner).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/login", nil))
	if w.Body.String() != "/login" {
		t.Fatalf("path = %q, want /login", w.Body.String())
	}
}
