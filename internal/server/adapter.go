package server

import (
	"net/http"
	"strings"
)

// PrefixAdapter strips a fixed routing prefix from inbound request paths
// before dispatch, the way a platform gateway mounts the service under a
// base path. Requests outside the prefix pass through unchanged.
type PrefixAdapter struct {
	prefix string
	next   http.Handler
}

// NewPrefixAdapter wraps next so that "<prefix>/login" is served as "/login".
// An empty or root prefix returns next unwrapped.
func NewPrefixAdapter(prefix string, next http.Handler) http.Handler {
	prefix = strings.TrimSuffix(prefix, "/")
	if prefix == "" {
		return next
	}
	if !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}
	return &PrefixAdapter{prefix: prefix, next: next}
}

func (a *PrefixAdapter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if rest, ok := strings.CutPrefix(r.URL.Path, a.prefix); ok {
		// "/apifoo" must not match prefix "/api"
		if rest == "" || strings.HasPrefix(rest, "/") {
			if rest == "" {
				rest = "/"
			}
			r2 := r.Clone(r.Context())
			r2.URL.Path = rest
			a.next.ServeHTTP(w, r2)
			return
		}
	}
	a.next.ServeHTTP(w, r)
}
