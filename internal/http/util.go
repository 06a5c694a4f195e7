package httpx

import (
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/stayhub/stayhub-web/internal/util"
)

// parseIntQuery returns the integer value of a query param or a default.
// It is tolerant of missing/invalid values.
func parseIntQuery(r *http.Request, key string, def int) int {
	if v := r.URL.Query().Get(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

// pageFromRequest parses page and page_size and clamps them.
func pageFromRequest(r *http.Request) util.Page {
	return util.NewPage(parseIntQuery(r, "page", 1), parseIntQuery(r, "page_size", util.DefaultPageSize))
}

// clientIP returns the remote address host. Proxies are expected to rewrite RemoteAddr.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// isSecureRequest reports whether the browser reached us over TLS.
func isSecureRequest(r *http.Request) bool {
	return r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}

// wantsJSON reports whether the caller is a script rather than a navigating browser.
func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json") ||
		strings.EqualFold(r.Header.Get("X-Requested-With"), "XMLHttpRequest")
}
