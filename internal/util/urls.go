package util //nolint:revive // package name util hosts small shared helpers

import (
	"net"
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// SafeRedirectPath returns a same-origin relative path (with query) for p, or fallback when p
// could leave the site. Absolute URLs, scheme-relative URLs and backslash tricks are rejected.
func SafeRedirectPath(p, fallback string) string {
	p = strings.TrimSpace(p)
	if p == "" || !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") || strings.Contains(p, `\`) {
		return fallback
	}
	for _, r := range p {
		if r < 0x20 || r == 0x7f {
			return fallback
		}
	}
	u, err := url.Parse(p)
	if err != nil || u.Scheme != "" || u.Host != "" || u.User != nil {
		return fallback
	}
	out := u.EscapedPath()
	if out == "" || !strings.HasPrefix(out, "/") || strings.HasPrefix(out, "//") {
		return fallback
	}
	if u.RawQuery != "" {
		out += "?" + u.RawQuery
	}
	return out
}

// RegistrableDomain returns the eTLD+1 for host (port stripped, lower-cased), or "" when host
// is empty, an IP, or itself a public suffix.
func RegistrableDomain(host string) string {
	host = strings.ToLower(strings.TrimSpace(host))
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	host = strings.TrimSuffix(host, ".")
	if host == "" || net.ParseIP(strings.Trim(host, "[]")) != nil {
		return ""
	}
	d, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return ""
	}
	return d
}

// ReferrerDomain extracts the registrable domain from a Referer header value.
func ReferrerDomain(referer string) string {
	if referer == "" {
		return ""
	}
	u, err := url.Parse(referer)
	if err != nil {
		return ""
	}
	return RegistrableDomain(u.Host)
}

// IsPublicSuffix reports whether domain is a public suffix such as "com" or "co.kr".
func IsPublicSuffix(domain string) bool {
	domain = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(domain)), ".")
	if domain == "" {
		return false
	}
	suffix, _ := publicsuffix.PublicSuffix(domain)
	return suffix == domain
}
