package auth

import "regexp"

// tokenShape matches three non-empty dot-separated base64url segments.
var tokenShape = regexp.MustCompile(`^[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+$`)

// LooksLikeToken is the lightweight structural check applied before a credential is
// sent to the identity provider. It does not decode or verify anything.
func LooksLikeToken(credential string) bool {
	return len(credential) <= maxTokenLength && tokenShape.MatchString(credential)
}

// maxTokenLength bounds what we are willing to forward upstream.
const maxTokenLength = 8192
