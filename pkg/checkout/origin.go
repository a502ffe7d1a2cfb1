package checkout

import "strings"

// ResolveOrigin derives the canonical base URL from the inbound Host header.
// An absent host means local development and falls back to plain http.
func ResolveOrigin(host string) string {
	scheme, resolvedHost := resolveOrigin(host)
	return scheme + "://" + resolvedHost
}

func resolveOrigin(host string) (string, string) {
	trimmed := strings.TrimSpace(host)
	if trimmed == "" {
		return schemeInsecure, DefaultDevHost
	}
	return schemeSecure, trimmed
}
