package dashboard

import "strings"

// NormalizeAddr canonicalizes a device network identifier for use as a join
// key. Raw identifiers come in with stray whitespace; absent ones collapse to
// the empty string. Case is kept as-is - the identifiers are IP addresses and
// both sides of every join go through this same function.
func NormalizeAddr(raw *string) string {
	if raw == nil {
		return ""
	}
	return strings.TrimSpace(*raw)
}
