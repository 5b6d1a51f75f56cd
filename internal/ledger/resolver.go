package ledger

import "strings"

// Resolve maps a canonical field onto the best-matching header, trying in
// order: case-insensitive exact match on the canonical name, exact match on
// any alias, then substring containment of the canonical name or an alias
// inside a header. Ties break by declaration order of aliases and headers.
// Returns ("", false) when nothing matches.
func Resolve(f Field, headers []string) (string, bool) {
	if i, ok := ResolveIndex(f, headers); ok {
		return strings.TrimSpace(headers[i]), true
	}
	return "", false
}

// ResolveIndex is Resolve returning the header's position instead of its name.
func ResolveIndex(f Field, headers []string) (int, bool) {
	canonical := strings.TrimSpace(string(f))

	// exact match on the canonical name
	for i, h := range headers {
		if strings.EqualFold(strings.TrimSpace(h), canonical) {
			return i, true
		}
	}

	// exact match on an alias
	for _, alt := range aliases[f] {
		alt = strings.TrimSpace(alt)
		for i, h := range headers {
			if strings.EqualFold(strings.TrimSpace(h), alt) {
				return i, true
			}
		}
	}

	// substring fallback: canonical or alias contained in a header
	terms := append([]string{canonical}, aliases[f]...)
	for _, term := range terms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" {
			continue
		}
		for i, h := range headers {
			if strings.Contains(strings.ToLower(h), term) {
				return i, true
			}
		}
	}

	return -1, false
}
