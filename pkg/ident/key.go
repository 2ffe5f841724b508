package ident

import "strings"

// Key builds the semantic cache key for an entity from its descriptor parts.
//
// Empty parts are skipped, the rest are joined with "-", lowercased, and
// spaces are replaced with "~". The format matches existing cache files and
// must not change, otherwise every identifier in the library would be
// reissued.
func Key(parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	key := strings.ToLower(strings.Join(nonEmpty, "-"))
	return strings.ReplaceAll(key, " ", "~")
}
