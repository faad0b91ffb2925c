// Package identity derives stable content identifiers from item metadata.
// The output format is part of the external contract: the favorites subsystem
// stores these ids and matches them against future fetches, so the scheme must
// not change between releases.
package identity

import (
	"fmt"
	"hash/fnv"
	"strings"
)

// ContentID returns a deterministic 16-hex-char id for an article, derived
// from its title and source label. Pure function: no timestamps, no randomness.
// Title and source are trimmed and lowercased first, so the same article
// reported by slightly different feed endpoints maps to the same id.
func ContentID(title, source string) string {
	h := fnv.New64a()
	_, _ = h.Write([]byte(normalize(title)))
	_, _ = h.Write([]byte{'\n'})
	_, _ = h.Write([]byte(normalize(source)))
	return fmt.Sprintf("%016x", h.Sum64())
}

// CharCodeSum sums the rune code points of s. It is a weak fold used only for
// deterministic fallback-image selection, not for identity.
func CharCodeSum(s string) int {
	sum := 0
	for _, r := range s {
		sum += int(r)
	}
	return sum
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
