package census

import "sort"

// DefaultTopN is the number of entries kept per volume.
const DefaultTopN = 100

// Rank returns the n largest entries, largest first. Entries of equal size
// keep their discovery order. A non-positive n selects DefaultTopN.
// The input slice is not modified.
func Rank(entries []FileEntry, n int) []FileEntry {
	if n <= 0 {
		n = DefaultTopN
	}

	ranked := make([]FileEntry, len(entries))
	copy(ranked, entries)

	// Sort by size (largest first) and trim to top N
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Size > ranked[j].Size
	})

	if len(ranked) > n {
		ranked = ranked[:n:n]
	}

	return ranked
}
