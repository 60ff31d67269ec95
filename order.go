package gridline

import "slices"

// ResolveOrder produces a stable total order over the native keys of a
// document mapping, honoring an authored display order that may have drifted:
// authored entries that still exist are emitted first in authored sequence
// (duplicates once), then any native keys the authored list does not mention
// are appended in lexicographic order. Every native key appears exactly once;
// authored entries whose key was deleted are dropped. With an empty authored
// list the result is simply the sorted key set, so the output never depends
// on map iteration order.
func ResolveOrder[V any](native map[string]V, authored []string) []string {
	out := make([]string, 0, len(native))
	seen := make(map[string]bool, len(native))
	for _, key := range authored {
		if _, ok := native[key]; ok && !seen[key] {
			seen[key] = true
			out = append(out, key)
		}
	}
	rest := make([]string, 0, len(native)-len(out))
	for key := range native {
		if !seen[key] {
			rest = append(rest, key)
		}
	}
	slices.Sort(rest)
	return append(out, rest...)
}
