package scheduler

import "sort"

// CanonicalSort orders candidates by score descending, then by catalog
// order, then by code. The result is deterministic for equal inputs.
func CanonicalSort(candidates []ScoredCandidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Input.CatalogIndex != b.Input.CatalogIndex {
			return a.Input.CatalogIndex < b.Input.CatalogIndex
		}
		return a.Input.Course.Code < b.Input.Course.Code
	})
}
