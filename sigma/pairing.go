package sigma

// IndexPair refers to two rows of the per-collision candidate slice.
type IndexPair struct {
	I, J int
}

// CombinationsFull enumerates the full cross product of an m-row and an n-row
// role: m*n pairs. Used when the two roles are distinguishable.
func CombinationsFull(m, n int) []IndexPair {
	pairs := make([]IndexPair, 0, m*n)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			pairs = append(pairs, IndexPair{i, j})
		}
	}
	return pairs
}

// CombinationsStrictlyUpper enumerates every unordered pair of distinct rows
// within one role: n*(n-1)/2 pairs, no self-pairs, no swapped duplicates.
func CombinationsStrictlyUpper(n int) []IndexPair {
	pairs := make([]IndexPair, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, IndexPair{i, j})
		}
	}
	return pairs
}
