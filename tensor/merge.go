package tensor

import (
	"github.com/google/btree"
	"github.com/lab-cosmo/metatensor-core/labels"
)

// lessRows implements the lexicographic-ascending ordering normative for
// merged sample/gradient-sample sets (spec §4.E.7).
func lessRows(a, b []labels.Value) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return len(a) < len(b)
}

// sortedUniqueRows deduplicates rows and returns them in lexicographic
// ascending order. Construction goes through a btree rather than sort.Slice
// plus a manual dedup pass so identical rows contributed by different
// source blocks collapse as they are inserted (spec §4.E.4/§4.E.5: "collect
// into a set ordered lexicographically ascending"); grounded on the
// example pack's use of github.com/google/btree for sorted in-memory sets
// (see AKJUS-bsc-erigon/go.mod).
func sortedUniqueRows(rows [][]labels.Value) [][]labels.Value {
	tree := btree.NewG(32, func(a, b []labels.Value) bool {
		return lessRows(a, b)
	})

	for _, r := range rows {
		tree.ReplaceOrInsert(r)
	}

	out := make([][]labels.Value, 0, tree.Len())
	tree.Ascend(func(item []labels.Value) bool {
		out = append(out, item)
		return true
	})

	return out
}
