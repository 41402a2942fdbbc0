package tensor

import (
	"strconv"
	"strings"

	"github.com/lab-cosmo/metatensor-core/labels"
	"github.com/lab-cosmo/metatensor-core/mtserror"
)

// resolveVariables validates that every name in variables is a column of
// names, and returns the indices of the moved columns (varIdx, in the
// order requested) and the remaining columns (remainIdx, in their
// original relative order), per spec §4.E.3.
func resolveVariables(names []string, variables []string) (varIdx, remainIdx []int, err error) {
	varIdx = make([]int, len(variables))
	moved := make(map[int]struct{}, len(variables))

	for i, v := range variables {
		col := indexOf(names, v)
		if col < 0 {
			return nil, nil, mtserror.InvalidParameterf(ErrUnknownSelectionColumn,
				"%q is not one of the keys labels names [%s]", v, strings.Join(names, ", "))
		}

		varIdx[i] = col
		moved[col] = struct{}{}
	}

	for i := range names {
		if _, ok := moved[i]; !ok {
			remainIdx = append(remainIdx, i)
		}
	}

	return varIdx, remainIdx, nil
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}

	return -1
}

// splitKeys partitions keys' rows into merge groups by their projection
// onto remainIdx, in first-seen order (spec §4.E.3). newKeys holds one row
// per group (the distinct remainIdx projections); groups[i] lists the
// original row/block indices belonging to the i-th group, in key order.
func splitKeys(keys *labels.Table, remainIdx []int) (newKeys *labels.Table, groups [][]int, err error) {
	remainNames := make([]string, len(remainIdx))
	for i, c := range remainIdx {
		remainNames[i] = keys.Names()[c]
	}

	seen := make(map[string]int)
	var order [][]labels.Value

	for i := 0; i < keys.Count(); i++ {
		proj := keys.Project(keys.Row(i), remainIdx)
		enc := encodeRow(proj)

		pos, ok := seen[enc]
		if !ok {
			pos = len(groups)
			seen[enc] = pos
			groups = append(groups, nil)
			order = append(order, proj)
		}

		groups[pos] = append(groups[pos], i)
	}

	if len(remainIdx) == 0 && len(groups) > 0 {
		// Every sparse key variable is being moved: there is nothing left
		// to key blocks by, so the remaining keys table is the singleton
		// table, not an arity-0 table with one empty row (spec §4.E.3).
		// With no key rows there are no groups, and the builder below
		// yields an empty arity-0 table instead, keeping one row per group.
		return labels.Singleton(), groups, nil
	}

	b := labels.NewBuilder(remainNames)
	for _, r := range order {
		if err := b.Add(r); err != nil {
			return nil, nil, err
		}
	}

	newKeys, err = b.Finish()
	if err != nil {
		return nil, nil, err
	}

	return newKeys, groups, nil
}

func encodeRow(r []labels.Value) string {
	var sb strings.Builder
	for _, v := range r {
		sb.WriteString(strconv.FormatInt(int64(v.Int32()), 10))
		sb.WriteByte(',')
	}

	return sb.String()
}
