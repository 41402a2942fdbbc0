package labels

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// rowIndex maps a row's xxhash bucket key to the list of row indices sharing
// that key, so Table.Position is amortized O(1): hash the row, scan the
// (expected small, O(1)) bucket, compare candidates for an exact match.
//
// Built lazily on first Position call and frozen thereafter — Table rows
// never change after Builder.Finish, so there is nothing to invalidate.
type rowIndex struct {
	buckets map[uint64][]int
}

func newRowIndex(rows []row) *rowIndex {
	idx := &rowIndex{buckets: make(map[uint64][]int, len(rows))}
	for i, r := range rows {
		key := hashRow(r)
		idx.buckets[key] = append(idx.buckets[key], i)
	}

	return idx
}

// hashRow hashes a row's encoded bytes with xxhash to a 64-bit bucket key.
// Collisions are expected and handled by the caller comparing candidate
// rows for exact equality; the hash only needs to be a good bucket
// discriminator, not collision-free.
func hashRow(r row) uint64 {
	buf := make([]byte, 4*len(r))
	for i, v := range r {
		binary.LittleEndian.PutUint32(buf[4*i:], uint32(v))
	}

	return xxhash.Sum64(buf)
}

// position returns the index of r within rows, or -1 if absent.
func (idx *rowIndex) position(rows []row, r row) int {
	key := hashRow(r)
	for _, candidate := range idx.buckets[key] {
		if rows[candidate].equal(r) {
			return candidate
		}
	}

	return -1
}
