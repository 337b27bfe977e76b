package container

import "sort"

// IntSet is a sorted array of distinct integers used for the SET/INTSET
// encoding (spec.md §4.1). Its serialized size is always exact: every
// member occupies the same fixed-width encoding.
type IntSet struct {
	members []int64
	width   int // bytes per encoded member: 2, 4, or 8
}

// NewIntSet builds an IntSet containing the given members, deduplicated
// and sorted, with the width set to the smallest encoding that fits them
// all (mirroring the real intset's automatic upgrade rule).
func NewIntSet(members ...int64) *IntSet {
	set := &IntSet{width: 2}
	for _, m := range members {
		set.insert(m)
	}
	return set
}

func (s *IntSet) insert(v int64) {
	idx := sort.Search(len(s.members), func(i int) bool { return s.members[i] >= v })
	if idx < len(s.members) && s.members[idx] == v {
		return
	}
	s.members = append(s.members, 0)
	copy(s.members[idx+1:], s.members[idx:])
	s.members[idx] = v
	s.growWidth(v)
}

func (s *IntSet) growWidth(v int64) {
	switch {
	case v > 1<<31-1 || v < -(1<<31):
		s.width = 8
	case (v > 1<<15-1 || v < -(1<<15)) && s.width < 4:
		s.width = 4
	}
}

func (s *IntSet) Count() int { return len(s.members) }

func (s *IntSet) ExactSize() (int64, bool) {
	const header = 8 // encoding + length fields
	return int64(header) + int64(len(s.members)*s.width), true
}

func (s *IntSet) Sample(n int) [][]byte {
	out := make([][]byte, 0, len(s.members))
	for _, m := range s.members {
		out = append(out, encodeInt64(m))
	}
	return sampleSlice(out, n)
}

func encodeInt64(v int64) []byte {
	b := make([]byte, 8)
	u := uint64(v)
	for i := 0; i < 8; i++ {
		b[i] = byte(u >> (8 * i))
	}
	return b
}
