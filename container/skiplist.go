package container

// SkipList backs the ZSET SKIPLIST encoding: a dict (member -> score) plus
// a skip list ordered by score. Like HashTable, its serialized size is
// sampled rather than computed exactly (spec.md §4.9).
type SkipList struct {
	members [][]byte // encoded member+score pairs
	levels  int      // average skip-list node height; stored, not read by any size or overhead computation
}

// NewSkipList builds a SkipList over pre-encoded member+score entries.
func NewSkipList(levels int, members ...[]byte) *SkipList {
	return &SkipList{members: members, levels: levels}
}

func (s *SkipList) Count() int { return len(s.members) }

func (s *SkipList) ExactSize() (int64, bool) { return 0, false }

func (s *SkipList) Sample(n int) [][]byte {
	return sampleSlice(s.members, n)
}
