package container

// ZipList is a compact sequence of elements serialized back to back. Real
// ziplists (and their quicklist-node-of-ziplists successor, listpack) pack
// entries with a length-prefix encoding; this stand-in keeps the entries
// as a slice of byte slices and reports the serialized size with a fixed
// per-entry overhead, which is exact in the sense spec.md §4.9 requires:
// the blob has a known serialized length, not merely a sampled average.
type ZipList struct {
	entries [][]byte
}

// NewZipList builds a ZipList containing the given entries in order.
func NewZipList(entries ...[]byte) *ZipList {
	return &ZipList{entries: entries}
}

func (z *ZipList) Count() int { return len(z.entries) }

func (z *ZipList) ExactSize() (int64, bool) {
	const header = 10 // zlbytes + zltail + zllen, matching real ziplist header width
	total := int64(header) + 1 // +1 for the trailing 0xFF terminator byte
	for _, e := range z.entries {
		total += int64(len(e)) + elementOverhead
	}
	return total, true
}

func (z *ZipList) Sample(n int) [][]byte {
	return sampleSlice(z.entries, n)
}

// Push appends an entry to the tail of the ziplist.
func (z *ZipList) Push(entry []byte) {
	z.entries = append(z.entries, entry)
}
