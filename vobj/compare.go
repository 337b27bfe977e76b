package vobj

import (
	"bytes"
	"strings"

	"github.com/tx469541153/redis-code-reading/pools"
)

// materialize returns the byte content to compare for a STRING object,
// using a pooled scratch buffer for INT encoding to avoid an allocation
// on the comparator hot path (spec.md §4.8: "a small stack buffer of
// >= 21 bytes" for INT). The returned slice is only valid until the
// matching pools.PutSmallBuffer call; callers that need to retain the
// bytes must copy them first.
func materialize(o *Object, scratch *[]byte) []byte {
	if o.enc != EncInt {
		return o.StringBytes()
	}
	*scratch = appendInt64((*scratch)[:0], o.intVal)
	return *scratch
}

// CompareBinary compares a and b by lexicographic byte order, per
// spec.md §4.8: if equal on the shared prefix, the longer string is
// greater. Identity (a == b) short-circuits to 0.
func CompareBinary(a, b *Object) int {
	if a == b {
		return 0
	}
	sa := pools.GetSmallBuffer()
	sb := pools.GetSmallBuffer()
	defer pools.PutSmallBuffer(sa)
	defer pools.PutSmallBuffer(sb)

	return bytes.Compare(materialize(a, sa), materialize(b, sb))
}

// CompareCollated compares a and b after materializing both to bytes
// (spec.md §4.8) using strings.Compare. Go's standard library carries no
// locale/collation facility outside golang.org/x/text (not part of the
// teacher's or the example pack's stack, see DESIGN.md), so no
// locale-aware collation is performed: strings.Compare orders by bytes,
// and the result always has the same sign as CompareBinary's.
func CompareCollated(a, b *Object) int {
	if a == b {
		return 0
	}
	sa := pools.GetSmallBuffer()
	sb := pools.GetSmallBuffer()
	defer pools.PutSmallBuffer(sa)
	defer pools.PutSmallBuffer(sb)

	return strings.Compare(string(materialize(a, sa)), string(materialize(b, sb)))
}

// Equal reports whether a and b hold the same STRING value (spec.md
// §4.8): if both are INT encoded, compares payload integers directly;
// otherwise delegates to CompareBinary.
func Equal(a, b *Object) bool {
	if a == b {
		return true
	}
	if a.enc == EncInt && b.enc == EncInt {
		return a.intVal == b.intVal
	}
	return CompareBinary(a, b) == 0
}
