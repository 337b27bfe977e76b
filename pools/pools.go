// Package pools provides reusable buffers and builders to keep the hot
// paths of the value-object subsystem (string creation, numeric rendering,
// comparator materialization) allocation-light.
package pools

import (
	"strings"
	"sync"
)

// SmallBufferPool holds scratch byte buffers sized for comparator
// materialization (spec.md §4.8: "a small stack buffer of >= 21 bytes" for
// rendering an INT encoding to bytes) and numeric formatting.
var SmallBufferPool = sync.Pool{
	New: func() interface{} {
		b := make([]byte, 0, 64)
		return &b
	},
}

// StringBuilderPool provides reusable strings.Builder values for rendering
// long-double / float values (spec.md §4.4 create_string_from_long_double).
var StringBuilderPool = sync.Pool{
	New: func() interface{} {
		return new(strings.Builder)
	},
}

// GetSmallBuffer returns a zero-length scratch buffer with capacity to hold
// the decimal rendering of any int64/float64 without reallocating.
func GetSmallBuffer() *[]byte {
	b := SmallBufferPool.Get().(*[]byte)
	*b = (*b)[:0]
	return b
}

// PutSmallBuffer returns a scratch buffer to the pool.
func PutSmallBuffer(b *[]byte) {
	if cap(*b) > 4096 {
		return // don't pool anything abnormally large
	}
	SmallBufferPool.Put(b)
}

// GetStringBuilder returns a reset strings.Builder.
func GetStringBuilder() *strings.Builder {
	sb := StringBuilderPool.Get().(*strings.Builder)
	sb.Reset()
	return sb
}

// PutStringBuilder returns a strings.Builder to the pool.
func PutStringBuilder(sb *strings.Builder) {
	StringBuilderPool.Put(sb)
}
