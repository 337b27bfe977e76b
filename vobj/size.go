package vobj

import (
	"unsafe"

	"github.com/tx469541153/redis-code-reading/container"
)

// headerSize is the constant per-object header cost included in every
// estimate_size branch (spec.md §4.9: "Include the header size itself in
// every branch").
var headerSize = int64(unsafe.Sizeof(Object{}))

// EstimateSize returns the approximate byte cost of o, per spec.md §4.9:
// exact for STRING (all encodings), INTSET, and ZIPLIST-encoded
// aggregates; sampled (E*N/k) for HT-, SKIPLIST-, and QUICKLIST-encoded
// aggregates; delegated to the module's registered mem_usage callback
// (or 0) for MODULE. sampleSize == 0 means "sample every element".
func EstimateSize(o *Object, sampleSize int) int64 {
	switch o.typ {
	case TypeString:
		return headerSize + stringPayloadSize(o)
	case TypeModule:
		if o.module.MemUsage != nil {
			return headerSize + o.module.MemUsage(o.module.Value)
		}
		return headerSize
	default:
		agg := o.Container()
		if exact, ok := agg.ExactSize(); ok {
			return headerSize + exact
		}
		return headerSize + sampledAggregateSize(agg, sampleSize)
	}
}

func stringPayloadSize(o *Object) int64 {
	switch o.enc {
	case EncRaw:
		return o.raw.AllocSize()
	case EncEmbStr, EncInt:
		// Co-allocated with (EMBSTR) or stored inline in (INT) the
		// header, already counted in headerSize.
		return 0
	default:
		Trap("stringPayloadSize: unknown STRING encoding %s", o.enc)
		return 0
	}
}

// sampledAggregateSize implements spec.md §4.9's sampling formula: visit
// up to sampleSize elements (0 means all), sum their observed per-element
// cost E, and scale by N/k where N is the declared element count and k
// is the number of elements actually sampled.
func sampledAggregateSize(agg container.Aggregate, sampleSize int) int64 {
	n := agg.Count()
	if n == 0 {
		return 0
	}

	elements := agg.Sample(sampleSize)
	k := len(elements)
	if k == 0 {
		return 0
	}

	var total int64
	for _, e := range elements {
		total += container.ElementCost(e)
	}

	return total * int64(n) / int64(k)
}
