// Package container provides minimal in-memory stand-ins for the aggregate
// containers spec.md §6.1 lists as opaque, out-of-scope collaborators:
// quicklist, ziplist, hash-dictionary, intset, and the sorted-set
// dict+skiplist wrapper. The value-object subsystem only ever calls a
// small, named surface on these (create/release, count/size
// introspection, element sampling) — everything else about how they
// store their elements is their own business.
//
// These implementations exist so the subsystem is runnable end to end;
// they deliberately do not attempt to reproduce the real containers'
// memory layout or algorithmic complexity.
package container

// Aggregate is the consumed-service surface vobj's size estimator (C8,
// spec.md §4.9) needs from any container-backed object.
type Aggregate interface {
	// Count returns the declared number of elements.
	Count() int

	// ExactSize returns the serialized byte size and true when the
	// encoding makes that size knowable without sampling (ziplist,
	// intset - spec.md §4.9 "Exact for... INTSET, ZIPLIST-encoded
	// aggregates"). Returns (0, false) otherwise.
	ExactSize() (int64, bool)

	// Sample returns up to n representative elements, each as their own
	// encoded byte length, for the sampled-size formula E*N/k
	// (spec.md §4.9). Implementations of exact containers may still
	// support Sample; callers only use it when ExactSize reports false.
	Sample(n int) [][]byte
}

// elementOverhead approximates the per-element bookkeeping overhead (next
// pointer, length prefix, refcount-adjacent metadata) each container
// format adds on top of raw element bytes. It is intentionally a single
// shared constant: the exact packing differs by format but the subsystem
// only needs a plausible, consistent order of magnitude.
const elementOverhead = 11

// ElementCost estimates the in-container cost of a single sampled
// element: its own byte length plus the shared per-element overhead.
// Used by vobj's sampled size estimator (spec.md §4.9).
func ElementCost(e []byte) int64 {
	return int64(len(e) + elementOverhead)
}

func sampleSlice(elements [][]byte, n int) [][]byte {
	if n <= 0 || n > len(elements) {
		n = len(elements)
	}
	return elements[:n]
}
