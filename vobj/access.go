package vobj

import (
	"fmt"
	"math/rand"

	"github.com/tx469541153/redis-code-reading/clock"
)

// IdleSeconds returns seconds since the object was last touched, for
// OBJECT IDLETIME (spec.md §6.2). It traps if the configured policy is
// LFU, per spec.md's "Error if the policy is LFU" (modeled as a trap
// here since callers that ask for IdleSeconds under LFU are themselves
// violating the documented precondition; api/object_handler.go checks
// the policy itself before calling this, so the trap is unreachable from
// the HTTP surface and only fires on a direct misuse).
func (o *Object) IdleSeconds() int64 {
	if currentPolicy.LFU {
		Trap("IdleSeconds called while eviction policy is LFU")
	}
	lastMinute := int64(o.LRU())
	nowMinute := int64(clock.LRUClock() / 60)
	idle := nowMinute - lastMinute
	if idle < 0 {
		idle = 0
	}
	return idle * 60
}

// Freq returns the lower byte of the lru word: the logarithmic access
// frequency counter, for OBJECT FREQ (spec.md §6.2). It traps if the
// configured policy is not LFU.
func (o *Object) Freq() uint8 {
	if !currentPolicy.LFU {
		Trap("Freq called while eviction policy is not LFU")
	}
	return uint8(o.LRU() & 0xFF)
}

// Touch updates the eviction-metadata word to reflect an access,
// matching the bookkeeping a real keyspace GET/lookup performs. In LRU
// mode it refreshes the minute timestamp; in LFU mode it advances the
// logarithmic counter. Immortal objects are never touched (spec.md
// §3.1: "Shared integers... refcount = IMMORTAL" objects have no
// meaningful per-key recency).
func (o *Object) Touch() {
	if o.refcount == Immortal {
		return
	}
	if currentPolicy.LFU {
		counter := o.LRU() & 0xFF
		counter = logIncr(uint8(counter))
		o.lru = uint32(clock.LFUMinutes())<<8 | uint32(counter)
		return
	}
	o.lru = (clock.LRUClock() / 60) & 0x00FFFFFF
}

// logIncr implements the logarithmic counter increment LFU accounting
// uses: the probability of incrementing decreases as the counter grows,
// so frequently accessed keys still distinguish themselves from rarely
// accessed ones within an 8-bit range. A counter already at 255 never
// increments further.
func logIncr(counter uint8) uint8 {
	const lfuLogFactor = 10
	if counter == 255 {
		return counter
	}
	base := float64(counter) - float64(clock.LFUInitVal())
	if base < 0 {
		base = 0
	}
	if rand.Float64() < 1.0/(base*lfuLogFactor+1) {
		counter++
	}
	return counter
}

// appendInt64 renders v in base 10 and appends it to dst, used to
// materialize STRING/INT objects to bytes (spec.md §4.6 get_decoded,
// §4.8 comparator materialization) without an intermediate string
// allocation.
func appendInt64(dst []byte, v int64) []byte {
	return fmt.Appendf(dst, "%d", v)
}
