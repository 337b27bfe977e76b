// Package clock is the global eviction clock consumed by vobj (spec.md
// §6.1 "Global clock": lru_clock()/lfu_minutes(), and §6.1 "Eviction
// policy flags"). It is a deliberately small external collaborator: the
// concrete sampler, maxmemory bookkeeping, and eviction loop all live
// outside this subsystem's scope (spec.md §1).
package clock

import (
	"sync/atomic"
	"time"

	"github.com/tx469541153/redis-code-reading/config"
)

// Policy mirrors spec.md §6.1's eviction policy flags: LFU, LRU, and the
// derived "no shared integers" flag used by vobj's try_encoding (§4.5).
type Policy struct {
	LFU              bool
	LRU              bool
	NoSharedIntegers bool
}

// FromConfig derives a Policy from the configured maxmemory policy name.
func FromConfig(cfg *config.Config) Policy {
	return Policy{
		LFU:              cfg.MaxMemoryPolicy.IsLFU(),
		LRU:              !cfg.MaxMemoryPolicy.IsLFU(),
		NoSharedIntegers: cfg.MaxMemoryPolicy.NoSharedIntegers(),
	}
}

// LRUClock returns a coarse, seconds-resolution wall-clock timestamp for
// the object header's lru field in LRU mode (spec.md §3.1). Callers
// truncate to minute resolution themselves, matching the 24-bit field
// width.
func LRUClock() uint32 {
	return uint32(time.Now().Unix())
}

// LFUMinutes returns the current 16-bit minute counter used for the upper
// bits of the lru field in LFU mode (spec.md §3.1).
func LFUMinutes() uint16 {
	return uint16((time.Now().Unix() / 60) & 0xFFFF)
}

// lfuInitVal is LFU_INIT_VAL from spec.md §3.1: the initial logarithmic
// access counter given to a freshly created object under LFU accounting.
const lfuInitVal = 5

// LFUInitVal returns LFU_INIT_VAL.
func LFUInitVal() uint8 { return lfuInitVal }

// accessCounter is a process-wide monotonic counter exposed for tests that
// need deterministic ordering independent of wall-clock resolution.
var accessCounter int64

// NextAccessOrdinal returns a strictly increasing counter, useful in tests
// that assert "more recently accessed than" without depending on timing.
func NextAccessOrdinal() int64 {
	return atomic.AddInt64(&accessCounter, 1)
}
