package vobj

// sharedIntegers holds the interned immortal STRING/INT pool of spec.md
// §3.3: one object per integer in [0, N), initialized once at process
// start and never grown. sharedPoolSize is set by Init; until Init runs,
// the pool is empty and CreateStringFromInt falls back to creating an
// ordinary (non-shared) INT or RAW object, same as if shared-integer
// interning were disabled by policy.
var sharedIntegers []*Object

// sharedPoolSize records the configured pool bound, used by TryEncoding
// (spec.md §4.5 rule 4) to decide whether a given value is eligible for
// interning.
var sharedPoolSize int

// Init builds the shared-integer pool, per spec.md §3.3 and §5's
// "initialized exactly once before any... thread can observe it"
// contract. Call once at process start, before any object is created.
// Re-calling Init replaces the pool; existing references to the old
// pool's objects remain valid (they are still ordinary immortal
// objects), they are simply no longer returned by future lookups.
func Init(poolSize int) {
	pool := make([]*Object, poolSize)
	for i := range pool {
		o := newHeader(TypeString, EncInt)
		o.intVal = int64(i)
		o.refcount = Immortal
		pool[i] = o
	}
	sharedIntegers = pool
	sharedPoolSize = poolSize
}

// sharedInt returns the interned object for v if v is in range and the
// pool has been initialized, or nil otherwise.
func sharedInt(v int64) *Object {
	if sharedIntegers == nil || v < 0 || v >= int64(sharedPoolSize) {
		return nil
	}
	return sharedIntegers[v]
}

// SharedPoolSize returns the configured size of the shared-integer pool.
func SharedPoolSize() int { return sharedPoolSize }

// Canned reply strings used by the MEMORY/OBJECT command surface
// (spec.md §6.1's reply-channel constants, §3.3's "small set of canned
// reply strings"). These are plain Go strings rather than Objects: the
// reply channel (api package) deals in HTTP/JSON payloads, not in the
// value-object wire format, so interning them as *Object would add a
// layer nothing consumes.
const (
	ReplyOK           = "OK"
	ReplyWrongType    = "WRONGTYPE Operation against a key holding the wrong kind of value"
	ReplySyntaxErr    = "ERR syntax error"
	ReplyNotSupported = "MALLOC-STATS not supported by allocator"
)
