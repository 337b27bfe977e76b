package vobj

import (
	"math"

	"github.com/google/uuid"
	"github.com/tx469541153/redis-code-reading/container"
)

// Immortal is the reserved refcount value marking a process-lifetime
// shared object (spec.md §3.1): increments and decrements on it are
// no-ops, and it is never mutated or freed. Redis conventionally uses
// INT_MAX; this implementation uses the int64 equivalent so the refcount
// field has headroom that ordinary objects will never reach.
const Immortal int64 = math.MaxInt64

const embStrMaxLen = 44 // spec.md §3.1: "length <= 44" for EMBSTR

// ModuleValue is the opaque extension point for Type == TypeModule
// (spec.md §4.3, §4.9, DESIGN NOTES "Module type"). Free is invoked by
// the refcount destructor (spec.md §4.3); MemUsage is invoked by the
// size estimator (spec.md §4.9) and may be nil, in which case module
// objects contribute 0 bytes beyond the header.
type ModuleValue struct {
	TypeName string
	ID       uuid.UUID
	Value    interface{}
	Free     func(value interface{})
	MemUsage func(value interface{}) int64
}

// Object is the uniform value container described by spec.md §3.1: a
// small header (type, encoding, refcount, eviction metadata) plus either
// an inline payload (EMBSTR, INT) or a pointer to an external container.
//
// The payload fields below are a tagged union in spirit: exactly one of
// them is meaningful for any given (typ, enc) pair, selected by
// checkLegalPair's table. This mirrors DESIGN NOTES §9's "header struct
// plus a payload union" option rather than a single type-erased pointer,
// so accessors can be statically typed instead of doing interface
// assertions on every read.
type Object struct {
	typ Type
	enc Encoding

	refcount int64
	lru      uint32 // 24 bits meaningful (spec.md §3.1)

	intVal int64 // EncInt payload

	embLen int            // EncEmbStr payload length, <= embStrMaxLen
	embBuf [embStrMaxLen]byte

	raw *rawString // EncRaw payload

	agg container.Aggregate // LIST/SET/ZSET/HASH aggregate payload

	module *ModuleValue // TypeModule payload
}

// Type returns the object's logical value type.
func (o *Object) Type() Type { return o.typ }

// Encoding returns the object's current concrete encoding.
func (o *Object) Encoding() Encoding { return o.enc }

// Refcount returns the current reference count, or Immortal.
func (o *Object) Refcount() int64 { return o.refcount }

// LRU returns the raw 24-bit eviction-metadata word (spec.md §3.1):
// either a minute-resolution LRU timestamp, or (LFU mode) a packed
// 16-bit-minute/8-bit-counter pair.
func (o *Object) LRU() uint32 { return o.lru & 0x00FFFFFF }

// IntVal returns the EncInt payload. It traps if the object is not
// STRING/INT (spec.md §4.7-style "wrong type" contract violation).
func (o *Object) IntVal() int64 {
	if o.typ != TypeString || o.enc != EncInt {
		Trap("IntVal called on non-INT object (type=%s, encoding=%s)", o.typ, o.enc)
	}
	return o.intVal
}

// StringBytes returns the byte content of a STRING object in any
// encoding, materializing INT to its decimal form on the fly. It traps
// for non-STRING objects.
func (o *Object) StringBytes() []byte {
	if o.typ != TypeString {
		Trap("StringBytes called on non-STRING object (type=%s)", o.typ)
	}
	switch o.enc {
	case EncRaw:
		return o.raw.Bytes()
	case EncEmbStr:
		return o.embBuf[:o.embLen]
	case EncInt:
		return appendInt64(nil, o.intVal)
	default:
		Trap("unknown STRING encoding: %s", o.enc)
		return nil
	}
}

// Container returns the aggregate payload for LIST/SET/ZSET/HASH
// objects. It traps for STRING/MODULE objects.
func (o *Object) Container() container.Aggregate {
	if o.typ == TypeString || o.typ == TypeModule {
		Trap("Container called on %s object", o.typ)
	}
	return o.agg
}

// Module returns the module payload for TypeModule objects. It traps
// otherwise.
func (o *Object) Module() *ModuleValue {
	if o.typ != TypeModule {
		Trap("Module called on non-MODULE object (type=%s)", o.typ)
	}
	return o.module
}

// newHeader builds a freshly allocated header with refcount 1 and the
// current eviction-clock value, performing the legality check of
// spec.md §4.1. It is the single construction point every factory
// function in string.go and the container factories in this package
// funnel through.
func newHeader(t Type, e Encoding) *Object {
	checkLegalPair(t, e)
	return &Object{typ: t, enc: e, refcount: 1, lru: currentLRU()}
}

// NewAggregate wraps an already-built container.Aggregate in an Object
// of the given type/encoding, for LIST/SET/ZSET/HASH values. The caller
// is responsible for having chosen a container concretely implementing
// the declared encoding (e.g. a *container.ZipList for EncZipList).
func NewAggregate(t Type, e Encoding, agg container.Aggregate) *Object {
	o := newHeader(t, e)
	o.agg = agg
	return o
}

// NewModule wraps a module value. encoding is unused for MODULE objects
// (spec.md §4.1) and is not stored.
func NewModule(typeName string, value interface{}, free func(interface{}), memUsage func(interface{}) int64) *Object {
	o := newHeader(TypeModule, EncRaw) // encoding field is don't-care for MODULE
	o.module = &ModuleValue{
		TypeName: typeName,
		ID:       uuid.New(),
		Value:    value,
		Free:     free,
		MemUsage: memUsage,
	}
	return o
}
