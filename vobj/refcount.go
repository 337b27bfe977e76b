package vobj

// freed is the sentinel refcount value for an object whose destructor has
// already run. It is distinct from the legitimate transient refcount == 0
// window between ResetRefcount and first registration (spec.md §3.2):
// once freed, any further Incr/Decr is a caller bug and traps, same as a
// negative refcount would.
const freed int64 = -1

// Incr increments the reference count, per spec.md §4.2. A no-op for
// Immortal objects. A refcount of 0 (after ResetRefcount) is accepted;
// a negative (freed) refcount traps.
func Incr(o *Object) {
	if o.refcount == Immortal {
		return
	}
	if o.refcount < 0 {
		Trap("incr on object with negative refcount %d", o.refcount)
	}
	o.refcount++
}

// Decr decrements the reference count, destroying the object when it
// reaches zero, per spec.md §4.2. A no-op for Immortal objects. Traps if
// called on an already-freed or otherwise non-positive-refcount object.
func Decr(o *Object) {
	if o.refcount == Immortal {
		return
	}
	switch {
	case o.refcount == 1:
		destroy(o)
		o.refcount = freed
	case o.refcount <= 0:
		Trap("decr on object with non-positive refcount %d (double free?)", o.refcount)
	default:
		o.refcount--
	}
}

// ResetRefcount sets refcount to 0 and returns o, enabling the idiom of
// handing a freshly created object to code that will itself Incr it
// exactly once (spec.md §4.2). No other call site may set refcount
// directly.
func ResetRefcount(o *Object) *Object {
	o.refcount = 0
	return o
}

// MakeImmortal promotes o to the Immortal sentinel refcount. Per
// spec.md's DESIGN NOTES, this requires refcount == 1 at entry: the
// caller must hold the only reference, since immortal objects are never
// mutated or freed afterward and a second live reference would become a
// silent leak of the ordinary refcount discipline.
func MakeImmortal(o *Object) *Object {
	if o.refcount != 1 {
		Trap("MakeImmortal requires refcount == 1, got %d", o.refcount)
	}
	o.refcount = Immortal
	return o
}

// destroy runs the type-dispatched destructor of spec.md §4.3. Go's
// garbage collector reclaims the Object's own header allocation; destroy
// is responsible for the "inner free" steps the source performs
// explicitly (releasing pointed-to containers, invoking a MODULE's
// registered free callback) which here means releasing references held
// by the payload so they become collectible and any side-effecting
// callback runs exactly once.
func destroy(o *Object) {
	switch o.typ {
	case TypeString:
		destroyString(o)
	case TypeList:
		destroyAggregate(o, EncQuickList, EncZipList)
	case TypeSet:
		destroyAggregate(o, EncHT, EncIntSet)
	case TypeZSet:
		destroyAggregate(o, EncSkipList, EncZipList)
	case TypeHash:
		destroyAggregate(o, EncHT, EncZipList)
	case TypeModule:
		if o.module.Free != nil {
			o.module.Free(o.module.Value)
		}
		o.module = nil
	default:
		Trap("destroy: unknown type %s", o.typ)
	}
}

func destroyString(o *Object) {
	switch o.enc {
	case EncRaw:
		o.raw = nil
	case EncInt, EncEmbStr:
		// no inner allocation beyond the header itself (spec.md §4.3)
	default:
		Trap("destroy: unknown STRING encoding %s", o.enc)
	}
}

func destroyAggregate(o *Object, allowed ...Encoding) {
	for _, e := range allowed {
		if o.enc == e {
			o.agg = nil
			return
		}
	}
	Trap("destroy: unexpected encoding %s for type %s", o.enc, o.typ)
}
