package vobj

import (
	"strconv"

	"github.com/tx469541153/redis-code-reading/pools"
)

// CreateRawString builds a STRING/RAW object owning a copy of b
// (spec.md §4.4).
func CreateRawString(b []byte) *Object {
	o := newHeader(TypeString, EncRaw)
	o.raw = newRawString(b)
	return o
}

// CreateEmbeddedString builds a STRING/EMBSTR object. b must be no
// longer than embStrMaxLen; callers needing the automatic length-based
// choice should use CreateString instead.
func CreateEmbeddedString(b []byte) *Object {
	if len(b) > embStrMaxLen {
		Trap("CreateEmbeddedString: %d bytes exceeds EMBSTR limit of %d", len(b), embStrMaxLen)
	}
	o := newHeader(TypeString, EncEmbStr)
	o.embLen = copy(o.embBuf[:], b)
	return o
}

// CreateString builds a STRING object, choosing EMBSTR for byte strings
// of length <= 44 and RAW otherwise (spec.md §4.4).
func CreateString(b []byte) *Object {
	if len(b) <= embStrMaxLen {
		return CreateEmbeddedString(b)
	}
	return CreateRawString(b)
}

// CreateStringFromInt builds a STRING object representing v, per
// spec.md §4.4: an interned shared integer when v is in range and the
// pool exists, otherwise a plain INT object (every int64 fits the INT
// encoding's payload slot in this implementation, since Go's int64 is
// already the widest integer type vobj models — there is no RAW
// fallback path for "out of range" the way the C `long` source has one).
func CreateStringFromInt(v int64) *Object {
	if shared := sharedInt(v); shared != nil && !currentPolicy.NoSharedIntegers {
		return shared
	}
	o := newHeader(TypeString, EncInt)
	o.intVal = v
	return o
}

// CreateStringFromLongDouble renders v and builds a STRING object from
// the rendering (spec.md §4.4). humanFriendly selects a fixed-point
// format with trailing zeroes trimmed; otherwise a high-precision
// (scientific) format is used. Go's widest float is float64; see
// SPEC_FULL.md §5.2 for why this implementation does not attempt to
// model the source's `long double`.
func CreateStringFromLongDouble(v float64, humanFriendly bool) *Object {
	sb := pools.GetStringBuilder()
	defer pools.PutStringBuilder(sb)

	if humanFriendly {
		sb.WriteString(TrimFloatString(strconv.FormatFloat(v, 'f', -1, 64)))
	} else {
		sb.WriteString(strconv.FormatFloat(v, 'g', 17, 64))
	}
	return CreateString([]byte(sb.String()))
}

// TrimFloatString trims trailing fractional zeroes (and a bare trailing
// '.') from a fixed-point float rendering, e.g. "3.140000" -> "3.14",
// "5.000000" -> "5".
func TrimFloatString(s string) string {
	if !containsByte(s, '.') {
		return s
	}
	end := len(s)
	for end > 0 && s[end-1] == '0' {
		end--
	}
	if end > 0 && s[end-1] == '.' {
		end--
	}
	return s[:end]
}

func containsByte(s string, b byte) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return true
		}
	}
	return false
}

// DupString returns a fresh, refcount-1 copy of o with the same
// encoding (spec.md §4.4). Duplicating an INT-encoded string never
// re-interns, even when the value falls in the shared pool's range
// (spec.md's Open Question, resolved in SPEC_FULL.md §5.1 by preserving
// the source's non-interning behavior).
func DupString(o *Object) *Object {
	if o.typ != TypeString {
		Trap("DupString called on non-STRING object (type=%s)", o.typ)
	}
	switch o.enc {
	case EncInt:
		dup := newHeader(TypeString, EncInt)
		dup.intVal = o.intVal
		return dup
	case EncEmbStr:
		return CreateEmbeddedString(o.embBuf[:o.embLen])
	case EncRaw:
		return CreateRawString(o.raw.Bytes())
	default:
		Trap("DupString: unknown STRING encoding %s", o.enc)
		return nil
	}
}

// GetDecoded yields a string-form view of o (spec.md §4.6). For RAW and
// EMBSTR it returns o itself with an incremented refcount. For INT it
// renders the integer into a new EMBSTR/RAW object (via CreateString's
// length rule) owning that rendering. It traps for non-STRING objects.
func GetDecoded(o *Object) *Object {
	if o.typ != TypeString {
		Trap("GetDecoded called on non-STRING object (type=%s)", o.typ)
	}
	if o.enc == EncInt {
		return CreateString(appendInt64(nil, o.intVal))
	}
	Incr(o)
	return o
}

// FromInt64 formats v in base 10, the dynamic-string-service analogue of
// spec.md §6.1's "from_int" consumed operation.
func FromInt64(v int64) []byte {
	return appendInt64(nil, v)
}
