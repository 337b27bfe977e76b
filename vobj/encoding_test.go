package vobj

import "testing"

func TestTryEncodingPromotesToInt(t *testing.T) {
	resetForTest()

	o := CreateString([]byte("12345"))
	promoted := TryEncoding(o)
	if promoted.Encoding() != EncInt {
		t.Fatalf("encoding = %s, want int", promoted.Encoding())
	}
	if promoted.IntVal() != 12345 {
		t.Fatalf("IntVal() = %d, want 12345", promoted.IntVal())
	}
}

func TestTryEncodingUsesSharedPoolForSmallValues(t *testing.T) {
	resetForTest()

	o := CreateString([]byte("42"))
	promoted := TryEncoding(o)
	if promoted.Refcount() != Immortal {
		t.Fatal("expected try_encoding to return the interned shared 42")
	}
}

func TestTryEncodingPromotesToEmbStr(t *testing.T) {
	resetForTest()

	raw := CreateRawString([]byte("not a number but short"))
	promoted := TryEncoding(raw)
	if promoted.Encoding() != EncEmbStr {
		t.Fatalf("encoding = %s, want embstr", promoted.Encoding())
	}
}

func TestTryEncodingIsFixedPoint(t *testing.T) {
	resetForTest()

	o := CreateString([]byte("12345678901")) // not in shared pool range, n<=20
	once := TryEncoding(o)
	twice := TryEncoding(once)
	if once != twice {
		t.Fatal("TryEncoding(TryEncoding(o)) must be a fixed point")
	}
}

func TestTryEncodingLeavesSharedObjectsAlone(t *testing.T) {
	resetForTest()

	o := CreateRawString([]byte("12345678901"))
	Incr(o) // refcount now 2: shared
	promoted := TryEncoding(o)
	if promoted != o || promoted.Encoding() != EncRaw {
		t.Fatal("a shared (refcount > 1) object must not be rewritten")
	}
}

func TestTryEncodingTrimsRawWithExcessSlack(t *testing.T) {
	resetForTest()

	// A RAW string long enough to stay RAW (not int, longer than EMBSTR's
	// limit) but with capacity much larger than its content, the shape a
	// real sds growth path (e.g. repeated appends) would leave behind
	// for rule 6 ("trim raw", spec.md §4.5) to act on.
	content := []byte("this string is deliberately longer than embstr")
	o := newHeader(TypeString, EncRaw)
	o.raw = newRawStringWithCap(content, 10*len(content))

	if o.raw.Avail() == 0 {
		t.Fatal("test setup: expected slack capacity before trimming")
	}

	trimmed := TryEncoding(o)
	if trimmed.Encoding() != EncRaw {
		t.Fatalf("encoding = %s, want raw", trimmed.Encoding())
	}
	if trimmed.raw.Avail() != 0 {
		t.Fatalf("Avail() = %d, want 0 after rule 6 trims excess slack", trimmed.raw.Avail())
	}
}
