package vobj

import (
	"bytes"
	"testing"

	"github.com/tx469541153/redis-code-reading/clock"
)

func resetForTest() {
	SetPolicy(clock.Policy{})
	Init(10000)
}

func TestCreateStringChoosesEncodingByLength(t *testing.T) {
	resetForTest()

	short := CreateString([]byte("hello"))
	if short.Type() != TypeString || short.Encoding() != EncEmbStr {
		t.Fatalf("got (%s,%s), want (string,embstr)", short.Type(), short.Encoding())
	}
	if !bytes.Equal(short.StringBytes(), []byte("hello")) {
		t.Fatalf("StringBytes() = %q", short.StringBytes())
	}

	long := CreateString(bytes.Repeat([]byte("x"), 45))
	if long.Encoding() != EncRaw {
		t.Fatalf("encoding = %s, want raw for 45-byte string", long.Encoding())
	}
}

func TestCreateStringFromIntSharesSmallValues(t *testing.T) {
	resetForTest()

	a := CreateStringFromInt(42)
	b := CreateStringFromInt(42)
	if a != b {
		t.Fatal("expected the same interned object for two creations of 42")
	}
	if a.Refcount() != Immortal {
		t.Fatalf("Refcount() = %d, want Immortal", a.Refcount())
	}
}

func TestCreateStringFromIntNoSharedIntegersPolicy(t *testing.T) {
	SetPolicy(clock.Policy{NoSharedIntegers: true})
	Init(10000)

	o := CreateStringFromInt(42)
	if o.Refcount() == Immortal {
		t.Fatal("expected a fresh object, not the shared pool, under NoSharedIntegers")
	}
	if o.Encoding() != EncInt {
		t.Fatalf("encoding = %s, want int", o.Encoding())
	}
}

func TestCreateStringFromIntOutOfRange(t *testing.T) {
	resetForTest()

	o := CreateStringFromInt(123456)
	if o.Refcount() == Immortal {
		t.Fatal("123456 is out of the shared pool's range and must not be interned")
	}
	v, err := GetInt64(o)
	if err != nil || v != 123456 {
		t.Fatalf("GetInt64() = (%d, %v), want (123456, nil)", v, err)
	}
}

func TestDupStringPreservesEncoding(t *testing.T) {
	resetForTest()

	for _, o := range []*Object{
		CreateString([]byte("short")),
		CreateString(bytes.Repeat([]byte("y"), 100)),
		CreateStringFromInt(999999),
	} {
		dup := DupString(o)
		if dup.Encoding() != o.Encoding() {
			t.Fatalf("DupString encoding = %s, want %s", dup.Encoding(), o.Encoding())
		}
		if dup.Refcount() != 1 {
			t.Fatalf("DupString refcount = %d, want 1", dup.Refcount())
		}
	}
}

func TestDupStringNeverReinternsInt(t *testing.T) {
	resetForTest()

	small := CreateStringFromInt(7) // the interned shared object
	dupSmall := DupString(small)
	if dupSmall == small {
		t.Fatal("DupString must not return the shared object itself")
	}
	if dupSmall.Refcount() != 1 {
		t.Fatalf("Refcount() = %d, want 1 (no re-interning)", dupSmall.Refcount())
	}
}

func TestGetDecodedRendersInt(t *testing.T) {
	resetForTest()

	o := CreateStringFromInt(123456)
	decoded := GetDecoded(o)
	if !bytes.Equal(decoded.StringBytes(), []byte("123456")) {
		t.Fatalf("StringBytes() = %q, want \"123456\"", decoded.StringBytes())
	}
}

func TestTrimFloatString(t *testing.T) {
	cases := map[string]string{
		"3.14000000000000000": "3.14",
		"5.00000000000000000": "5",
		"100":                  "100",
	}
	for in, want := range cases {
		if got := TrimFloatString(in); got != want {
			t.Errorf("TrimFloatString(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCreateStringFromLongDouble(t *testing.T) {
	resetForTest()

	o := CreateStringFromLongDouble(3.14, true)
	if string(o.StringBytes()) != "3.14" {
		t.Fatalf("StringBytes() = %q, want \"3.14\"", o.StringBytes())
	}
}
