package vobj

import "testing"

func TestCompareBinaryIdentityIsZero(t *testing.T) {
	resetForTest()
	o := CreateRawString([]byte("same"))
	if CompareBinary(o, o) != 0 {
		t.Fatal("identical pointer must compare equal")
	}
}

func TestCompareBinaryOrdersByPrefixThenLength(t *testing.T) {
	resetForTest()
	a := CreateRawString([]byte("abc"))
	b := CreateRawString([]byte("abcd"))
	if CompareBinary(a, b) >= 0 {
		t.Fatal("shorter prefix-equal string must compare less")
	}
	if CompareBinary(b, a) <= 0 {
		t.Fatal("longer prefix-equal string must compare greater")
	}
}

func TestCompareBinaryIsAntisymmetric(t *testing.T) {
	resetForTest()
	a := CreateRawString([]byte("apple"))
	b := CreateRawString([]byte("banana"))
	if CompareBinary(a, b) != -CompareBinary(b, a) {
		t.Fatal("compare_binary(a,b) must equal -compare_binary(b,a)")
	}
}

func TestCompareBinaryAcrossIntAndRawEncodings(t *testing.T) {
	resetForTest()
	intObj := CreateStringFromInt(123)
	rawObj := CreateRawString([]byte("123"))
	if CompareBinary(intObj, rawObj) != 0 {
		t.Fatal("the same value must compare equal regardless of encoding")
	}
}

func TestCompareCollatedMatchesBinaryForASCII(t *testing.T) {
	resetForTest()
	a := CreateRawString([]byte("alpha"))
	b := CreateRawString([]byte("beta"))
	if (CompareCollated(a, b) < 0) != (CompareBinary(a, b) < 0) {
		t.Fatal("collated order should agree with binary order for plain ASCII")
	}
}

func TestEqualUsesIntFastPath(t *testing.T) {
	resetForTest()
	a := CreateStringFromInt(555)
	b := CreateStringFromInt(555)
	if !Equal(a, b) {
		t.Fatal("two INT objects with the same value must be Equal")
	}
}

func TestEqualFallsBackToCompareBinary(t *testing.T) {
	resetForTest()
	a := CreateRawString([]byte("value"))
	b := CreateRawString([]byte("value"))
	if !Equal(a, b) {
		t.Fatal("two distinct RAW objects with identical bytes must be Equal")
	}
	c := CreateRawString([]byte("other"))
	if Equal(a, c) {
		t.Fatal("distinct values must not be Equal")
	}
}
