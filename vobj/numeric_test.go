package vobj

import (
	"errors"
	"testing"
)

type recordingReplyChannel struct {
	lastErr string
}

func (r *recordingReplyChannel) ReplyError(msg string) { r.lastErr = msg }

func TestGetInt64FromIntEncoding(t *testing.T) {
	resetForTest()
	o := CreateStringFromInt(123456)
	v, err := GetInt64(o)
	if err != nil || v != 123456 {
		t.Fatalf("GetInt64() = (%d, %v)", v, err)
	}
}

func TestGetInt64FromDigitString(t *testing.T) {
	resetForTest()
	o := CreateRawString([]byte("98765"))
	v, err := GetInt64(o)
	if err != nil || v != 98765 {
		t.Fatalf("GetInt64() = (%d, %v)", v, err)
	}
}

func TestGetInt64RejectsWhitespaceAndGarbage(t *testing.T) {
	resetForTest()
	for _, s := range []string{" 42", "42 ", "42abc", "", "4.2"} {
		o := CreateRawString([]byte(s))
		if _, err := GetInt64(o); !errors.Is(err, ErrNotAnInteger) {
			t.Errorf("GetInt64(%q) err = %v, want ErrNotAnInteger", s, err)
		}
	}
}

func TestGetInt64WrongType(t *testing.T) {
	resetForTest()
	agg := NewAggregate(TypeList, EncZipList, nil)
	if _, err := GetInt64(agg); !errors.Is(err, ErrWrongType) {
		t.Fatalf("err = %v, want ErrWrongType", err)
	}
}

func TestGetInt64NilPointer(t *testing.T) {
	if _, err := GetInt64(nil); !errors.Is(err, ErrInvalidPointer) {
		t.Fatalf("err = %v, want ErrInvalidPointer", err)
	}
}

func TestGetFloat64ParsesDecimal(t *testing.T) {
	resetForTest()
	o := CreateRawString([]byte("3.14"))
	v, err := GetFloat64(o)
	if err != nil || v != 3.14 {
		t.Fatalf("GetFloat64() = (%v, %v)", v, err)
	}
}

func TestGetFloat64RejectsNaNAndGarbage(t *testing.T) {
	resetForTest()
	for _, s := range []string{"nan", "NaN", " 1.0", "1.0 ", "abc"} {
		o := CreateRawString([]byte(s))
		if _, err := GetFloat64(o); !errors.Is(err, ErrNotAFloat) {
			t.Errorf("GetFloat64(%q) err = %v, want ErrNotAFloat", s, err)
		}
	}
}

func TestGetLongDoubleIsGetFloat64(t *testing.T) {
	resetForTest()
	o := CreateRawString([]byte("2.718"))
	a, errA := GetFloat64(o)
	b, errB := GetLongDouble(o)
	if errA != errB || a != b {
		t.Fatalf("GetLongDouble diverged from GetFloat64: (%v,%v) vs (%v,%v)", a, errA, b, errB)
	}
}

func TestGetInt64OrReplyWritesErrorOnFailure(t *testing.T) {
	resetForTest()
	rc := &recordingReplyChannel{}
	o := CreateRawString([]byte("not a number"))
	if _, ok := GetInt64OrReply(o, rc, "bad int"); ok {
		t.Fatal("expected failure")
	}
	if rc.lastErr != "bad int" {
		t.Fatalf("lastErr = %q, want %q", rc.lastErr, "bad int")
	}
}

func TestGetFloat64OrReplySucceeds(t *testing.T) {
	resetForTest()
	rc := &recordingReplyChannel{}
	o := CreateRawString([]byte("1.5"))
	v, ok := GetFloat64OrReply(o, rc, "bad float")
	if !ok || v != 1.5 || rc.lastErr != "" {
		t.Fatalf("GetFloat64OrReply() = (%v, %v), lastErr=%q", v, ok, rc.lastErr)
	}
}
