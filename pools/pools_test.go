package pools

import "testing"

func TestSmallBufferRoundTrip(t *testing.T) {
	b := GetSmallBuffer()
	*b = append(*b, "12345"...)
	if string(*b) != "12345" {
		t.Fatalf("got %q", *b)
	}
	PutSmallBuffer(b)

	b2 := GetSmallBuffer()
	if len(*b2) != 0 {
		t.Fatalf("expected reset buffer, got length %d", len(*b2))
	}
}

func TestStringBuilderRoundTrip(t *testing.T) {
	sb := GetStringBuilder()
	sb.WriteString("hello")
	if sb.String() != "hello" {
		t.Fatalf("got %q", sb.String())
	}
	PutStringBuilder(sb)

	sb2 := GetStringBuilder()
	if sb2.Len() != 0 {
		t.Fatalf("expected reset builder, got length %d", sb2.Len())
	}
}

func TestPutSmallBufferRejectsOversized(t *testing.T) {
	big := make([]byte, 0, 1<<20)
	PutSmallBuffer(&big) // must not panic; oversized buffers are simply dropped
}
