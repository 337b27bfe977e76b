package vobj

import (
	"errors"
	"math"
	"strconv"
)

// Numeric extraction errors (spec.md §4.7).
var (
	ErrNotAnInteger   = errors.New("value is not an integer or out of range")
	ErrNotAFloat      = errors.New("value is not a valid float")
	ErrWrongType      = errors.New("object is not a STRING")
	ErrInvalidPointer = errors.New("object is nil")
)

// ReplyChannel is the consumed "reply channel" service of spec.md §6.1,
// narrowed to the single operation the *_or_reply numeric extractors
// need.
type ReplyChannel interface {
	ReplyError(msg string)
}

// GetInt64 extracts an int64 from o (spec.md §4.7). For INT encoding it
// reinterprets the payload directly; for RAW/EMBSTR it parses the whole
// buffer, rejecting leading whitespace, trailing garbage, and overflow.
func GetInt64(o *Object) (int64, error) {
	if o == nil {
		return 0, ErrInvalidPointer
	}
	if o.typ != TypeString {
		return 0, ErrWrongType
	}
	if o.enc == EncInt {
		return o.intVal, nil
	}
	s := o.StringBytes()
	v, ok := parseExactInt64(s)
	if !ok {
		return 0, ErrNotAnInteger
	}
	return v, nil
}

// GetFloat64 extracts a float64 from o (spec.md §4.7), rejecting NaN and
// requiring the entire buffer to parse exactly.
func GetFloat64(o *Object) (float64, error) {
	if o == nil {
		return 0, ErrInvalidPointer
	}
	if o.typ != TypeString {
		return 0, ErrWrongType
	}
	if o.enc == EncInt {
		return float64(o.intVal), nil
	}
	return parseExactFloat64(o.StringBytes())
}

// GetLongDouble extracts the widest floating type this implementation
// models (float64; see SPEC_FULL.md §5.2) from o, per spec.md §4.7's
// get_long_double.
func GetLongDouble(o *Object) (float64, error) {
	return GetFloat64(o)
}

func parseExactFloat64(s []byte) (float64, error) {
	if len(s) == 0 {
		return 0, ErrNotAFloat
	}
	if s[0] == ' ' || s[len(s)-1] == ' ' {
		return 0, ErrNotAFloat
	}
	v, err := strconv.ParseFloat(string(s), 64)
	if err != nil {
		return 0, ErrNotAFloat
	}
	if math.IsNaN(v) {
		return 0, ErrNotAFloat
	}
	return v, nil
}

// GetInt64OrReply is the *_or_reply variant of GetInt64 (spec.md §4.7):
// on parse failure it additionally writes a user-visible error to reply.
func GetInt64OrReply(o *Object, reply ReplyChannel, errMsg string) (int64, bool) {
	v, err := GetInt64(o)
	if err != nil {
		if errMsg == "" {
			errMsg = err.Error()
		}
		reply.ReplyError(errMsg)
		return 0, false
	}
	return v, true
}

// GetFloat64OrReply is the *_or_reply variant of GetFloat64.
func GetFloat64OrReply(o *Object, reply ReplyChannel, errMsg string) (float64, bool) {
	v, err := GetFloat64(o)
	if err != nil {
		if errMsg == "" {
			errMsg = err.Error()
		}
		reply.ReplyError(errMsg)
		return 0, false
	}
	return v, true
}
