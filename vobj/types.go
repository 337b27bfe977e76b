// Package vobj implements the polymorphic value-object subsystem: the
// uniform container used to represent every value an in-memory key-value
// store holds (spec.md §1-§4, components C1-C8).
//
// Every value is an *Object carrying a type tag, an encoding tag, a
// refcount, an eviction-metadata word, and a payload that is either
// inline (EMBSTR, INT) or a pointer to an external container. The
// subsystem is single-threaded by contract (spec.md §5): none of its
// state is protected by locks, and concurrent mutation of a non-immortal
// Object from multiple goroutines is a caller bug, not something this
// package defends against.
package vobj

import "github.com/tx469541153/redis-code-reading/logger"

// Type is the logical value type carried by an Object (spec.md §3.1).
type Type uint8

const (
	TypeString Type = iota
	TypeList
	TypeSet
	TypeZSet
	TypeHash
	TypeModule
)

func (t Type) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeList:
		return "list"
	case TypeSet:
		return "set"
	case TypeZSet:
		return "zset"
	case TypeHash:
		return "hash"
	case TypeModule:
		return "module"
	default:
		return "unknown"
	}
}

// Encoding is the concrete in-memory representation of an Object's
// payload (spec.md §3.1, §4.1).
type Encoding uint8

const (
	EncRaw Encoding = iota
	EncInt
	EncEmbStr
	EncHT
	EncLinkedList // reserved, unused by any current Type (spec.md §3.1)
	EncZipList
	EncIntSet
	EncSkipList
	EncQuickList
)

// String returns the external encoding name used by OBJECT ENCODING
// (spec.md §6.2): one of
// {raw,int,hashtable,quicklist,ziplist,intset,skiplist,embstr,unknown}.
// This set is part of the external contract (spec.md §6.3) and must not
// change.
func (e Encoding) String() string {
	switch e {
	case EncRaw:
		return "raw"
	case EncInt:
		return "int"
	case EncEmbStr:
		return "embstr"
	case EncHT:
		return "hashtable"
	case EncZipList:
		return "ziplist"
	case EncIntSet:
		return "intset"
	case EncSkipList:
		return "skiplist"
	case EncQuickList:
		return "quicklist"
	default:
		return "unknown"
	}
}

// legalPairs is the (type, encoding) legality table of spec.md §4.1. Any
// other pairing is a programmer error and traps.
var legalPairs = map[Type]map[Encoding]bool{
	TypeString: {EncRaw: true, EncEmbStr: true, EncInt: true},
	TypeList:   {EncQuickList: true, EncZipList: true},
	TypeSet:    {EncHT: true, EncIntSet: true},
	TypeZSet:   {EncSkipList: true, EncZipList: true},
	TypeHash:   {EncHT: true, EncZipList: true},
	TypeModule: {}, // encoding unused; legality check is skipped for MODULE
}

// checkLegalPair traps if (t, e) is not one of spec.md §4.1's allowed
// pairings. MODULE objects carry no meaningful encoding and always pass.
func checkLegalPair(t Type, e Encoding) {
	if t == TypeModule {
		return
	}
	allowed, known := legalPairs[t]
	if !known || !allowed[e] {
		logger.Panic("illegal (type, encoding) pair: (%s, %s)", t, e)
	}
}

// Trap reports a programmer-contract violation (spec.md §7.1): unknown
// encoding, negative refcount, double free, wrong type for a
// type-specialized function. It logs the diagnostic and panics; the host
// process is expected to terminate rather than continue in an undefined
// state. It is never expected to fire against a correct caller.
func Trap(format string, args ...interface{}) {
	logger.Panic(format, args...)
}
