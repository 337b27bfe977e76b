package vobj

import "github.com/tx469541153/redis-code-reading/clock"

// currentPolicy is the process-wide eviction policy (spec.md §6.1) read
// by newHeader (to decide how to initialize the lru field) and by
// TryEncoding (to decide whether shared-integer interning is permitted,
// spec.md §4.5). Like every other piece of state in this single-threaded
// subsystem (spec.md §5), it is set once at startup and then only read.
var currentPolicy clock.Policy

// SetPolicy installs the process-wide eviction policy. Call once during
// startup, before any object is created.
func SetPolicy(p clock.Policy) {
	currentPolicy = p
}

// Policy returns the currently configured eviction policy.
func Policy() clock.Policy {
	return currentPolicy
}

// currentLRU computes the initial lru header word for a freshly created
// object, per spec.md §3.1: a minute-resolution LRU timestamp, or (LFU
// mode) 16 bits of minute timestamp plus an 8-bit counter initialized to
// LFU_INIT_VAL.
func currentLRU() uint32 {
	if currentPolicy.LFU {
		return uint32(clock.LFUMinutes())<<8 | uint32(clock.LFUInitVal())
	}
	return (clock.LRUClock() / 60) & 0x00FFFFFF
}
