// Package overhead implements the memory overhead aggregator of spec.md
// §4.10 (component C9), grounded on the teacher's
// api/system_metrics_handler.go struct-of-fields reporting style: a
// flat record of every accounting term, computed on demand from the
// allocator, the keyspace, and the synthetic client list.
package overhead

import (
	"runtime"
	"sync/atomic"

	"github.com/tx469541153/redis-code-reading/keyspace"
)

// dictEntrySize and objectHeaderSize approximate sizeof(dict_entry) and
// sizeof(object_header) from spec.md §4.10's per-database overhead
// formulas. pointerSize stands in for sizeof(pointer).
const (
	dictEntrySize    = 24
	objectHeaderSize = 16
	pointerSize      = 8
)

// peakAllocated is a process-wide running maximum, updated by Sample.
// It is the Go analogue of Redis's server.stat_peak_memory.
var peakAllocated uint64

// startupAllocated is recorded once, the first time Sample runs after
// process start (spec.md §4.10: "recorded once when the process
// finished initializing").
var startupAllocated uint64
var startupRecorded uint32

// Sample reads the current allocator-reported in-use bytes (via
// runtime.MemStats, the only allocator introspection available without
// a third-party allocator binding — see DESIGN.md) and updates the
// peak/startup bookkeeping. Call this periodically (or at least once
// before the first Compute) from the host process.
func Sample() (totalAllocated uint64, residentSetSize uint64) {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	totalAllocated = mem.HeapAlloc
	residentSetSize = mem.Sys

	for {
		old := atomic.LoadUint64(&peakAllocated)
		if totalAllocated <= old {
			break
		}
		if atomic.CompareAndSwapUint64(&peakAllocated, old, totalAllocated) {
			break
		}
	}

	if atomic.CompareAndSwapUint32(&startupRecorded, 0, 1) {
		atomic.StoreUint64(&startupAllocated, totalAllocated)
	}

	return totalAllocated, residentSetSize
}

// PerDatabase is the per-database overhead record of spec.md §4.10.
type PerDatabase struct {
	DBID              int
	OverheadHTMain    int64
	OverheadHTExpires int64
}

// Overhead is the full record returned by Compute, exactly spec.md
// §4.10's fields.
type Overhead struct {
	TotalAllocated   int64
	StartupAllocated int64
	PeakAllocated    int64
	Fragmentation    float64
	ReplBacklog      int64
	ClientsSlaves    int64
	ClientsNormal    int64
	NumNormalClients int
	NumReplicas      int
	AOFBuffer        int64
	PerDB            []PerDatabase
	OverheadTotal    int64
	Dataset          int64
	DatasetPerc      float64
	PeakPerc         float64
	BytesPerKey      int64
}

// Compute builds an Overhead record from the current allocator sample,
// the given databases, the client list, and the replication-backlog/AOF
// byte counts, implementing every formula of spec.md §4.10.
func Compute(dbs []*keyspace.Keyspace, clients *keyspace.ClientList, replBacklog, aofBuffer int64) Overhead {
	totalAllocated, residentSetSize := Sample()

	fragmentation := 1.0
	if totalAllocated > 0 {
		fragmentation = float64(residentSetSize) / float64(totalAllocated)
	}

	clientsNormal, clientsSlaves, numNormal, numReplicas := clients.Totals()

	var perDB []PerDatabase
	var dbOverheadTotal int64
	for i, db := range dbs {
		keys := int64(db.KeyCount())
		keysWithExpire := int64(db.KeysWithExpire())
		mainOverhead := keys*(dictEntrySize+objectHeaderSize) + int64(db.MainSlots())*pointerSize
		expireOverhead := keysWithExpire*dictEntrySize + int64(db.ExpireSlots())*pointerSize
		perDB = append(perDB, PerDatabase{
			DBID:              i,
			OverheadHTMain:    mainOverhead,
			OverheadHTExpires: expireOverhead,
		})
		dbOverheadTotal += mainOverhead + expireOverhead
	}

	peak := int64(atomic.LoadUint64(&peakAllocated))
	startup := int64(atomic.LoadUint64(&startupAllocated))

	overheadTotal := startup + replBacklog + clientsNormal + clientsSlaves + aofBuffer + dbOverheadTotal
	dataset := int64(totalAllocated) - overheadTotal

	datasetDenominator := int64(totalAllocated) - startup
	if datasetDenominator < 1 {
		datasetDenominator = 1
	}
	datasetPerc := float64(dataset) / float64(datasetDenominator) * 100

	peakPerc := 100.0
	if peak > 0 {
		peakPerc = float64(totalAllocated) / float64(peak) * 100
	}

	totalKeys := int64(0)
	for _, db := range dbs {
		totalKeys += int64(db.KeyCount())
	}
	bytesPerKey := int64(0)
	if totalKeys > 0 {
		bytesPerKey = (int64(totalAllocated) - startup) / totalKeys
	}

	return Overhead{
		TotalAllocated:   int64(totalAllocated),
		StartupAllocated: startup,
		PeakAllocated:    peak,
		Fragmentation:    fragmentation,
		ReplBacklog:      replBacklog,
		ClientsSlaves:    clientsSlaves,
		ClientsNormal:    clientsNormal,
		NumNormalClients: numNormal,
		NumReplicas:      numReplicas,
		AOFBuffer:        aofBuffer,
		PerDB:            perDB,
		OverheadTotal:    overheadTotal,
		Dataset:          dataset,
		DatasetPerc:      datasetPerc,
		PeakPerc:         peakPerc,
		BytesPerKey:      bytesPerKey,
	}
}
