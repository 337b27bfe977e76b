package api

import (
	"net/http"
	"strconv"

	"github.com/tx469541153/redis-code-reading/keyspace"
	"github.com/tx469541153/redis-code-reading/overhead"
	"github.com/tx469541153/redis-code-reading/vobj"
)

// dictEntryCost approximates sizeof(dict_entry) (spec.md §6.2's
// "estimate_size(value, samples) + alloc_size(key_bytes) +
// sizeof(dict_entry)"); it matches overhead.go's own dictEntrySize so
// MEMORY USAGE and MEMORY STATS stay internally consistent.
const dictEntryCost = 24

// MemoryHandler serves MEMORY {USAGE,STATS,MALLOC-STATS,DOCTOR,PURGE,
// HELP} (spec.md §6.2) under /api/v1/memory/....
type MemoryHandler struct {
	db      *keyspace.Keyspace
	dbs     []*keyspace.Keyspace
	clients *keyspace.ClientList
	replBacklog int64
	aofBuffer   int64
}

// NewMemoryHandler builds a MemoryHandler over the given database set
// and synthetic client list.
func NewMemoryHandler(primary *keyspace.Keyspace, dbs []*keyspace.Keyspace, clients *keyspace.ClientList, replBacklog, aofBuffer int64) *MemoryHandler {
	return &MemoryHandler{db: primary, dbs: dbs, clients: clients, replBacklog: replBacklog, aofBuffer: aofBuffer}
}

// UsageResponse is the JSON reply for MEMORY USAGE.
type UsageResponse struct {
	Bytes int64 `json:"bytes"`
}

// Usage handles MEMORY USAGE key [SAMPLES count ...]. SAMPLES may be
// repeated; the last value wins (spec.md §6.2). count == 0 means "all
// elements"; negative counts are a syntax error.
// @Summary MEMORY USAGE
// @Tags memory
// @Produce json
// @Param key query string true "key name"
// @Param samples query int false "sample size, 0 = unbounded"
// @Success 200 {object} UsageResponse
// @Router /api/v1/memory/usage [get]
func (h *MemoryHandler) Usage(w http.ResponseWriter, r *http.Request) {
	newTraceID(w)

	key := r.URL.Query().Get("key")
	if key == "" {
		RespondError(w, http.StatusBadRequest, "ERR syntax error")
		return
	}

	sampleSize := 0
	if raw := r.URL.Query()["samples"]; len(raw) > 0 {
		// The last occurrence wins.
		n, err := strconv.Atoi(raw[len(raw)-1])
		if err != nil {
			RespondError(w, http.StatusBadRequest, "ERR syntax error")
			return
		}
		if n < 0 {
			RespondError(w, http.StatusBadRequest, "ERR syntax error")
			return
		}
		sampleSize = n
	}

	entry := h.db.Find(key)
	if entry == nil || entry.Value == nil {
		RespondJSON(w, http.StatusOK, ObjectResponse{Null: true})
		return
	}

	bytes := vobj.EstimateSize(entry.Value, sampleSize) + int64(len(key)) + dictEntryCost
	RespondJSON(w, http.StatusOK, UsageResponse{Bytes: bytes})
}

// StatsResponse is the JSON reply for MEMORY STATS, carrying the same
// fields spec.md §6.2's flat (name, value) array encodes, just shaped as
// a JSON object rather than an alternating array (this surface speaks
// JSON, not RESP).
type StatsResponse struct {
	PeakAllocated     int64                     `json:"peak_allocated"`
	TotalAllocated    int64                     `json:"total_allocated"`
	StartupAllocated  int64                     `json:"startup_allocated"`
	ReplicationBacklog int64                    `json:"replication_backlog"`
	ClientsSlaves     int64                      `json:"clients_slaves"`
	ClientsNormal     int64                      `json:"clients_normal"`
	AOFBuffer         int64                      `json:"aof_buffer"`
	Databases         []overhead.PerDatabase     `json:"databases"`
	OverheadTotal     int64                      `json:"overhead_total"`
	KeysCount         int64                      `json:"keys_count"`
	BytesPerKey       int64                      `json:"bytes_per_key"`
	DatasetBytes      int64                      `json:"dataset_bytes"`
	DatasetPercentage float64                    `json:"dataset_percentage"`
	PeakPercentage    float64                    `json:"peak_percentage"`
	Fragmentation     float64                    `json:"fragmentation"`
}

// Stats handles MEMORY STATS.
// @Summary MEMORY STATS
// @Tags memory
// @Produce json
// @Success 200 {object} StatsResponse
// @Router /api/v1/memory/stats [get]
func (h *MemoryHandler) Stats(w http.ResponseWriter, r *http.Request) {
	newTraceID(w)

	mh := overhead.Compute(h.dbs, h.clients, h.replBacklog, h.aofBuffer)
	var keysCount int64
	for _, db := range h.dbs {
		keysCount += int64(db.KeyCount())
	}

	RespondJSON(w, http.StatusOK, StatsResponse{
		PeakAllocated:      mh.PeakAllocated,
		TotalAllocated:     mh.TotalAllocated,
		StartupAllocated:   mh.StartupAllocated,
		ReplicationBacklog: mh.ReplBacklog,
		ClientsSlaves:      mh.ClientsSlaves,
		ClientsNormal:      mh.ClientsNormal,
		AOFBuffer:          mh.AOFBuffer,
		Databases:          mh.PerDB,
		OverheadTotal:      mh.OverheadTotal,
		KeysCount:          keysCount,
		BytesPerKey:        mh.BytesPerKey,
		DatasetBytes:       mh.Dataset,
		DatasetPercentage:  mh.DatasetPerc,
		PeakPercentage:     mh.PeakPerc,
		Fragmentation:      mh.Fragmentation,
	})
}

// MallocStats handles MEMORY MALLOC-STATS: this implementation has no
// allocator-native stats dump, so it always returns the fixed
// "not supported" reply (spec.md §6.2).
// @Summary MEMORY MALLOC-STATS
// @Tags memory
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/v1/memory/malloc-stats [get]
func (h *MemoryHandler) MallocStats(w http.ResponseWriter, r *http.Request) {
	newTraceID(w)
	RespondJSON(w, http.StatusOK, map[string]string{"reply": vobj.ReplyNotSupported})
}

// Doctor handles MEMORY DOCTOR.
// @Summary MEMORY DOCTOR
// @Tags memory
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/v1/memory/doctor [get]
func (h *MemoryHandler) Doctor(w http.ResponseWriter, r *http.Request) {
	newTraceID(w)
	mh := overhead.Compute(h.dbs, h.clients, h.replBacklog, h.aofBuffer)
	RespondJSON(w, http.StatusOK, map[string]string{"report": overhead.Doctor(mh)})
}

// Purge handles MEMORY PURGE. Go's allocator exposes no purge hint
// equivalent to jemalloc's; per spec.md §6.2 ("on unsupported allocator,
// reply ok regardless") this always reports ok.
// @Summary MEMORY PURGE
// @Tags memory
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/v1/memory/purge [post]
func (h *MemoryHandler) Purge(w http.ResponseWriter, r *http.Request) {
	newTraceID(w)
	RespondJSON(w, http.StatusOK, map[string]string{"reply": vobj.ReplyOK})
}

// memoryHelpLines is the fixed 4-entry MEMORY HELP array of spec.md
// §6.2, part of the stable external text contract (§6.3).
var memoryHelpLines = []string{
	"MEMORY USAGE <key> [SAMPLES <count>] -- Estimate memory usage of key.",
	"MEMORY STATS -- Show memory usage details.",
	"MEMORY DOCTOR -- Outputs memory problems report.",
	"MEMORY PURGE -- Ask the allocator to release memory back to the OS.",
}

// Help handles MEMORY HELP.
// @Summary MEMORY HELP
// @Tags memory
// @Produce json
// @Success 200 {array} string
// @Router /api/v1/memory/help [get]
func (h *MemoryHandler) Help(w http.ResponseWriter, r *http.Request) {
	newTraceID(w)
	RespondJSON(w, http.StatusOK, memoryHelpLines)
}
