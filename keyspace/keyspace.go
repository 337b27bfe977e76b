// Package keyspace is the minimal in-memory external collaborator the
// value-object subsystem's introspection surface needs to have something
// real to inspect end to end: a keyed dictionary and a synthetic client
// list. The replication-backlog and AOF-buffer byte counts spec.md §4.10
// reads are not kept here; callers pass them to overhead.Compute and
// api.NewRouter as plain values. It is explicitly not the subject
// matter of this module (spec.md §1 lists the keyspace, clients, and
// replication as out-of-scope external collaborators) — it exists only
// so overhead.Compute and the OBJECT/MEMORY HTTP handlers can be driven
// against real state instead of stubs.
package keyspace

import (
	"sync"

	"github.com/tx469541153/redis-code-reading/vobj"
)

// Client is a synthetic stand-in for a connected client's buffer
// bookkeeping, the minimum spec.md §4.10's clients_slaves/clients_normal
// accounting needs (output_buffer_bytes + query_buffer_bytes +
// sizeof(client_struct)).
type Client struct {
	OutputBufferBytes int64
	QueryBufferBytes  int64
	IsReplica         bool
}

// clientStructSize approximates sizeof(client_struct) from spec.md
// §4.10's per-client overhead term; a single shared constant is
// sufficient since this package models no real per-client variation in
// struct layout.
const clientStructSize = 512

// Entry pairs a key with its value object and, optionally, an expire
// flag, the minimum the per-database overhead_ht_main/overhead_ht_expires
// split of spec.md §4.10 needs.
type Entry struct {
	Value     *vobj.Object
	HasExpire bool
}

// Keyspace is a single logical database: a key/value dictionary plus its
// declared hash-table slot counts (spec.md §4.10's "slots" terms).
type Keyspace struct {
	mu          sync.RWMutex
	entries     map[string]*Entry
	mainSlots   int
	expireSlots int
}

// New builds an empty Keyspace with the given declared slot counts.
func New(mainSlots, expireSlots int) *Keyspace {
	return &Keyspace{
		entries:     make(map[string]*Entry),
		mainSlots:   mainSlots,
		expireSlots: expireSlots,
	}
}

// Set installs or replaces the entry for key.
func (k *Keyspace) Set(key string, value *vobj.Object, hasExpire bool) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.entries[key] = &Entry{Value: value, HasExpire: hasExpire}
}

// Find returns the entry for key, or nil if absent (spec.md §6.1
// "db.find(key) -> entry | none").
func (k *Keyspace) Find(key string) *Entry {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.entries[key]
}

// Delete removes key, reporting whether it was present.
func (k *Keyspace) Delete(key string) bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	if _, ok := k.entries[key]; !ok {
		return false
	}
	delete(k.entries, key)
	return true
}

// KeyCount returns the number of keys currently stored.
func (k *Keyspace) KeyCount() int {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return len(k.entries)
}

// KeysWithExpire returns the number of keys carrying an expire flag.
func (k *Keyspace) KeysWithExpire() int {
	k.mu.RLock()
	defer k.mu.RUnlock()
	n := 0
	for _, e := range k.entries {
		if e.HasExpire {
			n++
		}
	}
	return n
}

// MainSlots and ExpireSlots return the declared hash-table bucket counts
// used by overhead.Compute's overhead_ht_main/overhead_ht_expires terms.
func (k *Keyspace) MainSlots() int   { return k.mainSlots }
func (k *Keyspace) ExpireSlots() int { return k.expireSlots }

// ClientList is the synthetic connection list spec.md §4.10's
// clients_slaves/clients_normal partition reads.
type ClientList struct {
	mu      sync.RWMutex
	clients []Client
}

// NewClientList builds an empty client list.
func NewClientList() *ClientList {
	return &ClientList{}
}

// Add registers a synthetic client.
func (c *ClientList) Add(client Client) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clients = append(c.clients, client)
}

// Totals sums buffer bytes (including the fixed per-client struct cost),
// partitioned by replica flag, per spec.md §4.10.
func (c *ClientList) Totals() (normal, slaves int64, numNormal, numReplicas int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, cl := range c.clients {
		cost := cl.OutputBufferBytes + cl.QueryBufferBytes + clientStructSize
		if cl.IsReplica {
			slaves += cost
			numReplicas++
		} else {
			normal += cost
			numNormal++
		}
	}
	return normal, slaves, numNormal, numReplicas
}

// ReplyChannel implements vobj.ReplyChannel, the §6.1 "reply channel
// (client)" consumed service narrowed to the single operation the
// numeric extractors' *_or_reply variants need. It records only the most
// recent error message; the canned reply constants live in vobj.
type ReplyChannel struct {
	mu      sync.Mutex
	lastErr string
}

func (r *ReplyChannel) ReplyError(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastErr = msg
}

// LastError returns the most recently reported error, for tests and
// HTTP handlers that need to surface it.
func (r *ReplyChannel) LastError() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastErr
}
