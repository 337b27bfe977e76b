package api

import (
	"net/http"
	"strings"

	"github.com/tx469541153/redis-code-reading/keyspace"
	"github.com/tx469541153/redis-code-reading/vobj"
)

// ObjectHandler serves OBJECT {REFCOUNT,ENCODING,IDLETIME,FREQ} (spec.md
// §6.2) as HTTP endpoints under /api/v1/object/..., grounded on the
// teacher's *Handler-struct-plus-RespondJSON style.
type ObjectHandler struct {
	db *keyspace.Keyspace
}

// NewObjectHandler builds an ObjectHandler reading from db.
func NewObjectHandler(db *keyspace.Keyspace) *ObjectHandler {
	return &ObjectHandler{db: db}
}

// ObjectResponse is the JSON reply shape for every OBJECT subcommand.
// Exactly one of IntValue/StringValue is populated, selected by the
// subcommand; Null is true for a missing key (spec.md §6.2's "Missing
// key: nullbulk reply").
type ObjectResponse struct {
	Null        bool    `json:"null"`
	IntValue    *int64  `json:"int_value,omitempty"`
	StringValue *string `json:"string_value,omitempty"`
}

// Refcount handles OBJECT REFCOUNT key.
// @Summary OBJECT REFCOUNT
// @Description Integer reply; IMMORTAL objects report the sentinel value
// @Tags object
// @Produce json
// @Param key query string true "key name"
// @Success 200 {object} ObjectResponse
// @Router /api/v1/object/refcount [get]
func (h *ObjectHandler) Refcount(w http.ResponseWriter, r *http.Request) {
	newTraceID(w)
	o, ok := h.lookup(w, r)
	if !ok {
		return
	}
	v := o.Refcount()
	RespondJSON(w, http.StatusOK, ObjectResponse{IntValue: &v})
}

// Encoding handles OBJECT ENCODING key.
// @Summary OBJECT ENCODING
// @Description Bulk-string reply from the fixed encoding-name set
// @Tags object
// @Produce json
// @Param key query string true "key name"
// @Success 200 {object} ObjectResponse
// @Router /api/v1/object/encoding [get]
func (h *ObjectHandler) Encoding(w http.ResponseWriter, r *http.Request) {
	newTraceID(w)
	o, ok := h.lookup(w, r)
	if !ok {
		return
	}
	s := o.Encoding().String()
	RespondJSON(w, http.StatusOK, ObjectResponse{StringValue: &s})
}

// IdleTime handles OBJECT IDLETIME key.
// @Summary OBJECT IDLETIME
// @Description Integer seconds since last access; error if policy is LFU
// @Tags object
// @Produce json
// @Param key query string true "key name"
// @Success 200 {object} ObjectResponse
// @Failure 409 {object} map[string]string
// @Router /api/v1/object/idletime [get]
func (h *ObjectHandler) IdleTime(w http.ResponseWriter, r *http.Request) {
	newTraceID(w)
	if vobj.Policy().LFU {
		RespondError(w, http.StatusConflict, "IDLETIME is not available while the eviction policy is LFU")
		return
	}
	o, ok := h.lookup(w, r)
	if !ok {
		return
	}
	v := o.IdleSeconds()
	RespondJSON(w, http.StatusOK, ObjectResponse{IntValue: &v})
}

// Freq handles OBJECT FREQ key.
// @Summary OBJECT FREQ
// @Description Integer in [0,255]; error if policy is not LFU
// @Tags object
// @Produce json
// @Param key query string true "key name"
// @Success 200 {object} ObjectResponse
// @Failure 409 {object} map[string]string
// @Router /api/v1/object/freq [get]
func (h *ObjectHandler) Freq(w http.ResponseWriter, r *http.Request) {
	newTraceID(w)
	if !vobj.Policy().LFU {
		RespondError(w, http.StatusConflict, "FREQ is not available unless the eviction policy is LFU")
		return
	}
	o, ok := h.lookup(w, r)
	if !ok {
		return
	}
	v := int64(o.Freq())
	RespondJSON(w, http.StatusOK, ObjectResponse{IntValue: &v})
}

// Dispatch routes an unrecognized subcommand to a syntax-error reply,
// matching spec.md §6.2's "Any other form: syntax error reply".
func (h *ObjectHandler) Dispatch(w http.ResponseWriter, r *http.Request) {
	newTraceID(w)
	RespondError(w, http.StatusBadRequest, strings.TrimPrefix(vobj.ReplySyntaxErr, "ERR "))
}

// lookup finds key without disturbing its LRU/LFU state: OBJECT observes,
// it never touches (spec.md §6.2; original_source/object.c's
// objectCommandLookup carries the same contract).
func (h *ObjectHandler) lookup(w http.ResponseWriter, r *http.Request) (*vobj.Object, bool) {
	key := r.URL.Query().Get("key")
	if key == "" {
		RespondError(w, http.StatusBadRequest, strings.TrimPrefix(vobj.ReplySyntaxErr, "ERR "))
		return nil, false
	}
	entry := h.db.Find(key)
	if entry == nil || entry.Value == nil {
		RespondJSON(w, http.StatusOK, ObjectResponse{Null: true})
		return nil, false
	}
	return entry.Value, true
}
