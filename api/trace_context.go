package api

import (
	"net/http"

	"github.com/google/uuid"
)

// traceIDHeader is the response header every handler in this package
// stamps with a freshly generated request ID, matching the teacher's
// api/trace_context.go trace-ID pattern.
const traceIDHeader = "X-Request-ID"

// newTraceID generates a request-scoped trace ID and writes it to the
// response header before the handler does any work, so it appears even
// on early-return error paths.
func newTraceID(w http.ResponseWriter) string {
	id := uuid.New().String()
	w.Header().Set(traceIDHeader, id)
	return id
}
