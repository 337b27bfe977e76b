package api

import (
	_ "embed"
	"net/http"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/tx469541153/redis-code-reading/keyspace"

	_ "github.com/tx469541153/redis-code-reading/docs" // registers the swagger spec
)

//go:embed docs/swagger.json
var swaggerJSON []byte

// @title Value Object Subsystem API
// @version 1.0.0
// @description OBJECT and MEMORY introspection commands over HTTP
// @BasePath /api/v1

// NewRouter builds the gorilla/mux router serving the OBJECT/MEMORY
// introspection surface under /api/v1, plus the swagger UI at /swagger/,
// matching the teacher's main.go subrouter-plus-swagger-doc.json wiring.
func NewRouter(db *keyspace.Keyspace, dbs []*keyspace.Keyspace, clients *keyspace.ClientList, replBacklog, aofBuffer int64) *mux.Router {
	objectHandler := NewObjectHandler(db)
	memoryHandler := NewMemoryHandler(db, dbs, clients, replBacklog, aofBuffer)

	router := mux.NewRouter()
	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/object/refcount", objectHandler.Refcount).Methods("GET")
	api.HandleFunc("/object/encoding", objectHandler.Encoding).Methods("GET")
	api.HandleFunc("/object/idletime", objectHandler.IdleTime).Methods("GET")
	api.HandleFunc("/object/freq", objectHandler.Freq).Methods("GET")
	api.HandleFunc("/object/{subcommand}", objectHandler.Dispatch).Methods("GET")

	api.HandleFunc("/memory/usage", memoryHandler.Usage).Methods("GET")
	api.HandleFunc("/memory/stats", memoryHandler.Stats).Methods("GET")
	api.HandleFunc("/memory/malloc-stats", memoryHandler.MallocStats).Methods("GET")
	api.HandleFunc("/memory/doctor", memoryHandler.Doctor).Methods("GET")
	api.HandleFunc("/memory/purge", memoryHandler.Purge).Methods("POST")
	api.HandleFunc("/memory/help", memoryHandler.Help).Methods("GET")

	router.HandleFunc("/swagger/doc.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write(swaggerJSON)
	}).Methods("GET")
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		RespondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	}).Methods("GET")

	return router
}
