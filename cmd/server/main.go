// Command server runs the value-object subsystem's OBJECT/MEMORY
// introspection HTTP surface.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/tx469541153/redis-code-reading/api"
	"github.com/tx469541153/redis-code-reading/clock"
	"github.com/tx469541153/redis-code-reading/config"
	"github.com/tx469541153/redis-code-reading/keyspace"
	"github.com/tx469541153/redis-code-reading/logger"
	"github.com/tx469541153/redis-code-reading/overhead"
	"github.com/tx469541153/redis-code-reading/vobj"
)

var (
	// Version and BuildDate are overridden at build time via -ldflags.
	Version   = "dev"
	BuildDate = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.BoolVar(showVersion, "v", false, "print version and exit (shorthand)")
	numDatabases := flag.Int("databases", 1, "number of logical keyspaces to serve")
	flag.Parse()

	if *showVersion {
		fmt.Printf("vobj-server v%s (built %s)\n", Version, BuildDate)
		os.Exit(0)
	}

	cfg := config.Load()

	logger.Configure()
	if err := logger.SetLogLevel(cfg.LogLevel); err != nil {
		logger.Fatal("invalid log level: %v", err)
	}
	if cfg.LoadError() != nil {
		logger.Warn("VOBJ_CONFIG_FILE could not be applied, falling back to env/defaults: %v", cfg.LoadError())
	}

	if traceSubsystems := os.Getenv("VOBJ_TRACE_SUBSYSTEMS"); traceSubsystems != "" {
		subsystems := strings.Split(traceSubsystems, ",")
		for i, s := range subsystems {
			subsystems[i] = strings.TrimSpace(s)
		}
		logger.EnableTrace(subsystems...)
		logger.Info("trace subsystems enabled: %s", strings.Join(subsystems, ", "))
	}

	logger.Info("starting %s v%s with log level %s", cfg.AppName, cfg.AppVersion, strings.ToUpper(logger.GetLogLevel()))
	logger.Info("maxmemory-policy=%s shared-integer-pool-size=%d", cfg.MaxMemoryPolicy, cfg.SharedIntegerPoolSize)

	policy := clock.FromConfig(cfg)
	vobj.SetPolicy(policy)
	vobj.Init(cfg.SharedIntegerPoolSize)
	if policy.LFU {
		logger.Info("LFU eviction policy active: shared-integer interning disabled")
	}

	if *numDatabases < 1 {
		*numDatabases = 1
	}
	dbs := make([]*keyspace.Keyspace, *numDatabases)
	for i := range dbs {
		dbs[i] = keyspace.New(16, 4)
	}
	clients := keyspace.NewClientList()

	// Prime the allocator sample so the first MEMORY STATS/DOCTOR call
	// after startup has a startup_allocated baseline (spec.md §4.10).
	total, rss := overhead.Sample()
	logger.Info("startup memory sample: allocated=%d resident=%d", total, rss)

	router := api.NewRouter(dbs[0], dbs, clients, 0, 0)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	logger.Info("starting introspection server on HTTP port %d", cfg.Port)
	logger.Info("server URL: http://localhost:%d", cfg.Port)
	logger.Info("API documentation: http://localhost:%d/swagger/", cfg.Port)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server failed: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	logger.Info("received signal %v, initiating graceful shutdown", sig)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown error: %v", err)
	}

	logger.Info("shutdown complete")
}
