// Package config provides centralized configuration for the value-object
// subsystem.
//
// Configuration follows a three-tier hierarchy, highest priority first:
//
//  1. An optional YAML override file (VOBJ_CONFIG_FILE)
//  2. Environment variables
//  3. Built-in defaults
//
// All values have sensible defaults, so the subsystem runs unconfigured.
package config

import (
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v2"
)

// EvictionPolicyName selects which eviction-policy clock mode the subsystem
// runs under (spec.md §3.1, §6.1).
type EvictionPolicyName string

const (
	// PolicyNoEviction disables maxmemory eviction entirely; lru carries a
	// plain LRU timestamp and shared integers are allowed.
	PolicyNoEviction EvictionPolicyName = "noeviction"
	// PolicyAllKeysLRU / PolicyVolatileLRU run the lru field as an LRU clock.
	PolicyAllKeysLRU  EvictionPolicyName = "allkeys-lru"
	PolicyVolatileLRU EvictionPolicyName = "volatile-lru"
	// PolicyAllKeysLFU / PolicyVolatileLFU run the lru field as an LFU
	// counter and imply NoSharedIntegers (every object needs its own
	// frequency counter, spec.md §4.5).
	PolicyAllKeysLFU  EvictionPolicyName = "allkeys-lfu"
	PolicyVolatileLFU EvictionPolicyName = "volatile-lfu"
)

// IsLFU reports whether the policy runs the lru field in LFU mode.
func (p EvictionPolicyName) IsLFU() bool {
	return p == PolicyAllKeysLFU || p == PolicyVolatileLFU
}

// NoSharedIntegers reports whether the policy forbids shared-integer
// interning because every object needs distinct per-key recency.
func (p EvictionPolicyName) NoSharedIntegers() bool {
	return p.IsLFU()
}

// Config holds every tunable of the value-object subsystem.
type Config struct {
	// Port is the HTTP port the OBJECT/MEMORY introspection surface
	// listens on. Environment: VOBJ_PORT. Default: 6380.
	Port int `yaml:"port"`

	// MaxMemoryPolicy selects the eviction policy, which in turn decides
	// whether shared-integer interning is permitted (spec.md §4.5) and
	// whether the lru header word is an LRU timestamp or an LFU counter.
	// Environment: VOBJ_MAXMEMORY_POLICY. Default: "noeviction".
	MaxMemoryPolicy EvictionPolicyName `yaml:"maxmemory_policy"`

	// DefaultSampleSize is loaded but not read by MEMORY USAGE, which
	// samples every element when no SAMPLES clause is given.
	// Environment: VOBJ_DEFAULT_SAMPLES. Default: 5.
	DefaultSampleSize int `yaml:"default_sample_size"`

	// SharedIntegerPoolSize is the size of the interned [0, N) integer
	// pool (spec.md §3.3). Environment: VOBJ_SHARED_INTEGER_POOL_SIZE.
	// Default: 10000.
	SharedIntegerPoolSize int `yaml:"shared_integer_pool_size"`

	// LogLevel is the initial logger.SetLogLevel value.
	// Environment: VOBJ_LOG_LEVEL. Default: "info".
	LogLevel string `yaml:"log_level"`

	// SwaggerHost is a host:port setting for the swagger spec. It is not
	// read by the router or the docs package; the served spec carries no
	// host. Environment: VOBJ_SWAGGER_HOST. Default: "localhost:6380".
	SwaggerHost string `yaml:"swagger_host"`

	// AppName / AppVersion are reported in the server's startup log line.
	AppName    string `yaml:"app_name"`
	AppVersion string `yaml:"app_version"`

	// HTTPReadTimeout / HTTPWriteTimeout / HTTPIdleTimeout bound the
	// introspection server's connection lifecycle. Environment:
	// VOBJ_HTTP_READ_TIMEOUT_SECONDS, VOBJ_HTTP_WRITE_TIMEOUT_SECONDS,
	// VOBJ_HTTP_IDLE_TIMEOUT_SECONDS.
	HTTPReadTimeout  time.Duration `yaml:"-"`
	HTTPWriteTimeout time.Duration `yaml:"-"`
	HTTPIdleTimeout  time.Duration `yaml:"-"`

	// ShutdownTimeout bounds how long main waits for in-flight requests to
	// drain on SIGINT/SIGTERM. Environment: VOBJ_SHUTDOWN_TIMEOUT_SECONDS.
	ShutdownTimeout time.Duration `yaml:"-"`

	// loadErr records a non-fatal YAML override failure, surfaced via
	// LoadError() once a logger is available (config.Load runs before
	// logger.Configure in cmd/server/main.go).
	loadErr error
}

// LoadError returns the error encountered while merging VOBJ_CONFIG_FILE,
// if any. A missing or malformed override file does not fail startup; it
// simply leaves the env/default layers in effect.
func (c *Config) LoadError() error {
	return c.loadErr
}

// Load builds a Config from defaults, environment variables, and (if
// VOBJ_CONFIG_FILE is set) a YAML override file, in that ascending order
// of priority.
func Load() *Config {
	cfg := &Config{
		Port:                  getEnvInt("VOBJ_PORT", 6380),
		MaxMemoryPolicy:       EvictionPolicyName(getEnv("VOBJ_MAXMEMORY_POLICY", string(PolicyNoEviction))),
		DefaultSampleSize:     getEnvInt("VOBJ_DEFAULT_SAMPLES", 5),
		SharedIntegerPoolSize: getEnvInt("VOBJ_SHARED_INTEGER_POOL_SIZE", 10000),
		LogLevel:              getEnv("VOBJ_LOG_LEVEL", "info"),
		SwaggerHost:           getEnv("VOBJ_SWAGGER_HOST", "localhost:6380"),
		AppName:               getEnv("VOBJ_APP_NAME", "vobj"),
		AppVersion:            getEnv("VOBJ_APP_VERSION", "1.0.0"),
		HTTPReadTimeout:       time.Duration(getEnvInt("VOBJ_HTTP_READ_TIMEOUT_SECONDS", 15)) * time.Second,
		HTTPWriteTimeout:      time.Duration(getEnvInt("VOBJ_HTTP_WRITE_TIMEOUT_SECONDS", 15)) * time.Second,
		HTTPIdleTimeout:       time.Duration(getEnvInt("VOBJ_HTTP_IDLE_TIMEOUT_SECONDS", 60)) * time.Second,
		ShutdownTimeout:       time.Duration(getEnvInt("VOBJ_SHUTDOWN_TIMEOUT_SECONDS", 10)) * time.Second,
	}

	if path := os.Getenv("VOBJ_CONFIG_FILE"); path != "" {
		if err := cfg.mergeYAMLFile(path); err != nil {
			// A missing or malformed override file falls back to the
			// env/default layers rather than failing startup.
			cfg.loadErr = err
		}
	}

	return cfg
}

func (c *Config) mergeYAMLFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var override Config
	if err := yaml.Unmarshal(data, &override); err != nil {
		return err
	}
	mergeNonZero(c, &override)
	return nil
}

func mergeNonZero(base, override *Config) {
	if override.Port != 0 {
		base.Port = override.Port
	}
	if override.MaxMemoryPolicy != "" {
		base.MaxMemoryPolicy = override.MaxMemoryPolicy
	}
	if override.DefaultSampleSize != 0 {
		base.DefaultSampleSize = override.DefaultSampleSize
	}
	if override.SharedIntegerPoolSize != 0 {
		base.SharedIntegerPoolSize = override.SharedIntegerPoolSize
	}
	if override.LogLevel != "" {
		base.LogLevel = override.LogLevel
	}
	if override.SwaggerHost != "" {
		base.SwaggerHost = override.SwaggerHost
	}
	if override.AppName != "" {
		base.AppName = override.AppName
	}
	if override.AppVersion != "" {
		base.AppVersion = override.AppVersion
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultValue
}

