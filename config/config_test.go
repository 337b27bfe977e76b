package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg := Load()
	if cfg.Port != 6380 {
		t.Errorf("Port = %d, want 6380", cfg.Port)
	}
	if cfg.MaxMemoryPolicy != PolicyNoEviction {
		t.Errorf("MaxMemoryPolicy = %q, want %q", cfg.MaxMemoryPolicy, PolicyNoEviction)
	}
	if cfg.SharedIntegerPoolSize != 10000 {
		t.Errorf("SharedIntegerPoolSize = %d, want 10000", cfg.SharedIntegerPoolSize)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv("VOBJ_PORT", "7000")
	t.Setenv("VOBJ_MAXMEMORY_POLICY", "allkeys-lfu")

	cfg := Load()
	if cfg.Port != 7000 {
		t.Errorf("Port = %d, want 7000", cfg.Port)
	}
	if !cfg.MaxMemoryPolicy.IsLFU() {
		t.Errorf("expected LFU policy, got %q", cfg.MaxMemoryPolicy)
	}
	if !cfg.MaxMemoryPolicy.NoSharedIntegers() {
		t.Error("LFU policy must imply NoSharedIntegers")
	}
}

func TestLoadYAMLOverrideWinsOverEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("VOBJ_PORT", "7000")

	dir := t.TempDir()
	path := filepath.Join(dir, "vobj.yaml")
	if err := os.WriteFile(path, []byte("port: 9999\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("VOBJ_CONFIG_FILE", path)

	cfg := Load()
	if cfg.Port != 9999 {
		t.Errorf("Port = %d, want 9999 (YAML should win over env)", cfg.Port)
	}
	if cfg.LoadError() != nil {
		t.Errorf("unexpected LoadError: %v", cfg.LoadError())
	}
}

func TestLoadMissingYAMLFileIsNonFatal(t *testing.T) {
	clearEnv(t)
	t.Setenv("VOBJ_CONFIG_FILE", "/nonexistent/vobj.yaml")

	cfg := Load()
	if cfg.Port != 6380 {
		t.Errorf("Port = %d, want default 6380 on missing override file", cfg.Port)
	}
	if cfg.LoadError() == nil {
		t.Error("expected LoadError for missing override file")
	}
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"VOBJ_PORT", "VOBJ_MAXMEMORY_POLICY", "VOBJ_DEFAULT_SAMPLES",
		"VOBJ_SHARED_INTEGER_POOL_SIZE", "VOBJ_LOG_LEVEL", "VOBJ_SWAGGER_HOST",
		"VOBJ_APP_NAME", "VOBJ_APP_VERSION", "VOBJ_CONFIG_FILE",
	} {
		os.Unsetenv(key)
	}
}
