package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "STORE_BACKEND", "STORE_DIR", "SOURCE_BACKEND", "DATA_DIR",
		"KG_KEY", "KG_MAX_SEEDS", "KG_HOPS", "PARALLEL_FILES", "SHUTDOWN_TIMEOUT",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, BackendFile, cfg.StoreBackend)
	assert.Equal(t, BackendFile, cfg.SourceBackend)
	assert.Equal(t, 3, cfg.MaxSeeds)
	assert.Equal(t, 1, cfg.DefaultHops)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "kg", cfg.GraphKey)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STORE_BACKEND", "badger")
	t.Setenv("BADGER_PATH", "/var/lib/carekg")
	t.Setenv("KG_HOPS", "2")
	t.Setenv("NEO4J_RETRY_DELAY", "500ms")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, BackendBadger, cfg.StoreBackend)
	assert.Equal(t, "/var/lib/carekg", cfg.BadgerPath)
	assert.Equal(t, 2, cfg.DefaultHops)
	assert.Equal(t, 500*time.Millisecond, cfg.Neo4j.RetryDelay)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Port:          "8080",
			SourceBackend: BackendFile,
			DataDir:       "data/raw",
			ParallelFiles: 3,
			StoreBackend:  BackendFile,
			StoreDir:      "data/processed",
			GraphKey:      "kg",
			MaxSeeds:      3,
			DefaultHops:   1,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"unknown store", func(c *Config) { c.StoreBackend = "redis" }, true},
		{"seed cap above ceiling", func(c *Config) { c.MaxSeeds = 4 }, true},
		{"port not numeric", func(c *Config) { c.Port = "http" }, true},
		{"s3 without bucket", func(c *Config) { c.StoreBackend = BackendS3 }, true},
		{"s3 with bucket", func(c *Config) { c.StoreBackend = BackendS3; c.AWS.Bucket = "kg" }, false},
		{"postgres without url", func(c *Config) { c.StoreBackend = BackendPostgres }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
