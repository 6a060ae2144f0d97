package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
env:
  env: test
  serviceName: menumaster
  timezone: America/Sao_Paulo
  log:
    level: debug
http:
  port: 8080
  timeouts:
    readTimeout: 5s
storage:
  driver: blob
  bucketUrl: mem://
scheduler:
  finalizeDay:
    enabled: true
`

func TestLoadWithEnv_ReadsYAMLAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testYAML), 0o600))
	t.Chdir(dir)
	t.Setenv("STORAGE_BUCKETURL", "file:///tmp/menumaster")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "menumaster", cfg.Env.ServiceName)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	assert.Equal(t, "file:///tmp/menumaster", cfg.Storage.BucketURL)
	require.NotNil(t, cfg.Scheduler)
	assert.True(t, cfg.Scheduler.FinalizeDay.Enabled)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := &Config{Scheduler: &SchedulerConfig{}}
	cfg.applyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "blob", cfg.Storage.Driver)
	assert.Equal(t, "mem://", cfg.Storage.BucketURL)
	assert.Equal(t, defaultFinalizeDaySpec, cfg.Scheduler.FinalizeDay.Spec)
	assert.Equal(t, "MenuMaster", cfg.StoreName())
}

func TestConfig_Location(t *testing.T) {
	cfg := &Config{}
	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	cfg.Env.Timezone = "America/Sao_Paulo"
	loc, err = cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "America/Sao_Paulo", loc.String())

	cfg.Env.Timezone = "Not/AZone"
	_, err = cfg.Location()
	assert.Error(t, err)
}
