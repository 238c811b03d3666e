package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
env:
  env: test
  serviceName: idstore
  log:
    level: info
store:
  driver: sqlite
  sqlitePath: ":memory:"
  slowThreshold: 50ms
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))

	return dir
}

func TestLoadWithEnv_ReadsYAML(t *testing.T) {
	t.Chdir(writeConfig(t, testConfig))

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "idstore", cfg.Env.ServiceName)
	assert.Equal(t, DriverSQLite, cfg.Store.Driver)
	assert.Equal(t, ":memory:", cfg.Store.SQLitePath)
	assert.Equal(t, 50*time.Millisecond, cfg.Store.SlowThreshold)
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	t.Chdir(writeConfig(t, testConfig))
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("STORE_AUTOMIGRATE", "true")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, DriverMemory, cfg.Store.Driver)
	assert.True(t, cfg.Store.AutoMigrate)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	assert.ErrorContains(t, err, "config.yaml not found")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.Env.ServiceName = "idstore"
		cfg.Store.Driver = DriverMemory

		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr bool
	}{
		{name: "memory driver", mutate: func(*Config) {}},
		{name: "unknown driver", mutate: func(cfg *Config) { cfg.Store.Driver = "mongo" }, wantErr: true},
		{name: "missing service name", mutate: func(cfg *Config) { cfg.Env.ServiceName = "" }, wantErr: true},
		{name: "sqlite without path", mutate: func(cfg *Config) { cfg.Store.Driver = DriverSQLite }, wantErr: true},
		{name: "postgres without section", mutate: func(cfg *Config) { cfg.Store.Driver = DriverPostgres }, wantErr: true},
		{name: "bad log level", mutate: func(cfg *Config) { cfg.Env.Log.Level = "verbose" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
