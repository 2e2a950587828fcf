package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigDefaultsWithoutFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "prison", cfg.Database.ServiceName)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadConfigFileThenEnvironment(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: "9090"
database:
  host: db.internal
  port: "6543"
  service_name: corrections
  user: warden
  password: file-secret
logging:
  level: debug
  format: text
`)
	t.Setenv("DB_PASSWORD", "env-secret")
	t.Setenv("DB_HOST", "")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host, "empty env values must not clear file values")
	assert.Equal(t, "env-secret", cfg.Database.Password)
	assert.Equal(t, "corrections", cfg.Database.ServiceName)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	tests := map[string]string{
		"bad db port":     "database:\n  port: \"abc\"\n",
		"bad server port": "server:\n  port: \"70000\"\n",
		"no service":      "database:\n  service_name: \" \"\n",
		"bad log format":  "logging:\n  format: xml\n",
		"malformed yaml":  "server: [",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(writeConfigFile(t, content))
			assert.Error(t, err)
		})
	}
}

func TestGetPostgresConnectionString(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)
	cfg.Database.Host = "db"
	cfg.Database.Port = "5433"
	cfg.Database.ServiceName = "prison"
	cfg.Database.User = "admin"
	cfg.Database.Password = "p@ss:word"
	cfg.Database.SSLMode = ""

	assert.Equal(t, "postgres://admin:p%40ss%3Aword@db:5433/prison?sslmode=disable", cfg.GetPostgresConnectionString())
}

func TestApplyEnvTypes(t *testing.T) {
	var target struct {
		Name  string `env:"TEST_CFG_NAME"`
		Inner struct {
			Retries int  `env:"TEST_CFG_RETRIES"`
			Enabled bool `env:"TEST_CFG_ENABLED"`
		}
		Untagged string
	}
	t.Setenv("TEST_CFG_NAME", " prison ")
	t.Setenv("TEST_CFG_RETRIES", "3")
	t.Setenv("TEST_CFG_ENABLED", "true")

	applied, err := applyEnv(&target)
	require.NoError(t, err)
	assert.Equal(t, "prison", target.Name)
	assert.Equal(t, 3, target.Inner.Retries)
	assert.True(t, target.Inner.Enabled)
	assert.Equal(t, []string{"TEST_CFG_NAME", "TEST_CFG_RETRIES", "TEST_CFG_ENABLED"}, applied)

	t.Setenv("TEST_CFG_RETRIES", "many")
	_, err = applyEnv(&target)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Inner.Retries")
}

func TestApplyEnvRequiresStructPointer(t *testing.T) {
	_, err := applyEnv(struct{}{})
	assert.Error(t, err)
}

func TestLoadConfigRecordsEnvOverrides(t *testing.T) {
	t.Setenv("DB_USER", "auditor")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "auditor", cfg.Database.User)
	assert.Contains(t, cfg.EnvOverrides, "DB_USER")
}
