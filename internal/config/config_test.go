package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_YAMLThenEnv(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 8080
  env: production
database:
  driver: sqlite
  url: file:yaml.db
jwt:
  secret: from-yaml
  ttl: 30
kafka:
  brokers: ["k1:9092"]
`)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("ENV", "prod")
	t.Setenv("DATABASE_URL", "file:env.db")
	t.Setenv("CORS_ORIGINS", "https://a.example,https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "file:env.db", cfg.Database.DSN, "env wins over yaml")
	assert.Equal(t, "from-yaml", cfg.JWT.Secret)
	assert.Equal(t, 30, cfg.JWT.TTL)
	assert.Equal(t, []string{"k1:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSOrigins)
	// значения по умолчанию сохраняются
	assert.Equal(t, "local", cfg.Storage.Type)
	assert.False(t, cfg.IsDevelopment())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv("ENV", "prod")
	t.Setenv("DATABASE_URL", "file:test.db")
	t.Setenv("DATABASE_DRIVER", "sqlite")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5001, cfg.Server.Port)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "dev-only-insecure-secret", cfg.JWT.Secret)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := Default()
		cfg.Database.DSN = "postgres://localhost/db"
		cfg.JWT.Secret = "s"
		return cfg
	}

	require.NoError(t, valid().Validate())

	cfg := valid()
	cfg.Database.DSN = ""
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.Database.Driver = "oracle"
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.Server.Env = "production"
	cfg.JWT.Secret = ""
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.JWT.TTL = 0
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.Upload.MaxSize = 0
	assert.Error(t, cfg.Validate())
}

func TestLoad_ShippedConfigClosesMentorSignup(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join("..", "..", "config", "config.yaml"))
	t.Setenv("ENV", "prod")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.Auth.AllowMentorSignup)

	t.Setenv("AUTH_ALLOW_MENTOR_SIGNUP", "true")
	cfg, err = Load()
	require.NoError(t, err)
	assert.True(t, cfg.Auth.AllowMentorSignup)
}
