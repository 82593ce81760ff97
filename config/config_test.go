package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reset(t *testing.T) {
	t.Helper()
	cfg, loaded = AppConfig{}, false
	t.Cleanup(func() { cfg, loaded = AppConfig{}, false })
}

func TestLoadJSONFile(t *testing.T) {
	reset(t)
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
  "app": {"AppPort": "9000", "PageSize": 5, "AllowedOrigins": ["https://blog.example"]},
  "session": {"JWTSecret": "from-file", "TTLHours": 4},
  "database": {"Driver": "sqlite", "DatabaseURI": "blog.db"},
  "log": {"Level": "debug"}
}`), 0o600))
	t.Setenv("CONFIG_FILE", path)

	c := Load()
	assert.Equal(t, "9000", c.AppPort)
	assert.Equal(t, 5, c.PageSize)
	assert.Equal(t, []string{"https://blog.example"}, c.AllowedOrigins)
	assert.Equal(t, "from-file", c.JWTSecret)
	assert.Equal(t, 4, c.SessionTTLHours)
	assert.Equal(t, "sqlite", c.DBDriver)
	assert.Equal(t, "blog.db", c.DatabaseURI)
	assert.Equal(t, "debug", c.LogLevel)
	// untouched fields fall back to defaults
	assert.Equal(t, "blogsite_session", c.SessionCookie)
	assert.Equal(t, 60, c.RateLimitPerMinute)
}

func TestLoadYAMLFileWithEnvOverride(t *testing.T) {
	reset(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
app:
  SiteName: Notebook
session:
  JWTSecret: yaml-secret
redis:
  RedisHost: cache.internal
  RedisPort: 6380
`), 0o600))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	c := Load()
	assert.Equal(t, "Notebook", c.SiteName)
	assert.Equal(t, "env-secret", c.JWTSecret)
	assert.Equal(t, "cache.internal", c.RedisHost)
	assert.Equal(t, 6380, c.RedisPort)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, c.AllowedOrigins)
	assert.Equal(t, c, Get())
}

func TestSetAppliesDefaults(t *testing.T) {
	reset(t)
	Set(AppConfig{JWTSecret: "s", DBDriver: "sqlite"})

	c := Get()
	assert.Equal(t, "8080", c.AppPort)
	assert.Equal(t, 20, c.PageSize)
	assert.Equal(t, "sqlite", c.DBDriver)
	assert.Equal(t, 72, c.SessionTTLHours)
}

func TestDialector(t *testing.T) {
	d, err := dialector(AppConfig{DBDriver: "sqlite", DBName: "blogsite"})
	require.NoError(t, err)
	assert.Equal(t, "sqlite", d.Name())

	d, err = dialector(AppConfig{DBDriver: "mysql", DBUser: "u", DBHost: "h", DBPort: "3306", DBName: "b"})
	require.NoError(t, err)
	assert.Equal(t, "mysql", d.Name())

	_, err = dialector(AppConfig{DBDriver: "oracle"})
	assert.Error(t, err)
}

func TestOpenDatabaseSQLite(t *testing.T) {
	gdb, err := OpenDatabase(AppConfig{DBDriver: "sqlite", DatabaseURI: filepath.Join(t.TempDir(), "t.db"), LogLevel: "silent"})
	require.NoError(t, err)

	type widget struct {
		ID   uint
		Name string
	}
	require.NoError(t, Migrate(gdb, &widget{}))
	require.NoError(t, gdb.Create(&widget{Name: "a"}).Error)

	var n int64
	require.NoError(t, gdb.Model(&widget{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	assert.NoError(t, sqlDB.Close())
}
