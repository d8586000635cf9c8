package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadFromEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("APP_PORT", "9090")
	t.Setenv("GOOGLE_MAPS_API_KEY", "env-key")
	t.Setenv("GOOGLE_TIMEOUT", "5s")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("GOOGLE_PLACES_URL", "")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.AppPort)
	assert.Equal(t, "env-key", cfg.GoogleAPIKey)
	assert.Equal(t, 5*time.Second, cfg.UpstreamTimeout)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultPlacesURL, cfg.PlacesURL)
}

func TestLoadMissingKeyIsNotAnError(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("GOOGLE_MAPS_API_KEY", "")
	t.Setenv("APP_PORT", "not-a-port")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Empty(t, cfg.GoogleAPIKey)
	assert.Equal(t, DefaultAppPort, cfg.AppPort)
	assert.Zero(t, cfg.UpstreamTimeout)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.config.json")
	body := `{
		"server": {"port": 7000},
		"log": {"level": "debug"},
		"google": {"apikey": "file-key", "placesurl": "http://localhost:1234/search", "timeout": "2s"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	t.Setenv("GOOGLE_MAPS_API_KEY", "")
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7000, cfg.AppPort)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "file-key", cfg.GoogleAPIKey)
	assert.Equal(t, "http://localhost:1234/search", cfg.PlacesURL)
	assert.Equal(t, 2*time.Second, cfg.UpstreamTimeout)

	t.Setenv("GOOGLE_MAPS_API_KEY", "env-key")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.GoogleAPIKey)
}

func TestLoadExplicitFileMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestGetConfigIsCached(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("GOOGLE_MAPS_API_KEY", "first")
	SetConfigFile("")

	first, err := GetConfig()
	require.NoError(t, err)

	t.Setenv("GOOGLE_MAPS_API_KEY", "second")
	second, err := GetConfig()
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, "first", second.GoogleAPIKey)

	SetConfigFile("")
}

func TestLoadMalformedFileIsAnError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.config.json"), []byte(`{"server": {"port": `), 0o600))
	chdir(t, dir)
	t.Setenv("GOOGLE_MAPS_API_KEY", "env-key")

	_, err := Load("")
	assert.Error(t, err)
}

func TestLoadFindsFileInConfigDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "config"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "app.config.json"), []byte(`{"server": {"port": 7100}}`), 0o600))
	chdir(t, dir)
	t.Setenv("GOOGLE_MAPS_API_KEY", "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7100, cfg.AppPort)
	assert.Equal(t, DefaultPlacesURL, cfg.PlacesURL)
}
