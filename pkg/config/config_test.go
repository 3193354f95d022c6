package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matkrin/mvg-cli/pkg/mvg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useTempHome(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir) // For Windows compatibility in tests
	return tempDir
}

func TestConfigLoadSave(t *testing.T) {
	tempDir := useTempHome(t)

	cfg, err := Load()
	require.NoError(t, err, "loading a missing config must not fail")
	require.NotNil(t, cfg)
	assert.Equal(t, &AppConfig{}, cfg)

	cfg.DefaultStation = "Marienplatz"
	cfg.AccentColor = "#0065BD"
	cfg.DisabledTransportTypes = []string{"BUS"}
	require.NoError(t, Save(cfg))

	_, err = os.Stat(filepath.Join(tempDir, ".mvg-cli.json"))
	require.NoError(t, err, "expected config file to be created")

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestConfigParseError(t *testing.T) {
	tempDir := useTempHome(t)

	configPath := filepath.Join(tempDir, ".mvg-cli.json")
	require.NoError(t, os.WriteFile(configPath, []byte("invalid json { content"), 0644))

	_, err := Load()
	assert.Error(t, err)
}

func TestRouteTransportTypes(t *testing.T) {
	cfg := &AppConfig{}
	assert.Equal(t, mvg.AllRouteTransportTypes(), cfg.RouteTransportTypes())

	cfg.DisabledTransportTypes = []string{"BUS", "RUFTAXI"}
	got := cfg.RouteTransportTypes()
	assert.Equal(t, []mvg.TransportType{mvg.Underground, mvg.Tram, mvg.Suburban}, got.List())
}

func TestBaseURL(t *testing.T) {
	t.Setenv(apiURLEnv, "")
	cfg := &AppConfig{APIURL: "http://file.example"}
	assert.Equal(t, "http://file.example", cfg.BaseURL())

	t.Setenv(apiURLEnv, "http://env.example")
	assert.Equal(t, "http://env.example", cfg.BaseURL())
}
