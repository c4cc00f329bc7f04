package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/ytgrab-go/internal/domain"
)

func TestLoadConfig_DefaultsWithoutFile(t *testing.T) {
	config, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "localhost", config.Server.Host)
	assert.Equal(t, 8080, config.Server.Port)
	assert.Equal(t, "bin", config.Binaries.Dir)
	assert.Equal(t, domain.QualityBest, config.Download.Quality)
	assert.Equal(t, "info", config.Logging.Level)
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  host: 0.0.0.0
  port: 9090
download:
  quality: 720p
  extract_audio: true
logging:
  level: debug
`), 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", config.Server.Host)
	assert.Equal(t, 9090, config.Server.Port)
	assert.Equal(t, domain.Quality720p, config.Download.Quality)
	assert.True(t, config.Download.ExtractAudio)
	assert.Equal(t, "debug", config.Logging.Level)
	// Untouched sections keep their defaults.
	assert.Equal(t, "bin", config.Binaries.Dir)
}

func TestLoadConfig_InvalidPortRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 70000\n"), 0o644))

	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "invalid server port")
}

func TestLoadConfig_UnknownQualityRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("download:\n  quality: 4k\n"), 0o644))

	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "unknown quality")
}

func TestLoadConfig_ExpandsPaths(t *testing.T) {
	t.Setenv("YTGRAB_TEST_BASE", "/srv/media")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
download:
  output_path: $YTGRAB_TEST_BASE/downloads
binaries:
  dir: ~/tools/bin
`), 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/media/downloads", config.Download.OutputPath)

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "tools/bin"), config.Binaries.Dir)
}

func TestSaveConfig_RoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	config := domain.DefaultConfig()
	config.Server.Port = 9999
	require.NoError(t, SaveConfig(config, path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 9999, loaded.Server.Port)
}
