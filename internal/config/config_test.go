package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("INKIND_DB", "")
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultDBPath(), cfg.DB)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 10, cfg.LogMaxSize)
	assert.True(t, strings.HasSuffix(cfg.DB, filepath.Join(".inkind", "contributions.db")))
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("INKIND_DB", "/tmp/x.db")
	t.Setenv("INKIND_FORMAT", "json")
	t.Setenv("INKIND_LOG_MAX_AGE", "7")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.db", cfg.DB)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, 7, cfg.LogMaxAge)
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "inkind.env")
	require.NoError(t, os.WriteFile(file, []byte("INKIND_POLICY=/etc/inkind/fy26.yaml\nINKIND_FORMAT=plain\n"), 0o644))

	t.Setenv("INKIND_POLICY", "")
	os.Unsetenv("INKIND_POLICY")
	t.Setenv("INKIND_FORMAT", "jsonl")

	cfg, err := Load(file)
	require.NoError(t, err)
	assert.Equal(t, "/etc/inkind/fy26.yaml", cfg.Policy)
	// Variables already set in the environment win over the file.
	assert.Equal(t, "jsonl", cfg.Format)
}

func TestLoadMissingEnvFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestLoadPolicy(t *testing.T) {
	p, err := Config{}.LoadPolicy()
	require.NoError(t, err)
	assert.Equal(t, "v1.0.0", p.Version)

	file := filepath.Join(t.TempDir(), "policy.yaml")
	require.NoError(t, os.WriteFile(file, []byte("version: v2.0.0\nlabor_multiplier: 4\n"), 0o644))
	p, err = Config{Policy: file}.LoadPolicy()
	require.NoError(t, err)
	assert.Equal(t, "v2.0.0", p.Version)
	assert.Equal(t, "4", p.LaborMultiplier.String())
}

func TestNewLoggerToFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "inkind.log")
	cfg := Config{LogFormat: "json", LogLevel: "info", LogFile: file, LogMaxSize: 1}

	logger, closer, err := cfg.NewLogger()
	require.NoError(t, err)
	logger.Debug("hidden")
	logger.Warn("speaker not found", "speaker", "Jane Smith")
	require.NoError(t, closer.Close())

	raw, err := os.ReadFile(file)
	require.NoError(t, err)
	lines := bytes.Split(bytes.TrimSpace(raw), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "speaker not found", entry["msg"])
	assert.Equal(t, "Jane Smith", entry["speaker"])
}

func TestNewLoggerRejectsBadSettings(t *testing.T) {
	_, _, err := Config{LogLevel: "loud"}.NewLogger()
	assert.Error(t, err)

	_, _, err = Config{LogLevel: "info", LogFormat: "xml"}.NewLogger()
	assert.Error(t, err)
}
