package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdfutils/internal/domain/entities"
	"pdfutils/internal/infrastructure/config"
)

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	t.Setenv(config.LicenseEnv, "")
	repo := config.NewRepositoryWithEnvFile("")

	cfg, err := repo.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, entities.DefaultConfig(), cfg)
}

func TestSaveThenLoad(t *testing.T) {
	t.Setenv(config.LicenseEnv, "")
	path := filepath.Join(t.TempDir(), "config.yaml")

	want := entities.DefaultConfig()
	want.Scanner.Directory = "/srv/pdfs"
	want.Engine.Backend = entities.BackendUniPDF
	want.Watermark.ImageMaxPx = 640
	want.UI.Mode = entities.UIModeTUI

	require.NoError(t, config.NewRepositoryWithEnvFile("").Save(path, want))

	got, err := config.NewRepositoryWithEnvFile("").Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoad_EnvOverridesFileAndDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui:\n  mode: plain\noutput:\n  log_level: debug\n"), 0o644))

	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("PDFUTILS_OUTPUT_LOG_LEVEL=error\nPDFUTILS_UI_MODE=plain\nUNIDOC_LICENSE_API_KEY=from-dotenv\n"), 0o644))

	t.Setenv("PDFUTILS_UI_MODE", "tui")
	t.Setenv(config.LicenseEnv, "")

	cfg, err := config.NewRepositoryWithEnvFile(envFile).Load(path)
	require.NoError(t, err)
	assert.Equal(t, entities.UIModeTUI, cfg.UI.Mode)
	assert.Equal(t, "error", cfg.Output.LogLevel)
	assert.Equal(t, "from-dotenv", cfg.Engine.UniPDFLicenseKey)
}

func TestLoad_InvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("engine:\n  backend: ghostscript\n"), 0o644))

	_, err := config.NewRepositoryWithEnvFile("").Load(path)
	assert.ErrorIs(t, err, entities.ErrInvalidBackend)
}

func TestLoad_BrokenYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui: [unterminated\n"), 0o644))

	_, err := config.NewRepositoryWithEnvFile("").Load(path)
	assert.Error(t, err)
}
