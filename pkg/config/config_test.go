package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalog-demo/pkg/config"
)

// chdir cambia el directorio de trabajo durante el test y lo restaura al terminar
// (equivalente a testing.T.Chdir, disponible solo desde Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestLoad_ValoresPorDefecto(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "catalog-demo", cfg.App.Name)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, config.FormatText, cfg.Report.Format)
	assert.Empty(t, cfg.Report.Locale)
}

func TestLoad_VariablesDeEntorno(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("REPORT_FORMAT", "JSON")
	t.Setenv("REPORT_LOCALE", "es")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, config.FormatJSON, cfg.Report.Format, "el formato no distingue mayúsculas")
	assert.Equal(t, "es", cfg.Report.Locale)
}

func TestLoad_FormatoSeNormalizaSinValidar(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("REPORT_FORMAT", "XML")

	// El formato se valida una sola vez, al construir el printer del reporte.
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "xml", cfg.Report.Format)
}
