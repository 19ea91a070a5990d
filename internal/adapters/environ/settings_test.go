package environ_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.stackforge.dev/stackforge/internal/adapters/environ"
	"go.stackforge.dev/stackforge/internal/core/domain"
)

// unset removes key for the duration of the test. t.Setenv registers the
// restore before the variable is cleared.
func unset(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func clearAll(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"STACKFORGE_LOG_LEVEL",
		"STACKFORGE_SRC_DIR",
		"STACKFORGE_USE_BIND_MOUNT",
		"STACKFORGE_TEMPLATE_DIR",
		"STACKFORGE_ENV_ROOT",
		"STACKFORGE_PYTHON",
		"STACKFORGE_CONTAINER_BINARY",
		"STACKFORGE_BASE_IMAGE",
	} {
		unset(t, key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearAll(t)

	settings, err := environ.Load()
	require.NoError(t, err)

	assert.Equal(t, "info", settings.LogLevel)
	assert.Empty(t, settings.SourceDir)
	assert.False(t, settings.UseBindMount)
	assert.Equal(t, "templates", settings.TemplateDir)
	assert.Equal(t, filepath.Join(xdg.DataHome, "stackforge", "envs"), settings.EnvRoot)
	assert.Equal(t, "python3", settings.PythonBinary)
	assert.Equal(t, "docker", settings.ContainerBinary)
	assert.Equal(t, "python:3.12-slim", settings.BaseImage)
}

func TestLoad_EnvironmentWins(t *testing.T) {
	clearAll(t)
	t.Setenv("STACKFORGE_SRC_DIR", "/home/dev/stackforge")
	t.Setenv("STACKFORGE_USE_BIND_MOUNT", "true")
	t.Setenv("STACKFORGE_ENV_ROOT", "/var/lib/stackforge")
	t.Setenv("STACKFORGE_CONTAINER_BINARY", "podman")

	settings, err := environ.Load()
	require.NoError(t, err)

	assert.Equal(t, "/home/dev/stackforge", settings.SourceDir)
	assert.True(t, settings.UseBindMount)
	assert.Equal(t, "/var/lib/stackforge", settings.EnvRoot)
	assert.Equal(t, "podman", settings.ContainerBinary)
}

func TestLoad_InvalidBoolean(t *testing.T) {
	clearAll(t)
	t.Setenv("STACKFORGE_USE_BIND_MOUNT", "sideways")

	_, err := environ.Load()
	require.ErrorIs(t, err, domain.ErrSettingsInvalid)
}

func TestSettings_SourceMode(t *testing.T) {
	assert.Equal(t, domain.SourceModeFromPackage, environ.Settings{}.SourceMode())
	assert.Equal(t, domain.SourceModeFromSource, environ.Settings{SourceDir: "/src"}.SourceMode())
}

func TestSettings_FileMode(t *testing.T) {
	assert.Equal(t, domain.FileModeCopy, environ.Settings{}.FileMode())
	assert.Equal(t, domain.FileModeMount, environ.Settings{UseBindMount: true}.FileMode())
}
