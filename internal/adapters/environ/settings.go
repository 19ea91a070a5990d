// Package environ loads orchestrator settings from the process environment.
package environ

import (
	"errors"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.stackforge.dev/stackforge/internal/core/domain"
	"go.trai.ch/zerr"
)

// Settings are the environment-level toggles and tool locations consumed by
// the resolver and the artifact builders. CLI flags select what to build;
// these decide how the host materializes it.
type Settings struct {
	// LogLevel is the minimum log level (debug, info, warn, error).
	LogLevel string `env:"STACKFORGE_LOG_LEVEL" envDefault:"info"`

	// SourceDir, when set, switches the build-source mode to from-source and
	// names the runtime source tree the artifact should track.
	SourceDir string `env:"STACKFORGE_SRC_DIR"`

	// UseBindMount selects the mount file-materialization mode for container
	// builds. Bind mounts during a build only work with tools that support
	// them; automated pipelines should keep the copy default.
	UseBindMount bool `env:"STACKFORGE_USE_BIND_MOUNT" envDefault:"false"`

	// TemplateDir is the directory holding template definitions.
	TemplateDir string `env:"STACKFORGE_TEMPLATE_DIR" envDefault:"templates"`

	// EnvRoot is the directory environments are created under. Defaults to
	// the XDG data directory when unset.
	EnvRoot string `env:"STACKFORGE_ENV_ROOT"`

	// PythonBinary bootstraps new virtual environments.
	PythonBinary string `env:"STACKFORGE_PYTHON" envDefault:"python3"`

	// ContainerBinary is the external image-build tool.
	ContainerBinary string `env:"STACKFORGE_CONTAINER_BINARY" envDefault:"docker"`

	// BaseImage is the container base image used when a template does not
	// name one.
	BaseImage string `env:"STACKFORGE_BASE_IMAGE" envDefault:"python:3.12-slim"`
}

// Load reads an optional .env file from the working directory, then the
// process environment. Values already present in the environment win over the
// .env file.
func Load() (Settings, error) {
	_ = godotenv.Load()

	settings, err := env.ParseAs[Settings]()
	if err != nil {
		invalid := errors.Join(domain.ErrSettingsInvalid, err)
		return Settings{}, zerr.Wrap(invalid, "failed to parse environment settings")
	}
	if settings.EnvRoot == "" {
		settings.EnvRoot = filepath.Join(xdg.DataHome, "stackforge", "envs")
	}
	return settings, nil
}

// SourceMode derives the build-source mode from SourceDir.
func (s Settings) SourceMode() domain.SourceMode {
	if s.SourceDir != "" {
		return domain.SourceModeFromSource
	}
	return domain.SourceModeFromPackage
}

// FileMode derives the file-materialization mode from UseBindMount.
func (s Settings) FileMode() domain.FileMode {
	if s.UseBindMount {
		return domain.FileModeMount
	}
	return domain.FileModeCopy
}
