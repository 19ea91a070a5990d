// Package venv implements the environment artifact strategy: a python
// virtual environment with every resolved specifier installed into it.
package venv

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.stackforge.dev/stackforge/internal/core/domain"
	"go.stackforge.dev/stackforge/internal/core/ports"
	"go.trai.ch/zerr"
)

const fingerprintFile = ".fingerprint"

// Builder implements ports.ArtifactBuilder for the environment image type.
type Builder struct {
	runner ports.CommandRunner
	logger ports.Logger

	// root is the directory environments are created under.
	root string
	// python bootstraps the virtual environment.
	python string
}

// NewBuilder creates a new environment Builder.
func NewBuilder(runner ports.CommandRunner, logger ports.Logger, root, python string) *Builder {
	return &Builder{
		runner: runner,
		logger: logger,
		root:   root,
		python: python,
	}
}

// Build creates (or recreates) the environment named by the request and
// installs every specifier into it in order. Installation is fail-fast: the
// first failing specifier aborts the remaining installs and the partial
// environment is left in place for inspection, since rolling back a package
// environment is itself unreliable.
func (b *Builder) Build(
	ctx context.Context,
	req domain.BuildRequest,
	deps *domain.DependencySet,
) (domain.BuildArtifact, error) {
	envPath := filepath.Join(b.root, req.ArtifactName)

	if err := os.MkdirAll(b.root, 0o755); err != nil {
		setup := errors.Join(domain.ErrEnvironmentSetupFailed, err)
		return domain.BuildArtifact{}, zerr.With(setup, "path", b.root)
	}

	b.logger.Info(fmt.Sprintf("creating environment %s", envPath))
	create := domain.Command{Path: b.python, Args: []string{"-m", "venv", "--clear", envPath}}
	if err := b.runner.Run(ctx, create); err != nil {
		setup := errors.Join(domain.ErrEnvironmentSetupFailed, err)
		return domain.BuildArtifact{}, zerr.With(setup, "path", envPath)
	}

	pip := filepath.Join(envPath, "bin", "pip")
	for _, spec := range deps.Specifiers() {
		b.logger.Info(fmt.Sprintf("installing %s", spec))
		if err := b.runner.Run(ctx, installCommand(pip, spec)); err != nil {
			failed := errors.Join(domain.ErrInstallFailed, err)
			failed = zerr.With(failed, "specifier", spec.String())
			return domain.BuildArtifact{}, zerr.With(failed, "environment", envPath)
		}
	}

	fingerprint := deps.Fingerprint()
	if err := os.WriteFile(filepath.Join(envPath, fingerprintFile), []byte(fingerprint+"\n"), 0o644); err != nil {
		// The environment itself is complete; a missing fingerprint only
		// degrades traceability.
		b.logger.Warn(fmt.Sprintf("failed to record fingerprint: %v", err))
	}

	return domain.BuildArtifact{
		Kind:        domain.ArtifactEnvironment,
		Name:        req.ArtifactName,
		Path:        envPath,
		Fingerprint: fingerprint,
	}, nil
}

func installCommand(pip string, spec domain.Specifier) domain.Command {
	args := []string{"install"}
	if spec.IsEditable() {
		args = append(args, "-e", spec.EditablePath())
	} else {
		args = append(args, spec.String())
	}
	return domain.Command{Path: pip, Args: args}
}
