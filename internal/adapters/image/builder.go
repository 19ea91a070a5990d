// Package image implements the container artifact strategy: a generated
// Containerfile handed to an external image-build tool.
package image

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/opencontainers/go-digest"
	"go.stackforge.dev/stackforge/internal/core/domain"
	"go.stackforge.dev/stackforge/internal/core/ports"
	"go.trai.ch/zerr"
)

// Builder implements ports.ArtifactBuilder for the container image type. The
// external tool owns layer caching and cleanup of partial layers; the builder
// does not attempt any cleanup of its own on failure.
type Builder struct {
	runner ports.CommandRunner
	logger ports.Logger

	// tool is the image-build binary, e.g. "docker" or "podman".
	tool string
}

// NewBuilder creates a new container image Builder.
func NewBuilder(runner ports.CommandRunner, logger ports.Logger, tool string) *Builder {
	return &Builder{
		runner: runner,
		logger: logger,
		tool:   tool,
	}
}

// Build writes the generated Containerfile to a scratch directory and invokes
// the external tool with the artifact name as the image tag. When the
// dependency set carries an editable runtime reference, the referenced source
// tree becomes the build context so copy and mount modes can both reach it.
func (b *Builder) Build(
	ctx context.Context,
	req domain.BuildRequest,
	deps *domain.DependencySet,
) (domain.BuildArtifact, error) {
	scratch, err := os.MkdirTemp("", "stackforge-build-")
	if err != nil {
		return domain.BuildArtifact{}, zerr.Wrap(err, "failed to create build scratch directory")
	}
	defer func() { _ = os.RemoveAll(scratch) }()

	containerfile := filepath.Join(scratch, "Containerfile")
	if err := os.WriteFile(containerfile, []byte(Containerfile(req, deps)), 0o644); err != nil {
		return domain.BuildArtifact{}, zerr.Wrap(err, "failed to write Containerfile")
	}

	contextDir := scratch
	if src := editableSource(deps); src != "" {
		contextDir = src
	}

	b.logger.Info(fmt.Sprintf("building image %s with %s", req.ArtifactName, b.tool))
	build := domain.Command{
		Path: b.tool,
		Args: []string{"build", "-t", req.ArtifactName, "-f", containerfile, contextDir},
		// Build-time bind mounts need BuildKit; harmless otherwise.
		Env: []string{"DOCKER_BUILDKIT=1"},
	}
	if err := b.runner.Run(ctx, build); err != nil {
		failed := errors.Join(domain.ErrImageBuildFailed, err)
		return domain.BuildArtifact{}, zerr.With(failed, "image", req.ArtifactName)
	}

	artifact := domain.BuildArtifact{
		Kind:        domain.ArtifactImage,
		Name:        req.ArtifactName,
		Reference:   req.ArtifactName,
		Fingerprint: deps.Fingerprint(),
	}

	// Image id readback is best-effort; the build already succeeded.
	inspect := domain.Command{
		Path: b.tool,
		Args: []string{"inspect", "--format", "{{.Id}}", req.ArtifactName},
	}
	if id, err := b.runner.Capture(ctx, inspect); err == nil {
		if parsed, parseErr := digest.Parse(id); parseErr == nil {
			artifact.Digest = parsed
		}
	} else {
		b.logger.Warn(fmt.Sprintf("failed to read image id: %v", err))
	}

	return artifact, nil
}

// editableSource returns the source tree of the set's editable runtime
// reference, or "" when the set has none.
func editableSource(deps *domain.DependencySet) string {
	for _, spec := range deps.Specifiers() {
		if spec.IsEditable() {
			return spec.EditablePath()
		}
	}
	return ""
}
