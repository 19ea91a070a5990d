package image_test

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.stackforge.dev/stackforge/internal/adapters/image"
	"go.stackforge.dev/stackforge/internal/core/domain"
	"go.stackforge.dev/stackforge/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (*image.Builder, *mocks.MockCommandRunner) {
	t.Helper()
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	return image.NewBuilder(runner, log, "docker"), runner
}

func request() domain.BuildRequest {
	return domain.BuildRequest{
		TemplateName: "starter",
		ImageType:    domain.ImageTypeContainer,
		ArtifactName: "starter-image",
		BaseImage:    "python:3.12-slim",
		FileMode:     domain.FileModeCopy,
	}
}

func TestBuilder_InvokesImageTool(t *testing.T) {
	builder, runner := setup(t)

	deps := domain.NewDependencySet()
	deps.Add("httpx")

	var captured domain.Command
	var content []byte
	runner.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cmd domain.Command) error {
			captured = cmd
			// The scratch directory is gone once Build returns; read the
			// Containerfile while the tool would see it.
			content, _ = os.ReadFile(cmd.Args[4])
			return nil
		})
	runner.EXPECT().Capture(gomock.Any(), domain.Command{
		Path: "docker",
		Args: []string{"inspect", "--format", "{{.Id}}", "starter-image"},
	}).Return("sha256:4bc453b53cb3d914b45f4b250294236adba2c0e09ff6f03793949e7e39fd4cc1", nil)

	artifact, err := builder.Build(context.Background(), request(), deps)
	require.NoError(t, err)

	assert.Equal(t, "docker", captured.Path)
	require.GreaterOrEqual(t, len(captured.Args), 5)
	assert.Equal(t, "build", captured.Args[0])
	assert.Equal(t, []string{"-t", "starter-image"}, captured.Args[1:3])
	assert.Contains(t, captured.Env, "DOCKER_BUILDKIT=1")

	// The Containerfile handed to the tool reflects the dependency set.
	require.Equal(t, "-f", captured.Args[3])
	assert.Contains(t, string(content), "RUN pip install --no-cache-dir 'httpx'")

	assert.Equal(t, domain.ArtifactImage, artifact.Kind)
	assert.Equal(t, "starter-image", artifact.Reference)
	assert.Equal(t, "sha256:4bc453b53cb3d914b45f4b250294236adba2c0e09ff6f03793949e7e39fd4cc1", artifact.Digest.String())
	assert.Equal(t, deps.Fingerprint(), artifact.Fingerprint)
}

func TestBuilder_EditableSourceBecomesBuildContext(t *testing.T) {
	builder, runner := setup(t)
	src := t.TempDir()

	deps := domain.NewDependencySet()
	deps.Add("httpx")
	deps.Add(domain.EditableSpecifier(src))

	var captured domain.Command
	runner.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cmd domain.Command) error {
			captured = cmd
			return nil
		})
	runner.EXPECT().Capture(gomock.Any(), gomock.Any()).Return("", errors.New("inspect unavailable"))

	artifact, err := builder.Build(context.Background(), request(), deps)
	require.NoError(t, err)

	assert.Equal(t, src, captured.Args[len(captured.Args)-1])
	assert.Empty(t, artifact.Digest)
}

func TestBuilder_ImageBuildFailed(t *testing.T) {
	builder, runner := setup(t)

	toolErr := errors.New("exit status 125")
	runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(toolErr)

	_, err := builder.Build(context.Background(), request(), domain.NewDependencySet())
	assert.ErrorIs(t, err, domain.ErrImageBuildFailed)
	assert.ErrorIs(t, err, toolErr)
}

func TestBuilder_ScratchDirRemoved(t *testing.T) {
	builder, runner := setup(t)

	var containerfile string
	runner.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cmd domain.Command) error {
			containerfile = cmd.Args[4]
			return nil
		})
	runner.EXPECT().Capture(gomock.Any(), gomock.Any()).Return("", errors.New("skipped"))

	_, err := builder.Build(context.Background(), request(), domain.NewDependencySet())
	require.NoError(t, err)

	require.True(t, strings.Contains(containerfile, "stackforge-build-"))
	assert.NoFileExists(t, containerfile)
}
