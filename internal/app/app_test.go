package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.stackforge.dev/stackforge/internal/adapters/environ"
	"go.stackforge.dev/stackforge/internal/app"
	"go.stackforge.dev/stackforge/internal/core/domain"
	"go.stackforge.dev/stackforge/internal/core/ports/mocks"
	"go.stackforge.dev/stackforge/internal/engine/dispatch"
	"go.stackforge.dev/stackforge/internal/engine/resolver"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	store       *mocks.MockTemplateStore
	environment *mocks.MockArtifactBuilder
	container   *mocks.MockArtifactBuilder
	reporter    *mocks.MockReporter
	logger      *mocks.MockLogger
}

func newFixture(t *testing.T, settings environ.Settings) (*app.App, *fixture) {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		store:       mocks.NewMockTemplateStore(ctrl),
		environment: mocks.NewMockArtifactBuilder(ctrl),
		container:   mocks.NewMockArtifactBuilder(ctrl),
		reporter:    mocks.NewMockReporter(ctrl),
		logger:      mocks.NewMockLogger(ctrl),
	}
	a := app.New(
		f.store,
		resolver.New(),
		dispatch.New(f.environment, f.container),
		f.reporter,
		f.logger,
		settings,
	)
	return a, f
}

func starterTemplate() *domain.Template {
	return &domain.Template{
		Name: "starter",
		Providers: []domain.Provider{
			{ID: "inference-ollama", Deps: []domain.Specifier{"aiohttp", "ollama"}},
			{ID: "vector-store-faiss", Deps: []domain.Specifier{"faiss-cpu==1.8.0", "aiohttp"}},
		},
	}
}

func TestBuild_DispatchesEnvironment(t *testing.T) {
	a, f := newFixture(t, environ.Settings{BaseImage: "python:3.12-slim"})

	f.store.EXPECT().Load("starter").Return(starterTemplate(), nil)

	var gotReq domain.BuildRequest
	var gotDeps []string
	f.environment.EXPECT().
		Build(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req domain.BuildRequest, deps *domain.DependencySet) (domain.BuildArtifact, error) {
			gotReq = req
			gotDeps = deps.Strings()
			return domain.BuildArtifact{Kind: domain.ArtifactEnvironment, Name: req.ArtifactName, Path: "/envs/starter"}, nil
		})
	f.logger.EXPECT().Info(gomock.Any()).Times(2)

	err := a.Build(context.Background(), app.BuildOptions{
		Template:  "starter",
		ImageType: "environment",
	})
	require.NoError(t, err)

	assert.Equal(t, "starter", gotReq.ArtifactName, "artifact name defaults to the template name")
	assert.Equal(t, domain.ImageTypeEnvironment, gotReq.ImageType)
	assert.Equal(t, []string{"aiohttp", "ollama", "faiss-cpu==1.8.0", "stackforge"}, gotDeps)
}

func TestBuild_DispatchesContainer(t *testing.T) {
	a, f := newFixture(t, environ.Settings{BaseImage: "python:3.12-slim"})

	f.store.EXPECT().Load("starter").Return(starterTemplate(), nil)
	f.container.EXPECT().
		Build(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req domain.BuildRequest, _ *domain.DependencySet) (domain.BuildArtifact, error) {
			assert.Equal(t, "python:3.12-slim", req.BaseImage, "settings base image fills the template gap")
			return domain.BuildArtifact{Kind: domain.ArtifactImage, Reference: "starter:latest"}, nil
		})
	f.logger.EXPECT().Info(gomock.Any())

	err := a.Build(context.Background(), app.BuildOptions{
		Template:  "starter",
		ImageType: "container",
	})
	require.NoError(t, err)
}

func TestBuild_TemplateBaseImageWins(t *testing.T) {
	a, f := newFixture(t, environ.Settings{BaseImage: "python:3.12-slim"})

	tmpl := starterTemplate()
	tmpl.BaseImage = "python:3.11-slim"
	f.store.EXPECT().Load("starter").Return(tmpl, nil)
	f.container.EXPECT().
		Build(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req domain.BuildRequest, _ *domain.DependencySet) (domain.BuildArtifact, error) {
			assert.Equal(t, "python:3.11-slim", req.BaseImage)
			return domain.BuildArtifact{Kind: domain.ArtifactImage, Reference: "starter:latest"}, nil
		})
	f.logger.EXPECT().Info(gomock.Any())

	err := a.Build(context.Background(), app.BuildOptions{
		Template:  "starter",
		ImageType: "container",
	})
	require.NoError(t, err)
}

func TestBuild_PrintDepsOnlyNeverBuilds(t *testing.T) {
	a, f := newFixture(t, environ.Settings{})

	f.store.EXPECT().Load("starter").Return(starterTemplate(), nil)

	var reported []string
	f.reporter.EXPECT().
		Report(gomock.Any()).
		DoAndReturn(func(deps *domain.DependencySet) error {
			reported = deps.Strings()
			return nil
		})

	err := a.Build(context.Background(), app.BuildOptions{
		Template:      "starter",
		ImageType:     "container",
		ExtraDeps:     []string{"rich"},
		PrintDepsOnly: true,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"aiohttp", "ollama", "faiss-cpu==1.8.0", "rich", "stackforge"}, reported)
}

func TestBuild_ExtraDepConflictFails(t *testing.T) {
	a, f := newFixture(t, environ.Settings{})

	f.store.EXPECT().Load("starter").Return(starterTemplate(), nil)

	err := a.Build(context.Background(), app.BuildOptions{
		Template:      "starter",
		ImageType:     "environment",
		ExtraDeps:     []string{"faiss-cpu==1.9.0"},
		PrintDepsOnly: true,
	})
	require.ErrorIs(t, err, domain.ErrDependencyConflict)
}

func TestBuild_SourceModeFromSettings(t *testing.T) {
	a, f := newFixture(t, environ.Settings{SourceDir: "/home/dev/stackforge"})

	f.store.EXPECT().Load("starter").Return(starterTemplate(), nil)

	var reported []string
	f.reporter.EXPECT().
		Report(gomock.Any()).
		DoAndReturn(func(deps *domain.DependencySet) error {
			reported = deps.Strings()
			return nil
		})

	err := a.Build(context.Background(), app.BuildOptions{
		Template:      "starter",
		ImageType:     "environment",
		PrintDepsOnly: true,
	})
	require.NoError(t, err)

	assert.Contains(t, reported, "-e /home/dev/stackforge")
	assert.NotContains(t, reported, "stackforge")
}

func TestBuild_LoadErrorPropagates(t *testing.T) {
	a, f := newFixture(t, environ.Settings{})

	f.store.EXPECT().Load("missing").Return(nil, domain.ErrTemplateNotFound)

	err := a.Build(context.Background(), app.BuildOptions{Template: "missing", ImageType: "environment"})
	require.ErrorIs(t, err, domain.ErrTemplateNotFound)
}

func TestBuild_DispatchErrorPropagates(t *testing.T) {
	a, f := newFixture(t, environ.Settings{})

	f.store.EXPECT().Load("starter").Return(starterTemplate(), nil)
	boom := errors.Join(domain.ErrInstallFailed, errors.New("pip exited 1"))
	f.environment.EXPECT().Build(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.BuildArtifact{}, boom)

	err := a.Build(context.Background(), app.BuildOptions{Template: "starter", ImageType: "environment"})
	require.ErrorIs(t, err, domain.ErrInstallFailed)
}

func TestBuild_UnsupportedImageType(t *testing.T) {
	a, f := newFixture(t, environ.Settings{})

	f.store.EXPECT().Load("starter").Return(starterTemplate(), nil)

	err := a.Build(context.Background(), app.BuildOptions{Template: "starter", ImageType: "zipfile"})
	require.ErrorIs(t, err, domain.ErrUnsupportedImageType)
}

func TestTemplates(t *testing.T) {
	a, f := newFixture(t, environ.Settings{})

	f.store.EXPECT().List().Return([]string{"remote-gateway", "starter"}, nil)

	names, err := a.Templates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"remote-gateway", "starter"}, names)
}
