// Package app implements the application layer for stackforge.
package app

import (
	"context"
	"fmt"

	"go.stackforge.dev/stackforge/internal/adapters/environ"
	"go.stackforge.dev/stackforge/internal/core/domain"
	"go.stackforge.dev/stackforge/internal/core/ports"
	"go.stackforge.dev/stackforge/internal/engine/dispatch"
	"go.stackforge.dev/stackforge/internal/engine/resolver"
)

// App wires template loading, dependency resolution and artifact dispatch
// into the build operations exposed to the CLI. One App call handles one
// request; there is no shared mutable state between invocations.
type App struct {
	store      ports.TemplateStore
	resolver   *resolver.Resolver
	dispatcher *dispatch.Dispatcher
	reporter   ports.Reporter
	logger     ports.Logger
	settings   environ.Settings
}

// New creates a new App instance.
func New(
	store ports.TemplateStore,
	res *resolver.Resolver,
	dispatcher *dispatch.Dispatcher,
	reporter ports.Reporter,
	logger ports.Logger,
	settings environ.Settings,
) *App {
	return &App{
		store:      store,
		resolver:   res,
		dispatcher: dispatcher,
		reporter:   reporter,
		logger:     logger,
		settings:   settings,
	}
}

// BuildOptions configuration for the Build method.
type BuildOptions struct {
	// Template is the template identity to build.
	Template string
	// ImageType selects the artifact strategy.
	ImageType string
	// ArtifactName names the produced artifact; defaults to the template name.
	ArtifactName string
	// ExtraDeps are appended to the resolved set after all providers.
	ExtraDeps []string
	// PrintDepsOnly reports the resolved set instead of building.
	PrintDepsOnly bool
}

// Build loads the template, resolves its dependency set and either reports it
// (dry run) or dispatches to the selected artifact strategy.
func (a *App) Build(ctx context.Context, opts BuildOptions) error {
	tmpl, err := a.store.Load(opts.Template)
	if err != nil {
		return err
	}

	req := a.request(opts, tmpl)

	extras := make([]domain.Specifier, 0, len(opts.ExtraDeps))
	for _, dep := range opts.ExtraDeps {
		extras = append(extras, domain.Specifier(dep))
	}

	deps, err := a.resolver.Resolve(tmpl, extras, req.SourceMode, req.SourceDir)
	if err != nil {
		return err
	}

	if opts.PrintDepsOnly {
		return a.reporter.Report(deps)
	}

	artifact, err := a.dispatcher.Dispatch(ctx, req, deps)
	if err != nil {
		return err
	}

	switch artifact.Kind {
	case domain.ArtifactEnvironment:
		a.logger.Info(fmt.Sprintf("environment ready at %s", artifact.Path))
		a.logger.Info(fmt.Sprintf("activate it with: source %s/bin/activate", artifact.Path))
	case domain.ArtifactImage:
		if artifact.Digest != "" {
			a.logger.Info(fmt.Sprintf("image %s built (%s)", artifact.Reference, artifact.Digest))
		} else {
			a.logger.Info(fmt.Sprintf("image %s built", artifact.Reference))
		}
	}
	return nil
}

// Templates returns the names of the templates available to build.
func (a *App) Templates(_ context.Context) ([]string, error) {
	return a.store.List()
}

func (a *App) request(opts BuildOptions, tmpl *domain.Template) domain.BuildRequest {
	artifactName := opts.ArtifactName
	if artifactName == "" {
		artifactName = tmpl.Name
	}

	baseImage := tmpl.BaseImage
	if baseImage == "" {
		baseImage = a.settings.BaseImage
	}

	return domain.BuildRequest{
		TemplateName: tmpl.Name,
		ImageType:    domain.ImageType(opts.ImageType),
		ArtifactName: artifactName,
		SourceMode:   a.settings.SourceMode(),
		SourceDir:    a.settings.SourceDir,
		FileMode:     a.settings.FileMode(),
		BaseImage:    baseImage,
	}
}
