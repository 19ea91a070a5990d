// Package dispatch routes a build request to the artifact strategy selected
// by its image type.
package dispatch

import (
	"context"

	"go.stackforge.dev/stackforge/internal/core/domain"
	"go.stackforge.dev/stackforge/internal/core/ports"
	"go.trai.ch/zerr"
)

// Dispatcher selects one of the two artifact strategies. It carries no
// dependency logic of its own.
type Dispatcher struct {
	environment ports.ArtifactBuilder
	container   ports.ArtifactBuilder
}

// New creates a Dispatcher over the environment and container strategies.
func New(environment, container ports.ArtifactBuilder) *Dispatcher {
	return &Dispatcher{
		environment: environment,
		container:   container,
	}
}

// Dispatch invokes the builder matching req.ImageType with the resolved
// dependency set. An unrecognized image type fails with
// domain.ErrUnsupportedImageType before either builder runs.
func (d *Dispatcher) Dispatch(
	ctx context.Context,
	req domain.BuildRequest,
	deps *domain.DependencySet,
) (domain.BuildArtifact, error) {
	switch req.ImageType {
	case domain.ImageTypeEnvironment:
		return d.environment.Build(ctx, req, deps)
	case domain.ImageTypeContainer:
		return d.container.Build(ctx, req, deps)
	default:
		return domain.BuildArtifact{}, zerr.With(domain.ErrUnsupportedImageType, "image_type", string(req.ImageType))
	}
}
