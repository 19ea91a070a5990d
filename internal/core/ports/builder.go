package ports

import (
	"context"

	"go.stackforge.dev/stackforge/internal/core/domain"
)

// ArtifactBuilder materializes a resolved dependency set under a name. The
// two implementations, the environment strategy and the container strategy,
// share this single capability; adding a third artifact kind means adding an
// implementation and a dispatch arm.
//
//go:generate mockgen -source=builder.go -destination=mocks/mock_builder.go -package=mocks
type ArtifactBuilder interface {
	Build(ctx context.Context, req domain.BuildRequest, deps *domain.DependencySet) (domain.BuildArtifact, error)
}
