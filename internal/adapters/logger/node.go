package logger

import (
	"context"

	"github.com/grindlemire/graft"
	"go.stackforge.dev/stackforge/internal/adapters/environ"
	"go.stackforge.dev/stackforge/internal/core/ports"
)

// NodeID is the unique identifier for the logger Graft node.
const NodeID graft.ID = "adapter.logger"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{environ.NodeID},
		Run: func(ctx context.Context) (ports.Logger, error) {
			settings, err := graft.Dep[environ.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return New(settings.LogLevel), nil
		},
	})
}
