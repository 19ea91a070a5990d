package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.stackforge.dev/stackforge/internal/adapters/environ"
	"go.stackforge.dev/stackforge/internal/adapters/logger"
	"go.stackforge.dev/stackforge/internal/core/ports"
)

// NodeID is the unique identifier for the template store Graft node.
const NodeID graft.ID = "adapter.templatestore"

func init() {
	graft.Register(graft.Node[ports.TemplateStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{environ.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.TemplateStore, error) {
			settings, err := graft.Dep[environ.Settings](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(settings.TemplateDir, log), nil
		},
	})
}
