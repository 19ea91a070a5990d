package venv

import (
	"context"

	"github.com/grindlemire/graft"
	"go.stackforge.dev/stackforge/internal/adapters/environ"
	"go.stackforge.dev/stackforge/internal/adapters/logger"
	"go.stackforge.dev/stackforge/internal/adapters/shell"
	"go.stackforge.dev/stackforge/internal/core/ports"
)

// NodeID is the unique identifier for the environment builder Graft node.
const NodeID graft.ID = "adapter.envbuilder"

func init() {
	graft.Register(graft.Node[*Builder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{environ.NodeID, logger.NodeID, shell.NodeID},
		Run: func(ctx context.Context) (*Builder, error) {
			settings, err := graft.Dep[environ.Settings](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			return NewBuilder(runner, log, settings.EnvRoot, settings.PythonBinary), nil
		},
	})
}
