package dispatch

import (
	"context"

	"github.com/grindlemire/graft"
	"go.stackforge.dev/stackforge/internal/adapters/image" //nolint:depguard // Wired in engine layer
	"go.stackforge.dev/stackforge/internal/adapters/venv"  //nolint:depguard // Wired in engine layer
)

// NodeID is the unique identifier for the dispatcher Graft node.
const NodeID graft.ID = "engine.dispatcher"

func init() {
	graft.Register(graft.Node[*Dispatcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{venv.NodeID, image.NodeID},
		Run: func(ctx context.Context) (*Dispatcher, error) {
			environment, err := graft.Dep[*venv.Builder](ctx)
			if err != nil {
				return nil, err
			}
			container, err := graft.Dep[*image.Builder](ctx)
			if err != nil {
				return nil, err
			}
			return New(environment, container), nil
		},
	})
}
