package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.stackforge.dev/stackforge/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"go.stackforge.dev/stackforge/internal/adapters/environ" //nolint:depguard // Wired in app layer
	"go.stackforge.dev/stackforge/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"go.stackforge.dev/stackforge/internal/adapters/report"  //nolint:depguard // Wired in app layer
	"go.stackforge.dev/stackforge/internal/core/ports"
	"go.stackforge.dev/stackforge/internal/engine/dispatch"
	"go.stackforge.dev/stackforge/internal/engine/resolver"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components. This struct
// provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			environ.NodeID,
			logger.NodeID,
			config.NodeID,
			report.NodeID,
			resolver.NodeID,
			dispatch.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{AppNodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: application, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	settings, err := graft.Dep[environ.Settings](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	store, err := graft.Dep[ports.TemplateStore](ctx)
	if err != nil {
		return nil, err
	}
	reporter, err := graft.Dep[ports.Reporter](ctx)
	if err != nil {
		return nil, err
	}
	res, err := graft.Dep[*resolver.Resolver](ctx)
	if err != nil {
		return nil, err
	}
	dispatcher, err := graft.Dep[*dispatch.Dispatcher](ctx)
	if err != nil {
		return nil, err
	}
	return New(store, res, dispatcher, reporter, log, settings), nil
}
