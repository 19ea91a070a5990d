// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.stackforge.dev/stackforge/internal/adapters/config"
	_ "go.stackforge.dev/stackforge/internal/adapters/environ"
	_ "go.stackforge.dev/stackforge/internal/adapters/image"
	_ "go.stackforge.dev/stackforge/internal/adapters/logger"
	_ "go.stackforge.dev/stackforge/internal/adapters/report"
	_ "go.stackforge.dev/stackforge/internal/adapters/shell"
	_ "go.stackforge.dev/stackforge/internal/adapters/venv"
	// Register app and engine nodes.
	_ "go.stackforge.dev/stackforge/internal/app"
	_ "go.stackforge.dev/stackforge/internal/engine/dispatch"
	_ "go.stackforge.dev/stackforge/internal/engine/resolver"
)
