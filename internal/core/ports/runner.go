package ports

import (
	"context"

	"go.stackforge.dev/stackforge/internal/core/domain"
)

// CommandRunner executes external tools on behalf of the artifact builders.
//
//go:generate mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type CommandRunner interface {
	// Run executes the command, streaming its output through the logger, and
	// blocks until it exits. A nonzero exit status is returned as an error
	// carrying the exit code.
	Run(ctx context.Context, cmd domain.Command) error

	// Capture executes the command and returns its trimmed standard output.
	Capture(ctx context.Context, cmd domain.Command) (string, error)
}
