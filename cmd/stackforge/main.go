// Package main is the entry point for the stackforge CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.stackforge.dev/stackforge/cmd/stackforge/commands"
	"go.stackforge.dev/stackforge/internal/app"
	"go.stackforge.dev/stackforge/internal/core/domain"
	_ "go.stackforge.dev/stackforge/internal/wiring"
)

// Exit codes distinguish the failure classes, so an external scheduler
// driving a matrix of builds can tell template problems from tool failures
// without parsing output.
const (
	exitOK                   = 0
	exitFailure              = 1
	exitTemplateNotFound     = 2
	exitTemplateMalformed    = 3
	exitDependencyConflict   = 4
	exitUnsupportedImageType = 5
	exitInstallFailed        = 6
	exitImageBuildFailed     = 7
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, func(ctx context.Context) (*app.Components, error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, err
	}))
}

func run(
	ctx context.Context,
	args []string,
	stderr io.Writer,
	provider ComponentProvider,
) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed.
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return exitFailure
	}

	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		return exitCodeFor(err)
	}
	return exitOK
}

func exitCodeFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrTemplateNotFound):
		return exitTemplateNotFound
	case errors.Is(err, domain.ErrTemplateMalformed):
		return exitTemplateMalformed
	case errors.Is(err, domain.ErrDependencyConflict):
		return exitDependencyConflict
	case errors.Is(err, domain.ErrUnsupportedImageType):
		return exitUnsupportedImageType
	case errors.Is(err, domain.ErrInstallFailed):
		return exitInstallFailed
	case errors.Is(err, domain.ErrImageBuildFailed):
		return exitImageBuildFailed
	default:
		return exitFailure
	}
}
