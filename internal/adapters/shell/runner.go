// Package shell invokes external tools on behalf of the artifact builders.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/creack/pty"
	"go.stackforge.dev/stackforge/internal/core/domain"
	"go.stackforge.dev/stackforge/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner implements ports.CommandRunner using os/exec and a pty, so the
// invoked tool's output streams through the logger line by line while the
// call itself stays a single blocking operation.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run executes the command and blocks until it exits. Output is streamed
// through the logger; by the time Run returns, every line the tool produced
// has been logged, so a failing tool's diagnostic precedes the returned
// error. A nonzero exit status is returned as an error carrying the exit
// code.
func (r *Runner) Run(ctx context.Context, spec domain.Command) error {
	out := &logWriter{logger: r.logger}

	cmd := exec.CommandContext(ctx, spec.Path, spec.Args...) //nolint:gosec // tool path comes from configuration
	cmd.Dir = spec.Dir
	cmd.Env = append(os.Environ(), spec.Env...)

	ioDone, err := start(cmd, out)
	if err != nil {
		return zerr.Wrap(err, "failed to start "+spec.Path)
	}

	err = cmd.Wait()

	// Wait for the IO copy loop to finish before flushing, so the final
	// output does not race the process exit.
	<-ioDone
	_ = out.Close()

	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return zerr.With(zerr.Wrap(err, "command failed"), "exit_code", exitCode)
	}
	return nil
}

// start launches cmd in a pty when one is available, falling back to plain
// pipes otherwise (containerized CI hosts often lack /dev/ptmx). Either way
// the combined output ends up in w. The returned channel closes once no more
// writes to w will happen.
func start(cmd *exec.Cmd, w io.Writer) (<-chan struct{}, error) {
	ioDone := make(chan struct{})

	ptmx, err := pty.Start(cmd)
	if err == nil {
		go func() {
			defer close(ioDone)
			defer func() { _ = ptmx.Close() }()
			_, _ = io.Copy(w, ptmx)
		}()
		return ioDone, nil
	}

	// cmd.Wait drains non-file stdout/stderr writers itself.
	close(ioDone)
	cmd.Stdout = w
	cmd.Stderr = w
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return ioDone, nil
}

// Capture executes the command and returns its trimmed standard output.
func (r *Runner) Capture(ctx context.Context, spec domain.Command) (string, error) {
	cmd := exec.CommandContext(ctx, spec.Path, spec.Args...) //nolint:gosec // tool path comes from configuration
	cmd.Dir = spec.Dir
	cmd.Env = append(os.Environ(), spec.Env...)

	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			err = zerr.With(zerr.Wrap(err, "command failed"), "stderr", strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// logWriter buffers tool output and forwards it to the logger one line at a
// time.
type logWriter struct {
	logger ports.Logger
	buf    []byte
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}
	return len(p), nil
}

func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	// PTYs may introduce \r. Remove it.
	w.logger.Info(strings.TrimSuffix(string(line), "\r"))
}
