// Package report renders resolved dependency sets for the dry-run path.
package report

import (
	"fmt"
	"io"

	"go.stackforge.dev/stackforge/internal/core/domain"
)

// Printer implements ports.Reporter by writing one specifier per line in
// resolution order. It is pure: reporting a set has no side effect beyond the
// write.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a Printer writing to out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Report writes the set's specifiers in order, one per line.
func (p *Printer) Report(deps *domain.DependencySet) error {
	for _, spec := range deps.Specifiers() {
		if _, err := fmt.Fprintln(p.out, spec.String()); err != nil {
			return err
		}
	}
	return nil
}
