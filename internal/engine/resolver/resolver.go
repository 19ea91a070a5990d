// Package resolver implements dependency resolution for stack templates.
package resolver

import (
	"go.stackforge.dev/stackforge/internal/core/domain"
	"go.trai.ch/zerr"
)

// Resolver folds the dependency declarations of every provider a template
// references into one ordered, deduplicated DependencySet. Given the same
// template content and extras, membership and ordering are identical across
// runs; artifact reproducibility depends on this.
type Resolver struct{}

// New creates a new Resolver.
func New() *Resolver {
	return &Resolver{}
}

// Resolve walks the template's providers in declaration order, appending each
// provider's specifiers in declaration order and skipping exact-string
// duplicates, then folds in the caller-supplied extras under the same rule.
// Finally it ensures the stack runtime is represented: from-package adds the
// registry specifier when no provider declared it, from-source substitutes an
// editable reference to sourceDir for the first runtime specifier (or appends
// one when absent).
//
// Two different exact "==" pins for the same distribution name fail with
// domain.ErrDependencyConflict. Range constraints are not interpreted; two
// different constraint strings for the same name both survive.
func (r *Resolver) Resolve(
	tmpl *domain.Template,
	extras []domain.Specifier,
	mode domain.SourceMode,
	sourceDir string,
) (*domain.DependencySet, error) {
	deps := domain.NewDependencySet()
	pins := make(map[string]domain.Specifier)

	add := func(spec domain.Specifier) error {
		if version, ok := spec.ExactPin(); ok {
			name := spec.Name()
			if prev, exists := pins[name]; exists {
				prevVersion, _ := prev.ExactPin()
				if prevVersion != version {
					err := zerr.With(domain.ErrDependencyConflict, "package", name)
					err = zerr.With(err, "pinned", prev.String())
					return zerr.With(err, "conflicting", spec.String())
				}
			} else {
				pins[name] = spec
			}
		}
		deps.Add(spec)
		return nil
	}

	for _, provider := range tmpl.Providers {
		for _, spec := range provider.Deps {
			if err := add(spec); err != nil {
				return nil, zerr.With(err, "provider", provider.ID)
			}
		}
	}
	for _, spec := range extras {
		if err := add(spec); err != nil {
			return nil, zerr.With(err, "origin", "extras")
		}
	}

	if err := ensureRuntime(deps, mode, sourceDir); err != nil {
		return nil, err
	}
	return deps, nil
}

// ensureRuntime applies the source-mode policy for the runtime package. The
// substitution touches exactly one specifier; it is not a general rewrite
// rule.
func ensureRuntime(deps *domain.DependencySet, mode domain.SourceMode, sourceDir string) error {
	if mode == domain.SourceModeFromSource {
		if sourceDir == "" {
			sourceDir = "."
		}
		editable := domain.EditableSpecifier(sourceDir)
		for _, spec := range deps.Specifiers() {
			if spec.Name() == domain.RuntimePackage {
				deps.Replace(spec, editable)
				return nil
			}
		}
		deps.Add(editable)
		return nil
	}

	for _, spec := range deps.Specifiers() {
		if spec.Name() == domain.RuntimePackage {
			return nil
		}
	}
	deps.Add(domain.Specifier(domain.RuntimePackage))
	return nil
}
