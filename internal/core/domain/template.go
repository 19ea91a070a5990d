// Package domain holds the value types of the stackforge build orchestrator.
// Templates, specifiers and requests are immutable records; resolution is a
// pure fold over them implemented in the engine layer.
package domain

import "go.trai.ch/zerr"

// Provider is a named component contributing one or more install dependencies
// to a template.
type Provider struct {
	ID   string
	Deps []Specifier
}

// Template is a declarative document naming a set of providers and their
// dependencies, identifying one buildable stack distribution.
type Template struct {
	Name        string
	Description string

	// BaseImage overrides the default container base image for this
	// distribution. Only consulted by the container strategy.
	BaseImage string

	Providers []Provider
}

// Validate checks the structural invariants a loaded template must satisfy:
// a non-empty name, at least one provider, unique provider ids and no empty
// dependency specifiers. Violations are reported as ErrTemplateMalformed.
func (t *Template) Validate() error {
	if t.Name == "" {
		return zerr.With(ErrTemplateMalformed, "reason", "missing name")
	}
	if len(t.Providers) == 0 {
		return zerr.With(zerr.With(ErrTemplateMalformed, "reason", "no providers"), "template", t.Name)
	}

	seen := make(map[string]struct{}, len(t.Providers))
	for _, p := range t.Providers {
		if p.ID == "" {
			return zerr.With(zerr.With(ErrTemplateMalformed, "reason", "provider without id"), "template", t.Name)
		}
		if _, ok := seen[p.ID]; ok {
			err := zerr.With(ErrTemplateMalformed, "reason", "duplicate provider id")
			err = zerr.With(err, "template", t.Name)
			return zerr.With(err, "provider", p.ID)
		}
		seen[p.ID] = struct{}{}

		for _, dep := range p.Deps {
			if dep == "" {
				err := zerr.With(ErrTemplateMalformed, "reason", "empty dependency specifier")
				err = zerr.With(err, "template", t.Name)
				return zerr.With(err, "provider", p.ID)
			}
		}
	}
	return nil
}
