// Package ports defines the core interfaces for the application.
package ports

import "go.stackforge.dev/stackforge/internal/core/domain"

// TemplateStore loads named template definitions.
//
//go:generate mockgen -source=template_store.go -destination=mocks/mock_template_store.go -package=mocks
type TemplateStore interface {
	// Load returns the template with the given name. It fails with
	// domain.ErrTemplateNotFound when no such template exists and with
	// domain.ErrTemplateMalformed when required fields are absent.
	Load(name string) (*domain.Template, error)

	// List returns the names of all available templates, sorted.
	List() ([]string, error)
}
