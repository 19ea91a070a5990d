// Package config provides the template store backed by YAML files on disk.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.stackforge.dev/stackforge/internal/core/domain"
	"go.stackforge.dev/stackforge/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const templateExt = ".yaml"

// Store implements ports.TemplateStore over a directory of template files,
// one file per template, named "<template>.yaml".
type Store struct {
	dir    string
	logger ports.Logger
}

// NewStore creates a new Store reading templates from dir.
func NewStore(dir string, logger ports.Logger) *Store {
	return &Store{dir: dir, logger: logger}
}

// Load reads and validates the template with the given name.
func (s *Store) Load(name string) (*domain.Template, error) {
	path := filepath.Join(s.dir, name+templateExt)

	// #nosec G304 -- path is derived from the configured template directory
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			notFound := zerr.With(domain.ErrTemplateNotFound, "template", name)
			return nil, zerr.With(notFound, "dir", s.dir)
		}
		return nil, zerr.Wrap(err, "failed to read template "+name)
	}

	var file TemplateFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		malformed := errors.Join(domain.ErrTemplateMalformed, err)
		return nil, zerr.With(malformed, "template", name)
	}

	if file.Name != "" && file.Name != name {
		s.logger.Warn(fmt.Sprintf("template %q declares name %q; the file name wins", name, file.Name))
	}

	tmpl := toDomain(name, &file)
	if err := tmpl.Validate(); err != nil {
		return nil, err
	}
	return tmpl, nil
}

// List returns the names of all templates in the store, sorted.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read template directory "+s.dir)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), templateExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), templateExt))
	}
	slices.Sort(names)
	return names, nil
}

func toDomain(name string, file *TemplateFile) *domain.Template {
	providers := make([]domain.Provider, 0, len(file.Providers))
	for _, dto := range file.Providers {
		deps := make([]domain.Specifier, 0, len(dto.Deps))
		for _, dep := range dto.Deps {
			deps = append(deps, domain.Specifier(strings.TrimSpace(dep)))
		}
		providers = append(providers, domain.Provider{ID: dto.ID, Deps: deps})
	}
	return &domain.Template{
		Name:        name,
		Description: file.Description,
		BaseImage:   file.BaseImage,
		Providers:   providers,
	}
}
