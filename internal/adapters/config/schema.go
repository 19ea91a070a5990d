package config

// TemplateFile represents the structure of a stack template YAML document.
type TemplateFile struct {
	Version     string         `yaml:"version"`
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	BaseImage   string         `yaml:"base_image"`
	Providers   []*ProviderDTO `yaml:"providers"`
}

// ProviderDTO represents a provider reference in a template document.
type ProviderDTO struct {
	ID   string   `yaml:"id"`
	Deps []string `yaml:"deps"`
}
