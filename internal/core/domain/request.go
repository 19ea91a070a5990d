package domain

// ImageType selects which artifact strategy materializes a resolved
// dependency set.
type ImageType string

const (
	// ImageTypeEnvironment builds an isolated virtual execution environment.
	ImageTypeEnvironment ImageType = "environment"
	// ImageTypeContainer builds a container image.
	ImageTypeContainer ImageType = "container"
)

// SourceMode decides whether the stack runtime is installed from a published
// package or from a local source tree.
type SourceMode string

const (
	// SourceModeFromPackage installs the runtime from the package registry.
	SourceModeFromPackage SourceMode = "from-package"
	// SourceModeFromSource installs the runtime as an editable reference to a
	// local source tree, so the artifact tracks local code changes.
	SourceModeFromSource SourceMode = "from-source"
)

// FileMode decides how the container strategy materializes the runtime source
// tree into the image.
type FileMode string

const (
	// FileModeCopy copies the source tree into an image layer. Required when
	// the image-build tool cannot bind-mount a host directory.
	FileModeCopy FileMode = "copy"
	// FileModeMount references the source tree through a build-time bind
	// mount. Only usable with tools that support it, i.e. local interactive
	// builds rather than automated pipelines.
	FileModeMount FileMode = "mount"
)

// BuildRequest captures one caller intent. It is constructed once per
// invocation, immutable afterwards, and consumed by the resolver and the
// dispatcher.
type BuildRequest struct {
	TemplateName string
	ImageType    ImageType
	ArtifactName string

	SourceMode SourceMode
	// SourceDir is the runtime source tree used when SourceMode is
	// from-source.
	SourceDir string

	FileMode FileMode
	// BaseImage is the container base image, already defaulted from the
	// template or settings. Only consulted by the container strategy.
	BaseImage string
}
