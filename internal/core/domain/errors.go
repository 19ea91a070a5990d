package domain

import "go.trai.ch/zerr"

var (
	// ErrTemplateNotFound is returned when no template with the requested name exists.
	ErrTemplateNotFound = zerr.New("template not found")

	// ErrTemplateMalformed is returned when a template is missing required fields.
	ErrTemplateMalformed = zerr.New("template malformed")

	// ErrDependencyConflict is returned when two providers pin mutually exclusive
	// exact versions of the same distribution.
	ErrDependencyConflict = zerr.New("conflicting exact version pins")

	// ErrUnsupportedImageType is returned when the image type selector matches
	// neither the environment nor the container strategy.
	ErrUnsupportedImageType = zerr.New("unsupported image type")

	// ErrInstallFailed is returned when the package installer fails for a specifier.
	ErrInstallFailed = zerr.New("install failed")

	// ErrImageBuildFailed is returned when the external image-build tool reports
	// a nonzero status.
	ErrImageBuildFailed = zerr.New("image build failed")

	// ErrEnvironmentSetupFailed is returned when the isolated environment cannot
	// be created before any install is attempted.
	ErrEnvironmentSetupFailed = zerr.New("environment setup failed")

	// ErrSettingsInvalid is returned when the process environment settings cannot
	// be parsed.
	ErrSettingsInvalid = zerr.New("invalid settings")
)
