package domain

import "github.com/opencontainers/go-digest"

// ArtifactKind distinguishes the two artifact shapes a build can produce.
type ArtifactKind string

const (
	// ArtifactEnvironment is an on-disk virtual environment.
	ArtifactEnvironment ArtifactKind = "environment"
	// ArtifactImage is a container image in the external image store.
	ArtifactImage ArtifactKind = "image"
)

// BuildArtifact is the product of a successful build. It is returned to the
// caller; the orchestrator keeps no reference to it afterwards.
type BuildArtifact struct {
	Kind ArtifactKind
	Name string

	// Path is the environment root for environment artifacts.
	Path string

	// Reference is the image tag for image artifacts.
	Reference string

	// Digest is the image id reported by the image tool after a successful
	// build, when the tool reports one.
	Digest digest.Digest

	// Fingerprint is the hash of the dependency set the artifact was built
	// from.
	Fingerprint string
}
