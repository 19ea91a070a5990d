package image

import (
	"fmt"
	"strings"

	"go.stackforge.dev/stackforge/internal/core/domain"
)

// sourcePath is where the runtime source tree lands inside the image, whether
// copied or bind-mounted.
const sourcePath = "/src/stackforge"

// Containerfile renders the layered build description for a resolved
// dependency set: one install layer per specifier in resolution order, source
// materialization per the request's file mode, and labels tying the image back
// to the template and the dependency fingerprint it was built from.
func Containerfile(req domain.BuildRequest, deps *domain.DependencySet) string {
	var sb strings.Builder

	sb.WriteString("# Generated by stackforge. Do not edit.\n")
	fmt.Fprintf(&sb, "FROM %s\n\n", req.BaseImage)
	sb.WriteString("WORKDIR /app\n\n")

	for _, spec := range deps.Specifiers() {
		if spec.IsEditable() {
			writeSourceInstall(&sb, req.FileMode)
			continue
		}
		fmt.Fprintf(&sb, "RUN pip install --no-cache-dir '%s'\n", spec)
	}

	sb.WriteString("\n")
	fmt.Fprintf(&sb, "LABEL dev.stackforge.template=%q\n", req.TemplateName)
	fmt.Fprintf(&sb, "LABEL dev.stackforge.fingerprint=%q\n", deps.Fingerprint())
	sb.WriteString("\nENTRYPOINT [\"stackforge\"]\n")
	return sb.String()
}

// writeSourceInstall materializes the runtime source tree. Copy mode bakes the
// tree into a layer, which every build tool supports. Mount mode references
// the build context through a BuildKit bind mount instead, keeping the tree
// out of the layer history; it only works with tools that support build-time
// mounts, so it is reserved for local interactive builds.
func writeSourceInstall(sb *strings.Builder, mode domain.FileMode) {
	switch mode {
	case domain.FileModeMount:
		fmt.Fprintf(sb, "RUN --mount=type=bind,target=%s pip install --no-cache-dir %s\n", sourcePath, sourcePath)
	default:
		fmt.Fprintf(sb, "COPY . %s\n", sourcePath)
		fmt.Fprintf(sb, "RUN pip install --no-cache-dir -e %s\n", sourcePath)
	}
}
