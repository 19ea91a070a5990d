package commands

import (
	"github.com/spf13/cobra"
	"go.stackforge.dev/stackforge/internal/app"
	"go.stackforge.dev/stackforge/internal/core/domain"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a stack distribution from a template",
		Long: `Build resolves the full dependency set of the named template and
materializes it as either an isolated virtual environment or a container
image. With --print-deps-only the resolved set is printed and nothing is
built.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			template, _ := cmd.Flags().GetString("template")
			imageType, _ := cmd.Flags().GetString("image-type")
			name, _ := cmd.Flags().GetString("name")
			extraDeps, _ := cmd.Flags().GetStringArray("extra-dep")
			printDepsOnly, _ := cmd.Flags().GetBool("print-deps-only")

			return c.app.Build(cmd.Context(), app.BuildOptions{
				Template:      template,
				ImageType:     imageType,
				ArtifactName:  name,
				ExtraDeps:     extraDeps,
				PrintDepsOnly: printDepsOnly,
			})
		},
	}

	cmd.Flags().StringP("template", "t", "", "Template to build (required)")
	_ = cmd.MarkFlagRequired("template")
	cmd.Flags().String("image-type", string(domain.ImageTypeEnvironment),
		"Artifact kind to build: environment or container")
	cmd.Flags().StringP("name", "n", "", "Artifact name (defaults to the template name)")
	cmd.Flags().StringArray("extra-dep", nil, "Extra dependency specifier appended to the resolved set (repeatable)")
	cmd.Flags().Bool("print-deps-only", false, "Print the resolved dependencies and exit without building")
	return cmd
}
