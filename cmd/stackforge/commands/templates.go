package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newTemplatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List the available templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names, err := c.app.Templates(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, name := range names {
				_, _ = fmt.Fprintln(out, name)
			}
			return nil
		},
	}
}
