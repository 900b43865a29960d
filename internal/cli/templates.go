package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/escriba/internal/config"
)

// TemplatesCmd returns the templates command
func TemplatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "Show the configured checklist templates",
		Long: `Show the checklist templates in effect.

Templates map a deed type to its required documents. They come from the
file named by ESCRIBA_TEMPLATES or templates_path in .escriba/config.json;
without either, the built-in defaults apply.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
			cfg, _ := config.LoadConfig(cwd)

			paths, err := config.ResolvePaths(cfg)
			if err != nil {
				return err
			}

			templates, err := config.LoadTemplates(paths.Templates)
			if err != nil {
				return err
			}

			for _, deedType := range templates.Types() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s:\n", deedType)
				for _, doc := range templates.For(deedType) {
					fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", doc)
				}
			}
			return nil
		},
	}
}
