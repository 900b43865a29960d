package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	coredeed "github.com/example/escriba/internal/core/deed"
	"github.com/example/escriba/internal/wire"
)

// AttachCmd returns the attach command
func AttachCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "attach [code] [file]",
		Short: "Store a file in a deed's archive folder",
		Long: `Store a file in the archive folder of a deed case.

The code must reference an existing case. On filename collision the new
content replaces the old.

Examples:
  escriba attach ESC2026-0001 ./matricula.pdf
  escriba attach ESC2026-0001 ./scan.pdf --name "Matrícula atualizada.pdf"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, path := args[0], args[1]

			// Cheap shape check before reading the file; the service
			// still verifies the case exists.
			if !coredeed.IsCode(code) {
				return fmt.Errorf("%q does not look like a deed code (expected ESC<year>-NNNN)", code)
			}

			content, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}

			filename := name
			if filename == "" {
				filename = filepath.Base(path)
			}

			return wire.ChecklistAdapter().Attach(cmd.Context(), code, filename, content)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "store under this filename instead of the source name")

	return cmd
}
