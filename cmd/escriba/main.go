package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/example/escriba/internal/cli"
	"github.com/example/escriba/internal/version"
)

func main() {
	// Optional .env for ESCRIBA_* overrides; absence is fine
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:     "escriba",
		Short:   "escriba - deed case tracker for notary workflows",
		Version: version.String(),
		Long: `escriba tracks deed cases (escrituras) through their lifecycle:
intake, responsible assignment, required-document checklists, status
progression, and per-case file archiving.`,
	}

	rootCmd.AddCommand(cli.DeedCmd())
	rootCmd.AddCommand(cli.ChecklistCmd())
	rootCmd.AddCommand(cli.AttachCmd())
	rootCmd.AddCommand(cli.TemplatesCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
