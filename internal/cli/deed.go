// Package cli defines the cobra command tree for the escriba binary.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/escriba/internal/wire"
)

// DeedCmd returns the deed command
func DeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deed",
		Short: "Manage deed cases (escrituras)",
		Long:  "Create, list, and manage deed cases in the escriba ledger",
	}

	cmd.AddCommand(deedCreateCmd())
	cmd.AddCommand(deedListCmd())
	cmd.AddCommand(deedShowCmd())
	cmd.AddCommand(deedStatusCmd())
	cmd.AddCommand(deedAssignCmd())

	return cmd
}

func deedCreateCmd() *cobra.Command {
	var deedType string

	cmd := &cobra.Command{
		Use:   "create [client-name]",
		Short: "Create a new deed case",
		Long: `Create a new deed case for a client.

The case code (ESC<year>-NNNN) is allocated automatically, the document
checklist is seeded from the template for the deed type, and the archive
folder for attachments is provisioned.

Examples:
  escriba deed create "Ana Silva" --type "Doação"
  escriba deed create "João Souza" --type "Compra e Venda"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.DeedAdapter().Create(cmd.Context(), args[0], deedType)
		},
	}

	cmd.Flags().StringVarP(&deedType, "type", "t", "", "deed type (selects the checklist template)")
	cmd.MarkFlagRequired("type")

	return cmd
}

func deedListCmd() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List deed cases",
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.DeedAdapter().List(cmd.Context(), status)
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "filter by status label")

	return cmd
}

func deedShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [code]",
		Short: "Show deed details and checklist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := wire.DeedAdapter().Show(cmd.Context(), args[0])
			return err
		},
	}
}

func deedStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status [code] [new-status]",
		Short: "Change the status label of a deed",
		Long: `Change the status label of a deed case.

Status is an open label chosen by the registry staff, for example:
  escriba deed status ESC2026-0001 "🔍 Em análise"
  escriba deed status ESC2026-0001 "✅ Concluída"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.DeedAdapter().SetStatus(cmd.Context(), args[0], args[1])
		},
	}
}

func deedAssignCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "assign [code] [identity]",
		Short: "Assign a responsible handler to a deed",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.DeedAdapter().Assign(cmd.Context(), args[0], args[1])
		},
	}
}
