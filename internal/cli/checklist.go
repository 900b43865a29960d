package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/escriba/internal/wire"
)

// ChecklistCmd returns the checklist command
func ChecklistCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checklist",
		Short: "Track required documents for a deed",
	}

	cmd.AddCommand(checklistShowCmd())
	cmd.AddCommand(checklistPendingCmd())
	cmd.AddCommand(checklistMarkCmd())

	return cmd
}

func checklistShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [code]",
		Short: "Show the checklist for a deed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.ChecklistAdapter().Show(cmd.Context(), args[0])
		},
	}
}

func checklistPendingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pending [code]",
		Short: "List the undelivered documents for a deed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.ChecklistAdapter().Pending(cmd.Context(), args[0])
		},
	}
}

func checklistMarkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mark [code] [document]",
		Short: "Mark a required document as delivered",
		Long: `Mark a required document as delivered.

Marking an already delivered document succeeds and changes nothing.

Example:
  escriba checklist mark ESC2026-0001 "RG/CPF das partes"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.ChecklistAdapter().Mark(cmd.Context(), args[0], args[1])
		},
	}
}
