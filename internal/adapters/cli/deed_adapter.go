// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle output formatting but delegate
// all business logic to services.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/escriba/internal/ports/primary"
)

// DeedAdapter is a thin adapter that translates CLI operations to
// DeedService calls. It depends only on the DeedService interface.
type DeedAdapter struct {
	service primary.DeedService
	out     io.Writer
}

// NewDeedAdapter creates a new DeedAdapter with the given service.
func NewDeedAdapter(service primary.DeedService, out io.Writer) *DeedAdapter {
	return &DeedAdapter{
		service: service,
		out:     out,
	}
}

// Create creates a new case and prints the allocated code and checklist.
func (a *DeedAdapter) Create(ctx context.Context, clientName, deedType string) error {
	resp, err := a.service.CreateDeed(ctx, primary.CreateDeedRequest{
		ClientName: clientName,
		DeedType:   deedType,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Created deed %s for %s (%s)\n", resp.Code, resp.Deed.ClientName, resp.Deed.DeedType)
	fmt.Fprintf(a.out, "  Status: %s\n", resp.Deed.Status)
	if len(resp.Checklist) == 0 {
		fmt.Fprintf(a.out, "  No checklist template for type %q\n", deedType)
		return nil
	}

	fmt.Fprintf(a.out, "  Required documents:\n")
	for _, item := range resp.Checklist {
		fmt.Fprintf(a.out, "    %s %s\n", pendingMark(), item.Document)
	}
	return nil
}

// List lists cases with an optional status filter.
func (a *DeedAdapter) List(ctx context.Context, status string) error {
	deeds, err := a.service.ListDeeds(ctx, primary.DeedFilters{
		Status: status,
	})
	if err != nil {
		return fmt.Errorf("failed to list deeds: %w", err)
	}

	if len(deeds) == 0 {
		fmt.Fprintln(a.out, "No deeds found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-14s %-16s %-14s %s\n", "CODE", "STATUS", "RESPONSIBLE", "CLIENT")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────")
	for _, d := range deeds {
		responsible := d.Responsible
		if responsible == "" {
			responsible = "-"
		}
		fmt.Fprintf(a.out, "%-14s %-16s %-14s %s\n", d.Code, d.Status, responsible, d.ClientName)
	}
	fmt.Fprintln(a.out)

	return nil
}

// Show displays details for a single case, including its checklist.
func (a *DeedAdapter) Show(ctx context.Context, code string) (*primary.Deed, error) {
	deed, err := a.service.GetDeed(ctx, code)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(a.out, "\nDeed:    %s\n", deed.Code)
	fmt.Fprintf(a.out, "Client:  %s\n", deed.ClientName)
	fmt.Fprintf(a.out, "Type:    %s\n", deed.DeedType)
	fmt.Fprintf(a.out, "Status:  %s\n", deed.Status)
	if deed.Responsible != "" {
		fmt.Fprintf(a.out, "Responsible: %s\n", deed.Responsible)
	}
	fmt.Fprintf(a.out, "Created: %s\n", deed.CreatedAt)
	fmt.Fprintf(a.out, "Updated: %s\n", deed.UpdatedAt)

	checklist, err := a.service.GetChecklist(ctx, code)
	if err != nil {
		return nil, err
	}
	if len(checklist) > 0 {
		fmt.Fprintln(a.out, "Checklist:")
		for _, item := range checklist {
			fmt.Fprintf(a.out, "  %s %s\n", deliveryMark(item.Delivered), item.Document)
		}
	}
	fmt.Fprintln(a.out)

	return deed, nil
}

// SetStatus changes the status label of a case.
func (a *DeedAdapter) SetStatus(ctx context.Context, code, status string) error {
	if err := a.service.ChangeStatus(ctx, code, status); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Deed %s status set to %s\n", code, status)
	return nil
}

// Assign assigns a responsible handler to a case.
func (a *DeedAdapter) Assign(ctx context.Context, code, identity string) error {
	if err := a.service.AssignResponsible(ctx, code, identity); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Deed %s assigned to %s\n", code, identity)
	return nil
}

func deliveryMark(delivered bool) string {
	if delivered {
		return color.New(color.FgGreen).Sprint("✔")
	}
	return pendingMark()
}

func pendingMark() string {
	return color.New(color.FgRed).Sprint("✘")
}
