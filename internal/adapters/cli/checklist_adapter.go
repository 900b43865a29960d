package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/escriba/internal/ports/primary"
)

// ChecklistAdapter translates checklist and attachment CLI operations to
// DeedService calls.
type ChecklistAdapter struct {
	service primary.DeedService
	out     io.Writer
}

// NewChecklistAdapter creates a new ChecklistAdapter with the given service.
func NewChecklistAdapter(service primary.DeedService, out io.Writer) *ChecklistAdapter {
	return &ChecklistAdapter{
		service: service,
		out:     out,
	}
}

// Show displays the checklist for a case with delivery markers.
func (a *ChecklistAdapter) Show(ctx context.Context, code string) error {
	checklist, err := a.service.GetChecklist(ctx, code)
	if err != nil {
		return err
	}

	if len(checklist) == 0 {
		fmt.Fprintf(a.out, "Deed %s has no tracked documents\n", code)
		return nil
	}

	pending := 0
	fmt.Fprintf(a.out, "\nChecklist for %s:\n", code)
	for _, item := range checklist {
		fmt.Fprintf(a.out, "  %s %s\n", deliveryMark(item.Delivered), item.Document)
		if !item.Delivered {
			pending++
		}
	}
	if pending == 0 {
		fmt.Fprintln(a.out, "All documents delivered")
	} else {
		fmt.Fprintf(a.out, "%d document(s) pending\n", pending)
	}
	fmt.Fprintln(a.out)

	return nil
}

// Mark flips a required document to delivered.
func (a *ChecklistAdapter) Mark(ctx context.Context, code, document string) error {
	if err := a.service.MarkDocumentDelivered(ctx, code, document); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Document %q marked as delivered for %s\n", document, code)
	return nil
}

// Pending lists the undelivered documents for a case.
func (a *ChecklistAdapter) Pending(ctx context.Context, code string) error {
	items, err := a.service.PendingDocuments(ctx, code)
	if err != nil {
		return err
	}

	if len(items) == 0 {
		fmt.Fprintf(a.out, "All documents delivered for %s\n", code)
		return nil
	}

	fmt.Fprintf(a.out, "\nPending documents for %s:\n", code)
	for _, item := range items {
		fmt.Fprintf(a.out, "  %s %s\n", pendingMark(), item.Document)
	}
	fmt.Fprintln(a.out)

	return nil
}

// Attach binds a file to the case archive and prints the stored path.
func (a *ChecklistAdapter) Attach(ctx context.Context, code, filename string, content []byte) error {
	resp, err := a.service.BindAttachment(ctx, primary.BindAttachmentRequest{
		Code:     code,
		Filename: filename,
		Content:  content,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Stored %s at %s\n", filename, resp.StoredPath)
	return nil
}
