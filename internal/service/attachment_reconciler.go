package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/ticket-console/internal/domain"
	"github.com/spec-kit/ticket-console/pkg/util"
)

// AttachmentRemover deletes a persisted attachment on the server.
type AttachmentRemover interface {
	DeleteAttachment(ctx context.Context, ticketAttachmentID int) error
}

// StagedFile is a file picked for upload but not yet reconciled.
type StagedFile struct {
	Name    string
	Size    int64
	Content []byte
}

// AttachmentReconciler keeps the attachment set of a form coherent
// across the local/persisted identity switch: staged files are keyed by
// name until the server confirms them, persisted ones by server id.
// Removing a persisted attachment deletes it server-side first, then
// drops it locally; removing a staged one is purely local.
type AttachmentReconciler struct {
	remover AttachmentRemover
	logger  *zap.Logger
	entries []domain.Attachment
}

// NewAttachmentReconciler creates a reconciler with an empty set.
func NewAttachmentReconciler(remover AttachmentRemover, logger *zap.Logger) *AttachmentReconciler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AttachmentReconciler{remover: remover, logger: logger}
}

// LoadPersisted replaces the current set with the server-confirmed
// attachments of the record being edited. Call this when a dialog
// opens, before any staging.
func (r *AttachmentReconciler) LoadPersisted(attachments []domain.Attachment) {
	r.entries = r.entries[:0]
	for _, a := range attachments {
		if !a.Persisted() {
			continue
		}
		r.entries = append(r.entries, a)
	}
}

// Stage adds picked files to the set. Files with a disallowed extension
// are skipped, as are files whose name collides with an existing entry
// (first one wins). The accepted attachments are returned.
func (r *AttachmentReconciler) Stage(files ...StagedFile) []domain.Attachment {
	added := make([]domain.Attachment, 0, len(files))
	for _, f := range files {
		if !domain.AllowedAttachmentName(f.Name) {
			r.logger.Warn("attachment rejected, extension not allowed", zap.String("name", f.Name))
			continue
		}
		if r.hasName(f.Name) {
			r.logger.Warn("attachment rejected, duplicate name", zap.String("name", f.Name))
			continue
		}
		a := domain.NewLocalAttachment(f.Name, f.Size, f.Content)
		r.entries = append(r.entries, a)
		added = append(added, a)
	}
	return added
}

// Remove takes an attachment out of the set. Persisted attachments are
// deleted on the server first; if that call fails the entry stays and
// the error is returned. Staged attachments never touch the network.
func (r *AttachmentReconciler) Remove(ctx context.Context, attachment domain.Attachment) error {
	idx := r.indexOf(attachment.Key())
	if idx < 0 {
		return util.NewValidationError("attachment not found", nil)
	}
	if r.entries[idx].Persisted() {
		if err := r.remover.DeleteAttachment(ctx, r.entries[idx].TicketAttachmentID); err != nil {
			return err
		}
	}
	r.entries = append(r.entries[:idx], r.entries[idx+1:]...)
	return nil
}

// Replace swaps the content of a persisted attachment with a newly
// picked file while retaining the server id, so the upload overwrites
// the existing record instead of creating a new one.
func (r *AttachmentReconciler) Replace(ticketAttachmentID int, file StagedFile) error {
	if !domain.AllowedAttachmentName(file.Name) {
		return util.NewValidationError("file type not allowed", nil)
	}
	for i, a := range r.entries {
		if a.Persisted() && a.TicketAttachmentID == ticketAttachmentID {
			replacement := domain.NewLocalAttachment(file.Name, file.Size, file.Content)
			replacement.TicketAttachmentID = ticketAttachmentID
			r.entries[i] = replacement
			return nil
		}
	}
	return util.NewValidationError("attachment not found", nil)
}

// Entries returns a copy of the current set in insertion order.
func (r *AttachmentReconciler) Entries() []domain.Attachment {
	out := make([]domain.Attachment, len(r.entries))
	copy(out, r.entries)
	return out
}

// StagedForUpload returns the attachments that must go into the next
// submission: new files and replacements, but not untouched persisted
// ones.
func (r *AttachmentReconciler) StagedForUpload() []domain.Attachment {
	var out []domain.Attachment
	for _, a := range r.entries {
		if a.State == domain.AttachmentLocal {
			out = append(out, a)
		}
	}
	return out
}

// Clear drops all entries.
func (r *AttachmentReconciler) Clear() {
	r.entries = r.entries[:0]
}

func (r *AttachmentReconciler) hasName(name string) bool {
	for _, a := range r.entries {
		if a.Name == name {
			return true
		}
	}
	return false
}

func (r *AttachmentReconciler) indexOf(key string) int {
	for i, a := range r.entries {
		if a.Key() == key {
			return i
		}
	}
	return -1
}
