package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/ticket-console/internal/domain"
	"github.com/spec-kit/ticket-console/internal/events"
	"github.com/spec-kit/ticket-console/pkg/util"
)

// ClosingFormState is the lifecycle of one closing dialog.
type ClosingFormState string

const (
	ClosingStateEmpty           ClosingFormState = "EMPTY"
	ClosingStatePartiallyFilled ClosingFormState = "PARTIALLY_FILLED"
	ClosingStateReadyToSubmit   ClosingFormState = "READY_TO_SUBMIT"
	ClosingStateSubmitting      ClosingFormState = "SUBMITTING"
	ClosingStateSubmitted       ClosingFormState = "SUBMITTED"
	ClosingStateFailed          ClosingFormState = "FAILED"
)

// closingCutoffHour is when the end-of-day advisory starts showing.
const closingCutoffHour = 16

// TicketCloser submits a closing record to the server.
type TicketCloser interface {
	CloseTicket(ctx context.Context, record domain.ClosingRecord) error
}

// ClosingForm drives the closing dialog for a single ticket. Edits are
// applied through setters so the dependent-field rule (sub-categories
// must belong to a selected category) holds after every change, not
// just at submit time. Submit is guarded against double fire: while a
// request is in flight all further submits are rejected.
type ClosingForm struct {
	mu sync.Mutex

	ticketConcernID    int
	resolution         string
	notes              string
	categories         []domain.CategorySelection
	subCategories      []domain.SubCategorySelection
	subCategoryOptions []domain.SubCategory
	technicians        []domain.TechnicianSelection
	attachments        *AttachmentReconciler

	submitting bool
	submitted  bool
	failed     bool
	lastError  string

	sessionToken string

	closer     TicketCloser
	dispatcher events.Dispatcher
	notifier   Notifier
	logger     *zap.Logger
	now        func() time.Time
}

// NewClosingForm opens a closing dialog for the given ticket. The
// session token identifies this dialog instance; results arriving for a
// stale token must be discarded by the caller.
func NewClosingForm(ticketConcernID int, closer TicketCloser, remover AttachmentRemover, dispatcher events.Dispatcher, notifier Notifier, logger *zap.Logger) *ClosingForm {
	if logger == nil {
		logger = zap.NewNop()
	}
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &ClosingForm{
		ticketConcernID: ticketConcernID,
		attachments:     NewAttachmentReconciler(remover, logger),
		sessionToken:    uuid.NewString(),
		closer:          closer,
		dispatcher:      dispatcher,
		notifier:        notifier,
		logger:          logger,
		now:             time.Now,
	}
}

// SessionToken identifies this dialog instance.
func (f *ClosingForm) SessionToken() string {
	return f.sessionToken
}

// Attachments exposes the attachment set of this form.
func (f *ClosingForm) Attachments() *AttachmentReconciler {
	return f.attachments
}

// Prefill loads the persisted draft of a ticket being re-opened for
// editing: resolution, category links, sub-category links and uploaded
// attachments.
func (f *ClosingForm) Prefill(resolution string, categories []domain.CategorySelection, subCategories []domain.SubCategorySelection, attachments []domain.Attachment) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resolution = resolution
	f.categories = append([]domain.CategorySelection(nil), categories...)
	f.subCategories = append([]domain.SubCategorySelection(nil), subCategories...)
	f.attachments.LoadPersisted(attachments)
	f.pruneSubCategories()
	f.clearOutcome()
}

// SetResolution updates the resolution text.
func (f *ClosingForm) SetResolution(resolution string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resolution = resolution
	f.clearOutcome()
}

// SetNotes updates the optional notes text.
func (f *ClosingForm) SetNotes(notes string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notes = notes
	f.clearOutcome()
}

// SetCategories replaces the category selection. Sub-categories whose
// parent is no longer selected are dropped in the same call.
func (f *ClosingForm) SetCategories(categories []domain.CategorySelection) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.categories = append(f.categories[:0], categories...)
	f.pruneSubCategories()
	f.clearOutcome()
}

// SetSubCategories replaces the sub-category selection, subject to the
// same parent rule.
func (f *ClosingForm) SetSubCategories(subCategories []domain.SubCategorySelection) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.subCategories = append(f.subCategories[:0], subCategories...)
	f.pruneSubCategories()
	f.clearOutcome()
}

// SetSubCategoryOptions installs the option list fetched for the
// current category selection. Selections absent from the new list are
// dropped immediately.
func (f *ClosingForm) SetSubCategoryOptions(options []domain.SubCategory) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.subCategoryOptions = append(f.subCategoryOptions[:0], options...)
	f.pruneSubCategories()
}

// SetTechnicians replaces the optional technician assignment.
func (f *ClosingForm) SetTechnicians(technicians []domain.TechnicianSelection) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.technicians = append(f.technicians[:0], technicians...)
	f.clearOutcome()
}

// State reports where the dialog is in its lifecycle.
func (f *ClosingForm) State() ClosingFormState {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch {
	case f.submitting:
		return ClosingStateSubmitting
	case f.submitted:
		return ClosingStateSubmitted
	case f.failed:
		return ClosingStateFailed
	}
	if f.empty() {
		return ClosingStateEmpty
	}
	if f.record().Validate() == nil {
		return ClosingStateReadyToSubmit
	}
	return ClosingStatePartiallyFilled
}

// LastError returns the most recent server rejection, verbatim.
func (f *ClosingForm) LastError() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastError
}

// Record builds the submission payload from the current form values.
func (f *ClosingForm) Record() domain.ClosingRecord {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.record()
}

// Submit validates, confirms and sends the closing request. Validation
// failures never reach the network. A declined confirmation is a no-op.
// On rejection the form keeps all values so the user can correct and
// resubmit; on success the form resets and the queue and badge caches
// are invalidated together.
func (f *ClosingForm) Submit(ctx context.Context, confirmer Confirmer) error {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return util.NewConflict("a submission is already in flight", nil)
	}
	record := f.record()
	f.mu.Unlock()

	if err := record.Validate(); err != nil {
		return util.NewValidationError(err.Error(), nil)
	}

	ok, err := confirmer.Confirm(ctx, f.ConfirmPrompt())
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return util.NewConflict("a submission is already in flight", nil)
	}
	f.submitting = true
	f.failed = false
	f.mu.Unlock()

	err = f.closer.CloseTicket(ctx, record)

	f.mu.Lock()
	f.submitting = false
	if err != nil {
		f.failed = true
		f.lastError = util.UserMessage(err)
		f.mu.Unlock()
		f.logger.Warn("closing request rejected",
			zap.Int("ticket_concern_id", record.TicketConcernID),
			zap.Error(err))
		f.notifier.Error(util.UserMessage(err))
		return err
	}
	f.reset()
	f.submitted = true
	f.mu.Unlock()

	f.logger.Info("closing request submitted",
		zap.Int("ticket_concern_id", record.TicketConcernID))
	f.notifier.Success("Ticket submitted successfully!")
	f.publishInvalidation(ctx, record.TicketConcernID)
	return nil
}

// ConfirmPrompt builds the submit confirmation, with the end-of-day
// advisory appended after the cutoff. The advisory is informational
// only.
func (f *ClosingForm) ConfirmPrompt() Prompt {
	prompt := Prompt{
		Title: "Confirmation",
		Text:  fmt.Sprintf("Requesting to close ticket number %d?", f.ticketConcernID),
	}
	if afterCutoff(f.now()) {
		prompt.Advisory = "Please note that closing of tickets is only until 4:00 PM."
	}
	return prompt
}

func afterCutoff(now time.Time) bool {
	cutoff := time.Date(now.Year(), now.Month(), now.Day(), closingCutoffHour, 0, 0, 0, now.Location())
	return !now.Before(cutoff)
}

func (f *ClosingForm) publishInvalidation(ctx context.Context, ticketConcernID int) {
	if f.dispatcher == nil {
		return
	}
	event := events.Event{
		ID:        uuid.NewString(),
		Tags:      []events.Tag{events.TagNotification, events.TagNotificationMessage},
		Source:    "closing_form",
		TicketID:  ticketConcernID,
		Timestamp: f.now(),
	}
	if err := f.dispatcher.Publish(ctx, event); err != nil {
		f.logger.Warn("failed to publish invalidation", zap.Error(err))
	}
}

// pruneSubCategories drops selected sub-categories whose parent
// category is no longer selected, or which fell out of the option list.
// Callers hold the lock.
func (f *ClosingForm) pruneSubCategories() {
	if len(f.subCategories) == 0 {
		return
	}
	if len(f.categories) == 0 {
		f.subCategories = f.subCategories[:0]
		return
	}
	selected := make(map[int]struct{}, len(f.categories))
	for _, c := range f.categories {
		selected[c.CategoryID] = struct{}{}
	}
	optionParent := make(map[int]int, len(f.subCategoryOptions))
	for _, opt := range f.subCategoryOptions {
		optionParent[opt.ID] = opt.CategoryID
	}
	kept := f.subCategories[:0]
	for _, sc := range f.subCategories {
		parent := sc.CategoryID
		if p, ok := optionParent[sc.SubCategoryID]; ok {
			parent = p
		}
		if _, ok := selected[parent]; ok {
			sc.CategoryID = parent
			kept = append(kept, sc)
		}
	}
	f.subCategories = kept
}

// clearOutcome forgets the previous submit outcome on any edit.
// Callers hold the lock.
func (f *ClosingForm) clearOutcome() {
	f.submitted = false
	f.failed = false
}

func (f *ClosingForm) empty() bool {
	return f.resolution == "" &&
		f.notes == "" &&
		len(f.categories) == 0 &&
		len(f.subCategories) == 0 &&
		len(f.technicians) == 0 &&
		len(f.attachments.Entries()) == 0
}

func (f *ClosingForm) record() domain.ClosingRecord {
	return domain.ClosingRecord{
		TicketConcernID: f.ticketConcernID,
		Resolution:      f.resolution,
		Notes:           f.notes,
		Categories:      append([]domain.CategorySelection(nil), f.categories...),
		SubCategories:   append([]domain.SubCategorySelection(nil), f.subCategories...),
		Technicians:     append([]domain.TechnicianSelection(nil), f.technicians...),
		Attachments:     f.attachments.StagedForUpload(),
	}
}

func (f *ClosingForm) reset() {
	f.resolution = ""
	f.notes = ""
	f.categories = f.categories[:0]
	f.subCategories = f.subCategories[:0]
	f.technicians = f.technicians[:0]
	f.attachments.Clear()
	f.lastError = ""
	f.failed = false
}
