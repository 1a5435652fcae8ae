package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/ticket-console/internal/domain"
	"github.com/spec-kit/ticket-console/internal/events"
	"github.com/spec-kit/ticket-console/pkg/util"
)

func newTestForm(closer TicketCloser, dispatcher events.Dispatcher, notifier Notifier) *ClosingForm {
	return NewClosingForm(42, closer, &fakeRemover{}, dispatcher, notifier, nil)
}

func fillValid(f *ClosingForm) {
	f.SetResolution("Replaced the cable")
	f.SetCategories([]domain.CategorySelection{{CategoryID: 1, Description: "Hardware"}})
	f.SetSubCategories([]domain.SubCategorySelection{{SubCategoryID: 10, CategoryID: 1, Description: "Cabling"}})
}

func TestClosingFormStateProgression(t *testing.T) {
	f := newTestForm(&fakeCloser{}, nil, nil)
	require.Equal(t, ClosingStateEmpty, f.State())

	f.SetResolution("half done")
	require.Equal(t, ClosingStatePartiallyFilled, f.State())

	f.SetCategories([]domain.CategorySelection{{CategoryID: 1}})
	require.Equal(t, ClosingStatePartiallyFilled, f.State())

	f.SetSubCategories([]domain.SubCategorySelection{{SubCategoryID: 10, CategoryID: 1}})
	require.Equal(t, ClosingStateReadyToSubmit, f.State())

	f.SetResolution("")
	require.Equal(t, ClosingStatePartiallyFilled, f.State())
}

func TestClosingFormPruneRemovesOnlyOrphans(t *testing.T) {
	f := newTestForm(&fakeCloser{}, nil, nil)
	f.SetCategories([]domain.CategorySelection{{CategoryID: 1}, {CategoryID: 2}})
	f.SetSubCategories([]domain.SubCategorySelection{
		{SubCategoryID: 10, CategoryID: 1},
		{SubCategoryID: 20, CategoryID: 2},
		{SubCategoryID: 21, CategoryID: 2},
	})

	f.SetCategories([]domain.CategorySelection{{CategoryID: 1}})

	record := f.Record()
	require.Len(t, record.SubCategories, 1)
	require.Equal(t, 10, record.SubCategories[0].SubCategoryID)
}

func TestClosingFormPruneOnOptionListChange(t *testing.T) {
	f := newTestForm(&fakeCloser{}, nil, nil)
	f.SetCategories([]domain.CategorySelection{{CategoryID: 1}})
	f.SetSubCategories([]domain.SubCategorySelection{
		{SubCategoryID: 10, CategoryID: 1},
		{SubCategoryID: 30, CategoryID: 1},
	})

	// The refreshed option list reparents 30 under category 3, which is
	// not selected.
	f.SetSubCategoryOptions([]domain.SubCategory{
		{ID: 10, CategoryID: 1},
		{ID: 30, CategoryID: 3},
	})

	record := f.Record()
	require.Len(t, record.SubCategories, 1)
	require.Equal(t, 10, record.SubCategories[0].SubCategoryID)
}

func TestClosingFormClearingCategoriesDropsAllSubCategories(t *testing.T) {
	f := newTestForm(&fakeCloser{}, nil, nil)
	fillValid(f)
	f.SetCategories(nil)
	require.Empty(t, f.Record().SubCategories)
}

func TestClosingFormSubmitValidationNeverReachesNetwork(t *testing.T) {
	closer := &fakeCloser{}
	f := newTestForm(closer, nil, nil)
	f.SetResolution("only resolution")

	err := f.Submit(context.Background(), yes)
	require.Error(t, err)
	require.True(t, util.IsValidation(err))
	require.Zero(t, closer.callCount())
}

func TestClosingFormSubmitDeclinedIsNoop(t *testing.T) {
	closer := &fakeCloser{}
	f := newTestForm(closer, nil, nil)
	fillValid(f)

	require.NoError(t, f.Submit(context.Background(), no))
	require.Zero(t, closer.callCount())
	require.Equal(t, ClosingStateReadyToSubmit, f.State())
}

func TestClosingFormSubmitRejectionKeepsValues(t *testing.T) {
	closer := &fakeCloser{err: util.NewServerError("Ticket already closed")}
	notifier := &recordingNotifier{}
	f := newTestForm(closer, nil, notifier)
	fillValid(f)

	err := f.Submit(context.Background(), yes)
	require.Error(t, err)
	require.Equal(t, ClosingStateFailed, f.State())
	require.Equal(t, "Ticket already closed", f.LastError())
	require.Equal(t, []string{"Ticket already closed"}, notifier.failures)

	// The form keeps its values for correction and resubmit.
	record := f.Record()
	require.Equal(t, "Replaced the cable", record.Resolution)
	require.Len(t, record.Categories, 1)
}

func TestClosingFormSubmitSuccessResetsAndInvalidates(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()
	recorder := newTagRecorder(dispatcher, events.TagNotification, events.TagNotificationMessage)
	closer := &fakeCloser{}
	notifier := &recordingNotifier{}
	f := newTestForm(closer, dispatcher, notifier)
	fillValid(f)

	require.NoError(t, f.Submit(context.Background(), yes))
	require.Equal(t, ClosingStateSubmitted, f.State())
	require.Empty(t, f.Record().Resolution)
	require.Equal(t, 1, recorder.count(events.TagNotification))
	require.Equal(t, 1, recorder.count(events.TagNotificationMessage))
	require.Equal(t, []string{"Ticket submitted successfully!"}, notifier.successes)
}

func TestClosingFormDoubleSubmitRejected(t *testing.T) {
	closer := &fakeCloser{block: make(chan struct{})}
	f := newTestForm(closer, nil, nil)
	fillValid(f)

	firstDone := make(chan error, 1)
	go func() {
		firstDone <- f.Submit(context.Background(), yes)
	}()

	// Wait for the first submission to reach the in-flight section.
	require.Eventually(t, func() bool {
		return f.State() == ClosingStateSubmitting
	}, time.Second, 5*time.Millisecond)

	err := f.Submit(context.Background(), yes)
	require.Error(t, err)
	require.Equal(t, util.KindConflict, util.ToDomainError(err).Kind)

	close(closer.block)
	require.NoError(t, <-firstDone)
	require.Equal(t, 1, closer.callCount())
}

func TestClosingFormAdvisoryAfterCutoff(t *testing.T) {
	f := newTestForm(&fakeCloser{}, nil, nil)

	f.now = func() time.Time {
		return time.Date(2026, 8, 31, 16, 30, 0, 0, time.UTC)
	}
	require.NotEmpty(t, f.ConfirmPrompt().Advisory)

	f.now = func() time.Time {
		return time.Date(2026, 8, 31, 15, 59, 0, 0, time.UTC)
	}
	require.Empty(t, f.ConfirmPrompt().Advisory)
}

func TestClosingFormAdvisoryNeverBlocksSubmit(t *testing.T) {
	closer := &fakeCloser{}
	f := newTestForm(closer, nil, nil)
	fillValid(f)
	f.now = func() time.Time {
		return time.Date(2026, 8, 31, 23, 0, 0, 0, time.UTC)
	}

	require.NoError(t, f.Submit(context.Background(), yes))
	require.Equal(t, 1, closer.callCount())
}

func TestClosingFormPrefill(t *testing.T) {
	f := newTestForm(&fakeCloser{}, nil, nil)
	f.Prefill("earlier draft",
		[]domain.CategorySelection{{TicketCategoryID: 5, CategoryID: 1}},
		[]domain.SubCategorySelection{{TicketSubCategoryID: 6, SubCategoryID: 10, CategoryID: 1}},
		[]domain.Attachment{domain.NewPersistedAttachment(55, "scan.png", 10, "/files/55")},
	)

	require.Equal(t, ClosingStateReadyToSubmit, f.State())
	// Untouched persisted attachments are not re-uploaded.
	require.Empty(t, f.Record().Attachments)
	require.Len(t, f.Attachments().Entries(), 1)
}
