package tui

import (
	"context"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/spec-kit/ticket-console/internal/api/dto"
	"github.com/spec-kit/ticket-console/internal/domain"
	"github.com/spec-kit/ticket-console/internal/events"
	"github.com/spec-kit/ticket-console/internal/service"
)

// queuePageMsg delivers a fetched approver queue page. seq guards
// against stale responses overtaking newer ones.
type queuePageMsg struct {
	seq  int
	page service.QueuePage
	err  error
}

// concernPageMsg delivers a fetched receiver concern page.
type concernPageMsg struct {
	seq  int
	rows []dto.ReceiverConcernItem
	meta dto.PageMeta
	err  error
}

// debounceMsg fires when the search input has settled.
type debounceMsg struct {
	seq int
}

// invalidationMsg wraps a bus event for delivery through the message
// loop.
type invalidationMsg struct {
	event events.Event
}

// noticeMsg wraps a workflow toast.
type noticeMsg struct {
	notice Notice
}

// actionDoneMsg is sent when an approval dispatch settles.
type actionDoneMsg struct {
	err error
}

// timelineMsg delivers a fetched ticket timeline.
type timelineMsg struct {
	ticketConcernID int
	entries         []service.TimelineEntry
	err             error
}

// masterlistMsg delivers the closing-form option lists.
type masterlistMsg struct {
	categories  []domain.Category
	technicians []domain.Technician
	channels    []domain.Channel
	err         error
}

// subCategoryOptionsMsg delivers the sub-category cascade result.
type subCategoryOptionsMsg struct {
	options []domain.SubCategory
	err     error
}

// fileStagedMsg reports a file read from disk for attachment.
type fileStagedMsg struct {
	file service.StagedFile
	err  error
}

// attachmentRemovedMsg reports the outcome of an attachment removal.
type attachmentRemovedMsg struct {
	err error
}

// closeDoneMsg is sent when a closing submission settles. token ties
// the result to the dialog instance that started it.
type closeDoneMsg struct {
	token string
	err   error
}

// intakeDoneMsg is sent when a concern submission settles.
type intakeDoneMsg struct {
	err error
}

// toastClearMsg fades the status-bar toast.
type toastClearMsg struct{}

// toastFadeDelay is how long a toast stays visible.
const toastFadeDelay = 4 * time.Second

// autoConfirm satisfies the services' confirmation gate after the
// console overlay has already collected the user's yes.
var autoConfirm = service.ConfirmerFunc(func(context.Context, service.Prompt) (bool, error) {
	return true, nil
})

func (m *Model) fetchQueueCmd(seq int, queue domain.Queue, query dto.PagedQuery) tea.Cmd {
	return func() tea.Msg {
		page, err := m.services.Queues.FetchPage(m.ctx, queue, query)
		return queuePageMsg{seq: seq, page: page, err: err}
	}
}

func (m *Model) fetchConcernsCmd(seq int, query dto.PagedQuery) tea.Cmd {
	return func() tea.Msg {
		resp, err := m.services.Concerns.GetReceiverConcerns(m.ctx, query)
		if err != nil {
			return concernPageMsg{seq: seq, err: err}
		}
		return concernPageMsg{seq: seq, rows: resp.Value.RequestConcern, meta: resp.Value.PageMeta}
	}
}

func (m *Model) refreshBadgesCmd() tea.Cmd {
	return func() tea.Msg {
		if err := m.services.Badges.Refresh(m.ctx); err != nil {
			return nil
		}
		return nil
	}
}

func (m *Model) dispatchApprovalCmd(action service.ApprovalAction, requestID, ticketConcernID int) tea.Cmd {
	return func() tea.Msg {
		err := m.services.Approvals.Dispatch(m.ctx, action, requestID, ticketConcernID, autoConfirm)
		return actionDoneMsg{err: err}
	}
}

func (m *Model) fetchTimelineCmd(ticketConcernID int) tea.Cmd {
	return func() tea.Msg {
		entries, err := m.services.History.Timeline(m.ctx, ticketConcernID)
		return timelineMsg{ticketConcernID: ticketConcernID, entries: entries, err: err}
	}
}

func (m *Model) fetchMasterlistCmd() tea.Cmd {
	return func() tea.Msg {
		categories, err := m.services.Masterlist.GetCategories(m.ctx)
		if err != nil {
			return masterlistMsg{err: err}
		}
		technicians, err := m.services.Masterlist.GetTechnicians(m.ctx)
		if err != nil {
			return masterlistMsg{err: err}
		}
		channels, err := m.services.Masterlist.GetChannels(m.ctx)
		if err != nil {
			return masterlistMsg{err: err}
		}
		return masterlistMsg{categories: categories, technicians: technicians, channels: channels}
	}
}

func (m *Model) fetchSubCategoriesCmd(categoryIDs []int) tea.Cmd {
	return func() tea.Msg {
		options, err := m.services.Masterlist.GetSubCategories(m.ctx, categoryIDs)
		return subCategoryOptionsMsg{options: options, err: err}
	}
}

func (m *Model) removeAttachmentCmd(form *service.ClosingForm, attachment domain.Attachment) tea.Cmd {
	return func() tea.Msg {
		err := form.Attachments().Remove(m.ctx, attachment)
		return attachmentRemovedMsg{err: err}
	}
}

func (m *Model) submitCloseCmd(form *service.ClosingForm) tea.Cmd {
	token := form.SessionToken()
	return func() tea.Msg {
		err := form.Submit(m.ctx, autoConfirm)
		return closeDoneMsg{token: token, err: err}
	}
}

func (m *Model) submitIntakeCmd(description string, attachments []domain.Attachment) tea.Cmd {
	return func() tea.Msg {
		err := m.services.Intake.Submit(m.ctx, description, attachments)
		return intakeDoneMsg{err: err}
	}
}

// stageFileCmd reads a picked file from disk for staging.
func stageFileCmd(path string) tea.Cmd {
	return func() tea.Msg {
		content, err := os.ReadFile(path)
		if err != nil {
			return fileStagedMsg{err: err}
		}
		return fileStagedMsg{file: service.StagedFile{
			Name:    filepath.Base(path),
			Size:    int64(len(content)),
			Content: content,
		}}
	}
}

// scheduleDebounce fires a debounceMsg after the settle interval.
func (m *Model) scheduleDebounce(seq int) tea.Cmd {
	return tea.Tick(m.debounce, func(time.Time) tea.Msg {
		return debounceMsg{seq: seq}
	})
}

func scheduleToastClear() tea.Cmd {
	return tea.Tick(toastFadeDelay, func(time.Time) tea.Msg {
		return toastClearMsg{}
	})
}

// listenForInvalidation blocks until a bus event arrives, then delivers
// it as a message. The model re-arms it after every delivery.
func listenForInvalidation(ch <-chan events.Event) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-ch
		if !ok {
			return nil
		}
		return invalidationMsg{event: event}
	}
}

// listenForNotice blocks until a workflow toast arrives.
func listenForNotice(ch <-chan Notice) tea.Cmd {
	return func() tea.Msg {
		notice, ok := <-ch
		if !ok {
			return nil
		}
		return noticeMsg{notice: notice}
	}
}
