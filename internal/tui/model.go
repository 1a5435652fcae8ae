package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/spec-kit/ticket-console/internal/api/dto"
	"github.com/spec-kit/ticket-console/internal/domain"
	"github.com/spec-kit/ticket-console/internal/events"
	"github.com/spec-kit/ticket-console/internal/query"
	"github.com/spec-kit/ticket-console/internal/service"
)

// ConcernFetcher loads the receiver's pending-concern pages.
type ConcernFetcher interface {
	GetReceiverConcerns(ctx context.Context, q dto.PagedQuery) (*dto.ReceiverConcernResponse, error)
}

// MasterlistFetcher loads the closing-form option lists.
type MasterlistFetcher interface {
	GetCategories(ctx context.Context) ([]domain.Category, error)
	GetSubCategories(ctx context.Context, categoryIDs []int) ([]domain.SubCategory, error)
	GetTechnicians(ctx context.Context) ([]domain.Technician, error)
	GetChannels(ctx context.Context) ([]domain.Channel, error)
}

// Services bundles everything the console drives.
type Services struct {
	Queues     *service.QueueService
	Approvals  *service.ApprovalService
	Badges     *service.BadgeService
	History    *service.HistoryService
	Intake     *service.ConcernIntakeService
	Concerns   ConcernFetcher
	Masterlist MasterlistFetcher
	Closer     service.TicketCloser
	Remover    service.AttachmentRemover
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// focusRegion identifies where keyboard input routes.
type focusRegion int

const (
	focusList focusRegion = iota
	focusSearch
	focusConfirm
	focusHistory
	focusCloseForm
	focusIntake
)

// confirmState is the pending yes/no overlay and the command to run on
// yes.
type confirmState struct {
	prompt service.Prompt
	accept tea.Cmd
}

// Model is the console's bubbletea model: four tab views over one
// paginated query controller, with modal overlays for confirmation,
// history, closing and intake.
type Model struct {
	ctx      context.Context
	services Services
	keys     KeyMap
	styles   styles
	logger   *zap.Logger
	debounce time.Duration

	queue       domain.Queue
	pager       *query.Pager
	searchInput textinput.Model
	searchSeq   int
	fetchSeq    int
	status      query.Status
	fetchError  string

	rows        []dto.ClosingTicketItem
	concernRows []dto.ReceiverConcernItem
	meta        dto.PageMeta
	cursor      int

	focus          focusRegion
	confirm        *confirmState
	closeForm      *closeFormView
	intake         *intakeView
	timeline       []service.TimelineEntry
	timelineTicket int

	toast    Notice
	hasToast bool

	invalidations chan events.Event
	notices       *Notices

	width  int
	height int
}

// New creates the console model and subscribes it to the invalidation
// bus.
func New(ctx context.Context, services Services, notices *Notices, defaultPageSize int, debounce time.Duration) *Model {
	logger := services.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if debounce <= 0 {
		debounce = query.DefaultDebounce
	}

	input := textinput.New()
	input.Placeholder = "search"
	input.CharLimit = 120

	m := &Model{
		ctx:           ctx,
		services:      services,
		keys:          DefaultKeyMap,
		styles:        defaultStyles(),
		logger:        logger,
		debounce:      debounce,
		queue:         domain.QueueTickets,
		pager:         query.NewPager(defaultPageSize, domain.QueueTickets),
		searchInput:   input,
		invalidations: make(chan events.Event, 16),
		notices:       notices,
	}

	push := func(_ context.Context, event events.Event) error {
		select {
		case m.invalidations <- event:
		default:
		}
		return nil
	}
	services.Dispatcher.Subscribe(events.TagApproval, push)
	services.Dispatcher.Subscribe(events.TagNotification, push)
	services.Dispatcher.Subscribe(events.TagReceiverConcern, push)

	return m
}

// Init implements tea.Model: arm the listeners and load the first page.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		listenForInvalidation(m.invalidations),
		listenForNotice(m.notices.C()),
		m.refreshBadgesCmd(),
		m.refetch(),
	)
}

// refetch loads the current page of the active view. The sequence
// number makes an in-flight older response a no-op.
func (m *Model) refetch() tea.Cmd {
	m.fetchSeq++
	m.status.IsFetching = true
	if !m.status.IsSuccess {
		m.status.IsLoading = true
	}
	if m.queue == domain.QueueConcerns {
		return m.fetchConcernsCmd(m.fetchSeq, m.pager.Query())
	}
	return m.fetchQueueCmd(m.fetchSeq, m.queue, m.pager.Query())
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case queuePageMsg:
		return m.handleQueuePage(msg)

	case concernPageMsg:
		return m.handleConcernPage(msg)

	case debounceMsg:
		if msg.seq != m.searchSeq {
			return m, nil
		}
		m.pager.SetSearch(m.searchInput.Value())
		return m, m.refetch()

	case invalidationMsg:
		// Server state moved: reload the visible page and re-arm.
		return m, tea.Batch(
			listenForInvalidation(m.invalidations),
			m.refetch(),
		)

	case noticeMsg:
		m.toast = msg.notice
		m.hasToast = true
		return m, tea.Batch(
			listenForNotice(m.notices.C()),
			scheduleToastClear(),
		)

	case toastClearMsg:
		m.hasToast = false
		return m, nil

	case actionDoneMsg:
		if msg.err != nil {
			// Dialog stays open; the notice channel carries the
			// server message.
			return m, nil
		}
		m.confirm = nil
		m.focus = focusList
		return m, nil

	case timelineMsg:
		if msg.err != nil {
			m.toast = Notice{Text: msg.err.Error(), IsError: true}
			m.hasToast = true
			m.focus = focusList
			return m, scheduleToastClear()
		}
		m.timeline = msg.entries
		m.timelineTicket = msg.ticketConcernID
		m.focus = focusHistory
		return m, nil

	case masterlistMsg, subCategoryOptionsMsg, fileStagedMsg, attachmentRemovedMsg:
		if m.closeForm != nil {
			return m, m.closeForm.handleData(m, msg)
		}
		if m.intake != nil {
			if staged, ok := msg.(fileStagedMsg); ok {
				return m, m.intake.handleFile(m, staged)
			}
		}
		return m, nil

	case closeDoneMsg:
		return m.handleCloseDone(msg)

	case intakeDoneMsg:
		if msg.err != nil {
			return m, nil
		}
		m.intake = nil
		m.focus = focusList
		return m, m.refetch()
	}

	return m, nil
}

func (m *Model) handleQueuePage(msg queuePageMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.fetchSeq {
		return m, nil
	}
	m.status.IsFetching = false
	m.status.IsLoading = false
	if msg.err != nil {
		m.status.IsError = true
		m.status.IsSuccess = false
		m.fetchError = msg.err.Error()
		return m, nil
	}
	m.status.IsError = false
	m.status.IsSuccess = true
	m.fetchError = ""
	m.rows = msg.page.Rows
	m.meta = msg.page.Meta
	m.clampCursor(len(m.rows))
	return m, nil
}

func (m *Model) handleConcernPage(msg concernPageMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.fetchSeq {
		return m, nil
	}
	m.status.IsFetching = false
	m.status.IsLoading = false
	if msg.err != nil {
		m.status.IsError = true
		m.status.IsSuccess = false
		m.fetchError = msg.err.Error()
		return m, nil
	}
	m.status.IsError = false
	m.status.IsSuccess = true
	m.fetchError = ""
	m.concernRows = msg.rows
	m.meta = msg.meta
	m.clampCursor(len(m.concernRows))
	return m, nil
}

func (m *Model) handleCloseDone(msg closeDoneMsg) (tea.Model, tea.Cmd) {
	if m.closeForm == nil || msg.token != m.closeForm.form.SessionToken() {
		// Result for a dialog that was already discarded.
		return m, nil
	}
	if msg.err != nil {
		// Form keeps its values for correction.
		m.focus = focusCloseForm
		return m, nil
	}
	m.closeForm = nil
	m.focus = focusList
	return m, m.refetch()
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.focus {
	case focusSearch:
		return m.handleSearchKey(msg)
	case focusConfirm:
		return m.handleConfirmKey(msg)
	case focusHistory:
		return m.handleHistoryKey(msg)
	case focusCloseForm:
		return m, m.closeForm.handleKey(m, msg)
	case focusIntake:
		return m, m.intake.handleKey(m, msg)
	}
	return m.handleListKey(msg)
}

func (m *Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.rowCount()-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.NextPage):
		if m.pager.PageNumber() < m.meta.TotalPages() {
			m.pager.SetPage(m.pager.PageNumber() + 1)
			return m, m.refetch()
		}
		return m, nil

	case key.Matches(msg, m.keys.PrevPage):
		if m.pager.PageNumber() > 1 {
			m.pager.SetPage(m.pager.PageNumber() - 1)
			return m, m.refetch()
		}
		return m, nil

	case key.Matches(msg, m.keys.PageSize):
		m.pager.SetPageSize(nextPageSize(m.pager.PageSize()))
		return m, m.refetch()

	case key.Matches(msg, m.keys.TabTickets):
		return m, m.switchQueue(domain.QueueTickets)
	case key.Matches(msg, m.keys.TabTransfer):
		return m, m.switchQueue(domain.QueueForTransfer)
	case key.Matches(msg, m.keys.TabOnHold):
		return m, m.switchQueue(domain.QueueOnHold)
	case key.Matches(msg, m.keys.TabConcerns):
		return m, m.switchQueue(domain.QueueConcerns)

	case key.Matches(msg, m.keys.SearchActivate):
		m.focus = focusSearch
		m.searchInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Refresh):
		return m, tea.Batch(m.refetch(), m.refreshBadgesCmd())

	case key.Matches(msg, m.keys.Approve):
		return m.beginApproval()

	case key.Matches(msg, m.keys.Close):
		return m.beginClose()

	case key.Matches(msg, m.keys.NewItem):
		if m.queue != domain.QueueConcerns {
			return m, nil
		}
		m.intake = newIntakeView()
		m.focus = focusIntake
		return m, textinput.Blink

	case key.Matches(msg, m.keys.History):
		row, ok := m.selectedRow()
		if !ok {
			return m, nil
		}
		return m, m.fetchTimelineCmd(row.TicketConcernID)
	}
	return m, nil
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.SearchClear):
		m.searchInput.SetValue("")
		m.searchInput.Blur()
		m.focus = focusList
		m.searchSeq++
		m.pager.SetSearch("")
		return m, m.refetch()

	case msg.Type == tea.KeyEnter:
		m.searchInput.Blur()
		m.focus = focusList
		m.searchSeq++
		m.pager.SetSearch(m.searchInput.Value())
		return m, m.refetch()
	}

	var cmd tea.Cmd
	before := m.searchInput.Value()
	m.searchInput, cmd = m.searchInput.Update(msg)
	if m.searchInput.Value() != before {
		m.searchSeq++
		return m, tea.Batch(cmd, m.scheduleDebounce(m.searchSeq))
	}
	return m, cmd
}

func (m *Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirm == nil {
		m.focus = focusList
		return m, nil
	}
	switch msg.String() {
	case "y", "Y", "enter":
		accept := m.confirm.accept
		m.confirm = nil
		m.focus = focusList
		return m, accept
	case "n", "N", "esc":
		m.confirm = nil
		if m.closeForm != nil {
			m.focus = focusCloseForm
		} else {
			m.focus = focusList
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Quit):
		m.timeline = nil
		m.focus = focusList
		return m, nil
	}
	return m, nil
}

// beginApproval opens the confirmation overlay for the action the
// active queue supports.
func (m *Model) beginApproval() (tea.Model, tea.Cmd) {
	row, ok := m.selectedRow()
	if !ok {
		return m, nil
	}
	var action service.ApprovalAction
	switch m.queue {
	case domain.QueueTickets:
		action = service.ActionApprove
	case domain.QueueForTransfer:
		action = service.ActionTransfer
	case domain.QueueOnHold:
		action = service.ActionHold
	default:
		return m, nil
	}
	m.confirm = &confirmState{
		prompt: m.services.Approvals.PromptFor(action, row.TicketConcernID),
		accept: m.dispatchApprovalCmd(action, row.ClosingTicketID, row.TicketConcernID),
	}
	m.focus = focusConfirm
	return m, nil
}

// beginClose opens the closing dialog prefilled from the selected row.
func (m *Model) beginClose() (tea.Model, tea.Cmd) {
	if m.queue != domain.QueueTickets {
		return m, nil
	}
	row, ok := m.selectedRow()
	if !ok {
		return m, nil
	}
	form := service.NewClosingForm(row.TicketConcernID,
		m.services.Closer, m.services.Remover, m.services.Dispatcher, m.notices, m.logger)
	m.closeForm = newCloseFormView(form, row)
	m.focus = focusCloseForm
	return m, tea.Batch(m.fetchMasterlistCmd(), textinput.Blink)
}

func (m *Model) switchQueue(queue domain.Queue) tea.Cmd {
	if m.queue == queue {
		return nil
	}
	m.queue = queue
	m.pager.SetQueue(queue)
	m.searchInput.SetValue("")
	m.searchSeq++
	m.cursor = 0
	m.rows = nil
	m.concernRows = nil
	m.meta = dto.PageMeta{}
	m.status = query.Status{}
	return m.refetch()
}

func (m *Model) selectedRow() (dto.ClosingTicketItem, bool) {
	if m.queue == domain.QueueConcerns {
		return dto.ClosingTicketItem{}, false
	}
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return dto.ClosingTicketItem{}, false
	}
	return m.rows[m.cursor], true
}

func (m *Model) rowCount() int {
	if m.queue == domain.QueueConcerns {
		return len(m.concernRows)
	}
	return len(m.rows)
}

func (m *Model) clampCursor(n int) {
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// nextPageSize cycles through the sizes the footer offers.
func nextPageSize(current int) int {
	switch current {
	case 5:
		return 10
	case 10:
		return 25
	default:
		return 5
	}
}
