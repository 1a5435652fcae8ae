package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/spec-kit/ticket-console/internal/domain"
	"github.com/spec-kit/ticket-console/internal/service"
)

// View implements tea.Model.
func (m *Model) View() string {
	var body string
	switch m.focus {
	case focusHistory:
		body = m.viewHistory()
	case focusCloseForm:
		body = m.closeForm.view(m)
	case focusIntake:
		body = m.intake.view(m)
	default:
		body = m.viewList()
	}

	sections := []string{m.viewHeader(), body, m.viewFooter()}
	out := lipgloss.JoinVertical(lipgloss.Left, sections...)

	if m.focus == focusConfirm && m.confirm != nil {
		out = lipgloss.JoinVertical(lipgloss.Left, out, m.viewConfirm())
	}
	return out
}

func (m *Model) viewHeader() string {
	counts := m.services.Badges.Counts()
	tabs := []string{
		m.renderTab("Tickets", domain.QueueTickets, counts.ForApprovalClosingNotif),
		m.renderTab("For Transfer", domain.QueueForTransfer, counts.ForApprovalTransferNotif),
		m.renderTab("On Hold", domain.QueueOnHold, counts.ForApprovalOnHoldNotif),
		m.renderTab("Concerns", domain.QueueConcerns, counts.ReceiverConcernNotif),
	}
	title := m.styles.Header.Render("Ticket Console")
	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
	)
}

func (m *Model) renderTab(label string, queue domain.Queue, badge int) string {
	if badge > 0 {
		label = fmt.Sprintf("%s %s", label, m.styles.Badge.Render(fmt.Sprintf("%d", badge)))
	}
	if m.queue == queue {
		return m.styles.ActiveTab.Render(label)
	}
	return m.styles.Tab.Render(label)
}

func (m *Model) viewList() string {
	var b strings.Builder

	if m.focus == focusSearch || m.searchInput.Value() != "" {
		b.WriteString(m.searchInput.View())
		b.WriteString("\n")
	}

	switch {
	case m.status.IsLoading:
		b.WriteString(m.styles.Muted.Render("loading..."))
	case m.status.IsError:
		b.WriteString(m.styles.ToastErr.Render(m.fetchError))
	case m.queue == domain.QueueConcerns:
		b.WriteString(m.viewConcernRows())
	default:
		b.WriteString(m.viewQueueRows())
	}
	return b.String()
}

func (m *Model) viewQueueRows() string {
	if len(m.rows) == 0 {
		return m.styles.Muted.Render("no tickets")
	}
	var b strings.Builder
	for i, row := range m.rows {
		line := fmt.Sprintf("#%-6d %-20s %-16s %-12s %s",
			row.TicketConcernID,
			truncate(row.Fullname, 20),
			truncate(row.DepartmentName, 16),
			truncate(row.ChannelName, 12),
			truncate(row.ConcernDetails, 48),
		)
		if i == m.cursor {
			b.WriteString(m.styles.SelectedRow.Render(line))
		} else {
			b.WriteString(m.styles.Row.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) viewConcernRows() string {
	if len(m.concernRows) == 0 {
		return m.styles.Muted.Render("no concerns")
	}
	var b strings.Builder
	for i, row := range m.concernRows {
		line := fmt.Sprintf("#%-6d %-20s %-16s %-12s %s",
			row.RequestConcernID,
			truncate(row.Fullname, 20),
			truncate(row.DepartmentName, 16),
			truncate(row.ConcernStatus, 12),
			truncate(row.Concern, 48),
		)
		if i == m.cursor {
			b.WriteString(m.styles.SelectedRow.Render(line))
		} else {
			b.WriteString(m.styles.Row.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) viewHistory() string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render(fmt.Sprintf("History — ticket #%d", m.timelineTicket)))
	b.WriteString("\n\n")
	if len(m.timeline) == 0 {
		b.WriteString(m.styles.Muted.Render("no history"))
		return b.String()
	}
	for _, entry := range m.timeline {
		marker := "●"
		style := m.styles.MarkerDone
		switch entry.Marker {
		case service.MarkerUpcoming:
			marker = "○"
			style = m.styles.MarkerUpcoming
		case service.MarkerNegative:
			style = m.styles.MarkerNegative
		}
		when := ""
		if !entry.At.IsZero() {
			when = entry.At.Format("2006-01-02 15:04")
		}
		line := fmt.Sprintf("%s %-17s %-12s %-20s %s",
			style.Render(marker),
			when,
			entry.Action,
			truncate(entry.TransactedBy, 20),
			truncate(entry.Remarks, 40),
		)
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("Esc back"))
	return b.String()
}

func (m *Model) viewConfirm() string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render(m.confirm.prompt.Title))
	b.WriteString("\n")
	b.WriteString(m.confirm.prompt.Text)
	if m.confirm.prompt.Advisory != "" {
		b.WriteString("\n")
		b.WriteString(m.styles.Advisory.Render(m.confirm.prompt.Advisory))
	}
	b.WriteString("\n\n")
	b.WriteString(m.styles.Muted.Render("y confirm · n cancel"))
	return m.styles.Overlay.Render(b.String())
}

func (m *Model) viewFooter() string {
	var parts []string
	parts = append(parts, m.styles.Muted.Render(
		fmt.Sprintf("page %d/%d · size %d", m.pager.PageNumber(), maxInt(m.meta.TotalPages(), 1), m.pager.PageSize())))
	if m.status.IsFetching && !m.status.IsLoading {
		parts = append(parts, m.styles.Muted.Render("refreshing..."))
	}
	if m.hasToast {
		if m.toast.IsError {
			parts = append(parts, m.styles.ToastErr.Render(m.toast.Text))
		} else {
			parts = append(parts, m.styles.ToastOK.Render(m.toast.Text))
		}
	}
	help := "1-4 tabs · / search · a approve · c close · H history · n new · r refresh · q quit"
	parts = append(parts, m.styles.Muted.Render(help))
	return strings.Join(parts, "  ")
}

func (v *closeFormView) view(m *Model) string {
	var b strings.Builder
	title := fmt.Sprintf("Close ticket #%d", v.ticket.TicketConcernID)
	if channel := v.channelName(); channel != "" {
		title += " · " + channel
	}
	b.WriteString(m.styles.Header.Render(title))
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render(truncate(v.ticket.ConcernDetails, 80)))
	b.WriteString("\n\n")

	b.WriteString(v.sectionLabel(m, fieldResolution, "Resolution"))
	b.WriteString("\n")
	b.WriteString(v.resolution.View())
	b.WriteString("\n")
	b.WriteString(v.sectionLabel(m, fieldNotes, "Notes"))
	b.WriteString("\n")
	b.WriteString(v.notes.View())
	b.WriteString("\n")

	b.WriteString(v.sectionLabel(m, fieldCategories, "Categories"))
	b.WriteString("\n")
	b.WriteString(v.viewOptions(m, optionRows(v.categoryOptions, v.selectedCatIDs()), v.catCursor, v.field == fieldCategories))
	b.WriteString(v.sectionLabel(m, fieldSubCategories, "Sub-categories"))
	b.WriteString("\n")
	b.WriteString(v.viewOptions(m, subOptionRows(v.subOptions, v.selectedSubIDs()), v.subCursor, v.field == fieldSubCategories))
	b.WriteString(v.sectionLabel(m, fieldTechnicians, "Technicians"))
	b.WriteString("\n")
	b.WriteString(v.viewOptions(m, technicianRows(v.technicianOptions, v.selectedTechIDs()), v.techCursor, v.field == fieldTechnicians))

	b.WriteString(v.sectionLabel(m, fieldAttachment, "Attachments"))
	b.WriteString("\n")
	for _, a := range v.form.Attachments().Entries() {
		state := "staged"
		if a.Persisted() {
			state = fmt.Sprintf("uploaded #%d", a.TicketAttachmentID)
		}
		b.WriteString(fmt.Sprintf("  %s (%s)\n", a.Name, state))
	}
	b.WriteString(v.attachPath.View())
	b.WriteString("\n\n")

	if v.loadErr != "" {
		b.WriteString(m.styles.ToastErr.Render(v.loadErr))
		b.WriteString("\n")
	}
	if lastError := v.form.LastError(); lastError != "" {
		b.WriteString(m.styles.ToastErr.Render(lastError))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Muted.Render(fmt.Sprintf(
		"state: %s · Tab next field · Space toggle · Enter attach · C-r remove file · C-s submit · Esc cancel",
		v.form.State())))
	return b.String()
}

func (v *closeFormView) sectionLabel(m *Model, field closeField, label string) string {
	if v.field == field {
		return m.styles.Header.Render("› " + label)
	}
	return m.styles.Muted.Render("  " + label)
}

type optionRow struct {
	label    string
	selected bool
}

func (v *closeFormView) viewOptions(m *Model, rows []optionRow, cursor int, focused bool) string {
	if len(rows) == 0 {
		return m.styles.Muted.Render("  (none)") + "\n"
	}
	var b strings.Builder
	for i, row := range rows {
		check := "[ ]"
		if row.selected {
			check = "[x]"
		}
		line := fmt.Sprintf("  %s %s", check, row.label)
		if focused && i == cursor {
			line = m.styles.SelectedRow.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func optionRows(options []domain.Category, selected map[int]struct{}) []optionRow {
	rows := make([]optionRow, 0, len(options))
	for _, o := range options {
		_, ok := selected[o.ID]
		rows = append(rows, optionRow{label: o.Description, selected: ok})
	}
	return rows
}

func subOptionRows(options []domain.SubCategory, selected map[int]struct{}) []optionRow {
	rows := make([]optionRow, 0, len(options))
	for _, o := range options {
		_, ok := selected[o.ID]
		rows = append(rows, optionRow{label: o.Description, selected: ok})
	}
	return rows
}

func technicianRows(options []domain.Technician, selected map[int]struct{}) []optionRow {
	rows := make([]optionRow, 0, len(options))
	for _, o := range options {
		_, ok := selected[o.ID]
		rows = append(rows, optionRow{label: o.Name, selected: ok})
	}
	return rows
}

func (v *closeFormView) selectedCatIDs() map[int]struct{} {
	out := make(map[int]struct{}, len(v.selectedCats))
	for id := range v.selectedCats {
		out[id] = struct{}{}
	}
	return out
}

func (v *closeFormView) selectedSubIDs() map[int]struct{} {
	out := make(map[int]struct{}, len(v.selectedSubs))
	for id := range v.selectedSubs {
		out[id] = struct{}{}
	}
	return out
}

func (v *closeFormView) selectedTechIDs() map[int]struct{} {
	out := make(map[int]struct{}, len(v.selectedTechs))
	for id := range v.selectedTechs {
		out[id] = struct{}{}
	}
	return out
}

func (v *intakeView) view(m *Model) string {
	var b strings.Builder
	b.WriteString(m.styles.Header.Render("New concern"))
	b.WriteString("\n\n")
	b.WriteString(v.description.View())
	b.WriteString("\n\n")
	b.WriteString(m.styles.Muted.Render("Attachments (at least one required)"))
	b.WriteString("\n")
	for _, a := range v.attachments {
		b.WriteString(fmt.Sprintf("  %s (%d bytes)\n", a.Name, a.Size))
	}
	b.WriteString(v.attachPath.View())
	b.WriteString("\n\n")
	if v.errText != "" {
		b.WriteString(m.styles.ToastErr.Render(v.errText))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Muted.Render("Tab switch field · Enter attach · C-s submit · Esc cancel"))
	return b.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 1 {
		return s[:max]
	}
	return s[:max-1] + "…"
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
