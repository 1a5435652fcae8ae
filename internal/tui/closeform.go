package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/spec-kit/ticket-console/internal/api/dto"
	"github.com/spec-kit/ticket-console/internal/domain"
	"github.com/spec-kit/ticket-console/internal/service"
)

// closeField is the focused section of the closing dialog.
type closeField int

const (
	fieldResolution closeField = iota
	fieldNotes
	fieldCategories
	fieldSubCategories
	fieldTechnicians
	fieldAttachment
	fieldCount
)

// closeFormView is the closing dialog: text fields, the dependent
// category/sub-category pickers and the attachment list, all mirrored
// into the underlying form so the parent rule holds after every toggle.
type closeFormView struct {
	form   *service.ClosingForm
	ticket dto.ClosingTicketItem

	resolution textinput.Model
	notes      textinput.Model
	attachPath textinput.Model
	field      closeField

	categoryOptions   []domain.Category
	subOptions        []domain.SubCategory
	technicianOptions []domain.Technician
	channels          []domain.Channel

	selectedCats  map[int]domain.CategorySelection
	selectedSubs  map[int]domain.SubCategorySelection
	selectedTechs map[int]domain.TechnicianSelection

	catCursor  int
	subCursor  int
	techCursor int

	loadErr string
}

func newCloseFormView(form *service.ClosingForm, ticket dto.ClosingTicketItem) *closeFormView {
	resolution := textinput.New()
	resolution.Placeholder = "resolution"
	resolution.CharLimit = 500
	resolution.SetValue(ticket.Resolution)
	resolution.Focus()

	notes := textinput.New()
	notes.Placeholder = "notes (optional)"
	notes.CharLimit = 500

	attachPath := textinput.New()
	attachPath.Placeholder = "path to file, enter to attach"

	v := &closeFormView{
		form:          form,
		ticket:        ticket,
		resolution:    resolution,
		notes:         notes,
		attachPath:    attachPath,
		selectedCats:  make(map[int]domain.CategorySelection),
		selectedSubs:  make(map[int]domain.SubCategorySelection),
		selectedTechs: make(map[int]domain.TechnicianSelection),
	}

	categories := make([]domain.CategorySelection, 0, len(ticket.Categories))
	for _, c := range ticket.Categories {
		sel := domain.CategorySelection{
			TicketCategoryID: c.TicketCategoryID,
			CategoryID:       c.CategoryID,
			Description:      c.CategoryDescription,
		}
		categories = append(categories, sel)
		v.selectedCats[sel.CategoryID] = sel
	}
	subCategories := make([]domain.SubCategorySelection, 0, len(ticket.SubCategories))
	for _, sc := range ticket.SubCategories {
		sel := domain.SubCategorySelection{
			TicketSubCategoryID: sc.TicketSubCategoryID,
			SubCategoryID:       sc.SubCategoryID,
			CategoryID:          sc.CategoryID,
			Description:         sc.SubCategoryDescription,
		}
		subCategories = append(subCategories, sel)
		v.selectedSubs[sel.SubCategoryID] = sel
	}
	attachments := make([]domain.Attachment, 0, len(ticket.ClosingAttachments))
	for _, a := range ticket.ClosingAttachments {
		attachments = append(attachments, domain.NewPersistedAttachment(
			a.TicketAttachmentID, a.FileName, a.FileSize, a.Attachment))
	}
	form.Prefill(ticket.Resolution, categories, subCategories, attachments)

	return v
}

func (v *closeFormView) handleKey(m *Model, msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.closeForm = nil
		m.focus = focusList
		return nil
	case "tab":
		v.setField((v.field + 1) % fieldCount)
		return nil
	case "shift+tab":
		v.setField((v.field + fieldCount - 1) % fieldCount)
		return nil
	case "ctrl+s":
		m.confirm = &confirmState{
			prompt: v.form.ConfirmPrompt(),
			accept: m.submitCloseCmd(v.form),
		}
		m.focus = focusConfirm
		return nil
	}

	switch v.field {
	case fieldResolution:
		var cmd tea.Cmd
		v.resolution, cmd = v.resolution.Update(msg)
		v.form.SetResolution(v.resolution.Value())
		return cmd
	case fieldNotes:
		var cmd tea.Cmd
		v.notes, cmd = v.notes.Update(msg)
		v.form.SetNotes(v.notes.Value())
		return cmd
	case fieldCategories:
		return v.handleCategoryKey(m, msg)
	case fieldSubCategories:
		return v.handleSubCategoryKey(msg)
	case fieldTechnicians:
		return v.handleTechnicianKey(msg)
	case fieldAttachment:
		return v.handleAttachmentKey(m, msg)
	}
	return nil
}

func (v *closeFormView) handleCategoryKey(m *Model, msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "j", "down":
		if v.catCursor < len(v.categoryOptions)-1 {
			v.catCursor++
		}
	case "k", "up":
		if v.catCursor > 0 {
			v.catCursor--
		}
	case " ":
		if v.catCursor >= len(v.categoryOptions) {
			return nil
		}
		option := v.categoryOptions[v.catCursor]
		if _, selected := v.selectedCats[option.ID]; selected {
			delete(v.selectedCats, option.ID)
		} else {
			v.selectedCats[option.ID] = domain.CategorySelection{
				CategoryID:  option.ID,
				Description: option.Description,
			}
		}
		v.form.SetCategories(v.categorySelections())
		v.syncFromForm()
		ids := make([]int, 0, len(v.selectedCats))
		for id := range v.selectedCats {
			ids = append(ids, id)
		}
		if len(ids) == 0 {
			v.subOptions = nil
			v.form.SetSubCategoryOptions(nil)
			v.syncFromForm()
			return nil
		}
		return m.fetchSubCategoriesCmd(ids)
	}
	return nil
}

func (v *closeFormView) handleSubCategoryKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "j", "down":
		if v.subCursor < len(v.subOptions)-1 {
			v.subCursor++
		}
	case "k", "up":
		if v.subCursor > 0 {
			v.subCursor--
		}
	case " ":
		if v.subCursor >= len(v.subOptions) {
			return nil
		}
		option := v.subOptions[v.subCursor]
		if _, selected := v.selectedSubs[option.ID]; selected {
			delete(v.selectedSubs, option.ID)
		} else {
			v.selectedSubs[option.ID] = domain.SubCategorySelection{
				SubCategoryID: option.ID,
				CategoryID:    option.CategoryID,
				Description:   option.Description,
			}
		}
		v.form.SetSubCategories(v.subCategorySelections())
		v.syncFromForm()
	}
	return nil
}

func (v *closeFormView) handleTechnicianKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "j", "down":
		if v.techCursor < len(v.technicianOptions)-1 {
			v.techCursor++
		}
	case "k", "up":
		if v.techCursor > 0 {
			v.techCursor--
		}
	case " ":
		if v.techCursor >= len(v.technicianOptions) {
			return nil
		}
		option := v.technicianOptions[v.techCursor]
		if _, selected := v.selectedTechs[option.ID]; selected {
			delete(v.selectedTechs, option.ID)
		} else {
			v.selectedTechs[option.ID] = domain.TechnicianSelection{
				TechnicianID: option.ID,
				Name:         option.Name,
			}
		}
		selections := make([]domain.TechnicianSelection, 0, len(v.selectedTechs))
		for _, t := range v.technicianOptions {
			if sel, ok := v.selectedTechs[t.ID]; ok {
				selections = append(selections, sel)
			}
		}
		v.form.SetTechnicians(selections)
	}
	return nil
}

func (v *closeFormView) handleAttachmentKey(m *Model, msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		path := v.attachPath.Value()
		if path == "" {
			return nil
		}
		return stageFileCmd(path)
	case "ctrl+r":
		entries := v.form.Attachments().Entries()
		if len(entries) == 0 {
			return nil
		}
		return m.removeAttachmentCmd(v.form, entries[len(entries)-1])
	}
	var cmd tea.Cmd
	v.attachPath, cmd = v.attachPath.Update(msg)
	return cmd
}

func (v *closeFormView) handleData(m *Model, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case masterlistMsg:
		if msg.err != nil {
			v.loadErr = msg.err.Error()
			return nil
		}
		v.loadErr = ""
		v.categoryOptions = msg.categories
		if v.ticket.ChannelID != 0 {
			// The cascade starts at the ticket's channel: only its
			// categories are offered.
			scoped := v.categoryOptions[:0:0]
			for _, c := range msg.categories {
				if c.ChannelID == v.ticket.ChannelID {
					scoped = append(scoped, c)
				}
			}
			v.categoryOptions = scoped
		}
		v.technicianOptions = msg.technicians
		v.channels = msg.channels
		if len(v.selectedCats) > 0 {
			ids := make([]int, 0, len(v.selectedCats))
			for id := range v.selectedCats {
				ids = append(ids, id)
			}
			return m.fetchSubCategoriesCmd(ids)
		}
	case subCategoryOptionsMsg:
		if msg.err != nil {
			v.loadErr = msg.err.Error()
			return nil
		}
		v.loadErr = ""
		v.subOptions = msg.options
		if v.subCursor >= len(v.subOptions) {
			v.subCursor = 0
		}
		v.form.SetSubCategoryOptions(msg.options)
		v.syncFromForm()
	case fileStagedMsg:
		if msg.err != nil {
			v.loadErr = msg.err.Error()
			return nil
		}
		v.loadErr = ""
		v.form.Attachments().Stage(msg.file)
		v.attachPath.SetValue("")
	case attachmentRemovedMsg:
		if msg.err != nil {
			v.loadErr = msg.err.Error()
		}
	}
	return nil
}

// syncFromForm re-reads the selection state after the form applied the
// dependent-field rule, so the view never shows a pruned sub-category
// as selected.
func (v *closeFormView) syncFromForm() {
	record := v.form.Record()
	v.selectedSubs = make(map[int]domain.SubCategorySelection, len(record.SubCategories))
	for _, sc := range record.SubCategories {
		v.selectedSubs[sc.SubCategoryID] = sc
	}
}

func (v *closeFormView) categorySelections() []domain.CategorySelection {
	selections := make([]domain.CategorySelection, 0, len(v.selectedCats))
	for _, c := range v.categoryOptions {
		if sel, ok := v.selectedCats[c.ID]; ok {
			selections = append(selections, sel)
		}
	}
	// Prefilled selections whose category is not in the fetched option
	// list yet still count.
	if len(selections) < len(v.selectedCats) {
		seen := make(map[int]struct{}, len(selections))
		for _, sel := range selections {
			seen[sel.CategoryID] = struct{}{}
		}
		for id, sel := range v.selectedCats {
			if _, ok := seen[id]; !ok {
				selections = append(selections, sel)
			}
		}
	}
	return selections
}

func (v *closeFormView) subCategorySelections() []domain.SubCategorySelection {
	selections := make([]domain.SubCategorySelection, 0, len(v.selectedSubs))
	for _, opt := range v.subOptions {
		if sel, ok := v.selectedSubs[opt.ID]; ok {
			selections = append(selections, sel)
		}
	}
	if len(selections) < len(v.selectedSubs) {
		seen := make(map[int]struct{}, len(selections))
		for _, sel := range selections {
			seen[sel.SubCategoryID] = struct{}{}
		}
		for id, sel := range v.selectedSubs {
			if _, ok := seen[id]; !ok {
				selections = append(selections, sel)
			}
		}
	}
	return selections
}

// channelName resolves the ticket's channel label, falling back to the
// masterlist when the queue row omitted it.
func (v *closeFormView) channelName() string {
	if v.ticket.ChannelName != "" {
		return v.ticket.ChannelName
	}
	for _, ch := range v.channels {
		if ch.ID == v.ticket.ChannelID {
			return ch.Name
		}
	}
	return ""
}

func (v *closeFormView) setField(field closeField) {
	v.field = field
	v.resolution.Blur()
	v.notes.Blur()
	v.attachPath.Blur()
	switch field {
	case fieldResolution:
		v.resolution.Focus()
	case fieldNotes:
		v.notes.Focus()
	case fieldAttachment:
		v.attachPath.Focus()
	}
}
