package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/spec-kit/ticket-console/internal/domain"
)

// intakeField is the focused section of the new-concern dialog.
type intakeField int

const (
	intakeDescription intakeField = iota
	intakeAttachment
)

// intakeView is the requestor's new-concern dialog: free-text details
// plus at least one attachment before submit is allowed.
type intakeView struct {
	description textarea.Model
	attachPath  textinput.Model
	attachments []domain.Attachment
	field       intakeField
	errText     string
}

func newIntakeView() *intakeView {
	description := textarea.New()
	description.Placeholder = "describe the concern"
	description.Focus()

	attachPath := textinput.New()
	attachPath.Placeholder = "path to file, enter to attach"

	return &intakeView{
		description: description,
		attachPath:  attachPath,
	}
}

func (v *intakeView) handleKey(m *Model, msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.intake = nil
		m.focus = focusList
		return nil
	case "tab":
		if v.field == intakeDescription {
			v.field = intakeAttachment
			v.description.Blur()
			v.attachPath.Focus()
		} else {
			v.field = intakeDescription
			v.attachPath.Blur()
			v.description.Focus()
		}
		return nil
	case "ctrl+s":
		return m.submitIntakeCmd(v.description.Value(), v.attachments)
	}

	if v.field == intakeAttachment {
		if msg.String() == "enter" {
			path := v.attachPath.Value()
			if path == "" {
				return nil
			}
			return stageFileCmd(path)
		}
		var cmd tea.Cmd
		v.attachPath, cmd = v.attachPath.Update(msg)
		return cmd
	}

	var cmd tea.Cmd
	v.description, cmd = v.description.Update(msg)
	return cmd
}

func (v *intakeView) handleFile(m *Model, msg fileStagedMsg) tea.Cmd {
	if msg.err != nil {
		v.errText = msg.err.Error()
		return nil
	}
	if !domain.AllowedAttachmentName(msg.file.Name) {
		v.errText = "file type not allowed: " + msg.file.Name
		return nil
	}
	for _, a := range v.attachments {
		if a.Name == msg.file.Name {
			v.errText = "duplicate attachment: " + msg.file.Name
			return nil
		}
	}
	v.errText = ""
	v.attachments = append(v.attachments,
		domain.NewLocalAttachment(msg.file.Name, msg.file.Size, msg.file.Content))
	v.attachPath.SetValue("")
	return nil
}
