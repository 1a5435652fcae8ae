package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// AttachmentState tags the two identities an attachment moves through:
// name-keyed while staged locally, id-keyed once the server confirms the
// upload. The transition happens exactly once.
type AttachmentState int

const (
	AttachmentLocal AttachmentState = iota
	AttachmentPersisted
)

// Attachment is owned by exactly one concern or closing record at a
// time. Local attachments carry the file content; persisted ones carry
// the server id and download link instead.
type Attachment struct {
	State              AttachmentState
	TicketAttachmentID int
	Name               string
	Size               int64
	Link               string
	Content            []byte
}

// NewLocalAttachment stages a file that has not been uploaded yet.
func NewLocalAttachment(name string, size int64, content []byte) Attachment {
	return Attachment{State: AttachmentLocal, Name: name, Size: size, Content: content}
}

// NewPersistedAttachment wraps a server-confirmed attachment.
func NewPersistedAttachment(id int, name string, size int64, link string) Attachment {
	return Attachment{State: AttachmentPersisted, TicketAttachmentID: id, Name: name, Size: size, Link: link}
}

// Persisted reports whether the server id is authoritative for this
// attachment.
func (a Attachment) Persisted() bool {
	return a.State == AttachmentPersisted
}

// Key returns the identity key: the server id once persisted, the
// display name before that.
func (a Attachment) Key() string {
	if a.Persisted() {
		return fmt.Sprintf("id:%d", a.TicketAttachmentID)
	}
	return "name:" + a.Name
}

// allowedExtensions lists the file types the workflow accepts.
var allowedExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".docx": {},
	".pdf":  {},
}

// AllowedAttachmentName reports whether the file extension is accepted.
// Every add path re-validates, including ones the picker already
// filtered.
func AllowedAttachmentName(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	_, ok := allowedExtensions[ext]
	return ok
}
