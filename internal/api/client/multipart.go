package client

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"strconv"

	"github.com/spec-kit/ticket-console/internal/domain"
)

// MultipartPayload builds a multipart/form-data body using the
// backend's indexed array-field naming (Field[i].subfield). Parts are
// written in insertion order, so encodings are deterministic.
type MultipartPayload struct {
	buf    bytes.Buffer
	writer *multipart.Writer
	err    error
}

// NewMultipartPayload creates an empty payload.
func NewMultipartPayload() *MultipartPayload {
	payload := &MultipartPayload{}
	payload.writer = multipart.NewWriter(&payload.buf)
	return payload
}

// SetField appends a plain form field.
func (p *MultipartPayload) SetField(name, value string) {
	if p.err != nil {
		return
	}
	p.err = p.writer.WriteField(name, value)
}

// AddFile appends a file part carrying the staged attachment content.
func (p *MultipartPayload) AddFile(name, filename string, content []byte) {
	if p.err != nil {
		return
	}
	part, err := p.writer.CreateFormFile(name, filename)
	if err != nil {
		p.err = err
		return
	}
	_, p.err = part.Write(content)
}

// Encode finalizes the payload and returns the body and content type.
func (p *MultipartPayload) Encode() ([]byte, string, error) {
	if p.err != nil {
		return nil, "", p.err
	}
	if err := p.writer.Close(); err != nil {
		return nil, "", err
	}
	return p.buf.Bytes(), p.writer.FormDataContentType(), nil
}

// EncodeClosingForm builds the closing mutation body. Empty repeated
// collections still send a single placeholder entry with empty values,
// including the ticketAttachmentId key the category placeholder uses —
// the backend depends on the exact shape, so it is preserved as-is.
func EncodeClosingForm(record domain.ClosingRecord) *MultipartPayload {
	payload := NewMultipartPayload()

	payload.SetField("TicketConcernId", strconv.Itoa(record.TicketConcernID))
	payload.SetField("Resolution", record.Resolution)
	payload.SetField("Notes", record.Notes)

	for i, category := range record.Categories {
		payload.SetField(fmt.Sprintf("ClosingTicketCategories[%d].ticketCategoryId", i), "")
		payload.SetField(fmt.Sprintf("ClosingTicketCategories[%d].categoryId", i), strconv.Itoa(category.CategoryID))
	}
	if len(record.Categories) == 0 {
		payload.SetField("ClosingTicketCategories[0].ticketAttachmentId", "")
		payload.SetField("ClosingTicketCategories[0].categoryId", "")
	}

	for i, subCategory := range record.SubCategories {
		payload.SetField(fmt.Sprintf("ClosingSubTicketCategories[%d].ticketSubCategoryId", i), "")
		payload.SetField(fmt.Sprintf("ClosingSubTicketCategories[%d].subCategoryId", i), strconv.Itoa(subCategory.SubCategoryID))
	}
	if len(record.SubCategories) == 0 {
		payload.SetField("ClosingSubTicketCategories[0].ticketSubCategoryId", "")
		payload.SetField("ClosingSubTicketCategories[0].subCategoryId", "")
	}

	for i, technician := range record.Technicians {
		payload.SetField(fmt.Sprintf("AddClosingTicketTechnicians[%d].ticketTechnicianId", i), "")
		payload.SetField(fmt.Sprintf("AddClosingTicketTechnicians[%d].technician_By", i), strconv.Itoa(technician.TechnicianID))
	}
	if len(record.Technicians) == 0 {
		payload.SetField("AddClosingTicketTechnicians[0].ticketTechnicianId", "")
		payload.SetField("AddClosingTicketTechnicians[0].technician_By", "")
	}

	for i, attachment := range record.Attachments {
		id := ""
		if attachment.TicketAttachmentID != 0 {
			// Re-upload flow: the original server id rides along so the
			// backend updates in place instead of duplicating.
			id = strconv.Itoa(attachment.TicketAttachmentID)
		}
		payload.SetField(fmt.Sprintf("AddClosingAttachments[%d].ticketAttachmentId", i), id)
		payload.AddFile(fmt.Sprintf("AddClosingAttachments[%d].attachment", i), attachment.Name, attachment.Content)
	}
	if len(record.Attachments) == 0 {
		payload.SetField("AddClosingAttachments[0].ticketAttachmentId", "")
		payload.SetField("AddClosingAttachments[0].attachment", "")
	}

	return payload
}

// EncodeConcernForm builds the concern intake body.
func EncodeConcernForm(concern domain.Concern) *MultipartPayload {
	payload := NewMultipartPayload()

	payload.SetField("Concern", concern.Description)
	if concern.RequestConcernID != 0 {
		payload.SetField("RequestConcernId", strconv.Itoa(concern.RequestConcernID))
	}

	for i, attachment := range concern.Attachments {
		id := ""
		if attachment.TicketAttachmentID != 0 {
			id = strconv.Itoa(attachment.TicketAttachmentID)
		}
		payload.SetField(fmt.Sprintf("RequestAttachmentsFiles[%d].ticketAttachmentId", i), id)
		payload.AddFile(fmt.Sprintf("RequestAttachmentsFiles[%d].attachment", i), attachment.Name, attachment.Content)
	}

	return payload
}
