package domain

// ClosingRecord is the finalization payload submitted to close a ticket.
type ClosingRecord struct {
	TicketConcernID int
	Resolution      string
	Notes           string
	Categories      []CategorySelection
	SubCategories   []SubCategorySelection
	Technicians     []TechnicianSelection
	Attachments     []Attachment
}

// Validate enforces the closing invariants: non-empty resolution,
// non-empty category and sub-category sets, and every sub-category's
// parent present in the category selection.
func (r ClosingRecord) Validate() error {
	if r.Resolution == "" {
		return errEmptyResolution
	}
	if len(r.Categories) == 0 {
		return errNoCategories
	}
	if len(r.SubCategories) == 0 {
		return errNoSubCategories
	}
	selected := make(map[int]struct{}, len(r.Categories))
	for _, c := range r.Categories {
		selected[c.CategoryID] = struct{}{}
	}
	for _, sc := range r.SubCategories {
		if _, ok := selected[sc.CategoryID]; !ok {
			return errOrphanSubCategory
		}
	}
	return nil
}
