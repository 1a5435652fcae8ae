package dto

import (
	"net/url"
	"strconv"
)

// PagedQuery captures the list-endpoint query parameters every
// paginated view sends.
type PagedQuery struct {
	Search     string
	PageNumber int
	PageSize   int
}

// Values encodes the query the way the backend expects. Empty search is
// skipped, matching the browser client's skipNull serialization.
func (q PagedQuery) Values() url.Values {
	values := url.Values{}
	if q.Search != "" {
		values.Set("Search", q.Search)
	}
	values.Set("PageNumber", strconv.Itoa(q.PageNumber))
	values.Set("PageSize", strconv.Itoa(q.PageSize))
	return values
}

// PageMeta is the paging envelope every list response carries.
type PageMeta struct {
	TotalCount  int `json:"totalCount"`
	CurrentPage int `json:"currentPage"`
	PageSize    int `json:"pageSize"`
}

// TotalPages derives the page count from the envelope.
func (m PageMeta) TotalPages() int {
	if m.PageSize <= 0 {
		return 0
	}
	pages := m.TotalCount / m.PageSize
	if m.TotalCount%m.PageSize != 0 {
		pages++
	}
	return pages
}

// ErrorBody is the structured error payload mutations reject with.
type ErrorBody struct {
	Message string `json:"message"`
}

// ErrorEnvelope is the error response shape; Message is surfaced to the
// user verbatim.
type ErrorEnvelope struct {
	Error ErrorBody `json:"error"`
}
