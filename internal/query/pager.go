package query

import (
	"github.com/spec-kit/ticket-console/internal/api/dto"
	"github.com/spec-kit/ticket-console/internal/domain"
)

// Status mirrors the fetch flags every list view exposes.
type Status struct {
	IsLoading  bool
	IsFetching bool
	IsSuccess  bool
	IsError    bool
}

// Pager is the paginated query controller shared by all list pages. It
// is a pure state reducer: every mutation normalizes the page number,
// and the current request description comes out of Query(). Network
// code lives in the fetch collaborator, never here.
type Pager struct {
	search          string
	pageNumber      int
	pageSize        int
	defaultPageSize int
	queue           domain.Queue
}

// NewPager creates a controller starting at page 1 of the given queue.
func NewPager(defaultPageSize int, queue domain.Queue) *Pager {
	if defaultPageSize <= 0 {
		defaultPageSize = 5
	}
	return &Pager{
		pageNumber:      1,
		pageSize:        defaultPageSize,
		defaultPageSize: defaultPageSize,
		queue:           queue,
	}
}

// SetSearch applies a (debounced) search term. Any change resets the
// page number to 1.
func (p *Pager) SetSearch(search string) {
	if p.search == search {
		return
	}
	p.search = search
	p.pageNumber = 1
}

// SetQueue switches the active tab: page number, page size and search
// all reset.
func (p *Pager) SetQueue(queue domain.Queue) {
	if p.queue == queue {
		return
	}
	p.queue = queue
	p.pageNumber = 1
	p.pageSize = p.defaultPageSize
	p.search = ""
}

// SetPage moves to the given page, clamped to 1 at the low end.
func (p *Pager) SetPage(pageNumber int) {
	if pageNumber < 1 {
		pageNumber = 1
	}
	p.pageNumber = pageNumber
}

// SetPageSize changes the page size and resets to page 1.
func (p *Pager) SetPageSize(pageSize int) {
	if pageSize <= 0 {
		pageSize = p.defaultPageSize
	}
	if p.pageSize == pageSize {
		return
	}
	p.pageSize = pageSize
	p.pageNumber = 1
}

// Search returns the committed search term.
func (p *Pager) Search() string { return p.search }

// PageNumber returns the current page.
func (p *Pager) PageNumber() int { return p.pageNumber }

// PageSize returns the current page size.
func (p *Pager) PageSize() int { return p.pageSize }

// Queue returns the active tab.
func (p *Pager) Queue() domain.Queue { return p.queue }

// Query returns the request description for the fetch collaborator.
func (p *Pager) Query() dto.PagedQuery {
	return dto.PagedQuery{
		Search:     p.search,
		PageNumber: p.pageNumber,
		PageSize:   p.pageSize,
	}
}
