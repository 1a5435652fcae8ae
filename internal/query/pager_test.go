package query

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/ticket-console/internal/domain"
)

func TestPagerDefaults(t *testing.T) {
	p := NewPager(5, domain.QueueTickets)
	q := p.Query()
	require.Equal(t, 1, q.PageNumber)
	require.Equal(t, 5, q.PageSize)
	require.Empty(t, q.Search)
}

func TestPagerSearchResetsPage(t *testing.T) {
	p := NewPager(5, domain.QueueTickets)
	p.SetPage(3)
	p.SetSearch("printer")
	require.Equal(t, 1, p.PageNumber())
	require.Equal(t, "printer", p.Search())
}

func TestPagerSameSearchKeepsPage(t *testing.T) {
	p := NewPager(5, domain.QueueTickets)
	p.SetSearch("printer")
	p.SetPage(3)
	p.SetSearch("printer")
	require.Equal(t, 3, p.PageNumber())
}

func TestPagerQueueSwitchResetsEverything(t *testing.T) {
	p := NewPager(5, domain.QueueTickets)
	p.SetSearch("printer")
	p.SetPageSize(25)
	p.SetPage(4)

	p.SetQueue(domain.QueueForTransfer)

	require.Equal(t, domain.QueueForTransfer, p.Queue())
	require.Equal(t, 1, p.PageNumber())
	require.Equal(t, 5, p.PageSize())
	require.Empty(t, p.Search())
}

func TestPagerSameQueueIsNoop(t *testing.T) {
	p := NewPager(5, domain.QueueTickets)
	p.SetSearch("printer")
	p.SetPage(2)
	p.SetQueue(domain.QueueTickets)
	require.Equal(t, 2, p.PageNumber())
	require.Equal(t, "printer", p.Search())
}

func TestPagerPageSizeResetsPage(t *testing.T) {
	p := NewPager(5, domain.QueueTickets)
	p.SetPage(4)
	p.SetPageSize(10)
	require.Equal(t, 1, p.PageNumber())
	require.Equal(t, 10, p.PageSize())
}

func TestPagerPageClampedToOne(t *testing.T) {
	p := NewPager(5, domain.QueueTickets)
	p.SetPage(0)
	require.Equal(t, 1, p.PageNumber())
	p.SetPage(-3)
	require.Equal(t, 1, p.PageNumber())
}

func TestDebouncerOnlyLatestFires(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)

	var mu sync.Mutex
	var fired []string
	record := func(term string) func() {
		return func() {
			mu.Lock()
			defer mu.Unlock()
			fired = append(fired, term)
		}
	}

	d.Trigger(record("p"))
	d.Trigger(record("pr"))
	d.Trigger(record("printer"))

	time.Sleep(100 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, []string{"printer"}, fired)
}

func TestDebouncerStop(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)

	var mu sync.Mutex
	count := 0
	d.Trigger(func() {
		mu.Lock()
		defer mu.Unlock()
		count++
	})
	d.Stop()

	time.Sleep(100 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	require.Zero(t, count)
}
