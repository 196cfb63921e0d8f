package listing

import (
	"context"
	"log/slog"
	"sync"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/eventbus"
)

type Loader interface {
	GetJobs(ctx context.Context) ([]domain.Job, error)
}

type Subscriber interface {
	Subscribe(event string, h eventbus.Handler) eventbus.SubscriptionID
	Unsubscribe(event string, id eventbus.SubscriptionID) bool
}

// Feed is the state behind the job list screen: the loaded jobs, the active
// filters and how many pages are shown.
type Feed struct {
	loader   Loader
	bus      Subscriber
	logger   *slog.Logger
	pageSize int

	mu      sync.Mutex
	jobs    []domain.Job
	filters Filters
	page    int
	subs    map[string]eventbus.SubscriptionID
}

func NewFeed(loader Loader, bus Subscriber, logger *slog.Logger) *Feed {
	if logger == nil {
		logger = slog.Default()
	}
	return &Feed{
		loader:   loader,
		bus:      bus,
		logger:   logger,
		pageSize: DefaultPageSize,
		page:     1,
	}
}

// Mount loads the list and reloads it whenever a job is posted or the data
// source is switched. Mounting twice is a no-op.
func (f *Feed) Mount(ctx context.Context) error {
	f.mu.Lock()
	if f.subs == nil && f.bus != nil {
		reload := func(any) {
			if err := f.Reload(context.WithoutCancel(ctx)); err != nil {
				f.logger.Warn("Failed to reload job feed", "error", err)
			}
		}
		f.subs = map[string]eventbus.SubscriptionID{
			domain.EventJobPosted:    f.bus.Subscribe(domain.EventJobPosted, reload),
			domain.EventModeSwitched: f.bus.Subscribe(domain.EventModeSwitched, reload),
		}
	}
	f.mu.Unlock()
	return f.Reload(ctx)
}

func (f *Feed) Unmount() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for event, id := range f.subs {
		f.bus.Unsubscribe(event, id)
	}
	f.subs = nil
}

func (f *Feed) Reload(ctx context.Context) error {
	jobs, err := f.loader.GetJobs(ctx)
	if err != nil {
		return err
	}
	f.mu.Lock()
	f.jobs = jobs
	f.mu.Unlock()
	return nil
}

// SetFilters replaces the filters and returns to the first page.
func (f *Feed) SetFilters(filters Filters) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.filters = filters
	f.page = 1
}

func (f *Feed) SetPageSize(n int) {
	if n <= 0 {
		n = DefaultPageSize
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pageSize = n
}

// LoadMore shows one more page if there is one.
func (f *Feed) LoadMore() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.page*f.pageSize >= len(FilterAndSort(f.jobs, f.filters)) {
		return false
	}
	f.page++
	return true
}

func (f *Feed) Visible() []domain.Job {
	f.mu.Lock()
	defer f.mu.Unlock()
	return Page(FilterAndSort(f.jobs, f.filters), f.page, f.pageSize)
}

func (f *Feed) HasMore() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.page*f.pageSize < len(FilterAndSort(f.jobs, f.filters))
}

func (f *Feed) Page() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.page
}
