// Package memory holds the non-authoritative in-memory job list used in local
// mode and as the offline fallback.
package memory

import (
	"sync"

	"go-jobboard-backend/internal/domain"
)

type JobStore struct {
	mu      sync.RWMutex
	initial []domain.Job
	jobs    []domain.Job
}

// NewJobStore copies initial; Reset restores it.
func NewJobStore(initial []domain.Job) *JobStore {
	s := &JobStore{initial: append([]domain.Job(nil), initial...)}
	s.Reset()
	return s
}

// List returns a copy in store order.
func (s *JobStore) List() []domain.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Job(nil), s.jobs...)
}

// Prepend puts job at the head of the list, where new posts are shown.
func (s *JobStore) Prepend(job domain.Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs = append([]domain.Job{job}, s.jobs...)
}

func (s *JobStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.jobs)
}

func (s *JobStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs = append([]domain.Job(nil), s.initial...)
}
