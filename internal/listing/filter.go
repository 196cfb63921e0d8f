// Package listing filters, orders and pages job lists for display.
package listing

import (
	"sort"
	"strings"

	"go-jobboard-backend/internal/domain"
)

// All is the filter value that matches every type or location.
const All = "all"

const DefaultPageSize = 10

type Filters struct {
	Keyword  string
	Type     string
	Location string
}

// FilterAndSort returns the jobs matching every filter, newest first. The
// keyword is matched as given, spaces included. The input slice is not
// modified. Jobs without a creation time sort last and
// equal times keep their input order.
func FilterAndSort(jobs []domain.Job, f Filters) []domain.Job {
	keyword := strings.ToLower(f.Keyword)

	out := make([]domain.Job, 0, len(jobs))
	for _, job := range jobs {
		if !matchesKeyword(job, keyword) {
			continue
		}
		if !matchesExact(job.Type, f.Type) || !matchesExact(job.Location, f.Location) {
			continue
		}
		out = append(out, job)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].CreatedAt, out[j].CreatedAt
		if a.IsZero() {
			return false
		}
		if b.IsZero() {
			return true
		}
		return a.After(b.Time)
	})
	return out
}

func matchesKeyword(job domain.Job, keyword string) bool {
	if keyword == "" {
		return true
	}
	return strings.Contains(strings.ToLower(job.Title), keyword) ||
		strings.Contains(strings.ToLower(job.Company), keyword) ||
		strings.Contains(strings.ToLower(job.Description), keyword)
}

func matchesExact(value, filter string) bool {
	return filter == "" || filter == All || value == filter
}

// Page returns the first page*pageSize jobs. A page below 1 is treated as 1
// and a non-positive pageSize as DefaultPageSize.
func Page(jobs []domain.Job, page, pageSize int) []domain.Job {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	n := page * pageSize
	if n > len(jobs) {
		n = len(jobs)
	}
	return jobs[:n:n]
}
