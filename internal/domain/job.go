package domain

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"go-jobboard-backend/pkg/apperror"
)

var ErrNotFound = errors.New("resource not found")

// Job is one work opportunity. Salary, type and duration are free text.
type Job struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Company       string    `json:"company"`
	Location      string    `json:"location"`
	Salary        string    `json:"salary"`
	Type          string    `json:"type"`
	Description   string    `json:"description"`
	Duration      string    `json:"duration"`
	WorkingPeriod *string   `json:"workingPeriod,omitempty"`
	ContactPhone  *string   `json:"contactPhone,omitempty"`
	CreatedAt     Timestamp `json:"createdAt,omitzero"`
}

// JobDraft is a job prior to identifier assignment. Field order matches the
// order in which missing required fields are reported.
type JobDraft struct {
	Title         string    `json:"title" validate:"required"`
	Company       string    `json:"company" validate:"required"`
	Location      string    `json:"location" validate:"required"`
	Salary        string    `json:"salary" validate:"required"`
	Type          string    `json:"type" validate:"required"`
	Description   string    `json:"description" validate:"required"`
	Duration      string    `json:"duration" validate:"required"`
	WorkingPeriod *string   `json:"workingPeriod,omitempty"`
	ContactPhone  *string   `json:"contactPhone,omitempty"`
	CreatedAt     Timestamp `json:"createdAt,omitzero"`
}

// MinDescriptionLength is enforced by the posting form, not by the API.
const MinDescriptionLength = 10

// Validate applies the posting form rules: trimmed required fields in form
// order and a minimum description length. It runs before any network call.
func (d JobDraft) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"title", d.Title},
		{"company", d.Company},
		{"location", d.Location},
		{"type", d.Type},
		{"salary", d.Salary},
		{"duration", d.Duration},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return apperror.Validation("Missing required field: " + f.name)
		}
	}
	if utf8.RuneCountInString(strings.TrimSpace(d.Description)) < MinDescriptionLength {
		return apperror.Validation("Description must be at least 10 characters")
	}
	return nil
}

// Job builds the stored entity from the draft.
func (d JobDraft) Job(id string, createdAt Timestamp) Job {
	return Job{
		ID:            id,
		Title:         d.Title,
		Company:       d.Company,
		Location:      d.Location,
		Salary:        d.Salary,
		Type:          d.Type,
		Description:   d.Description,
		Duration:      d.Duration,
		WorkingPeriod: nonEmpty(d.WorkingPeriod),
		ContactPhone:  nonEmpty(d.ContactPhone),
		CreatedAt:     createdAt,
	}
}

// CreateResult is the body returned by the API for a successful insert.
type CreateResult struct {
	Success   bool      `json:"success"`
	ID        string    `json:"id"`
	CreatedAt Timestamp `json:"createdAt,omitzero"`
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	Fetch(ctx context.Context) ([]Job, error)
}

type JobUsecase interface {
	CreateJob(ctx context.Context, draft *JobDraft) (*Job, error)
	ListJobs(ctx context.Context) ([]Job, error)
}

func nonEmpty(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := *s
	return &v
}

// StringPtr returns nil for the empty string.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
