package usecase

import (
	"context"

	"go-jobboard-backend/internal/domain"
)

type catalogUsecase struct {
	jobTypes  func() []string
	locations func() []string
}

func NewCatalogUsecase(jobTypes, locations func() []string) domain.CatalogUsecase {
	return &catalogUsecase{jobTypes: jobTypes, locations: locations}
}

func (u *catalogUsecase) JobTypes(ctx context.Context) []string {
	return u.jobTypes()
}

func (u *catalogUsecase) Locations(ctx context.Context) []string {
	return u.locations()
}
