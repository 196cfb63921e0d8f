package domain

import "context"

type CatalogUsecase interface {
	JobTypes(ctx context.Context) []string
	Locations(ctx context.Context) []string
}
