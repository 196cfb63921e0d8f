// Package datasource persists the local/api mode preference.
package datasource

import (
	"context"
	"fmt"
	"log/slog"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/kvstore"
)

// Publisher is the part of the event bus the selector needs.
type Publisher interface {
	Publish(event string, payload any) int
}

// Selector is a domain.ModeSource backed by client storage. The stored value
// is read on every call, so a change made by another process is picked up.
type Selector struct {
	store  kvstore.Store
	bus    Publisher
	logger *slog.Logger
}

func NewSelector(store kvstore.Store, bus Publisher, logger *slog.Logger) *Selector {
	if logger == nil {
		logger = slog.Default()
	}
	return &Selector{store: store, bus: bus, logger: logger}
}

// Mode returns the stored mode; read failures fall back to the default.
func (s *Selector) Mode(ctx context.Context) domain.DataSourceMode {
	v, err := kvstore.GetString(ctx, s.store, domain.ModeStorageKey, string(domain.DefaultMode))
	if err != nil {
		s.logger.Error("Failed to get mode from storage, defaulting to local", "error", err)
		return domain.DefaultMode
	}
	return domain.ParseMode(v)
}

// Set persists mode and publishes EventModeSwitched.
func (s *Selector) Set(ctx context.Context, mode domain.DataSourceMode) error {
	if !mode.Valid() {
		return apperror.Validation(fmt.Sprintf("unknown data source mode %q", mode))
	}
	if err := s.store.Set(ctx, domain.ModeStorageKey, []byte(mode)); err != nil {
		return fmt.Errorf("datasource: save mode: %w", err)
	}
	if s.bus != nil {
		s.bus.Publish(domain.EventModeSwitched, mode)
	}
	return nil
}

// Toggle flips between local and api and returns the new mode.
func (s *Selector) Toggle(ctx context.Context) (domain.DataSourceMode, error) {
	next := domain.ModeAPI
	if s.Mode(ctx) == domain.ModeAPI {
		next = domain.ModeLocal
	}
	return next, s.Set(ctx, next)
}
