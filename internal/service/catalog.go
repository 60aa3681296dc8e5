package service

import (
	"context"
	"fmt"
	"time"

	"github.com/keeperschule/booking-api/internal/domain"
)

type CatalogEventRepository interface {
	FindOpenByKind(ctx context.Context, kind domain.EventKind, from time.Time) ([]domain.Event, error)
	FindByID(ctx context.Context, id uint) (domain.Event, error)
}

// CatalogService is the read-only view of upcoming, open-for-registration
// events, partitioned by kind.
type CatalogService struct {
	repo CatalogEventRepository
}

func NewCatalogService(repo CatalogEventRepository) *CatalogService {
	return &CatalogService{
		repo: repo,
	}
}

func (s *CatalogService) ListOpenEvents(ctx context.Context, kind domain.EventKind) ([]domain.Event, error) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	events, err := s.repo.FindOpenByKind(ctx, kind, from)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindOpenByKind -> %w", err)
	}

	return events, nil
}

func (s *CatalogService) GetEvent(ctx context.Context, id uint) (domain.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return event, nil
}
