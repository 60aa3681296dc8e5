package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/keeperschule/booking-api/internal/domain"
	"github.com/keeperschule/booking-api/internal/repository/dao"
)

var (
	ErrEventNotFound = dao.ErrEventNotFound
)

type EventDAO interface {
	FindOpenByKind(ctx context.Context, kind string, from time.Time) ([]dao.Event, error)
	FindByID(ctx context.Context, id uint) (dao.Event, error)
}

type EventRepository struct {
	dao EventDAO
}

func NewEventRepository(dao EventDAO) *EventRepository {
	return &EventRepository{
		dao: dao,
	}
}

func (r *EventRepository) FindOpenByKind(ctx context.Context, kind domain.EventKind, from time.Time) ([]domain.Event, error) {
	found, err := r.dao.FindOpenByKind(ctx, string(kind), from)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindOpenByKind -> %w", err)
	}

	events := make([]domain.Event, len(found))
	for i, e := range found {
		events[i] = r.daoToDomain(e)
	}

	return events, nil
}

func (r *EventRepository) FindByID(ctx context.Context, id uint) (domain.Event, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *EventRepository) daoToDomain(e dao.Event) domain.Event {
	return domain.Event{
		ID:                  e.ID,
		Kind:                domain.EventKind(e.Kind),
		Title:               e.Title,
		Description:         e.Description,
		StartDate:           e.StartDate,
		EndDate:             e.EndDate,
		StartTime:           e.StartTime,
		EndTime:             e.EndTime,
		Price:               e.Price,
		Location:            e.Location,
		OpenForRegistration: e.OpenForRegistration,
		CreatedAt:           e.CreatedAt,
		UpdatedAt:           e.UpdatedAt,
	}
}
