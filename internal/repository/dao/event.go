package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrEventNotFound = errors.New("event not found")
)

type Event struct {
	ID uint `gorm:"primaryKey"`

	Kind        string `gorm:"not null;index"`
	Title       string `gorm:"not null"`
	Description string

	StartDate time.Time `gorm:"not null;index"`
	EndDate   time.Time
	StartTime string
	EndTime   string

	Price    string
	Location string

	OpenForRegistration bool `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type EventDAO struct {
	db *gorm.DB
}

func NewEventDAO(db *gorm.DB) *EventDAO {
	return &EventDAO{
		db: db,
	}
}

// FindOpenByKind returns upcoming events of one kind that are open for
// registration, ordered by start date.
func (d *EventDAO) FindOpenByKind(ctx context.Context, kind string, from time.Time) ([]Event, error) {
	var events []Event

	result := d.db.WithContext(ctx).
		Where("open_for_registration = ?", true).
		Where("kind = ?", kind).
		Where("start_date >= ?", from).
		Order("start_date").
		Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

func (d *EventDAO) FindByID(ctx context.Context, id uint) (Event, error) {
	var event Event

	result := d.db.WithContext(ctx).First(&event, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Event{}, ErrEventNotFound
		}

		return Event{}, result.Error
	}

	return event, nil
}
