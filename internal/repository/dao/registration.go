package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrHeaderExists          = errors.New("registration header already exists")
	ErrHeaderNotFound        = errors.New("registration header not found")
	ErrParticipationExists   = errors.New("participation record already exists")
	ErrParticipationNotFound = errors.New("participation record not found")
)

type RegistrationHeader struct {
	ID uint `gorm:"primaryKey"`

	EventID   uint `gorm:"not null;uniqueIndex:idx_headers_event_guardian"`
	CreatorID uint `gorm:"not null;uniqueIndex:idx_headers_event_guardian"`

	// Guardian contact at the time the header was created.
	ContactName  string
	ContactEmail string
	ContactPhone string

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type ParticipationRecord struct {
	ID uint `gorm:"primaryKey"`

	HeaderID uint `gorm:"not null;uniqueIndex:idx_participations_header_keeper"`
	KeeperID uint `gorm:"not null;uniqueIndex:idx_participations_header_keeper"`

	Status string `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// ParticipationStatusUpdate is one queued status write keyed by record id.
type ParticipationStatusUpdate struct {
	ID     uint
	Status string
}

type RegistrationDAO struct {
	db *gorm.DB
}

func NewRegistrationDAO(db *gorm.DB) *RegistrationDAO {
	return &RegistrationDAO{
		db: db,
	}
}

// FindHeaders fetches all headers of one guardian for the given events in a
// single read.
func (d *RegistrationDAO) FindHeaders(ctx context.Context, guardianID uint, eventIDs []uint) ([]RegistrationHeader, error) {
	if len(eventIDs) == 0 {
		return nil, nil
	}

	var headers []RegistrationHeader

	result := d.db.WithContext(ctx).
		Where("creator_id = ? AND event_id IN ?", guardianID, eventIDs).
		Find(&headers)
	if result.Error != nil {
		return nil, result.Error
	}

	return headers, nil
}

// InsertHeaders creates all given headers in one batched insert. The unique
// index on (event, guardian) is a backstop; callers must look up before
// inserting.
func (d *RegistrationDAO) InsertHeaders(ctx context.Context, headers []RegistrationHeader) ([]RegistrationHeader, error) {
	if len(headers) == 0 {
		return nil, nil
	}

	result := d.db.WithContext(ctx).Create(&headers)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.UniqueViolation {
			return nil, ErrHeaderExists
		}

		return nil, result.Error
	}

	return headers, nil
}

// FindParticipations fetches all participation records belonging to the
// given headers and keepers in a single read.
func (d *RegistrationDAO) FindParticipations(ctx context.Context, headerIDs, keeperIDs []uint) ([]ParticipationRecord, error) {
	if len(headerIDs) == 0 || len(keeperIDs) == 0 {
		return nil, nil
	}

	var records []ParticipationRecord

	result := d.db.WithContext(ctx).
		Where("header_id IN ? AND keeper_id IN ?", headerIDs, keeperIDs).
		Find(&records)
	if result.Error != nil {
		return nil, result.Error
	}

	return records, nil
}

// InsertParticipations creates all given records in one batched insert.
func (d *RegistrationDAO) InsertParticipations(ctx context.Context, records []ParticipationRecord) ([]ParticipationRecord, error) {
	if len(records) == 0 {
		return nil, nil
	}

	result := d.db.WithContext(ctx).Create(&records)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.UniqueViolation {
			return nil, ErrParticipationExists
		}

		return nil, result.Error
	}

	return records, nil
}

// UpdateParticipationStatuses applies all queued status writes inside one
// transaction so the batch commits or fails as a whole.
func (d *RegistrationDAO) UpdateParticipationStatuses(ctx context.Context, updates []ParticipationStatusUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, u := range updates {
			result := tx.Model(&ParticipationRecord{}).
				Where("id = ?", u.ID).
				Update("status", u.Status)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return ErrParticipationNotFound
			}
		}

		return nil
	})
}

func (d *RegistrationDAO) FindParticipationByID(ctx context.Context, id uint) (ParticipationRecord, error) {
	var record ParticipationRecord

	result := d.db.WithContext(ctx).First(&record, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ParticipationRecord{}, ErrParticipationNotFound
		}

		return ParticipationRecord{}, result.Error
	}

	return record, nil
}

func (d *RegistrationDAO) FindHeaderByID(ctx context.Context, id uint) (RegistrationHeader, error) {
	var header RegistrationHeader

	result := d.db.WithContext(ctx).First(&header, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return RegistrationHeader{}, ErrHeaderNotFound
		}

		return RegistrationHeader{}, result.Error
	}

	return header, nil
}
