package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrGuardianEmailExists = errors.New("guardian already exists")
	ErrGuardianNotFound    = errors.New("guardian not found")
)

type Guardian struct {
	ID uint `gorm:"primaryKey"`

	Email    string `gorm:"unique;not null"`
	Password string `gorm:"not null"`

	Role        string `gorm:"not null"` // "guardian" or "admin"
	ContactName string
	Phone       string

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type GuardianDAO struct {
	db *gorm.DB
}

func NewGuardianDAO(db *gorm.DB) *GuardianDAO {
	return &GuardianDAO{
		db: db,
	}
}

func (d *GuardianDAO) Insert(ctx context.Context, guardian Guardian) (Guardian, error) {
	result := d.db.WithContext(ctx).Create(&guardian)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) &&
			err.Code == pgerrcode.UniqueViolation &&
			strings.Contains(err.Message, `unique constraint "uni_guardians_email"`) {
			return Guardian{}, ErrGuardianEmailExists
		}

		return Guardian{}, result.Error
	}

	return guardian, nil
}

func (d *GuardianDAO) FindByID(ctx context.Context, id uint) (Guardian, error) {
	var guardian Guardian

	result := d.db.WithContext(ctx).First(&guardian, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Guardian{}, ErrGuardianNotFound
		}

		return Guardian{}, result.Error
	}

	return guardian, nil
}

func (d *GuardianDAO) FindByEmail(ctx context.Context, email string) (Guardian, error) {
	var guardian Guardian

	result := d.db.WithContext(ctx).First(&guardian, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Guardian{}, ErrGuardianNotFound
		}

		return Guardian{}, result.Error
	}

	return guardian, nil
}

func (d *GuardianDAO) UpdateContact(ctx context.Context, id uint, contactName, phone string) (Guardian, error) {
	result := d.db.WithContext(ctx).
		Model(&Guardian{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"contact_name": contactName,
			"phone":        phone,
		})
	if result.Error != nil {
		return Guardian{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Guardian{}, ErrGuardianNotFound
	}

	return d.FindByID(ctx, id)
}
