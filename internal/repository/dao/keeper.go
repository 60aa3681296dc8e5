package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrKeeperNotFound = errors.New("keeper not found")
)

type Keeper struct {
	ID uint `gorm:"primaryKey"`

	FirstName    string `gorm:"not null"`
	LastName     string `gorm:"not null"`
	BirthDate    time.Time
	Gender       string
	GloveSize    string
	ClothingSize string
	Vegetarian   bool `gorm:"not null;default:false"`
	MedicalNotes string

	RetiredAt *time.Time `gorm:"index"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type Guardianship struct {
	GuardianID uint `gorm:"primaryKey;autoIncrement:false"`
	KeeperID   uint `gorm:"primaryKey;autoIncrement:false"`

	Relationship   string `gorm:"not null"`
	PrimaryContact bool   `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"not null"`
}

type KeeperDAO struct {
	db *gorm.DB
}

func NewKeeperDAO(db *gorm.DB) *KeeperDAO {
	return &KeeperDAO{
		db: db,
	}
}

// FindByGuardianID returns the guardian's keepers, excluding retired ones.
func (d *KeeperDAO) FindByGuardianID(ctx context.Context, guardianID uint) ([]Keeper, error) {
	var keepers []Keeper

	result := d.db.WithContext(ctx).
		Joins("JOIN guardianships ON guardianships.keeper_id = keepers.id").
		Where("guardianships.guardian_id = ?", guardianID).
		Where("keepers.retired_at IS NULL").
		Order("keepers.id").
		Find(&keepers)
	if result.Error != nil {
		return nil, result.Error
	}

	return keepers, nil
}

func (d *KeeperDAO) FindByID(ctx context.Context, id uint) (Keeper, error) {
	var keeper Keeper

	result := d.db.WithContext(ctx).
		Where("retired_at IS NULL").
		First(&keeper, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Keeper{}, ErrKeeperNotFound
		}

		return Keeper{}, result.Error
	}

	return keeper, nil
}

// IsLinked reports whether a live guardianship exists for (guardian, keeper).
func (d *KeeperDAO) IsLinked(ctx context.Context, guardianID, keeperID uint) (bool, error) {
	var count int64

	result := d.db.WithContext(ctx).
		Model(&Guardianship{}).
		Where("guardian_id = ? AND keeper_id = ?", guardianID, keeperID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

// InsertWithGuardianship creates the keeper and its guardianship link in one
// transaction so a keeper can never exist without a responsible guardian.
func (d *KeeperDAO) InsertWithGuardianship(ctx context.Context, keeper Keeper, link Guardianship) (Keeper, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&keeper).Error; err != nil {
			return err
		}

		link.KeeperID = keeper.ID
		return tx.Create(&link).Error
	})
	if err != nil {
		return Keeper{}, err
	}

	return keeper, nil
}

func (d *KeeperDAO) Update(ctx context.Context, keeper Keeper) (Keeper, error) {
	result := d.db.WithContext(ctx).
		Model(&Keeper{}).
		Where("id = ? AND retired_at IS NULL", keeper.ID).
		Updates(map[string]interface{}{
			"first_name":    keeper.FirstName,
			"last_name":     keeper.LastName,
			"birth_date":    keeper.BirthDate,
			"gender":        keeper.Gender,
			"glove_size":    keeper.GloveSize,
			"clothing_size": keeper.ClothingSize,
			"vegetarian":    keeper.Vegetarian,
			"medical_notes": keeper.MedicalNotes,
		})
	if result.Error != nil {
		return Keeper{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Keeper{}, ErrKeeperNotFound
	}

	return d.FindByID(ctx, keeper.ID)
}

// Retire soft-deletes the keeper and removes the guardianship link. The
// keeper row stays so registration history keeps its foreign keys.
func (d *KeeperDAO) Retire(ctx context.Context, guardianID, keeperID uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&Keeper{}).
			Where("id = ? AND retired_at IS NULL", keeperID).
			Update("retired_at", time.Now())
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrKeeperNotFound
		}

		return tx.
			Where("guardian_id = ? AND keeper_id = ?", guardianID, keeperID).
			Delete(&Guardianship{}).Error
	})
}
