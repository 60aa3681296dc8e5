package repository

import (
	"context"
	"fmt"

	"github.com/keeperschule/booking-api/internal/domain"
	"github.com/keeperschule/booking-api/internal/repository/dao"
)

var (
	ErrKeeperNotFound = dao.ErrKeeperNotFound
)

type KeeperDAO interface {
	FindByGuardianID(ctx context.Context, guardianID uint) ([]dao.Keeper, error)
	FindByID(ctx context.Context, id uint) (dao.Keeper, error)
	IsLinked(ctx context.Context, guardianID, keeperID uint) (bool, error)
	InsertWithGuardianship(ctx context.Context, keeper dao.Keeper, link dao.Guardianship) (dao.Keeper, error)
	Update(ctx context.Context, keeper dao.Keeper) (dao.Keeper, error)
	Retire(ctx context.Context, guardianID, keeperID uint) error
}

type KeeperRepository struct {
	dao KeeperDAO
}

func NewKeeperRepository(dao KeeperDAO) *KeeperRepository {
	return &KeeperRepository{
		dao: dao,
	}
}

func (r *KeeperRepository) FindByGuardianID(ctx context.Context, guardianID uint) ([]domain.Keeper, error) {
	found, err := r.dao.FindByGuardianID(ctx, guardianID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByGuardianID -> %w", err)
	}

	keepers := make([]domain.Keeper, len(found))
	for i, k := range found {
		keepers[i] = r.daoToDomain(k)
	}

	return keepers, nil
}

func (r *KeeperRepository) FindByID(ctx context.Context, id uint) (domain.Keeper, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Keeper{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *KeeperRepository) IsLinked(ctx context.Context, guardianID, keeperID uint) (bool, error) {
	linked, err := r.dao.IsLinked(ctx, guardianID, keeperID)
	if err != nil {
		return false, fmt.Errorf("r.dao.IsLinked -> %w", err)
	}

	return linked, nil
}

func (r *KeeperRepository) Create(ctx context.Context, keeper domain.Keeper, link domain.Guardianship) (domain.Keeper, error) {
	created, err := r.dao.InsertWithGuardianship(ctx, r.domainToDao(keeper), dao.Guardianship{
		GuardianID:     link.GuardianID,
		Relationship:   link.Relationship,
		PrimaryContact: link.PrimaryContact,
	})
	if err != nil {
		return domain.Keeper{}, fmt.Errorf("r.dao.InsertWithGuardianship -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *KeeperRepository) Update(ctx context.Context, keeper domain.Keeper) (domain.Keeper, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(keeper))
	if err != nil {
		return domain.Keeper{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *KeeperRepository) Retire(ctx context.Context, guardianID, keeperID uint) error {
	if err := r.dao.Retire(ctx, guardianID, keeperID); err != nil {
		return fmt.Errorf("r.dao.Retire -> %w", err)
	}

	return nil
}

func (r *KeeperRepository) domainToDao(k domain.Keeper) dao.Keeper {
	return dao.Keeper{
		ID:           k.ID,
		FirstName:    k.FirstName,
		LastName:     k.LastName,
		BirthDate:    k.BirthDate,
		Gender:       k.Gender,
		GloveSize:    k.GloveSize,
		ClothingSize: k.ClothingSize,
		Vegetarian:   k.Vegetarian,
		MedicalNotes: k.MedicalNotes,
	}
}

func (r *KeeperRepository) daoToDomain(k dao.Keeper) domain.Keeper {
	return domain.Keeper{
		ID:           k.ID,
		FirstName:    k.FirstName,
		LastName:     k.LastName,
		BirthDate:    k.BirthDate,
		Gender:       k.Gender,
		GloveSize:    k.GloveSize,
		ClothingSize: k.ClothingSize,
		Vegetarian:   k.Vegetarian,
		MedicalNotes: k.MedicalNotes,
		RetiredAt:    k.RetiredAt,
		CreatedAt:    k.CreatedAt,
		UpdatedAt:    k.UpdatedAt,
	}
}
