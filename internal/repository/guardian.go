package repository

import (
	"context"
	"fmt"

	"github.com/keeperschule/booking-api/internal/domain"
	"github.com/keeperschule/booking-api/internal/repository/dao"
)

var (
	ErrGuardianEmailExists = dao.ErrGuardianEmailExists
	ErrGuardianNotFound    = dao.ErrGuardianNotFound
)

type GuardianDAO interface {
	Insert(ctx context.Context, guardian dao.Guardian) (dao.Guardian, error)
	FindByID(ctx context.Context, id uint) (dao.Guardian, error)
	FindByEmail(ctx context.Context, email string) (dao.Guardian, error)
	UpdateContact(ctx context.Context, id uint, contactName, phone string) (dao.Guardian, error)
}

type GuardianRepository struct {
	dao GuardianDAO
}

func NewGuardianRepository(dao GuardianDAO) *GuardianRepository {
	return &GuardianRepository{
		dao: dao,
	}
}

func (r *GuardianRepository) Create(ctx context.Context, guardian domain.Guardian) (domain.Guardian, error) {
	created, err := r.dao.Insert(ctx, dao.Guardian{
		Email:       guardian.Email,
		Password:    guardian.Password,
		Role:        guardian.Role,
		ContactName: guardian.ContactName,
		Phone:       guardian.Phone,
	})
	if err != nil {
		return domain.Guardian{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *GuardianRepository) FindByID(ctx context.Context, id uint) (domain.Guardian, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Guardian{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *GuardianRepository) FindByEmail(ctx context.Context, email string) (domain.Guardian, error) {
	found, err := r.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.Guardian{}, fmt.Errorf("r.dao.FindByEmail -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *GuardianRepository) UpdateContact(ctx context.Context, id uint, contactName, phone string) (domain.Guardian, error) {
	updated, err := r.dao.UpdateContact(ctx, id, contactName, phone)
	if err != nil {
		return domain.Guardian{}, fmt.Errorf("r.dao.UpdateContact -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *GuardianRepository) daoToDomain(g dao.Guardian) domain.Guardian {
	return domain.Guardian{
		ID:          g.ID,
		Email:       g.Email,
		Password:    g.Password,
		Role:        g.Role,
		ContactName: g.ContactName,
		Phone:       g.Phone,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}
