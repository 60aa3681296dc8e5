package service

import (
	"context"
	"fmt"

	"github.com/keeperschule/booking-api/internal/domain"
)

type GuardianRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Guardian, error)
	UpdateContact(ctx context.Context, id uint, contactName, phone string) (domain.Guardian, error)
}

type GuardianService struct {
	repo GuardianRepository
}

func NewGuardianService(repo GuardianRepository) *GuardianService {
	return &GuardianService{
		repo: repo,
	}
}

func (s *GuardianService) GetGuardian(ctx context.Context, id uint) (domain.Guardian, error) {
	guardian, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Guardian{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return guardian, nil
}

func (s *GuardianService) UpdateContact(ctx context.Context, id uint, contactName, phone string) (domain.Guardian, error) {
	guardian, err := s.repo.UpdateContact(ctx, id, contactName, phone)
	if err != nil {
		return domain.Guardian{}, fmt.Errorf("s.repo.UpdateContact -> %w", err)
	}

	return guardian, nil
}
