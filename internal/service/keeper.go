package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/keeperschule/booking-api/internal/domain"
	"github.com/keeperschule/booking-api/internal/repository"
)

var (
	ErrKeeperNotFound  = repository.ErrKeeperNotFound
	ErrKeeperNotLinked = errors.New("keeper is not linked to this guardian")
)

type KeeperRepository interface {
	FindByGuardianID(ctx context.Context, guardianID uint) ([]domain.Keeper, error)
	FindByID(ctx context.Context, id uint) (domain.Keeper, error)
	IsLinked(ctx context.Context, guardianID, keeperID uint) (bool, error)
	Create(ctx context.Context, keeper domain.Keeper, link domain.Guardianship) (domain.Keeper, error)
	Update(ctx context.Context, keeper domain.Keeper) (domain.Keeper, error)
	Retire(ctx context.Context, guardianID, keeperID uint) error
}

type KeeperService struct {
	repo KeeperRepository
}

func NewKeeperService(repo KeeperRepository) *KeeperService {
	return &KeeperService{
		repo: repo,
	}
}

func (s *KeeperService) ListKeepers(ctx context.Context, guardianID uint) ([]domain.Keeper, error) {
	keepers, err := s.repo.FindByGuardianID(ctx, guardianID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByGuardianID -> %w", err)
	}

	return keepers, nil
}

// CreateKeeper persists the keeper and its guardianship link in one step so
// a keeper can never be created unowned.
func (s *KeeperService) CreateKeeper(ctx context.Context, guardianID uint, keeper domain.Keeper, relationship string, primaryContact bool) (domain.Keeper, error) {
	created, err := s.repo.Create(ctx, keeper, domain.Guardianship{
		GuardianID:     guardianID,
		Relationship:   relationship,
		PrimaryContact: primaryContact,
	})
	if err != nil {
		return domain.Keeper{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *KeeperService) UpdateKeeper(ctx context.Context, guardianID uint, keeper domain.Keeper) (domain.Keeper, error) {
	if err := s.requireLink(ctx, guardianID, keeper.ID); err != nil {
		return domain.Keeper{}, err
	}

	updated, err := s.repo.Update(ctx, keeper)
	if err != nil {
		return domain.Keeper{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// RetireKeeper soft-deletes; the keeper row survives so past registrations
// keep their participant.
func (s *KeeperService) RetireKeeper(ctx context.Context, guardianID, keeperID uint) error {
	if err := s.requireLink(ctx, guardianID, keeperID); err != nil {
		return err
	}

	if err := s.repo.Retire(ctx, guardianID, keeperID); err != nil {
		return fmt.Errorf("s.repo.Retire -> %w", err)
	}

	return nil
}

func (s *KeeperService) requireLink(ctx context.Context, guardianID, keeperID uint) error {
	linked, err := s.repo.IsLinked(ctx, guardianID, keeperID)
	if err != nil {
		return fmt.Errorf("s.repo.IsLinked -> %w", err)
	}
	if !linked {
		return ErrKeeperNotLinked
	}

	return nil
}
