package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/keeperschule/booking-api/internal/domain"
	"github.com/keeperschule/booking-api/internal/repository"
)

var (
	ErrGuardianEmailExists = repository.ErrGuardianEmailExists
	ErrGuardianNotFound    = repository.ErrGuardianNotFound
	ErrWrongPassword       = errors.New("wrong password")
)

type AuthGuardianRepository interface {
	Create(ctx context.Context, guardian domain.Guardian) (domain.Guardian, error)
	FindByEmail(ctx context.Context, email string) (domain.Guardian, error)
}

type AuthService struct {
	repo AuthGuardianRepository
}

func NewAuthService(repo AuthGuardianRepository) *AuthService {
	return &AuthService{
		repo: repo,
	}
}

func (s *AuthService) Signup(ctx context.Context, guardian domain.Guardian) (domain.Guardian, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(guardian.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.Guardian{}, err
	}
	guardian.Password = string(hash)

	if guardian.Role == "" {
		guardian.Role = domain.RoleGuardian
	}

	created, err := s.repo.Create(ctx, guardian)
	if err != nil {
		return domain.Guardian{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (domain.Guardian, error) {
	guardian, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrGuardianNotFound) {
			return domain.Guardian{}, ErrGuardianNotFound
		}

		return domain.Guardian{}, fmt.Errorf("s.repo.FindByEmail -> %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(guardian.Password), []byte(password)); err != nil {
		return domain.Guardian{}, ErrWrongPassword
	}

	return guardian, nil
}
