package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/keeperschule/booking-api/internal/domain"
	"github.com/keeperschule/booking-api/internal/repository"
)

type fakeAuthRepo struct {
	byEmail map[string]domain.Guardian
	nextID  uint
}

func newFakeAuthRepo() *fakeAuthRepo {
	return &fakeAuthRepo{byEmail: make(map[string]domain.Guardian), nextID: 1}
}

func (f *fakeAuthRepo) Create(_ context.Context, guardian domain.Guardian) (domain.Guardian, error) {
	if _, ok := f.byEmail[guardian.Email]; ok {
		return domain.Guardian{}, repository.ErrGuardianEmailExists
	}
	guardian.ID = f.nextID
	f.nextID++
	f.byEmail[guardian.Email] = guardian
	return guardian, nil
}

func (f *fakeAuthRepo) FindByEmail(_ context.Context, email string) (domain.Guardian, error) {
	guardian, ok := f.byEmail[email]
	if !ok {
		return domain.Guardian{}, repository.ErrGuardianNotFound
	}
	return guardian, nil
}

func TestAuthService_Signup(t *testing.T) {
	svc := NewAuthService(newFakeAuthRepo())

	created, err := svc.Signup(context.Background(), domain.Guardian{
		Email:    "lena@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	assert.NotZero(t, created.ID)
	assert.Equal(t, domain.RoleGuardian, created.Role)
	assert.NotEqual(t, "s3cret-pass", created.Password, "password must be stored hashed")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("s3cret-pass")))
}

func TestAuthService_SignupDuplicateEmail(t *testing.T) {
	svc := NewAuthService(newFakeAuthRepo())

	_, err := svc.Signup(context.Background(), domain.Guardian{Email: "lena@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), domain.Guardian{Email: "lena@example.com", Password: "other-pass1"})
	assert.ErrorIs(t, err, ErrGuardianEmailExists)
}

func TestAuthService_Login(t *testing.T) {
	repo := newFakeAuthRepo()
	svc := NewAuthService(repo)

	_, err := svc.Signup(context.Background(), domain.Guardian{Email: "lena@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		guardian, err := svc.Login(context.Background(), "lena@example.com", "s3cret-pass")
		require.NoError(t, err)
		assert.Equal(t, "lena@example.com", guardian.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "lena@example.com", "wrong-pass1")
		assert.ErrorIs(t, err, ErrWrongPassword)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "nobody@example.com", "s3cret-pass")
		assert.ErrorIs(t, err, ErrGuardianNotFound)
	})
}
