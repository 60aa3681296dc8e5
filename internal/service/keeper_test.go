package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keeperschule/booking-api/internal/domain"
)

type fakeKeeperStore struct {
	keepers map[uint]domain.Keeper
	links   map[uint]uint // keeper id -> guardian id
	nextID  uint
}

func newFakeKeeperStore() *fakeKeeperStore {
	return &fakeKeeperStore{
		keepers: make(map[uint]domain.Keeper),
		links:   make(map[uint]uint),
		nextID:  1,
	}
}

func (f *fakeKeeperStore) FindByGuardianID(_ context.Context, guardianID uint) ([]domain.Keeper, error) {
	var out []domain.Keeper
	for keeperID, owner := range f.links {
		if owner != guardianID {
			continue
		}
		k := f.keepers[keeperID]
		if k.RetiredAt == nil {
			out = append(out, k)
		}
	}
	return out, nil
}

func (f *fakeKeeperStore) FindByID(_ context.Context, id uint) (domain.Keeper, error) {
	k, ok := f.keepers[id]
	if !ok {
		return domain.Keeper{}, ErrKeeperNotFound
	}
	return k, nil
}

func (f *fakeKeeperStore) IsLinked(_ context.Context, guardianID, keeperID uint) (bool, error) {
	return f.links[keeperID] == guardianID, nil
}

func (f *fakeKeeperStore) Create(_ context.Context, keeper domain.Keeper, link domain.Guardianship) (domain.Keeper, error) {
	keeper.ID = f.nextID
	f.nextID++
	f.keepers[keeper.ID] = keeper
	f.links[keeper.ID] = link.GuardianID
	return keeper, nil
}

func (f *fakeKeeperStore) Update(_ context.Context, keeper domain.Keeper) (domain.Keeper, error) {
	if _, ok := f.keepers[keeper.ID]; !ok {
		return domain.Keeper{}, ErrKeeperNotFound
	}
	f.keepers[keeper.ID] = keeper
	return keeper, nil
}

func (f *fakeKeeperStore) Retire(_ context.Context, guardianID, keeperID uint) error {
	k, ok := f.keepers[keeperID]
	if !ok {
		return ErrKeeperNotFound
	}
	now := time.Now()
	k.RetiredAt = &now
	f.keepers[keeperID] = k
	delete(f.links, keeperID)
	return nil
}

func TestKeeperService_CreateAndList(t *testing.T) {
	svc := NewKeeperService(newFakeKeeperStore())

	created, err := svc.CreateKeeper(context.Background(), 1, domain.Keeper{
		FirstName: "Mats",
		LastName:  "Weber",
		GloveSize: "7",
	}, "mother", true)
	require.NoError(t, err)
	assert.True(t, created.Persisted())

	keepers, err := svc.ListKeepers(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, keepers, 1)
	assert.Equal(t, "Mats Weber", keepers[0].FullName())

	other, err := svc.ListKeepers(context.Background(), 2)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestKeeperService_UpdateRequiresLink(t *testing.T) {
	store := newFakeKeeperStore()
	svc := NewKeeperService(store)

	created, err := svc.CreateKeeper(context.Background(), 1, domain.Keeper{FirstName: "Mats"}, "father", false)
	require.NoError(t, err)

	created.GloveSize = "8"
	_, err = svc.UpdateKeeper(context.Background(), 2, created)
	assert.ErrorIs(t, err, ErrKeeperNotLinked)

	updated, err := svc.UpdateKeeper(context.Background(), 1, created)
	require.NoError(t, err)
	assert.Equal(t, "8", updated.GloveSize)
}

func TestKeeperService_Retire(t *testing.T) {
	store := newFakeKeeperStore()
	svc := NewKeeperService(store)

	created, err := svc.CreateKeeper(context.Background(), 1, domain.Keeper{FirstName: "Mats"}, "mother", true)
	require.NoError(t, err)

	err = svc.RetireKeeper(context.Background(), 2, created.ID)
	assert.ErrorIs(t, err, ErrKeeperNotLinked)

	err = svc.RetireKeeper(context.Background(), 1, created.ID)
	require.NoError(t, err)

	keepers, err := svc.ListKeepers(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, keepers, "retired keepers disappear from the list")

	// The row itself survives for historic registrations.
	kept, err := store.FindByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.NotNil(t, kept.RetiredAt)
}
