package dao

import (
	"context"
	"fmt"
	"log"
	"testing"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// startPostgres spins up a throwaway postgres container and returns a
// migrated gorm handle. Callers must invoke the returned cleanup.
func startPostgres(t *testing.T) (*gorm.DB, func()) {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("could not connect to docker: %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=test",
			"POSTGRES_PASSWORD=test",
			"POSTGRES_DB=booking_test",
			"listen_addresses = '*'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err)

	dsn := fmt.Sprintf("host=localhost port=%v user=test password=test dbname=booking_test sslmode=disable",
		resource.GetPort("5432/tcp"))

	var db *gorm.DB
	err = pool.Retry(func() error {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			return err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Ping()
	})
	require.NoError(t, err)

	require.NoError(t, InitTables(db))

	cleanup := func() {
		if err := pool.Purge(resource); err != nil {
			log.Printf("could not purge resource: %v", err)
		}
	}

	return db, cleanup
}

func TestRegistrationDAO_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db, cleanup := startPostgres(t)
	defer cleanup()

	ctx := context.Background()
	d := NewRegistrationDAO(db)

	t.Run("insert and find headers", func(t *testing.T) {
		created, err := d.InsertHeaders(ctx, []RegistrationHeader{
			{EventID: 10, CreatorID: 1, ContactName: "Lena Weber", ContactEmail: "lena@example.com"},
			{EventID: 11, CreatorID: 1, ContactName: "Lena Weber", ContactEmail: "lena@example.com"},
		})
		require.NoError(t, err)
		require.Len(t, created, 2)
		assert.NotZero(t, created[0].ID)

		found, err := d.FindHeaders(ctx, 1, []uint{10, 11, 12})
		require.NoError(t, err)
		assert.Len(t, found, 2)

		none, err := d.FindHeaders(ctx, 2, []uint{10, 11})
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("duplicate header hits unique index", func(t *testing.T) {
		_, err := d.InsertHeaders(ctx, []RegistrationHeader{{EventID: 10, CreatorID: 1}})
		assert.ErrorIs(t, err, ErrHeaderExists)
	})

	t.Run("insert and update participations", func(t *testing.T) {
		headers, err := d.FindHeaders(ctx, 1, []uint{10})
		require.NoError(t, err)
		require.Len(t, headers, 1)
		headerID := headers[0].ID

		created, err := d.InsertParticipations(ctx, []ParticipationRecord{
			{HeaderID: headerID, KeeperID: 5, Status: "submitted"},
			{HeaderID: headerID, KeeperID: 6, Status: "submitted"},
		})
		require.NoError(t, err)
		require.Len(t, created, 2)

		err = d.UpdateParticipationStatuses(ctx, []ParticipationStatusUpdate{
			{ID: created[0].ID, Status: "accepted"},
			{ID: created[1].ID, Status: "cancelled"},
		})
		require.NoError(t, err)

		records, err := d.FindParticipations(ctx, []uint{headerID}, []uint{5, 6})
		require.NoError(t, err)
		require.Len(t, records, 2)
		byKeeper := map[uint]string{}
		for _, rec := range records {
			byKeeper[rec.KeeperID] = rec.Status
		}
		assert.Equal(t, "accepted", byKeeper[5])
		assert.Equal(t, "cancelled", byKeeper[6])
	})

	t.Run("duplicate participation hits unique index", func(t *testing.T) {
		headers, err := d.FindHeaders(ctx, 1, []uint{10})
		require.NoError(t, err)

		_, err = d.InsertParticipations(ctx, []ParticipationRecord{
			{HeaderID: headers[0].ID, KeeperID: 5, Status: "submitted"},
		})
		assert.ErrorIs(t, err, ErrParticipationExists)
	})

	t.Run("updating an unknown record rolls the batch back", func(t *testing.T) {
		headers, err := d.FindHeaders(ctx, 1, []uint{10})
		require.NoError(t, err)

		records, err := d.FindParticipations(ctx, []uint{headers[0].ID}, []uint{5})
		require.NoError(t, err)
		require.Len(t, records, 1)

		err = d.UpdateParticipationStatuses(ctx, []ParticipationStatusUpdate{
			{ID: records[0].ID, Status: "confirmed"},
			{ID: 99999, Status: "confirmed"},
		})
		assert.ErrorIs(t, err, ErrParticipationNotFound)

		// The valid update in the same batch must not have committed.
		after, err := d.FindParticipationByID(ctx, records[0].ID)
		require.NoError(t, err)
		assert.Equal(t, "accepted", after.Status)
	})

	t.Run("find by id misses", func(t *testing.T) {
		_, err := d.FindParticipationByID(ctx, 99999)
		assert.ErrorIs(t, err, ErrParticipationNotFound)

		_, err = d.FindHeaderByID(ctx, 99999)
		assert.ErrorIs(t, err, ErrHeaderNotFound)
	})

	t.Run("empty batches are no-ops", func(t *testing.T) {
		created, err := d.InsertHeaders(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, created)

		records, err := d.InsertParticipations(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, records)

		require.NoError(t, d.UpdateParticipationStatuses(ctx, nil))

		found, err := d.FindHeaders(ctx, 1, nil)
		require.NoError(t, err)
		assert.Empty(t, found)
	})
}
