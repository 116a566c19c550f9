package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/declanmoran/omahonys-pub/internal/band/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// SQLite-friendly table shape; the production schema lives in migrations.
	type Band struct {
		ID        int64  `gorm:"primaryKey;column:id"`
		Name      string `gorm:"column:name"`
		Genre     string `gorm:"column:genre"`
		Date      string `gorm:"column:date"`
		Time      string `gorm:"column:time"`
		CreatedAt time.Time
		UpdatedAt time.Time
	}
	require.NoError(t, db.AutoMigrate(&Band{}))

	return db
}

func seedBand(t *testing.T, repo Repository, name, date, clock string) *model.Band {
	t.Helper()
	b := &model.Band{
		Name:  name,
		Genre: "Trad",
		Date:  date,
		Time:  clock,
	}
	require.NoError(t, repo.Create(context.Background(), b))
	return b
}

func TestRepository_CreateAndGet(t *testing.T) {
	repo := New(setupTestDB(t))
	ctx := context.Background()

	created := seedBand(t, repo, "The Dubliners Tribute", "2025-06-01", "21:00")
	assert.NotZero(t, created.ID)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "The Dubliners Tribute", got.Name)
	assert.Equal(t, "21:00", got.Time)
}

func TestRepository_NoMusicSentinelRoundTrip(t *testing.T) {
	// The placeholder record is ordinary data and survives storage untouched.
	repo := New(setupTestDB(t))
	ctx := context.Background()

	b := &model.Band{
		Name:  model.NoMusicSentinel,
		Genre: model.NoMusicSentinel,
		Date:  "2025-06-01",
		Time:  "00:00",
	}
	require.NoError(t, repo.Create(ctx, b))

	got, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, model.NoMusicSentinel, got.Name)
	assert.Equal(t, model.NoMusicSentinel, got.Genre)

	bands, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, bands, 1)
	assert.Equal(t, model.NoMusicSentinel, bands[0].Name)
}

func TestRepository_List_Order(t *testing.T) {
	repo := New(setupTestDB(t))
	ctx := context.Background()

	seedBand(t, repo, "B", "2025-06-02", "21:00")
	seedBand(t, repo, "A", "2025-06-01", "22:00")
	seedBand(t, repo, "C", "2025-06-01", "20:00")

	bands, err := repo.List(ctx)
	require.NoError(t, err)

	require.Len(t, bands, 3)
	assert.Equal(t, "C", bands[0].Name)
	assert.Equal(t, "A", bands[1].Name)
	assert.Equal(t, "B", bands[2].Name)
}

func TestRepository_Update(t *testing.T) {
	repo := New(setupTestDB(t))
	ctx := context.Background()

	t.Run("replaces the full record", func(t *testing.T) {
		created := seedBand(t, repo, "Old Name", "2025-06-01", "21:00")

		updated := &model.Band{
			ID:    created.ID,
			Name:  "New Name",
			Genre: "Rock",
			Date:  "2025-06-08",
			Time:  "22:00",
		}
		require.NoError(t, repo.Update(ctx, updated))

		got, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "New Name", got.Name)
		assert.Equal(t, "Rock", got.Genre)
		assert.Equal(t, "2025-06-08", got.Date)
	})

	t.Run("missing record", func(t *testing.T) {
		err := repo.Update(ctx, &model.Band{ID: 999, Name: "X", Genre: "Y", Date: "2025-01-01", Time: "20:00"})
		assert.ErrorIs(t, err, model.ErrBandNotFound)
	})
}

func TestRepository_Delete(t *testing.T) {
	repo := New(setupTestDB(t))
	ctx := context.Background()

	created := seedBand(t, repo, "Gone", "2025-06-01", "21:00")

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err := repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, model.ErrBandNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, created.ID), model.ErrBandNotFound)
}

func TestRepository_DeleteBefore(t *testing.T) {
	repo := New(setupTestDB(t))
	ctx := context.Background()

	seedBand(t, repo, "old", "2025-05-30", "21:00")
	kept := seedBand(t, repo, "today", "2025-06-01", "21:00")

	n, err := repo.DeleteBefore(ctx, "2025-06-01")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	bands, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, bands, 1)
	assert.Equal(t, kept.ID, bands[0].ID)
}
