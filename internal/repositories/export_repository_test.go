package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"voyago/internal/models/db_models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&db_models.Account{},
		&db_models.ExportRecord{},
		&db_models.Excursion{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func TestExportRepositoryPagination(t *testing.T) {
	repo := NewExportRepository(openTestDB(t))
	ctx := context.Background()

	userID := uuid.New()
	for i := 0; i < 5; i++ {
		record := &db_models.ExportRecord{
			Filename:   "informations-voyage.csv",
			ExportType: "csv",
			UserID:     userID,
		}
		require.NoError(t, repo.Insert(ctx, record))
		// Distinct created_at values so the ordering is deterministic.
		require.NoError(t, repo.(*exportRepository).db.
			Model(record).
			Update("created_at", time.Now().Unix()+int64(i)).Error)
	}

	page1, err := repo.ListAll(ctx, 1, 2)
	require.NoError(t, err)
	require.Len(t, page1, 2)

	page3, err := repo.ListAll(ctx, 3, 2)
	require.NoError(t, err)
	require.Len(t, page3, 1)

	// Newest first.
	assert.Greater(t, page1[0].CreatedAt, page1[1].CreatedAt)
	assert.Greater(t, page1[1].CreatedAt, page3[0].CreatedAt)
}

func TestExportRepositoryListByUser(t *testing.T) {
	repo := NewExportRepository(openTestDB(t))
	ctx := context.Background()

	mine := uuid.New()
	other := uuid.New()

	require.NoError(t, repo.Insert(ctx, &db_models.ExportRecord{ExportType: "csv", UserID: mine}))
	require.NoError(t, repo.Insert(ctx, &db_models.ExportRecord{ExportType: "xlsx", UserID: other}))

	records, err := repo.ListByUserId(ctx, mine.String())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "csv", records[0].ExportType)
}

func TestAccountRepositoryNotFoundIsNil(t *testing.T) {
	repo := NewAccountRepository(openTestDB(t))
	ctx := context.Background()

	account, err := repo.FindByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, account)

	account, err = repo.FindById(ctx, uuid.NewString())
	require.NoError(t, err)
	assert.Nil(t, account)
}

func TestExcursionRepositoryRoundTrip(t *testing.T) {
	repo := NewExcursionRepository(openTestDB(t))
	ctx := context.Background()

	excursion := &db_models.Excursion{
		Title:    "Trek dans les dunes de Douz",
		Location: "Douz",
		Price:    180,
		Types:    []string{"adventure", "nature"},
		GroupMin: 2,
		GroupMax: 10,
	}
	require.NoError(t, repo.Insert(ctx, excursion))

	found, err := repo.FindById(ctx, excursion.ID.String())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, []string{"adventure", "nature"}, []string(found.Types))

	require.NoError(t, repo.Delete(ctx, excursion.ID.String()))
	found, err = repo.FindById(ctx, excursion.ID.String())
	require.NoError(t, err)
	assert.Nil(t, found)
}
