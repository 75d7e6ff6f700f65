package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"voyago/internal/models/db_models"
	"voyago/internal/repositories"
	"voyago/pkg/utils"
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

func newTestExportService(t *testing.T) (ExportServiceInterface, *gorm.DB) {
	db := openTestDB(t)
	return NewExportService(repositories.NewExportRepository(db)), db
}

func TestExportRequiresCompletedChat(t *testing.T) {
	svc, _ := newTestExportService(t)

	p := completedPreferences()
	p.ChatCompleted = false

	_, err := svc.ExportPreferences(context.Background(), p, ExportFormatCSV, ExportUser{})
	assert.ErrorIs(t, err, utils.ErrChatNotCompleted)
}

func TestExportRejectsUnknownFormat(t *testing.T) {
	svc, _ := newTestExportService(t)

	_, err := svc.ExportPreferences(context.Background(), completedPreferences(), "pdf", ExportUser{})
	assert.ErrorIs(t, err, utils.ErrUnsupportedFormat)
}

func TestExportCSV(t *testing.T) {
	svc, _ := newTestExportService(t)

	file, err := svc.ExportPreferences(context.Background(), completedPreferences(), ExportFormatCSV, ExportUser{})
	require.NoError(t, err)

	assert.Equal(t, "informations-voyage.csv", file.Filename)
	assert.Equal(t, "text/csv; charset=utf-8", file.ContentType)
	assert.Empty(t, file.Warning)

	rows, err := csv.NewReader(bytes.NewReader(file.Content)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, exportHeaders, rows[0])
	assert.Equal(t, []string{
		"Amine",
		"amine@example.com",
		"douz,tozeur",
		"cultural, nature, gastronomy",
		"50€ - 100€",
		"4",
		"01 octobre 2026",
		"05 octobre 2026",
		"Excursion à Chefchaouen, Tour culinaire de Tanger",
		"Pas d'exigences particulières",
	}, rows[1])
}

func TestExportXLSX(t *testing.T) {
	svc, _ := newTestExportService(t)

	file, err := svc.ExportPreferences(context.Background(), completedPreferences(), ExportFormatXLSX, ExportUser{})
	require.NoError(t, err)

	assert.Equal(t, "informations-voyage.xlsx", file.Filename)
	require.NotEmpty(t, file.Content)

	wb, err := excelize.OpenReader(bytes.NewReader(file.Content))
	require.NoError(t, err)
	defer wb.Close()

	assert.Contains(t, wb.GetSheetList(), exportSheet)

	header, err := wb.GetCellValue(exportSheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Nom", header)

	name, err := wb.GetCellValue(exportSheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "Amine", name)
}

func TestExportRecordsAuthenticatedDownloads(t *testing.T) {
	svc, db := newTestExportService(t)

	user := ExportUser{ID: uuid.New(), Name: "Amine", Email: "amine@example.com"}
	_, err := svc.ExportPreferences(context.Background(), completedPreferences(), ExportFormatCSV, user)
	require.NoError(t, err)

	var records []db_models.ExportRecord
	require.NoError(t, db.Find(&records).Error)
	require.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, user.ID, r.UserID)
	assert.Equal(t, "csv", r.ExportType)
	assert.Equal(t, "informations-voyage.csv", r.Filename)
	assert.Equal(t, "douz,tozeur", r.SelectedCity)
	assert.Equal(t, "50€ - 100€", r.Budget)
	assert.Contains(t, string(r.ExportData), `"name":"Amine"`)
}

func TestExportAnonymousIsNotRecorded(t *testing.T) {
	svc, db := newTestExportService(t)

	_, err := svc.ExportPreferences(context.Background(), completedPreferences(), ExportFormatXLSX, ExportUser{})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&db_models.ExportRecord{}).Count(&count).Error)
	assert.Zero(t, count)
}

type failingExportRepo struct{}

func (failingExportRepo) Insert(context.Context, *db_models.ExportRecord) error {
	return errors.New("connection refused")
}

func (failingExportRepo) ListAll(context.Context, int, int) ([]db_models.ExportRecord, error) {
	return nil, errors.New("connection refused")
}

func (failingExportRepo) ListByUserId(context.Context, string) ([]db_models.ExportRecord, error) {
	return nil, errors.New("connection refused")
}

func TestExportSucceedsWithWarningWhenRecordFails(t *testing.T) {
	svc := NewExportService(failingExportRepo{})

	user := ExportUser{ID: uuid.New(), Name: "Amine", Email: "amine@example.com"}
	file, err := svc.ExportPreferences(context.Background(), completedPreferences(), ExportFormatCSV, user)
	require.NoError(t, err)
	assert.NotEmpty(t, file.Content)
	assert.NotEmpty(t, file.Warning)
}

func TestListExports(t *testing.T) {
	svc, _ := newTestExportService(t)

	userA := ExportUser{ID: uuid.New(), Name: "Amine", Email: "amine@example.com"}
	userB := ExportUser{ID: uuid.New(), Name: "Lina", Email: "lina@example.com"}

	ctx := context.Background()
	_, err := svc.ExportPreferences(ctx, completedPreferences(), ExportFormatCSV, userA)
	require.NoError(t, err)
	_, err = svc.ExportPreferences(ctx, completedPreferences(), ExportFormatXLSX, userB)
	require.NoError(t, err)

	all, err := svc.ListExports(ctx, 1, 20)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := svc.ListExportsByUser(ctx, userA.ID.String())
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Amine", mine[0].UserName)
	assert.Equal(t, "csv", mine[0].ExportType)
}
