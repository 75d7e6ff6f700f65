package repositories

import (
	"context"

	"gorm.io/gorm"

	"voyago/internal/models/db_models"
)

type ExportRepository interface {
	Insert(ctx context.Context, record *db_models.ExportRecord) error
	ListAll(ctx context.Context, page int, pageSize int) ([]db_models.ExportRecord, error)
	ListByUserId(ctx context.Context, userId string) ([]db_models.ExportRecord, error)
}

type exportRepository struct {
	db *gorm.DB
}

func NewExportRepository(db *gorm.DB) ExportRepository {
	return &exportRepository{db: db}
}

func (r *exportRepository) Insert(ctx context.Context, record *db_models.ExportRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *exportRepository) ListAll(ctx context.Context, page int, pageSize int) ([]db_models.ExportRecord, error) {
	var records []db_models.ExportRecord
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&records).Error

	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *exportRepository) ListByUserId(ctx context.Context, userId string) ([]db_models.ExportRecord, error) {
	var records []db_models.ExportRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Order("created_at DESC").
		Find(&records).Error

	if err != nil {
		return nil, err
	}

	return records, nil
}
