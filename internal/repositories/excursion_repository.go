package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"voyago/internal/models/db_models"
)

type ExcursionRepository interface {
	Insert(ctx context.Context, excursion *db_models.Excursion) error
	Update(ctx context.Context, excursion *db_models.Excursion) error
	Delete(ctx context.Context, id string) error
	FindById(ctx context.Context, id string) (*db_models.Excursion, error)
	ListAll(ctx context.Context) ([]db_models.Excursion, error)
}

type excursionRepository struct {
	db *gorm.DB
}

func NewExcursionRepository(db *gorm.DB) ExcursionRepository {
	return &excursionRepository{db: db}
}

func (r *excursionRepository) Insert(ctx context.Context, excursion *db_models.Excursion) error {
	return r.db.WithContext(ctx).Create(excursion).Error
}

func (r *excursionRepository) Update(ctx context.Context, excursion *db_models.Excursion) error {
	return r.db.WithContext(ctx).Save(excursion).Error
}

func (r *excursionRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&db_models.Excursion{}, "id = ?", id).Error
}

func (r *excursionRepository) FindById(ctx context.Context, id string) (*db_models.Excursion, error) {
	var excursion db_models.Excursion
	err := r.db.WithContext(ctx).First(&excursion, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &excursion, nil
}

func (r *excursionRepository) ListAll(ctx context.Context) ([]db_models.Excursion, error) {
	var excursions []db_models.Excursion
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&excursions).Error
	if err != nil {
		return nil, err
	}
	return excursions, nil
}
