package services

import (
	"context"

	"voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/internal/repositories"
	"voyago/pkg/utils"
)

type ExcursionServiceInterface interface {
	CreateExcursion(ctx context.Context, req request_models.CreateExcursionRequest) (*response_models.ExcursionResponse, error)
	UpdateExcursion(ctx context.Context, id string, req request_models.UpdateExcursionRequest) (*response_models.ExcursionResponse, error)
	DeleteExcursion(ctx context.Context, id string) error
	GetExcursion(ctx context.Context, id string) (*response_models.ExcursionResponse, error)
	ListExcursions(ctx context.Context) ([]response_models.ExcursionResponse, error)
}

type ExcursionService struct {
	excursionRepo repositories.ExcursionRepository
}

func NewExcursionService(excursionRepo repositories.ExcursionRepository) ExcursionServiceInterface {
	return &ExcursionService{excursionRepo: excursionRepo}
}

func (s *ExcursionService) CreateExcursion(ctx context.Context, req request_models.CreateExcursionRequest) (*response_models.ExcursionResponse, error) {
	excursion := &db_models.Excursion{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Price:       req.Price,
		Duration:    req.Duration,
		Types:       req.Types,
		Rating:      req.Rating,
		GroupMin:    req.GroupMin,
		GroupMax:    req.GroupMax,
	}

	if err := s.excursionRepo.Insert(ctx, excursion); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return toExcursionResponse(excursion), nil
}

func (s *ExcursionService) UpdateExcursion(ctx context.Context, id string, req request_models.UpdateExcursionRequest) (*response_models.ExcursionResponse, error) {
	excursion, err := s.excursionRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if excursion == nil {
		return nil, utils.ErrExcursionNotFound
	}

	if req.Title != nil {
		excursion.Title = *req.Title
	}
	if req.Description != nil {
		excursion.Description = *req.Description
	}
	if req.Location != nil {
		excursion.Location = *req.Location
	}
	if req.Price != nil {
		excursion.Price = *req.Price
	}
	if req.Duration != nil {
		excursion.Duration = *req.Duration
	}
	if req.Types != nil {
		excursion.Types = req.Types
	}
	if req.Rating != nil {
		excursion.Rating = *req.Rating
	}
	if req.GroupMin != nil {
		excursion.GroupMin = *req.GroupMin
	}
	if req.GroupMax != nil {
		excursion.GroupMax = *req.GroupMax
	}

	if excursion.GroupMin > excursion.GroupMax {
		return nil, utils.ErrInvalidInput
	}

	if err := s.excursionRepo.Update(ctx, excursion); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return toExcursionResponse(excursion), nil
}

func (s *ExcursionService) DeleteExcursion(ctx context.Context, id string) error {
	excursion, err := s.excursionRepo.FindById(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if excursion == nil {
		return utils.ErrExcursionNotFound
	}
	if err := s.excursionRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *ExcursionService) GetExcursion(ctx context.Context, id string) (*response_models.ExcursionResponse, error) {
	excursion, err := s.excursionRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if excursion == nil {
		return nil, utils.ErrExcursionNotFound
	}
	return toExcursionResponse(excursion), nil
}

func (s *ExcursionService) ListExcursions(ctx context.Context) ([]response_models.ExcursionResponse, error) {
	excursions, err := s.excursionRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ExcursionResponse, 0, len(excursions))
	for i := range excursions {
		out = append(out, *toExcursionResponse(&excursions[i]))
	}
	return out, nil
}

func toExcursionResponse(e *db_models.Excursion) *response_models.ExcursionResponse {
	return &response_models.ExcursionResponse{
		ID:          e.ID.String(),
		Title:       e.Title,
		Description: e.Description,
		Location:    e.Location,
		Price:       e.Price,
		Duration:    e.Duration,
		Types:       e.Types,
		Rating:      e.Rating,
		GroupMin:    e.GroupMin,
		GroupMax:    e.GroupMax,
	}
}
