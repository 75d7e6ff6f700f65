package services

import (
	"voyago/internal/catalog"
	"voyago/pkg/utils"
)

type CatalogServiceInterface interface {
	ListCities() []catalog.City
	ListActivities(types []string, maxPrice float64, groupSize int) []catalog.Activity
	GetActivity(id string) (catalog.Activity, error)
}

type CatalogService struct{}

func NewCatalogService() CatalogServiceInterface {
	return &CatalogService{}
}

func (s *CatalogService) ListCities() []catalog.City {
	return catalog.Cities()
}

// ListActivities applies the optional filters; zero values disable each one.
func (s *CatalogService) ListActivities(types []string, maxPrice float64, groupSize int) []catalog.Activity {
	if len(types) == 0 && maxPrice <= 0 && groupSize <= 0 {
		return catalog.Activities()
	}
	if groupSize <= 0 {
		out := catalog.FilterByTypes(types)
		if maxPrice > 0 {
			filtered := out[:0:0]
			for _, a := range out {
				if a.Price <= maxPrice {
					filtered = append(filtered, a)
				}
			}
			out = filtered
		}
		return out
	}
	return catalog.Filter(types, maxPrice, groupSize)
}

func (s *CatalogService) GetActivity(id string) (catalog.Activity, error) {
	activity, ok := catalog.ActivityByID(id)
	if !ok {
		return catalog.Activity{}, utils.ErrExcursionNotFound
	}
	return activity, nil
}
