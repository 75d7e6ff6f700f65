package excursion_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"voyago/internal/repositories"
	"voyago/internal/services"
)

var Module = fx.Provide(
	provideExcursionService, provideExcursionRepo)

func provideExcursionRepo(db *gorm.DB) repositories.ExcursionRepository {
	return repositories.NewExcursionRepository(db)
}

func provideExcursionService(excursionRepo repositories.ExcursionRepository) services.ExcursionServiceInterface {
	return services.NewExcursionService(excursionRepo)
}
