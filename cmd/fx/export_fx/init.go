package export_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"voyago/internal/repositories"
	"voyago/internal/services"
)

var Module = fx.Provide(
	provideExportService, provideExportRepo)

func provideExportRepo(db *gorm.DB) repositories.ExportRepository {
	return repositories.NewExportRepository(db)
}

func provideExportService(exportRepo repositories.ExportRepository) services.ExportServiceInterface {
	return services.NewExportService(exportRepo)
}
