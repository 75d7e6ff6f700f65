package dashboard_fx

import (
	"go.uber.org/fx"

	"voyago/internal/services"
)

var Module = fx.Provide(provideDashboardService)

func provideDashboardService() services.DashboardServiceInterface {
	return services.NewDashboardService()
}
