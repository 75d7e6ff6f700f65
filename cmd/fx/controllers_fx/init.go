package controllers_fx

import (
	"go.uber.org/fx"

	"voyago/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewChatController),
	fx.Provide(controllers.NewCatalogController),
	fx.Provide(controllers.NewDashboardController),
	fx.Provide(controllers.NewExportController),
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewExcursionController))
