package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"voyago/cmd/fx/account_fx"
	"voyago/cmd/fx/catalog_fx"
	"voyago/cmd/fx/chat_fx"
	"voyago/cmd/fx/controllers_fx"
	"voyago/cmd/fx/dashboard_fx"
	"voyago/cmd/fx/db_fx"
	"voyago/cmd/fx/excursion_fx"
	"voyago/cmd/fx/export_fx"
	"voyago/cmd/fx/memcache_fx"
	"voyago/internal/api/controllers"
	"voyago/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		db_fx.Module,
		memcache_fx.Module,
		chat_fx.Module,
		catalog_fx.Module,
		account_fx.Module,
		export_fx.Module,
		dashboard_fx.Module,
		excursion_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	chatController *controllers.ChatController,
	catalogController *controllers.CatalogController,
	dashboardController *controllers.DashboardController,
	exportController *controllers.ExportController,
	accountController *controllers.AccountController,
	excursionController *controllers.ExcursionController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r,
		chatController,
		catalogController,
		dashboardController,
		exportController,
		accountController,
		excursionController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	chatController *controllers.ChatController,
	catalogController *controllers.CatalogController,
	dashboardController *controllers.DashboardController,
	exportController *controllers.ExportController,
	accountController *controllers.AccountController,
	excursionController *controllers.ExcursionController) {

	v1 := r.Group("/api/v1")

	chatGroup := v1.Group("/chat/sessions")
	chatGroup.POST("", chatController.StartSession)
	chatGroup.GET("/:id", chatController.GetSession)
	chatGroup.POST("/:id/messages", chatController.SubmitAnswer)
	chatGroup.POST("/:id/activities/toggle", chatController.ToggleActivity)
	chatGroup.POST("/:id/reset", chatController.ResetSession)

	catalogGroup := v1.Group("/catalog")
	catalogGroup.GET("/cities", catalogController.ListCities)
	catalogGroup.GET("/activities", catalogController.ListActivities)
	catalogGroup.GET("/activities/:id", catalogController.GetActivity)

	v1.GET("/dashboard/:sessionId", dashboardController.GetDashboard)

	exportGroup := v1.Group("/exports")
	exportGroup.POST("", middleware.OptionalJWTMiddleware(), exportController.CreateExport)
	exportGroup.GET("", middleware.JWTAuthMiddleware(), exportController.ListMyExports)

	accountGroup := v1.Group("/accounts")
	accountGroup.POST("/register", accountController.Register)
	accountGroup.POST("/login", accountController.Login)
	accountGroup.GET("/me", middleware.JWTAuthMiddleware(), accountController.Me)

	adminGroup := v1.Group("/admin")
	adminGroup.Use(middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"))
	adminGroup.GET("/exports", exportController.ListExports)
	adminGroup.GET("/excursions", excursionController.ListExcursions)
	adminGroup.GET("/excursions/:id", excursionController.GetExcursion)
	adminGroup.POST("/excursions", excursionController.CreateExcursion)
	adminGroup.PUT("/excursions/:id", excursionController.UpdateExcursion)
	adminGroup.DELETE("/excursions/:id", excursionController.DeleteExcursion)
}
