package routes

import (
	"truxtok/config"
	"truxtok/controllers"
	"truxtok/middleware"
	"truxtok/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupDashboardRoutes(app *fiber.App, db *gorm.DB) {
	dashboardController := controllers.NewDashboardController(db)

	api := app.Group(config.MAIN_ROUTES+"/admin/dashboard",
		middleware.AuthMiddleware, middleware.RequireRole(models.RoleAdmin))
	api.Get("/", dashboardController.GetSummary)
}
