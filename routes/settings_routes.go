package routes

import (
	"truxtok/config"
	"truxtok/controllers"
	"truxtok/middleware"
	"truxtok/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupSettingsRoutes(app *fiber.App, db *gorm.DB) {
	settingsController := controllers.NewSettingsController(db)

	api := app.Group(config.MAIN_ROUTES+"/admin/settings",
		middleware.AuthMiddleware, middleware.RequireRole(models.RoleAdmin))
	api.Get("/", settingsController.GetAll)
	api.Put("/", settingsController.Update)
}
