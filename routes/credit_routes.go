package routes

import (
	"truxtok/config"
	"truxtok/controllers"
	"truxtok/middleware"
	"truxtok/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupCreditRoutes(app *fiber.App, db *gorm.DB) {
	creditController := controllers.NewCreditController(db)

	api := app.Group(config.MAIN_ROUTES+"/credits", middleware.AuthMiddleware)
	api.Get("/", creditController.GetMine)

	admin := app.Group(config.MAIN_ROUTES+"/admin/credits",
		middleware.AuthMiddleware, middleware.RequireRole(models.RoleAdmin))
	admin.Post("/", creditController.Create)
}
