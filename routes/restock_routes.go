package routes

import (
	"truxtok/config"
	"truxtok/controllers"
	"truxtok/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRestockRoutes(app *fiber.App, db *gorm.DB) {
	restockController := controllers.NewRestockController(db)

	api := app.Group(config.MAIN_ROUTES+"/technician/restock", middleware.AuthMiddleware)
	api.Get("/", restockController.GetSuggestions)
	api.Post("/", restockController.SubmitRestock)
}
