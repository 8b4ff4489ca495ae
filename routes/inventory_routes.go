package routes

import (
	"truxtok/config"
	"truxtok/controllers"
	"truxtok/middleware"
	"truxtok/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupInventoryRoutes(app *fiber.App, db *gorm.DB) {
	inventoryController := controllers.NewInventoryController(db)

	api := app.Group(config.MAIN_ROUTES+"/inventory", middleware.AuthMiddleware)
	api.Get("/", inventoryController.GetInventory)
	api.Post("/update", inventoryController.UpdateQuantity)
	api.Get("/excel", middleware.RequireRole(models.RoleAdmin), inventoryController.ExportExcel)
}
