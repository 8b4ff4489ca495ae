package routes

import (
	"truxtok/config"
	"truxtok/controllers"
	"truxtok/middleware"
	"truxtok/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupTruckRoutes(app *fiber.App, db *gorm.DB) {
	truckController := controllers.NewTruckController(db)

	api := app.Group(config.MAIN_ROUTES+"/trucks", middleware.AuthMiddleware)
	api.Get("/", truckController.GetMine)

	admin := app.Group(config.MAIN_ROUTES+"/admin/trucks",
		middleware.AuthMiddleware, middleware.RequireRole(models.RoleAdmin))
	admin.Post("/", truckController.Create)
	admin.Get("/", truckController.GetAll)
	admin.Put("/:id", truckController.Update)
	admin.Post("/:id/bins", truckController.CreateBin)
	admin.Get("/:id/bins", truckController.GetBins)
}
