package routes

import (
	"truxtok/config"
	"truxtok/controllers"
	"truxtok/middleware"
	"truxtok/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupSupplyHouseRoutes(app *fiber.App, db *gorm.DB) {
	supplyHouseController := controllers.NewSupplyHouseController(db)

	api := app.Group(config.MAIN_ROUTES+"/admin/supply-houses",
		middleware.AuthMiddleware, middleware.RequireRole(models.RoleAdmin))
	api.Post("/", supplyHouseController.Create)
	api.Get("/", supplyHouseController.GetAll)
	api.Put("/:id", supplyHouseController.Update)
}
