package routes

import (
	"truxtok/config"
	"truxtok/controllers"
	"truxtok/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupOrderRoutes(app *fiber.App, db *gorm.DB) {
	orderController := controllers.NewOrderController(db)

	api := app.Group(config.MAIN_ROUTES+"/orders", middleware.AuthMiddleware)
	api.Post("/", orderController.CreateOrder)
	api.Get("/", orderController.GetOrders)
	api.Get("/:id", orderController.GetOrderByID)
}
