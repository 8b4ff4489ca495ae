package routes

import (
	"truxtok/config"
	"truxtok/controllers"
	"truxtok/middleware"
	"truxtok/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAdminOrderRoutes(app *fiber.App, db *gorm.DB) {
	orderController := controllers.NewOrderController(db)
	adminOrderController := controllers.NewAdminOrderController(db)

	api := app.Group(config.MAIN_ROUTES+"/admin/orders",
		middleware.AuthMiddleware, middleware.RequireRole(models.RoleAdmin))
	api.Get("/", orderController.GetOrders)
	api.Get("/export", adminOrderController.ExportOrders)
	api.Post("/:id/confirm", adminOrderController.ConfirmOrder)
	api.Put("/:id/status", adminOrderController.UpdateStatus)
}
