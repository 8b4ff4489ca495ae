package routes

import (
	"truxtok/config"
	"truxtok/controllers"
	"truxtok/middleware"
	"truxtok/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupContactRoutes(app *fiber.App, db *gorm.DB) {
	contactController := controllers.NewContactController(db)

	api := app.Group(config.MAIN_ROUTES+"/admin/contact",
		middleware.AuthMiddleware, middleware.RequireRole(models.RoleAdmin))
	api.Post("/", contactController.ContactTechnician)
}
