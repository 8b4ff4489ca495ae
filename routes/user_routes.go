package routes

import (
	"truxtok/config"
	"truxtok/controllers"
	"truxtok/middleware"
	"truxtok/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupUserRoutes(app *fiber.App, db *gorm.DB) {
	userController := controllers.NewUserController(db)

	api := app.Group(config.MAIN_ROUTES+"/admin/users",
		middleware.AuthMiddleware, middleware.RequireRole(models.RoleAdmin))
	api.Post("/", userController.Create)
	api.Get("/", userController.GetAll)
	api.Put("/:id", userController.Update)
	api.Delete("/:id", userController.Deactivate)
}
