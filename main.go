package main

import (
	"fmt"
	"log"
	"truxtok/config"
	"truxtok/controllers/idgen"
	"truxtok/database"
	"truxtok/routes"

	"github.com/gofiber/fiber/v2"
)

func main() {

	config.LoadConfig()

	db, err := database.OpenConnection()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	idgen.Init()
	database.RunSeeders(db)

	app := fiber.New()

	config.SetupCORS(app)

	routes.SetupAuthRoutes(app, db)
	routes.SetupOrderRoutes(app, db)
	routes.SetupAdminOrderRoutes(app, db)
	routes.SetupRestockRoutes(app, db)
	routes.SetupInventoryRoutes(app, db)
	routes.SetupTruckRoutes(app, db)
	routes.SetupUserRoutes(app, db)
	routes.SetupSupplyHouseRoutes(app, db)
	routes.SetupSettingsRoutes(app, db)
	routes.SetupCreditRoutes(app, db)
	routes.SetupDashboardRoutes(app, db)
	routes.SetupContactRoutes(app, db)

	port := config.APP_PORT
	fmt.Println("🚀 Server listening on port " + port)

	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
