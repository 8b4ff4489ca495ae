package database

import (
	"truxtok/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Truck{},
		&models.TruckBin{},
		&models.InventoryCategory{},
		&models.InventoryItem{},
		&models.TruckInventory{},
		&models.SupplyHouse{},
		&models.Order{},
		&models.OrderItem{},
		&models.RestockOrder{},
		&models.RestockOrderItem{},
		&models.Credit{},
		&models.Activity{},
		&models.Setting{},
	)
}
