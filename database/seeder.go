package database

import (
	"log"
	"truxtok/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func RunSeeders(db *gorm.DB) {
	SeedAdminUser(db)
	SeedDefaultCategory(db)
	SeedDefaultSupplyHouse(db)
	SeedSettings(db)
}

func SeedAdminUser(db *gorm.DB) {
	var existing models.User
	if err := db.Where("email = ?", "admin@truxtok.local").First(&existing).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
			if err != nil {
				log.Fatalf("Failed to hash seed password: %v", err)
			}
			admin := models.User{
				Name:     "Administrator",
				Email:    "admin@truxtok.local",
				Password: string(hashed),
				Role:     models.RoleAdmin,
				Status:   "active",
			}
			if err := db.Create(&admin).Error; err != nil {
				log.Fatalf("Failed to seed admin user: %v", err)
			}
		} else {
			log.Fatalf("Unexpected DB error: %v", err)
		}
	}
}

func SeedDefaultCategory(db *gorm.DB) {
	var existing models.InventoryCategory
	if err := db.Where("name = ?", "General").First(&existing).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			db.Create(&models.InventoryCategory{Name: "General", Description: "Default category"})
		}
	}
}

func SeedDefaultSupplyHouse(db *gorm.DB) {
	var existing models.SupplyHouse
	if err := db.Where("name = ?", "Main Supply House").First(&existing).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			db.Create(&models.SupplyHouse{Name: "Main Supply House", IsActive: true})
		}
	}
}

func SeedSettings(db *gorm.DB) {
	settings := []models.Setting{
		{Key: "commission_rate", Value: "0.05"},
		{Key: "default_urgency", Value: "normal"},
		{Key: "low_stock_high_pct", Value: "50"},
		{Key: "low_stock_medium_pct", Value: "20"},
	}

	for _, s := range settings {
		var existing models.Setting
		if err := db.Where("key = ?", s.Key).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				db.Create(&s)
			}
		}
	}
}
