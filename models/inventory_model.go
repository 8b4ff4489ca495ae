package models

import (
	"time"

	"gorm.io/gorm"
)

type InventoryCategory struct {
	gorm.Model
	Name        string `json:"name" gorm:"unique"`
	Description string `json:"description"`
}

type InventoryItem struct {
	gorm.Model
	PartNumber  string  `json:"part_number" gorm:"unique;not null"`
	Name        string  `json:"name" gorm:"not null" validate:"required"`
	Description string  `json:"description"`
	CategoryID  uint    `json:"category_id"`
	UnitPrice   float64 `json:"unit_price" gorm:"default:0"`
	UnitCost    float64 `json:"unit_cost" gorm:"default:0"`
	Uom         string  `json:"uom" gorm:"default:EA"`
	CreatedBy   int     `json:"-"`
	UpdatedBy   int     `json:"-"`
}

// TruckInventory is the stock level of one item in one bin of one truck.
// The (truck, bin, item) triple is unique.
type TruckInventory struct {
	gorm.Model
	TruckID       uint       `json:"truck_id" gorm:"uniqueIndex:idx_truck_bin_item"`
	BinID         uint       `json:"bin_id" gorm:"uniqueIndex:idx_truck_bin_item"`
	ItemID        uint       `json:"inventory_item_id" gorm:"uniqueIndex:idx_truck_bin_item"`
	Quantity      int        `json:"quantity" gorm:"default:0"`
	MinQuantity   int        `json:"min_quantity" gorm:"default:0"`
	MaxQuantity   int        `json:"max_quantity" gorm:"default:0"`
	StandardLevel int        `json:"standard_level" gorm:"default:0"`
	LastRestocked *time.Time `json:"last_restocked"`
	UpdatedBy     int        `json:"-"`
}
