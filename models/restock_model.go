package models

import (
	"truxtok/types"

	"gorm.io/gorm"
)

type RestockOrder struct {
	gorm.Model
	ID            types.SnowflakeID `json:"ID" gorm:"primaryKey"`
	OrderNumber   string            `json:"order_number" gorm:"unique"`
	TechnicianID  uint              `json:"technician_id"`
	TruckID       uint              `json:"truck_id"`
	SupplyHouseID uint              `json:"supply_house_id"`
	Status        string            `json:"status" gorm:"default:pending"`
	CreatedBy     int               `json:"-"`
	UpdatedBy     int               `json:"-"`
}

type RestockOrderItem struct {
	gorm.Model
	RestockOrderID    types.SnowflakeID `json:"restock_order_id"`
	ItemID            uint              `json:"inventory_item_id"`
	SuggestedQuantity int               `json:"suggested_quantity"`
}
