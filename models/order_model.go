package models

import "gorm.io/gorm"

const (
	OrderStatusPending    = "pending"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// ValidOrderStatus reports whether s is a known order status.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

type Order struct {
	gorm.Model
	OrderNumber   string      `json:"order_number" gorm:"unique"`
	TechnicianID  uint        `json:"technician_id"`
	TruckID       *uint       `json:"truck_id"`
	SupplyHouseID uint        `json:"supply_house_id"`
	Status        string      `json:"status" gorm:"default:pending"`
	Urgency       string      `json:"urgency" gorm:"default:normal"`
	Notes         string      `json:"notes"`
	TotalAmount   float64     `json:"total_amount" gorm:"default:0"`
	Items         []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	CreatedBy     int         `json:"-"`
	UpdatedBy     int         `json:"-"`
}

type OrderItem struct {
	gorm.Model
	OrderID    uint    `json:"order_id"`
	ItemID     uint    `json:"inventory_item_id"`
	BinID      *uint   `json:"bin_id"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
	Reason     string  `json:"reason"`
}
