package repositories

import (
	"errors"
	"fmt"
	"strconv"
	"time"
	"truxtok/models"

	"gorm.io/gorm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

type OrderDetail struct {
	OrderID         uint    `json:"order_id"`
	OrderNumber     string  `json:"order_number"`
	TechnicianID    uint    `json:"technician_id"`
	TechnicianName  string  `json:"technician_name"`
	TruckID         *uint   `json:"truck_id"`
	TruckNumber     *string `json:"truck_number"`
	SupplyHouseID   uint    `json:"supply_house_id"`
	SupplyHouseName string  `json:"supply_house_name"`
	Status          string  `json:"status"`
	Urgency         string  `json:"urgency"`
	Notes           string  `json:"notes"`
	TotalAmount     float64 `json:"total_amount"`
	CreatedAt       string  `json:"created_at"`
}

type OrderItemDetail struct {
	OrderItemID uint    `json:"order_item_id"`
	ItemID      uint    `json:"inventory_item_id"`
	PartNumber  string  `json:"part_number"`
	ItemName    string  `json:"item_name"`
	BinID       *uint   `json:"bin_id"`
	BinCode     *string `json:"bin_code"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	TotalPrice  float64 `json:"total_price"`
	Reason      string  `json:"reason"`
}

// GenerateOrderNumber builds the next order number in the form
// OR<yymmdd><seq>. The sequence resets when the date part changes.
func (r *OrderRepository) GenerateOrderNumber() (string, error) {
	var lastOrder models.Order

	if err := r.db.Unscoped().Last(&lastOrder).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	currentDate := time.Now().Format("060102")

	var orderNo string
	if lastOrder.OrderNumber != "" && len(lastOrder.OrderNumber) >= 12 {
		lastDatePart := lastOrder.OrderNumber[2:8]
		lastSequenceStr := lastOrder.OrderNumber[len(lastOrder.OrderNumber)-4:]

		if currentDate != lastDatePart {
			orderNo = fmt.Sprintf("OR%s%04d", currentDate, 1)
		} else {
			lastSequenceInt, _ := strconv.Atoi(lastSequenceStr)
			orderNo = fmt.Sprintf("OR%s%04d", currentDate, lastSequenceInt+1)
		}
	} else {
		orderNo = fmt.Sprintf("OR%s%04d", currentDate, 1)
	}

	return orderNo, nil
}

// BumpOrderNumber increments the four digit sequence at the end of an
// order number, for retrying after a duplicate number insert.
func BumpOrderNumber(orderNo string) string {
	if len(orderNo) < 4 {
		return orderNo
	}
	seq, err := strconv.Atoi(orderNo[len(orderNo)-4:])
	if err != nil {
		return orderNo
	}
	return fmt.Sprintf("%s%04d", orderNo[:len(orderNo)-4], seq+1)
}

// GetOrderDetail re-reads one order joined with its truck, supply house and
// technician for the response body.
func (r *OrderRepository) GetOrderDetail(orderID uint) (*OrderDetail, error) {
	sqlOrder := `select o.id as order_id, o.order_number, o.technician_id, u.name as technician_name,
	o.truck_id, t.truck_number, o.supply_house_id, s.name as supply_house_name,
	o.status, o.urgency, o.notes, o.total_amount, o.created_at
	from orders o
	inner join users u on o.technician_id = u.id
	inner join supply_houses s on o.supply_house_id = s.id
	left join trucks t on o.truck_id = t.id
	where o.id = ?`

	var detail OrderDetail
	result := r.db.Raw(sqlOrder, orderID).Scan(&detail)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return &detail, nil
}

// GetOrderItems lists the order's lines joined with item and bin details.
func (r *OrderRepository) GetOrderItems(orderID uint) ([]OrderItemDetail, error) {
	sqlItems := `select oi.id as order_item_id, oi.item_id, i.part_number, i.name as item_name,
	oi.bin_id, b.bin_code, oi.quantity, oi.unit_price, oi.total_price, oi.reason
	from order_items oi
	inner join inventory_items i on oi.item_id = i.id
	left join truck_bins b on oi.bin_id = b.id
	where oi.order_id = ?
	order by oi.id`

	var items []OrderItemDetail
	if err := r.db.Raw(sqlItems, orderID).Scan(&items).Error; err != nil {
		return nil, err
	}

	return items, nil
}
