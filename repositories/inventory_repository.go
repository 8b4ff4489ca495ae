package repositories

import (
	"gorm.io/gorm"
)

type InventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db}
}

type TruckInventoryRow struct {
	InventoryID   uint    `json:"inventory_id"`
	TruckID       uint    `json:"truck_id"`
	TruckNumber   string  `json:"truck_number"`
	BinID         uint    `json:"bin_id"`
	BinCode       string  `json:"bin_code"`
	ItemID        uint    `json:"inventory_item_id"`
	PartNumber    string  `json:"part_number"`
	ItemName      string  `json:"item_name"`
	Quantity      int     `json:"quantity"`
	MinQuantity   int     `json:"min_quantity"`
	MaxQuantity   int     `json:"max_quantity"`
	StandardLevel int     `json:"standard_level"`
	UnitPrice     float64 `json:"unit_price"`
}

// GetTruckInventory lists the stock of every truck assigned to the given
// technician. Pass 0 to list all trucks (admin view).
func (r *InventoryRepository) GetTruckInventory(technicianID uint) ([]TruckInventoryRow, error) {
	sqlInventory := `select ti.id as inventory_id, ti.truck_id, t.truck_number,
	ti.bin_id, b.bin_code, ti.item_id, i.part_number, i.name as item_name,
	ti.quantity, ti.min_quantity, ti.max_quantity, ti.standard_level, i.unit_price
	from truck_inventories ti
	inner join trucks t on ti.truck_id = t.id
	inner join truck_bins b on ti.bin_id = b.id
	inner join inventory_items i on ti.item_id = i.id
	where ti.deleted_at is null and (? = 0 or t.assigned_to = ?)
	order by t.truck_number, b.bin_code`

	var rows []TruckInventoryRow
	if err := r.db.Raw(sqlInventory, technicianID, technicianID).Scan(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

// GetRestockShortfalls lists the technician's inventory rows sitting below
// their standard level.
func (r *InventoryRepository) GetRestockShortfalls(technicianID uint) ([]TruckInventoryRow, error) {
	sqlShortfall := `select ti.id as inventory_id, ti.truck_id, t.truck_number,
	ti.bin_id, b.bin_code, ti.item_id, i.part_number, i.name as item_name,
	ti.quantity, ti.min_quantity, ti.max_quantity, ti.standard_level, i.unit_price
	from truck_inventories ti
	inner join trucks t on ti.truck_id = t.id
	inner join truck_bins b on ti.bin_id = b.id
	inner join inventory_items i on ti.item_id = i.id
	where ti.deleted_at is null and t.assigned_to = ?
	and ti.standard_level > 0 and ti.quantity < ti.standard_level
	order by t.truck_number, b.bin_code`

	var rows []TruckInventoryRow
	if err := r.db.Raw(sqlShortfall, technicianID).Scan(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

// RestockPriority buckets a shortfall: high when the missing quantity is at
// least half the standard level, medium at a fifth, low otherwise.
func RestockPriority(quantity, standardLevel int) string {
	if standardLevel <= 0 {
		return "low"
	}

	shortfall := standardLevel - quantity
	switch {
	case shortfall*100 >= standardLevel*50:
		return "high"
	case shortfall*100 >= standardLevel*20:
		return "medium"
	default:
		return "low"
	}
}
