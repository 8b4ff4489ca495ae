package controllers_test

import (
	"strconv"
	"strings"
	"testing"
	"time"
	"truxtok/models"

	"gorm.io/gorm"
)

type orderFixture struct {
	tech        models.User
	truck       models.Truck
	bin         models.TruckBin
	item        models.InventoryItem
	supplyHouse models.SupplyHouse
}

func seedOrderFixture(t *testing.T, db *gorm.DB, startQty int) orderFixture {
	t.Helper()

	tech := createUser(t, db, "Tech", "tech@example.com", models.RoleTechnician)
	techID := tech.ID

	truck := models.Truck{TruckNumber: "T1", AssignedTo: &techID, Status: "active"}
	if err := db.Create(&truck).Error; err != nil {
		t.Fatalf("seed truck: %v", err)
	}
	bin := models.TruckBin{TruckID: truck.ID, BinCode: "B1", Capacity: 50}
	if err := db.Create(&bin).Error; err != nil {
		t.Fatalf("seed bin: %v", err)
	}
	item := models.InventoryItem{PartNumber: "PN-I1", Name: "Copper Elbow", UnitPrice: 2.0}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("seed item: %v", err)
	}
	supplyHouse := models.SupplyHouse{Name: "Main Supply House", IsActive: true}
	if err := db.Create(&supplyHouse).Error; err != nil {
		t.Fatalf("seed supply house: %v", err)
	}

	inv := models.TruckInventory{
		TruckID: truck.ID, BinID: bin.ID, ItemID: item.ID,
		Quantity: startQty, StandardLevel: 20,
	}
	if err := db.Create(&inv).Error; err != nil {
		t.Fatalf("seed inventory: %v", err)
	}

	return orderFixture{tech: tech, truck: truck, bin: bin, item: item, supplyHouse: supplyHouse}
}

func orderCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	if err := db.Model(&models.Order{}).Count(&n).Error; err != nil {
		t.Fatalf("count orders: %v", err)
	}
	return n
}

func TestCreateOrderDecrementsInventory(t *testing.T) {
	app, db := setupApp(t)
	fx := seedOrderFixture(t, db, 20)
	token := authToken(t, fx.tech)

	body := map[string]interface{}{
		"truck_id":        fx.truck.ID,
		"supply_house_id": fx.supplyHouse.ID,
		"items": []map[string]interface{}{
			{
				"inventory_item_id": fx.item.ID,
				"bin_id":            fx.bin.ID,
				"quantity":          5,
				"unit_price":        2.0,
			},
		},
	}

	resp, decoded := doJSON(t, app, "POST", "/api/v1/orders", token, body)
	if resp.StatusCode != 201 {
		t.Fatalf("status = %d, want 201 (body: %v)", resp.StatusCode, decoded)
	}

	var inv models.TruckInventory
	if err := db.Where("truck_id = ? AND bin_id = ? AND item_id = ?", fx.truck.ID, fx.bin.ID, fx.item.ID).
		First(&inv).Error; err != nil {
		t.Fatalf("read inventory: %v", err)
	}
	if inv.Quantity != 15 {
		t.Errorf("inventory quantity = %d, want 15", inv.Quantity)
	}
	if inv.LastRestocked == nil {
		t.Error("last_restocked not stamped")
	}

	var order models.Order
	if err := db.Preload("Items").First(&order).Error; err != nil {
		t.Fatalf("read order: %v", err)
	}
	if order.Status != models.OrderStatusPending {
		t.Errorf("order status = %q, want pending", order.Status)
	}
	if !strings.HasPrefix(order.OrderNumber, "OR") {
		t.Errorf("order number = %q, want OR prefix", order.OrderNumber)
	}
	if len(order.Items) != 1 {
		t.Fatalf("got %d order items, want 1", len(order.Items))
	}
	if order.Items[0].TotalPrice != 10.0 {
		t.Errorf("total_price = %v, want 10.00", order.Items[0].TotalPrice)
	}
	if order.TotalAmount != 10.0 {
		t.Errorf("order total = %v, want 10.00", order.TotalAmount)
	}
}

func TestCreateOrderForbiddenTruck(t *testing.T) {
	app, db := setupApp(t)
	fx := seedOrderFixture(t, db, 20)

	other := createUser(t, db, "Other", "other@example.com", models.RoleTechnician)
	token := authToken(t, other)

	body := map[string]interface{}{
		"truck_id":        fx.truck.ID,
		"supply_house_id": fx.supplyHouse.ID,
		"items": []map[string]interface{}{
			{"inventory_item_id": fx.item.ID, "bin_id": fx.bin.ID, "quantity": 1, "unit_price": 1.0},
		},
	}

	resp, _ := doJSON(t, app, "POST", "/api/v1/orders", token, body)
	if resp.StatusCode != 403 {
		t.Fatalf("status = %d, want 403", resp.StatusCode)
	}
	if n := orderCount(t, db); n != 0 {
		t.Errorf("order count = %d, want 0", n)
	}
}

func TestCreateOrderRollsBackOnBadItem(t *testing.T) {
	app, db := setupApp(t)
	fx := seedOrderFixture(t, db, 20)
	token := authToken(t, fx.tech)

	body := map[string]interface{}{
		"truck_id":        fx.truck.ID,
		"supply_house_id": fx.supplyHouse.ID,
		"items": []map[string]interface{}{
			{"inventory_item_id": fx.item.ID, "bin_id": fx.bin.ID, "quantity": 5, "unit_price": 2.0},
			{"inventory_item_id": 99999, "quantity": 1, "unit_price": 1.0},
		},
	}

	resp, _ := doJSON(t, app, "POST", "/api/v1/orders", token, body)
	if resp.StatusCode != 400 {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}

	if n := orderCount(t, db); n != 0 {
		t.Errorf("order count = %d, want 0", n)
	}
	var items int64
	db.Model(&models.OrderItem{}).Count(&items)
	if items != 0 {
		t.Errorf("order item count = %d, want 0", items)
	}

	var inv models.TruckInventory
	if err := db.First(&inv).Error; err != nil {
		t.Fatalf("read inventory: %v", err)
	}
	if inv.Quantity != 20 {
		t.Errorf("inventory quantity after rollback = %d, want 20", inv.Quantity)
	}
}

func TestCreateOrderLazyItemCreation(t *testing.T) {
	app, db := setupApp(t)
	fx := seedOrderFixture(t, db, 20)
	token := authToken(t, fx.tech)

	body := map[string]interface{}{
		"supply_house_id": fx.supplyHouse.ID,
		"items": []map[string]interface{}{
			{"inventory_item_name": "Mystery Gasket", "quantity": 2, "unit_price": 3.5},
		},
	}

	resp, decoded := doJSON(t, app, "POST", "/api/v1/orders", token, body)
	if resp.StatusCode != 201 {
		t.Fatalf("status = %d, want 201 (body: %v)", resp.StatusCode, decoded)
	}

	var item models.InventoryItem
	if err := db.Where("name = ?", "Mystery Gasket").First(&item).Error; err != nil {
		t.Fatalf("lazily created item not found: %v", err)
	}
	if !strings.HasPrefix(item.PartNumber, "PN-") {
		t.Errorf("part number = %q, want PN- prefix", item.PartNumber)
	}

	var category models.InventoryCategory
	if err := db.Where("name = ?", "General").First(&category).Error; err != nil {
		t.Fatalf("fallback category not created: %v", err)
	}
	if item.CategoryID != category.ID {
		t.Errorf("item category = %d, want %d", item.CategoryID, category.ID)
	}
}

func TestConfirmOrder(t *testing.T) {
	app, db := setupApp(t)
	fx := seedOrderFixture(t, db, 20)
	admin := createUser(t, db, "Admin", "admin@example.com", models.RoleAdmin)
	adminToken := authToken(t, admin)

	order := models.Order{
		OrderNumber:   "OR2501010001",
		TechnicianID:  fx.tech.ID,
		SupplyHouseID: fx.supplyHouse.ID,
		Status:        models.OrderStatusPending,
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}

	path := "/api/v1/admin/orders/" + itoa(order.ID) + "/confirm"

	resp, _ := doJSON(t, app, "POST", path, adminToken, nil)
	if resp.StatusCode != 200 {
		t.Fatalf("first confirm status = %d, want 200", resp.StatusCode)
	}

	var updated models.Order
	db.First(&updated, order.ID)
	if updated.Status != models.OrderStatusConfirmed {
		t.Fatalf("status = %q, want confirmed", updated.Status)
	}

	// Confirming again reports not found and leaves the row unchanged.
	resp, decoded := doJSON(t, app, "POST", path, adminToken, nil)
	if resp.StatusCode != 404 {
		t.Fatalf("second confirm status = %d, want 404 (body: %v)", resp.StatusCode, decoded)
	}
	db.First(&updated, order.ID)
	if updated.Status != models.OrderStatusConfirmed {
		t.Errorf("status after double confirm = %q, want confirmed", updated.Status)
	}

	// Technicians cannot confirm at all.
	techToken := authToken(t, fx.tech)
	resp, _ = doJSON(t, app, "POST", path, techToken, nil)
	if resp.StatusCode != 403 {
		t.Errorf("technician confirm status = %d, want 403", resp.StatusCode)
	}
}

func TestDeliveredOrderAwardsCredit(t *testing.T) {
	app, db := setupApp(t)
	fx := seedOrderFixture(t, db, 20)
	admin := createUser(t, db, "Admin", "admin@example.com", models.RoleAdmin)
	adminToken := authToken(t, admin)

	db.Create(&models.Setting{Key: "commission_rate", Value: "0.10"})

	order := models.Order{
		OrderNumber:   "OR2501010002",
		TechnicianID:  fx.tech.ID,
		SupplyHouseID: fx.supplyHouse.ID,
		Status:        models.OrderStatusShipped,
		TotalAmount:   50,
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}

	path := "/api/v1/admin/orders/" + itoa(order.ID) + "/status"
	resp, decoded := doJSON(t, app, "PUT", path, adminToken, map[string]string{"status": "delivered"})
	if resp.StatusCode != 200 {
		t.Fatalf("status = %d, want 200 (body: %v)", resp.StatusCode, decoded)
	}

	var credit models.Credit
	if err := db.Where("technician_id = ?", fx.tech.ID).First(&credit).Error; err != nil {
		t.Fatalf("credit row not written: %v", err)
	}
	if credit.Type != models.CreditTypeEarned {
		t.Errorf("credit type = %q, want earned", credit.Type)
	}
	if credit.Amount != 5 {
		t.Errorf("credit amount = %v, want 5 (10%% of 50)", credit.Amount)
	}
	if credit.OrderID == nil || *credit.OrderID != order.ID {
		t.Errorf("credit order ref = %v, want %d", credit.OrderID, order.ID)
	}

	// Setting delivered again must not award a second credit.
	resp, _ = doJSON(t, app, "PUT", path, adminToken, map[string]string{"status": "delivered"})
	if resp.StatusCode != 200 {
		t.Fatalf("second delivery status = %d, want 200", resp.StatusCode)
	}
	var credits int64
	db.Model(&models.Credit{}).Where("technician_id = ?", fx.tech.ID).Count(&credits)
	if credits != 1 {
		t.Errorf("credit rows = %d, want 1", credits)
	}
}

func TestCreateOrderRetriesTakenOrderNumber(t *testing.T) {
	app, db := setupApp(t)
	fx := seedOrderFixture(t, db, 20)
	token := authToken(t, fx.tech)

	// The generator continues from the latest row, so a newer row with a
	// lower sequence steers it into a number that already exists.
	today := time.Now().Format("060102")
	taken := models.Order{
		OrderNumber: "OR" + today + "0002", TechnicianID: fx.tech.ID,
		SupplyHouseID: fx.supplyHouse.ID, Status: models.OrderStatusPending,
	}
	if err := db.Create(&taken).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}
	stale := models.Order{
		OrderNumber: "OR" + today + "0001", TechnicianID: fx.tech.ID,
		SupplyHouseID: fx.supplyHouse.ID, Status: models.OrderStatusPending,
	}
	if err := db.Create(&stale).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}

	body := map[string]interface{}{
		"supply_house_id": fx.supplyHouse.ID,
		"items": []map[string]interface{}{
			{"inventory_item_id": fx.item.ID, "quantity": 1, "unit_price": 2.0},
		},
	}

	resp, decoded := doJSON(t, app, "POST", "/api/v1/orders", token, body)
	if resp.StatusCode != 201 {
		t.Fatalf("status = %d, want 201 (body: %v)", resp.StatusCode, decoded)
	}

	var created models.Order
	if err := db.Where("order_number = ?", "OR"+today+"0003").First(&created).Error; err != nil {
		t.Fatalf("order with bumped number not found: %v", err)
	}
	if n := orderCount(t, db); n != 3 {
		t.Errorf("order count = %d, want 3", n)
	}
}

func itoa(v uint) string {
	return strconv.Itoa(int(v))
}
