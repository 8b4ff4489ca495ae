package repositories

import (
	"fmt"
	"testing"
	"time"
	"truxtok/models"
)

func TestGenerateOrderNumber(t *testing.T) {
	db := openTestDB(t)
	repo := NewOrderRepository(db)

	first, err := repo.GenerateOrderNumber()
	if err != nil {
		t.Fatalf("GenerateOrderNumber: %v", err)
	}

	want := fmt.Sprintf("OR%s0001", time.Now().Format("060102"))
	if first != want {
		t.Fatalf("first order number = %q, want %q", first, want)
	}

	if err := db.Create(&models.Order{OrderNumber: first, TechnicianID: 1, SupplyHouseID: 1}).Error; err != nil {
		t.Fatalf("create order: %v", err)
	}

	second, err := repo.GenerateOrderNumber()
	if err != nil {
		t.Fatalf("GenerateOrderNumber: %v", err)
	}
	wantSecond := fmt.Sprintf("OR%s0002", time.Now().Format("060102"))
	if second != wantSecond {
		t.Fatalf("second order number = %q, want %q", second, wantSecond)
	}
}

func TestGenerateOrderNumberDayRollover(t *testing.T) {
	db := openTestDB(t)
	repo := NewOrderRepository(db)

	// An order from a previous day resets the sequence.
	if err := db.Create(&models.Order{OrderNumber: "OR2001010042", TechnicianID: 1, SupplyHouseID: 1}).Error; err != nil {
		t.Fatalf("create order: %v", err)
	}

	next, err := repo.GenerateOrderNumber()
	if err != nil {
		t.Fatalf("GenerateOrderNumber: %v", err)
	}
	want := fmt.Sprintf("OR%s0001", time.Now().Format("060102"))
	if next != want {
		t.Fatalf("order number after rollover = %q, want %q", next, want)
	}
}

func TestBumpOrderNumber(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"OR2509010001", "OR2509010002"},
		{"OR2509010099", "OR2509010100"},
		{"OR2509019999", "OR25090110000"},
		{"bad", "bad"},
		{"OR250901abcd", "OR250901abcd"},
	}
	for _, c := range cases {
		if got := BumpOrderNumber(c.in); got != c.want {
			t.Errorf("BumpOrderNumber(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestGetOrderDetailAndItems(t *testing.T) {
	db := openTestDB(t)

	tech := models.User{Name: "Tech", Email: "tech@example.com", Role: models.RoleTechnician}
	db.Create(&tech)
	techID := tech.ID

	truck := models.Truck{TruckNumber: "T-1", AssignedTo: &techID}
	db.Create(&truck)
	bin := models.TruckBin{TruckID: truck.ID, BinCode: "B1"}
	db.Create(&bin)
	supplyHouse := models.SupplyHouse{Name: "Main", IsActive: true}
	db.Create(&supplyHouse)
	item := models.InventoryItem{PartNumber: "PN-7", Name: "Tee"}
	db.Create(&item)

	truckID := truck.ID
	order := models.Order{
		OrderNumber:   "OR2501010001",
		TechnicianID:  techID,
		TruckID:       &truckID,
		SupplyHouseID: supplyHouse.ID,
		Status:        models.OrderStatusPending,
		Urgency:       "normal",
		TotalAmount:   10,
	}
	db.Create(&order)

	binID := bin.ID
	db.Create(&models.OrderItem{
		OrderID: order.ID, ItemID: item.ID, BinID: &binID,
		Quantity: 5, UnitPrice: 2, TotalPrice: 10,
	})

	repo := NewOrderRepository(db)

	detail, err := repo.GetOrderDetail(order.ID)
	if err != nil {
		t.Fatalf("GetOrderDetail: %v", err)
	}
	if detail.TechnicianName != "Tech" {
		t.Errorf("technician name = %q, want Tech", detail.TechnicianName)
	}
	if detail.SupplyHouseName != "Main" {
		t.Errorf("supply house = %q, want Main", detail.SupplyHouseName)
	}
	if detail.TruckNumber == nil || *detail.TruckNumber != "T-1" {
		t.Errorf("truck number = %v, want T-1", detail.TruckNumber)
	}

	items, err := repo.GetOrderItems(order.ID)
	if err != nil {
		t.Fatalf("GetOrderItems: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if items[0].PartNumber != "PN-7" {
		t.Errorf("part number = %q, want PN-7", items[0].PartNumber)
	}
	if items[0].BinCode == nil || *items[0].BinCode != "B1" {
		t.Errorf("bin code = %v, want B1", items[0].BinCode)
	}
	if items[0].TotalPrice != 10 {
		t.Errorf("total price = %v, want 10", items[0].TotalPrice)
	}

	if _, err := repo.GetOrderDetail(order.ID + 99); err == nil {
		t.Error("expected error for missing order, got nil")
	}
}
