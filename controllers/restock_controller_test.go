package controllers_test

import (
	"testing"
	"truxtok/models"
)

func TestRestockSuggestionsEmpty(t *testing.T) {
	app, db := setupApp(t)
	tech := createUser(t, db, "Tech", "tech@example.com", models.RoleTechnician)
	token := authToken(t, tech)

	resp, decoded := doJSON(t, app, "GET", "/api/v1/technician/restock", token, nil)
	if resp.StatusCode != 200 {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	trucks, ok := decoded["trucks"].([]interface{})
	if !ok {
		t.Fatalf("response has no trucks array: %v", decoded)
	}
	if len(trucks) != 0 {
		t.Errorf("got %d trucks, want 0", len(trucks))
	}
}

func TestRestockSuggestionsPriorities(t *testing.T) {
	app, db := setupApp(t)
	fx := seedOrderFixture(t, db, 2) // quantity 2 of standard 20: 90% shortfall
	token := authToken(t, fx.tech)

	resp, decoded := doJSON(t, app, "GET", "/api/v1/technician/restock", token, nil)
	if resp.StatusCode != 200 {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	trucks := decoded["trucks"].([]interface{})
	if len(trucks) != 1 {
		t.Fatalf("got %d trucks, want 1", len(trucks))
	}

	truck := trucks[0].(map[string]interface{})
	if truck["truck"] != "T1" {
		t.Errorf("truck = %v, want T1", truck["truck"])
	}

	items := truck["items"].([]interface{})
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	item := items[0].(map[string]interface{})
	if item["priority"] != "high" {
		t.Errorf("priority = %v, want high", item["priority"])
	}
	if item["suggested_quantity"].(float64) != 18 {
		t.Errorf("suggested_quantity = %v, want 18", item["suggested_quantity"])
	}
}

func TestSubmitRestock(t *testing.T) {
	app, db := setupApp(t)
	fx := seedOrderFixture(t, db, 2)
	token := authToken(t, fx.tech)

	body := map[string]interface{}{
		"items": []map[string]interface{}{
			{"id": fx.item.ID, "truckName": "T1", "suggestedQuantity": 18},
		},
	}

	resp, decoded := doJSON(t, app, "POST", "/api/v1/technician/restock", token, body)
	if resp.StatusCode != 201 {
		t.Fatalf("status = %d, want 201 (body: %v)", resp.StatusCode, decoded)
	}
	if decoded["orderId"] == nil {
		t.Error("response missing orderId")
	}

	var header models.RestockOrder
	if err := db.First(&header).Error; err != nil {
		t.Fatalf("restock order not written: %v", err)
	}
	if header.TruckID != fx.truck.ID {
		t.Errorf("restock truck = %d, want %d", header.TruckID, fx.truck.ID)
	}
	if header.SupplyHouseID != fx.supplyHouse.ID {
		t.Errorf("restock supply house = %d, want %d", header.SupplyHouseID, fx.supplyHouse.ID)
	}

	var items int64
	db.Model(&models.RestockOrderItem{}).Count(&items)
	if items != 1 {
		t.Errorf("restock item count = %d, want 1", items)
	}
}

func TestSubmitRestockRollsBackOnBadItem(t *testing.T) {
	app, db := setupApp(t)
	fx := seedOrderFixture(t, db, 2)
	token := authToken(t, fx.tech)

	body := map[string]interface{}{
		"items": []map[string]interface{}{
			{"id": fx.item.ID, "truckName": "T1", "suggestedQuantity": 18},
			{"id": 99999, "truckName": "T1", "suggestedQuantity": 5},
		},
	}

	resp, _ := doJSON(t, app, "POST", "/api/v1/technician/restock", token, body)
	if resp.StatusCode != 400 {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}

	var headers int64
	db.Model(&models.RestockOrder{}).Count(&headers)
	if headers != 0 {
		t.Errorf("restock order count = %d, want 0", headers)
	}
	var items int64
	db.Model(&models.RestockOrderItem{}).Count(&items)
	if items != 0 {
		t.Errorf("restock item count = %d, want 0", items)
	}
}

func TestSubmitRestockNoActiveSupplyHouse(t *testing.T) {
	app, db := setupApp(t)
	tech := createUser(t, db, "Tech", "tech@example.com", models.RoleTechnician)
	token := authToken(t, tech)

	body := map[string]interface{}{
		"items": []map[string]interface{}{
			{"id": 1, "truckName": "T1", "suggestedQuantity": 3},
		},
	}

	resp, _ := doJSON(t, app, "POST", "/api/v1/technician/restock", token, body)
	if resp.StatusCode != 400 {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}
