package controllers

import (
	"errors"
	"fmt"
	"truxtok/controllers/idgen"
	"truxtok/models"
	"truxtok/repositories"
	"truxtok/types"
	"truxtok/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type RestockController struct {
	DB *gorm.DB
}

func NewRestockController(DB *gorm.DB) *RestockController {
	return &RestockController{DB: DB}
}

type restockItem struct {
	InventoryID       uint    `json:"id"`
	ItemID            uint    `json:"inventory_item_id"`
	PartNumber        string  `json:"part_number"`
	ItemName          string  `json:"item_name"`
	BinCode           string  `json:"bin_code"`
	Quantity          int     `json:"quantity"`
	StandardLevel     int     `json:"standard_level"`
	SuggestedQuantity int     `json:"suggested_quantity"`
	Priority          string  `json:"priority"`
	UnitPrice         float64 `json:"unit_price"`
}

type restockTruck struct {
	TruckID uint          `json:"truckId"`
	Truck   string        `json:"truck"`
	Items   []restockItem `json:"items"`
}

// GetSuggestions lists, per truck assigned to the caller, every item
// sitting below its standard level, tagged with a priority bucket.
func (c *RestockController) GetSuggestions(ctx *fiber.Ctx) error {
	userID := ctx.Locals("userID").(uint)

	inventoryRepo := repositories.NewInventoryRepository(c.DB)
	rows, err := inventoryRepo.GetRestockShortfalls(userID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	trucks := []restockTruck{}
	index := map[uint]int{}
	for _, row := range rows {
		item := restockItem{
			InventoryID:       row.InventoryID,
			ItemID:            row.ItemID,
			PartNumber:        row.PartNumber,
			ItemName:          row.ItemName,
			BinCode:           row.BinCode,
			Quantity:          row.Quantity,
			StandardLevel:     row.StandardLevel,
			SuggestedQuantity: row.StandardLevel - row.Quantity,
			Priority:          repositories.RestockPriority(row.Quantity, row.StandardLevel),
			UnitPrice:         row.UnitPrice,
		}

		pos, ok := index[row.TruckID]
		if !ok {
			trucks = append(trucks, restockTruck{TruckID: row.TruckID, Truck: row.TruckNumber})
			pos = len(trucks) - 1
			index[row.TruckID] = pos
		}
		trucks[pos].Items = append(trucks[pos].Items, item)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"trucks": trucks})
}

type restockSubmitLine struct {
	ItemID            uint   `json:"id"`
	TruckName         string `json:"truckName"`
	SuggestedQuantity int    `json:"suggestedQuantity"`
}

// SubmitRestock creates a restock order against the default active supply
// house for the caller's truck. Any invalid item id rolls the whole
// submission back.
func (c *RestockController) SubmitRestock(ctx *fiber.Ctx) error {
	userID := ctx.Locals("userID").(uint)

	var input struct {
		Items []restockSubmitLine `json:"items"`
	}
	if err := ctx.BodyParser(&input); err != nil || len(input.Items) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No items to restock"})
	}

	var supplyHouse models.SupplyHouse
	if err := c.DB.Where("is_active = ?", true).First(&supplyHouse).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No active supply house configured"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var truck models.Truck
	if err := c.DB.Where("truck_number = ? AND assigned_to = ?", input.Items[0].TruckName, userID).
		First(&truck).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Truck is not assigned to you"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	tx := c.DB.Begin()

	orderID := types.SnowflakeID(idgen.GenerateID())
	restockOrder := models.RestockOrder{
		ID:            orderID,
		OrderNumber:   fmt.Sprintf("RS%d", int64(orderID)),
		TechnicianID:  userID,
		TruckID:       truck.ID,
		SupplyHouseID: supplyHouse.ID,
		Status:        models.OrderStatusPending,
		CreatedBy:     int(userID),
	}
	if err := tx.Create(&restockOrder).Error; err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	for _, line := range input.Items {
		var item models.InventoryItem
		if err := tx.First(&item, line.ItemID).Error; err != nil {
			tx.Rollback()
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Inventory item %d not found", line.ItemID),
			})
		}

		orderItem := models.RestockOrderItem{
			RestockOrderID:    restockOrder.ID,
			ItemID:            item.ID,
			SuggestedQuantity: line.SuggestedQuantity,
		}
		if err := tx.Create(&orderItem).Error; err != nil {
			tx.Rollback()
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	utils.LogActivity(c.DB, &userID, "restock.submit",
		fmt.Sprintf("Restock order %s for truck %s with %d items", restockOrder.OrderNumber, truck.TruckNumber, len(input.Items)),
		ctx.IP(), string(ctx.Request().Header.UserAgent()))

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Restock order submitted",
		"orderId": restockOrder.ID,
	})
}
