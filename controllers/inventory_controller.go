package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"
	"truxtok/models"
	"truxtok/repositories"
	"truxtok/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type InventoryController struct {
	DB *gorm.DB
}

func NewInventoryController(DB *gorm.DB) *InventoryController {
	return &InventoryController{DB: DB}
}

// GetInventory lists the caller's truck inventory. Admins get every truck.
func (c *InventoryController) GetInventory(ctx *fiber.Ctx) error {
	userID := ctx.Locals("userID").(uint)
	role := ctx.Locals("role").(string)

	scope := userID
	if role == models.RoleAdmin {
		scope = 0
	}

	inventoryRepo := repositories.NewInventoryRepository(c.DB)
	rows, err := inventoryRepo.GetTruckInventory(scope)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"inventory": rows})
}

type inventoryUpdateInput struct {
	TruckID        uint   `json:"truck_id"`
	BinID          uint   `json:"bin_id"`
	ItemID         uint   `json:"inventory_item_id"`
	QuantityChange int    `json:"quantity_change"`
	Action         string `json:"action"`
}

// UpdateQuantity applies a signed quantity change to one (truck, bin, item)
// row after confirming the truck belongs to the caller.
func (c *InventoryController) UpdateQuantity(ctx *fiber.Ctx) error {
	userID := ctx.Locals("userID").(uint)

	var input inventoryUpdateInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if input.TruckID == 0 || input.BinID == 0 || input.ItemID == 0 || input.QuantityChange == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing required fields"})
	}

	var truck models.Truck
	if err := c.DB.First(&truck, input.TruckID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Truck not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if truck.AssignedTo == nil || *truck.AssignedTo != userID {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Truck is not assigned to you"})
	}

	tx := c.DB.Begin()

	now := time.Now()
	result := tx.Model(&models.TruckInventory{}).
		Where("truck_id = ? AND bin_id = ? AND item_id = ?", input.TruckID, input.BinID, input.ItemID).
		Updates(map[string]interface{}{
			"quantity":       gorm.Expr("quantity + ?", input.QuantityChange),
			"last_restocked": now,
			"updated_by":     int(userID),
		})
	if result.Error != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": result.Error.Error()})
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Inventory row not found"})
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	// Reshape the updated row into the item/bin DTO the UI renders.
	sqlRow := `select ti.id as inventory_id, ti.truck_id, t.truck_number,
	ti.bin_id, b.bin_code, ti.item_id, i.part_number, i.name as item_name,
	ti.quantity, ti.min_quantity, ti.max_quantity, ti.standard_level, i.unit_price
	from truck_inventories ti
	inner join trucks t on ti.truck_id = t.id
	inner join truck_bins b on ti.bin_id = b.id
	inner join inventory_items i on ti.item_id = i.id
	where ti.truck_id = ? and ti.bin_id = ? and ti.item_id = ?`

	var row repositories.TruckInventoryRow
	if err := c.DB.Raw(sqlRow, input.TruckID, input.BinID, input.ItemID).Scan(&row).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	utils.LogActivity(c.DB, &userID, "inventory.update",
		fmt.Sprintf("Adjusted item %d in truck %s bin %d by %+d", input.ItemID, truck.TruckNumber, input.BinID, input.QuantityChange),
		ctx.IP(), string(ctx.Request().Header.UserAgent()))

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Inventory updated",
		"item":    row,
		"action":  input.Action,
	})
}

// ExportExcel generates and streams the inventory report.
func (c *InventoryController) ExportExcel(ctx *fiber.Ctx) error {
	inventoryRepo := repositories.NewInventoryRepository(c.DB)
	rows, err := inventoryRepo.GetTruckInventory(0)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	f := excelize.NewFile()
	sheet := "Sheet1"

	f.SetCellValue(sheet, "A1", "Truck")
	f.SetCellValue(sheet, "B1", "Bin")
	f.SetCellValue(sheet, "C1", "Part Number")
	f.SetCellValue(sheet, "D1", "Item Name")
	f.SetCellValue(sheet, "E1", "Quantity")
	f.SetCellValue(sheet, "F1", "Standard Level")

	for i, row := range rows {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), row.TruckNumber)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", i+2), row.BinCode)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", i+2), row.PartNumber)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", i+2), row.ItemName)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", i+2), row.Quantity)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", i+2), row.StandardLevel)
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="inventory.xlsx"`)

	if err := f.Write(ctx.Response().BodyWriter()); err != nil {
		return ctx.Status(http.StatusInternalServerError).SendString("Failed to generate Excel")
	}

	return nil
}
