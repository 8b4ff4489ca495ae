package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"truxtok/models"
	"truxtok/repositories"
	"truxtok/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type AdminOrderController struct {
	DB *gorm.DB
}

func NewAdminOrderController(DB *gorm.DB) *AdminOrderController {
	return &AdminOrderController{DB: DB}
}

// ConfirmOrder moves a pending order to confirmed. Anything else is
// reported as not found, matching what the caller can observe.
func (c *AdminOrderController) ConfirmOrder(ctx *fiber.Ctx) error {
	adminID := ctx.Locals("userID").(uint)

	orderID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid order id"})
	}

	result := c.DB.Model(&models.Order{}).
		Where("id = ? AND status = ?", orderID, models.OrderStatusPending).
		Updates(map[string]interface{}{
			"status":     models.OrderStatusConfirmed,
			"updated_by": int(adminID),
		})
	if result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": result.Error.Error()})
	}
	if result.RowsAffected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Order not found or already confirmed",
		})
	}

	var order models.Order
	if err := c.DB.Preload("Items").First(&order, orderID).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	utils.LogActivity(c.DB, &adminID, "order.confirm",
		fmt.Sprintf("Order %s confirmed", order.OrderNumber),
		ctx.IP(), string(ctx.Request().Header.UserAgent()))

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Order confirmed",
		"order":   order,
	})
}

// UpdateStatus applies any valid status to an order. Delivery also writes
// the technician's commission credit, in the same transaction.
func (c *AdminOrderController) UpdateStatus(ctx *fiber.Ctx) error {
	adminID := ctx.Locals("userID").(uint)

	orderID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid order id"})
	}

	var input struct {
		Status string `json:"status"`
	}
	if err := ctx.BodyParser(&input); err != nil || !models.ValidOrderStatus(input.Status) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid status"})
	}

	var order models.Order
	if err := c.DB.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	// Updates writes the new status back into order, so keep the old one
	// for the delivery check.
	prevStatus := order.Status

	tx := c.DB.Begin()

	if err := tx.Model(&order).Updates(map[string]interface{}{
		"status":     input.Status,
		"updated_by": int(adminID),
	}).Error; err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if input.Status == models.OrderStatusDelivered && prevStatus != models.OrderStatusDelivered {
		rate := settingAsFloat(tx, "commission_rate", 0.05)
		amount := order.TotalAmount * rate

		creditRepo := repositories.NewCreditRepository(tx)
		orderRef := order.ID
		credit := models.Credit{
			TechnicianID: order.TechnicianID,
			OrderID:      &orderRef,
			Type:         models.CreditTypeEarned,
			Amount:       amount,
			Notes:        fmt.Sprintf("Commission for order %s", order.OrderNumber),
			CreatedBy:    int(adminID),
		}
		if err := creditRepo.Append(&credit); err != nil {
			tx.Rollback()
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	utils.LogActivity(c.DB, &adminID, "order.status",
		fmt.Sprintf("Order %s set to %s", order.OrderNumber, input.Status),
		ctx.IP(), string(ctx.Request().Header.UserAgent()))

	order.Status = input.Status
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Order status updated",
		"order":   order,
	})
}

// ExportOrders streams all orders as an Excel workbook.
func (c *AdminOrderController) ExportOrders(ctx *fiber.Ctx) error {
	orderRepo := repositories.NewOrderRepository(c.DB)

	var orders []models.Order
	if err := c.DB.Order("id desc").Find(&orders).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	f := excelize.NewFile()
	sheet := "Sheet1"

	f.SetCellValue(sheet, "A1", "Order No")
	f.SetCellValue(sheet, "B1", "Technician")
	f.SetCellValue(sheet, "C1", "Truck")
	f.SetCellValue(sheet, "D1", "Supply House")
	f.SetCellValue(sheet, "E1", "Status")
	f.SetCellValue(sheet, "F1", "Urgency")
	f.SetCellValue(sheet, "G1", "Total")
	f.SetCellValue(sheet, "H1", "Created")

	for i, order := range orders {
		detail, err := orderRepo.GetOrderDetail(order.ID)
		if err != nil {
			continue
		}
		row := strconv.Itoa(i + 2)
		f.SetCellValue(sheet, "A"+row, detail.OrderNumber)
		f.SetCellValue(sheet, "B"+row, detail.TechnicianName)
		if detail.TruckNumber != nil {
			f.SetCellValue(sheet, "C"+row, *detail.TruckNumber)
		}
		f.SetCellValue(sheet, "D"+row, detail.SupplyHouseName)
		f.SetCellValue(sheet, "E"+row, detail.Status)
		f.SetCellValue(sheet, "F"+row, detail.Urgency)
		f.SetCellValue(sheet, "G"+row, detail.TotalAmount)
		f.SetCellValue(sheet, "H"+row, detail.CreatedAt)
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="orders.xlsx"`)

	if err := f.Write(ctx.Response().BodyWriter()); err != nil {
		return ctx.Status(http.StatusInternalServerError).SendString("Failed to generate Excel")
	}

	return nil
}

// settingAsFloat reads a numeric setting with a fallback.
func settingAsFloat(db *gorm.DB, key string, defaultValue float64) float64 {
	var setting models.Setting
	if err := db.Where("key = ?", key).First(&setting).Error; err != nil {
		return defaultValue
	}
	if v, err := strconv.ParseFloat(setting.Value, 64); err == nil {
		return v
	}
	return defaultValue
}
