package controllers

import (
	"errors"
	"fmt"
	"time"
	"truxtok/controllers/idgen"
	"truxtok/models"
	"truxtok/repositories"
	"truxtok/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type OrderController struct {
	DB *gorm.DB
}

func NewOrderController(DB *gorm.DB) *OrderController {
	return &OrderController{DB: DB}
}

type orderLineInput struct {
	ItemID    *uint   `json:"inventory_item_id"`
	ItemName  string  `json:"inventory_item_name"`
	BinID     *uint   `json:"bin_id"`
	Quantity  int     `json:"quantity" validate:"required,gt=0"`
	UnitPrice float64 `json:"unit_price" validate:"gte=0"`
	Reason    string  `json:"reason"`
}

type orderInput struct {
	TruckID       *uint            `json:"truck_id"`
	SupplyHouseID uint             `json:"supply_house_id" validate:"required"`
	Urgency       string           `json:"urgency"`
	Notes         string           `json:"notes"`
	Items         []orderLineInput `json:"items" validate:"required,min=1,dive"`
}

// CreateOrder persists one order with its lines and decrements the matching
// truck inventory rows, all inside one transaction.
func (c *OrderController) CreateOrder(ctx *fiber.Ctx) error {
	userID := ctx.Locals("userID").(uint)

	var input orderInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	for _, line := range input.Items {
		if line.ItemID == nil && line.ItemName == "" {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Each item needs an inventory_item_id or an inventory_item_name",
			})
		}
	}

	var supplyHouse models.SupplyHouse
	if err := c.DB.First(&supplyHouse, input.SupplyHouseID).Error; err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Supply house not found"})
	}

	// Truck assignment is checked before any write happens.
	if input.TruckID != nil {
		var truck models.Truck
		if err := c.DB.First(&truck, *input.TruckID).Error; err != nil {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Truck not found"})
		}
		if truck.AssignedTo == nil || *truck.AssignedTo != userID {
			return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Truck is not assigned to you",
			})
		}
	}

	urgency := input.Urgency
	if urgency == "" {
		urgency = "normal"
	}

	tx := c.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	// Resolve or create inventory items for lines submitted by name.
	itemIDs := make([]uint, len(input.Items))
	for i, line := range input.Items {
		if line.ItemID != nil {
			var item models.InventoryItem
			if err := tx.First(&item, *line.ItemID).Error; err != nil {
				tx.Rollback()
				return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": fmt.Sprintf("Inventory item %d not found", *line.ItemID),
				})
			}
			itemIDs[i] = item.ID
			continue
		}

		var item models.InventoryItem
		err := tx.Where("name = ?", line.ItemName).First(&item).Error
		if err == nil {
			itemIDs[i] = item.ID
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			tx.Rollback()
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}

		var category models.InventoryCategory
		if err := tx.Where("name = ?", "General").First(&category).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				tx.Rollback()
				return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
			}
			category = models.InventoryCategory{Name: "General", Description: "Default category"}
			if err := tx.Create(&category).Error; err != nil {
				tx.Rollback()
				return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
			}
		}

		item = models.InventoryItem{
			PartNumber: fmt.Sprintf("PN-%d", idgen.GenerateID()),
			Name:       line.ItemName,
			CategoryID: category.ID,
			UnitPrice:  line.UnitPrice,
			CreatedBy:  int(userID),
		}
		if err := tx.Create(&item).Error; err != nil {
			tx.Rollback()
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Duplicate part number"})
			}
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		itemIDs[i] = item.ID
	}

	orderRepo := repositories.NewOrderRepository(tx)
	orderNo, err := orderRepo.GenerateOrderNumber()
	if err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	order := models.Order{
		TechnicianID:  userID,
		TruckID:       input.TruckID,
		SupplyHouseID: input.SupplyHouseID,
		Status:        models.OrderStatusPending,
		Urgency:       urgency,
		Notes:         input.Notes,
		CreatedBy:     int(userID),
	}
	for attempt := 0; ; attempt++ {
		order.OrderNumber = orderNo
		tx.SavePoint("order_insert")
		err := tx.Create(&order).Error
		if err == nil {
			break
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) && attempt < 3 {
			// A concurrent submission took this number, move on to the
			// next sequence.
			tx.RollbackTo("order_insert")
			order.ID = 0
			orderNo = repositories.BumpOrderNumber(orderNo)
			continue
		}
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var totalAmount float64
	orderItems := make([]models.OrderItem, len(input.Items))
	for i, line := range input.Items {
		totalPrice := float64(line.Quantity) * line.UnitPrice
		totalAmount += totalPrice
		orderItems[i] = models.OrderItem{
			OrderID:    order.ID,
			ItemID:     itemIDs[i],
			BinID:      line.BinID,
			Quantity:   line.Quantity,
			UnitPrice:  line.UnitPrice,
			TotalPrice: totalPrice,
			Reason:     line.Reason,
		}
	}
	if err := tx.Create(&orderItems).Error; err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := tx.Model(&order).Update("total_amount", totalAmount).Error; err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	// Decrement truck stock for every line that names a bin. The decrement
	// is a single UPDATE so concurrent submissions cannot lose each other's
	// writes.
	if input.TruckID != nil {
		now := time.Now()
		for i, line := range input.Items {
			if line.BinID == nil {
				continue
			}
			result := tx.Model(&models.TruckInventory{}).
				Where("truck_id = ? AND bin_id = ? AND item_id = ?", *input.TruckID, *line.BinID, itemIDs[i]).
				Updates(map[string]interface{}{
					"quantity":       gorm.Expr("quantity - ?", line.Quantity),
					"last_restocked": now,
				})
			if result.Error != nil {
				tx.Rollback()
				return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": result.Error.Error()})
			}
		}
	}

	// Re-read the full order for the response before committing.
	detail, err := orderRepo.GetOrderDetail(order.ID)
	if err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	items, err := orderRepo.GetOrderItems(order.ID)
	if err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	utils.LogActivity(c.DB, &userID, "order.create",
		fmt.Sprintf("Order %s submitted with %d items", order.OrderNumber, len(orderItems)),
		ctx.IP(), string(ctx.Request().Header.UserAgent()))

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Order created successfully",
		"order": fiber.Map{
			"header": detail,
			"items":  items,
		},
	})
}

// GetOrders lists orders with pagination. Technicians see their own orders,
// admins see everything.
func (c *OrderController) GetOrders(ctx *fiber.Ctx) error {
	userID := ctx.Locals("userID").(uint)
	role := ctx.Locals("role").(string)

	page := ctx.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := ctx.QueryInt("limit", 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}

	query := c.DB.Model(&models.Order{})
	if role != models.RoleAdmin {
		query = query.Where("technician_id = ?", userID)
	}
	if status := ctx.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if truck := ctx.Query("truck"); truck != "" {
		query = query.Joins("JOIN trucks ON trucks.id = orders.truck_id").
			Where("trucks.truck_number = ?", truck)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var orders []models.Order
	if err := query.Preload("Items").
		Order("orders.id desc").
		Offset((page - 1) * limit).Limit(limit).
		Find(&orders).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	totalPages := (total + int64(limit) - 1) / int64(limit)

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"orders": orders,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       total,
			"total_pages": totalPages,
		},
	})
}

// GetOrderByID returns one order with resolved item and bin details.
func (c *OrderController) GetOrderByID(ctx *fiber.Ctx) error {
	userID := ctx.Locals("userID").(uint)
	role := ctx.Locals("role").(string)

	orderID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid order id"})
	}

	var order models.Order
	if err := c.DB.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Order not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if role != models.RoleAdmin && order.TechnicianID != userID {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
	}

	orderRepo := repositories.NewOrderRepository(c.DB)
	detail, err := orderRepo.GetOrderDetail(order.ID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	items, err := orderRepo.GetOrderItems(order.ID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"order": fiber.Map{
			"header": detail,
			"items":  items,
		},
	})
}
