package controllers

import (
	"truxtok/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(DB *gorm.DB) *DashboardController {
	return &DashboardController{DB: DB}
}

type statusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// GetSummary aggregates the admin dashboard counters.
func (c *DashboardController) GetSummary(ctx *fiber.Ctx) error {
	var ordersByStatus []statusCount
	if err := c.DB.Model(&models.Order{}).
		Select("status, count(*) as count").
		Group("status").Scan(&ordersByStatus).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var technicianCount int64
	if err := c.DB.Model(&models.User{}).
		Where("role = ? AND status = ?", models.RoleTechnician, "active").
		Count(&technicianCount).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var truckCount int64
	if err := c.DB.Model(&models.Truck{}).
		Where("status = ?", "active").Count(&truckCount).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var lowStockCount int64
	if err := c.DB.Model(&models.TruckInventory{}).
		Where("standard_level > 0 AND quantity < standard_level").
		Count(&lowStockCount).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var recentActivities []models.Activity
	if err := c.DB.Order("id desc").Limit(20).Find(&recentActivities).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"orders_by_status":  ordersByStatus,
		"technicians":       technicianCount,
		"trucks":            truckCount,
		"low_stock_items":   lowStockCount,
		"recent_activities": recentActivities,
	})
}
