package controllers

import (
	"truxtok/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SettingsController struct {
	DB *gorm.DB
}

func NewSettingsController(DB *gorm.DB) *SettingsController {
	return &SettingsController{DB: DB}
}

func (c *SettingsController) GetAll(ctx *fiber.Ctx) error {
	var settings []models.Setting
	if err := c.DB.Order("key").Find(&settings).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"settings": settings})
}

// Update upserts the posted key/value pairs.
func (c *SettingsController) Update(ctx *fiber.Ctx) error {
	adminID := ctx.Locals("userID").(uint)

	var input map[string]string
	if err := ctx.BodyParser(&input); err != nil || len(input) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	tx := c.DB.Begin()

	for key, value := range input {
		var setting models.Setting
		err := tx.Where("key = ?", key).First(&setting).Error
		if err == gorm.ErrRecordNotFound {
			setting = models.Setting{Key: key, Value: value, UpdatedBy: int(adminID)}
			if err := tx.Create(&setting).Error; err != nil {
				tx.Rollback()
				return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
			}
			continue
		}
		if err != nil {
			tx.Rollback()
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}

		setting.Value = value
		setting.UpdatedBy = int(adminID)
		if err := tx.Save(&setting).Error; err != nil {
			tx.Rollback()
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Settings updated"})
}
