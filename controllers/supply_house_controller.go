package controllers

import (
	"errors"
	"truxtok/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SupplyHouseController struct {
	DB *gorm.DB
}

func NewSupplyHouseController(DB *gorm.DB) *SupplyHouseController {
	return &SupplyHouseController{DB: DB}
}

func (c *SupplyHouseController) Create(ctx *fiber.Ctx) error {
	adminID := ctx.Locals("userID").(uint)

	var supplyHouse models.SupplyHouse
	if err := ctx.BodyParser(&supplyHouse); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(supplyHouse); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	supplyHouse.CreatedBy = int(adminID)
	if err := c.DB.Create(&supplyHouse).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Supply house already exists"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":      "Supply house created",
		"supply_house": supplyHouse,
	})
}

func (c *SupplyHouseController) GetAll(ctx *fiber.Ctx) error {
	var supplyHouses []models.SupplyHouse
	if err := c.DB.Order("name").Find(&supplyHouses).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"supply_houses": supplyHouses})
}

func (c *SupplyHouseController) Update(ctx *fiber.Ctx) error {
	adminID := ctx.Locals("userID").(uint)

	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid supply house id"})
	}

	var supplyHouse models.SupplyHouse
	if err := c.DB.First(&supplyHouse, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Supply house not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var input struct {
		Name     string `json:"name"`
		Address  string `json:"address"`
		Phone    string `json:"phone"`
		Email    string `json:"email"`
		IsActive *bool  `json:"is_active"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if input.Name != "" {
		supplyHouse.Name = input.Name
	}
	if input.Address != "" {
		supplyHouse.Address = input.Address
	}
	if input.Phone != "" {
		supplyHouse.Phone = input.Phone
	}
	if input.Email != "" {
		supplyHouse.Email = input.Email
	}
	if input.IsActive != nil {
		supplyHouse.IsActive = *input.IsActive
	}
	supplyHouse.UpdatedBy = int(adminID)

	if err := c.DB.Save(&supplyHouse).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":      "Supply house updated",
		"supply_house": supplyHouse,
	})
}
