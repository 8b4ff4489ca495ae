package controllers

import (
	"errors"
	"truxtok/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type TruckController struct {
	DB *gorm.DB
}

func NewTruckController(DB *gorm.DB) *TruckController {
	return &TruckController{DB: DB}
}

type truckInput struct {
	TruckNumber string `json:"truck_number" validate:"required,min=2"`
	Description string `json:"description"`
	AssignedTo  *uint  `json:"assigned_to"`
	Status      string `json:"status"`
}

func (c *TruckController) Create(ctx *fiber.Ctx) error {
	adminID := ctx.Locals("userID").(uint)

	var input truckInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if input.AssignedTo != nil {
		var technician models.User
		if err := c.DB.Where("id = ? AND role = ?", *input.AssignedTo, models.RoleTechnician).
			First(&technician).Error; err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Technician not found"})
		}
	}

	status := input.Status
	if status == "" {
		status = "active"
	}

	truck := models.Truck{
		TruckNumber: input.TruckNumber,
		Description: input.Description,
		AssignedTo:  input.AssignedTo,
		Status:      status,
		CreatedBy:   int(adminID),
	}
	if err := c.DB.Create(&truck).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Truck number already exists"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Truck created",
		"truck":   truck,
	})
}

func (c *TruckController) GetAll(ctx *fiber.Ctx) error {
	var trucks []models.Truck
	if err := c.DB.Preload("Bins").Order("truck_number").Find(&trucks).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"trucks": trucks})
}

// GetMine lists the trucks assigned to the calling technician.
func (c *TruckController) GetMine(ctx *fiber.Ctx) error {
	userID := ctx.Locals("userID").(uint)

	var trucks []models.Truck
	if err := c.DB.Preload("Bins").Where("assigned_to = ?", userID).
		Order("truck_number").Find(&trucks).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"trucks": trucks})
}

func (c *TruckController) Update(ctx *fiber.Ctx) error {
	adminID := ctx.Locals("userID").(uint)

	truckID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid truck id"})
	}

	var truck models.Truck
	if err := c.DB.First(&truck, truckID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Truck not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var input truckInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if input.TruckNumber != "" {
		truck.TruckNumber = input.TruckNumber
	}
	if input.Description != "" {
		truck.Description = input.Description
	}
	if input.Status != "" {
		truck.Status = input.Status
	}
	truck.AssignedTo = input.AssignedTo
	truck.UpdatedBy = int(adminID)

	if err := c.DB.Save(&truck).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Truck updated",
		"truck":   truck,
	})
}

type binInput struct {
	BinCode  string `json:"bin_code" validate:"required,min=1"`
	Capacity int    `json:"capacity"`
}

func (c *TruckController) CreateBin(ctx *fiber.Ctx) error {
	truckID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid truck id"})
	}

	var truck models.Truck
	if err := c.DB.First(&truck, truckID).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Truck not found"})
	}

	var input binInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	bin := models.TruckBin{
		TruckID:  truck.ID,
		BinCode:  input.BinCode,
		Capacity: input.Capacity,
	}
	if err := c.DB.Create(&bin).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Bin code already exists on this truck"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Bin created",
		"bin":     bin,
	})
}

func (c *TruckController) GetBins(ctx *fiber.Ctx) error {
	truckID, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid truck id"})
	}

	var bins []models.TruckBin
	if err := c.DB.Where("truck_id = ?", truckID).Order("bin_code").Find(&bins).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"bins": bins})
}
