package controllers

import (
	"truxtok/models"
	"truxtok/repositories"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CreditController struct {
	DB *gorm.DB
}

func NewCreditController(DB *gorm.DB) *CreditController {
	return &CreditController{DB: DB}
}

// GetMine returns the caller's credit ledger and current balance.
func (c *CreditController) GetMine(ctx *fiber.Ctx) error {
	userID := ctx.Locals("userID").(uint)

	var credits []models.Credit
	if err := c.DB.Where("technician_id = ?", userID).
		Order("id desc").Find(&credits).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	creditRepo := repositories.NewCreditRepository(c.DB)
	balance, err := creditRepo.CurrentBalance(userID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"credits": credits,
		"balance": balance,
	})
}

type creditInput struct {
	TechnicianID uint    `json:"technician_id" validate:"required"`
	Type         string  `json:"type" validate:"required,oneof=bonus adjustment redeemed"`
	Amount       float64 `json:"amount" validate:"required"`
	Notes        string  `json:"notes"`
}

// Create appends a manual ledger entry. Redemptions are negative amounts.
func (c *CreditController) Create(ctx *fiber.Ctx) error {
	adminID := ctx.Locals("userID").(uint)

	var input creditInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var technician models.User
	if err := c.DB.Where("id = ? AND role = ?", input.TechnicianID, models.RoleTechnician).
		First(&technician).Error; err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Technician not found"})
	}

	if input.Type == models.CreditTypeRedeemed && input.Amount > 0 {
		input.Amount = -input.Amount
	}

	tx := c.DB.Begin()

	creditRepo := repositories.NewCreditRepository(tx)
	credit := models.Credit{
		TechnicianID: input.TechnicianID,
		Type:         input.Type,
		Amount:       input.Amount,
		Notes:        input.Notes,
		CreatedBy:    int(adminID),
	}
	if err := creditRepo.Append(&credit); err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Credit entry created",
		"credit":  credit,
	})
}
