package controllers

import (
	"errors"
	"fmt"
	"truxtok/config"
	"truxtok/models"
	"truxtok/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gopkg.in/gomail.v2"
	"gorm.io/gorm"
)

type ContactController struct {
	DB *gorm.DB
}

func NewContactController(DB *gorm.DB) *ContactController {
	return &ContactController{DB: DB}
}

type contactInput struct {
	TechnicianID uint   `json:"technician_id" validate:"required"`
	Subject      string `json:"subject" validate:"required,min=3"`
	Message      string `json:"message" validate:"required,min=3"`
}

// ContactTechnician emails a technician on behalf of an admin.
func (c *ContactController) ContactTechnician(ctx *fiber.Ctx) error {
	adminID := ctx.Locals("userID").(uint)

	var input contactInput
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
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Technician not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", config.SMTPFrom)
	msg.SetHeader("To", technician.Email)
	msg.SetHeader("Subject", input.Subject)
	msg.SetBody("text/plain", input.Message)

	dialer := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPUser, config.SMTPPassword)
	if err := dialer.DialAndSend(msg); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to send email"})
	}

	utils.LogActivity(c.DB, &adminID, "contact.email",
		fmt.Sprintf("Emailed technician %s: %s", technician.Email, input.Subject),
		ctx.IP(), string(ctx.Request().Header.UserAgent()))

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Email sent"})
}
