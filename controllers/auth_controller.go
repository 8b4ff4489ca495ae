package controllers

import (
	"errors"
	"time"
	"truxtok/config"
	"truxtok/middleware"
	"truxtok/models"
	"truxtok/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(DB *gorm.DB) *AuthController {
	return &AuthController{DB: DB}
}

// GenerateToken issues the signed JWT for a user.
func GenerateToken(user *models.User) (string, error) {
	claims := &middleware.AuthClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(config.JWTExpiration) * time.Second)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.JWTSecret))
}

func (c *AuthController) Login(ctx *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}
	if input.Email == "" || input.Password == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing required fields"})
	}

	ua := string(ctx.Request().Header.UserAgent())

	var mUser models.User
	result := c.DB.Where("email = ?", input.Email).First(&mUser)
	if result.Error != nil {
		utils.LogActivity(c.DB, nil, "auth.login.failed", "User not found: "+input.Email, ctx.IP(), ua)

		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid email or password"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": result.Error.Error()})
	}

	if mUser.Status != "active" {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Account is inactive"})
	}

	if bcrypt.CompareHashAndPassword([]byte(mUser.Password), []byte(input.Password)) != nil {
		uid := mUser.ID
		utils.LogActivity(c.DB, &uid, "auth.login.failed", "Wrong password", ctx.IP(), ua)

		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid email or password"})
	}

	tokenString, err := GenerateToken(&mUser)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate token"})
	}

	ctx.Cookie(config.GetTokenCookie(tokenString))

	uid := mUser.ID
	utils.LogActivity(c.DB, &uid, "auth.login", "Login successful", ctx.IP(), ua)

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"token":   tokenString,
		"user": fiber.Map{
			"id":    mUser.ID,
			"name":  mUser.Name,
			"email": mUser.Email,
			"role":  mUser.Role,
		},
	})
}

func (c *AuthController) Me(ctx *fiber.Ctx) error {
	userID := ctx.Locals("userID").(uint)

	var mUser models.User
	if err := c.DB.First(&mUser, userID).Error; err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "User not found"})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"user": mUser})
}

func (c *AuthController) Logout(ctx *fiber.Ctx) error {
	userID := ctx.Locals("userID").(uint)

	utils.LogActivity(c.DB, &userID, "auth.logout", "Logout",
		ctx.IP(), string(ctx.Request().Header.UserAgent()))

	ctx.Cookie(config.GetTokenCookie(""))

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Logout successful",
	})
}
