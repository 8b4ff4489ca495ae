package middleware

import (
	"strings"
	"truxtok/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims is the one token format used everywhere. Tokens are issued by
// the auth controller and verified here, whether they arrive in the
// Authorization header or the fallback cookie.
type AuthClaims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// AuthMiddleware extracts the bearer token from the Authorization header,
// falling back to the token cookie, verifies it and stores the principal
// in the request context.
func AuthMiddleware(ctx *fiber.Ctx) error {
	tokenString := ""

	authHeader := ctx.Get("Authorization")
	if authHeader != "" {
		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || strings.ToLower(tokenParts[0]) != "bearer" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid Authorization header format",
			})
		}
		tokenString = tokenParts[1]
	} else if cookie := ctx.Cookies("token"); cookie != "" {
		tokenString = cookie
	}

	if tokenString == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Missing Authorization header",
		})
	}

	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: Invalid signing method")
		}
		return []byte(config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized: Invalid token",
		})
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized: Invalid token claims",
		})
	}

	ctx.Locals("userID", claims.UserID)
	ctx.Locals("role", claims.Role)
	ctx.Locals("email", claims.Email)

	return ctx.Next()
}

// RequireRole rejects the request unless the authenticated principal has
// one of the given roles. Must run after AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		role, ok := ctx.Locals("role").(string)
		if !ok {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized: missing role",
			})
		}

		for _, allowed := range roles {
			if role == allowed {
				return ctx.Next()
			}
		}

		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Forbidden: You do not have permission",
		})
	}
}
