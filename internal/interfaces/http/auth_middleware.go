package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/udhaydurai/donor-breeze/internal/application/dto"
	"github.com/udhaydurai/donor-breeze/internal/domain/repository"
	"github.com/udhaydurai/donor-breeze/pkg/jwt"
)

// Locals key for the authenticated email in Fiber.
const LocalUserEmail = "user_email"

// AuthMiddleware is the route guard: it validates the Bearer token AND the
// durable session flag. Checking the flag means an explicit sign-out
// immediately invalidates tokens that are still floating around.
func AuthMiddleware(jwtSecret string, sessions repository.SessionRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header required"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "format: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "empty token"})
		}
		email, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token invalid or expired"})
		}
		session, err := sessions.GetSession()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		if !session.Authenticated || session.Email != email {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "SIGNED_OUT", Message: "session is not signed in"})
		}
		c.Locals(LocalUserEmail, email)
		return c.Next()
	}
}

// GetUserEmail returns the authenticated email from the context (after the
// auth middleware ran).
func GetUserEmail(c *fiber.Ctx) string {
	v := c.Locals(LocalUserEmail)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
