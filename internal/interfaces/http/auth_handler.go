package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/udhaydurai/donor-breeze/internal/application/auth"
	"github.com/udhaydurai/donor-breeze/internal/application/dto"
	"github.com/udhaydurai/donor-breeze/internal/domain"
)

// AuthHandler handles the email + one-time-code sign-in flow.
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler builds the auth handler.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// RequestCode godoc
// @Summary      Request a verification code
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RequestCodeRequest  true  "email"
// @Success      202   {object}  dto.MessageResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/request-code [post]
func (h *AuthHandler) RequestCode(c *fiber.Ctx) error {
	var in dto.RequestCodeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if in.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email is required"})
	}
	if err := h.uc.RequestCode(in.Email); err != nil {
		if errors.Is(err, domain.ErrAccessDenied) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "ACCESS_DENIED", Message: "this email is not authorized to sign in"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusAccepted).JSON(dto.MessageResponse{Message: "verification code sent"})
}

// VerifyCode godoc
// @Summary      Verify a code and sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VerifyCodeRequest  true  "code"
// @Success      200   {object}  dto.VerifyCodeResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/verify [post]
func (h *AuthHandler) VerifyCode(c *fiber.Ctx) error {
	var in dto.VerifyCodeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if in.Code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "code is required"})
	}
	out, err := h.uc.VerifyCode(in.Code)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidOrExpiredCode) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_CODE", Message: "verification code is invalid or expired"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Session reports the current signed-in state.
// GET /api/auth/session
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	authenticated, err := h.uc.IsAuthenticated()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	email, err := h.uc.CurrentIdentity()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.SessionResponse{Authenticated: authenticated, Email: email})
}

// Logout signs the user out. Idempotent.
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.uc.SignOut(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "You have been successfully signed out."})
}
