package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cafe-stock-api/internal/application/auth"
	"github.com/jhoicas/cafe-stock-api/internal/application/dto"
	"github.com/jhoicas/cafe-stock-api/internal/domain"
)

// AuthHandler maneja registro y login (público).
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "email, password, name y role opcionales"
// @Success      201   {object}  dto.Envelope
// @Failure      400   {object}  dto.Envelope
// @Failure      409   {object}  dto.Envelope
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	user, err := h.uc.RegisterUser(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return respondCreated(c, "usuario registrado", user)
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email y password"
// @Success      200   {object}  dto.Envelope
// @Failure      401   {object}  dto.Envelope
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	out, err := h.uc.Login(in)
	if err != nil {
		// Credenciales incorrectas y usuario inexistente se reportan igual.
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrUnauthorized) {
			return respondError(c, fiber.StatusUnauthorized, "credenciales inválidas")
		}
		return respondDomainError(c, err)
	}
	return respondOK(c, "sesión iniciada", out)
}
