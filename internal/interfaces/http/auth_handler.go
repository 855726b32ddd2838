package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/wms-sync-agent/internal/application/dto"
	"github.com/jhoicas/wms-sync-agent/internal/application/viewmodel"
	"github.com/jhoicas/wms-sync-agent/internal/domain/entity"
)

// AuthHandler inicio y cierre de sesión del dispositivo.
type AuthHandler struct {
	vm *viewmodel.AuthViewModel
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(vm *viewmodel.AuthViewModel) *AuthHandler {
	return &AuthHandler{vm: vm}
}

// Login POST /v1/auth/login. Sin servidor valida contra las credenciales guardadas.
// @Summary      Iniciar sesión en el dispositivo
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.SessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /v1/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	st := h.vm.Login(c.UserContext(), in.Email, in.Password)
	return respond(c, st, fiber.StatusOK, func(s *entity.Session) any { return toSessionResponse(s) })
}

// Logout POST /v1/auth/logout.
// @Summary      Cerrar sesión
// @Tags         auth
// @Success      204
// @Router       /v1/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.vm.Logout(c.UserContext()); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Session GET /v1/auth/sesion.
// @Summary      Sesión activa
// @Tags         auth
// @Produce      json
// @Success      200   {object}  dto.SessionResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /v1/auth/sesion [get]
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	sess, err := h.vm.Session(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toSessionResponse(sess))
}
