package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/wms-sync-agent/internal/application/dto"
	"github.com/jhoicas/wms-sync-agent/internal/application/viewmodel"
	"github.com/jhoicas/wms-sync-agent/internal/domain/entity"
)

// ProductHandler catálogo (protegido).
type ProductHandler struct {
	vm *viewmodel.ProductViewModel
}

func NewProductHandler(vm *viewmodel.ProductViewModel) *ProductHandler {
	return &ProductHandler{vm: vm}
}

// List GET /v1/productos?q=camara&categoria=Lentes
// @Summary      Buscar productos
// @Tags         productos
// @Produce      json
// @Param        q          query  string  false  "texto, sin distinguir tildes"
// @Param        categoria  query  string  false  "categoría"
// @Success      200   {object}  map[string]interface{}  "total, items []dto.ProductResponse"
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /v1/productos [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	st := h.vm.Load(c.UserContext(), c.Query("q"), c.Query("categoria"))
	return respond(c, st, fiber.StatusOK, func(l viewmodel.Listing[*entity.Product]) any {
		return listing(l, toProductResponse)
	})
}

// UserHandler administración de usuarios (protegido).
type UserHandler struct {
	vm *viewmodel.UserViewModel
}

func NewUserHandler(vm *viewmodel.UserViewModel) *UserHandler {
	return &UserHandler{vm: vm}
}

// List GET /v1/usuarios?rol=OPERADOR&q=diana
// @Summary      Listar usuarios
// @Tags         usuarios
// @Produce      json
// @Param        rol  query  string  false  "ADMINISTRADOR, SUPERVISOR u OPERADOR"
// @Param        q    query  string  false  "nombre o email"
// @Success      200   {object}  map[string]interface{}  "total, items []dto.UserResponse"
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /v1/usuarios [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	st := h.vm.Load(c.UserContext(), c.Query("rol"), c.Query("q"))
	return respond(c, st, fiber.StatusOK, func(l viewmodel.Listing[*entity.User]) any {
		return listing(l, toUserResponse)
	})
}

// Create POST /v1/usuarios (solo ADMINISTRADOR).
// @Summary      Crear usuario
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "nombre, email, password, rol"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /v1/usuarios [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	st := h.vm.Create(c.UserContext(), viewmodel.UserForm{Name: in.Name, Email: in.Email, Password: in.Password, Role: in.Role})
	return respond(c, st, fiber.StatusCreated, func(u *entity.User) any { return toUserResponse(u) })
}
