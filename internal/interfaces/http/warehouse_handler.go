package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/wms-sync-agent/internal/application/dto"
	"github.com/jhoicas/wms-sync-agent/internal/application/viewmodel"
	"github.com/jhoicas/wms-sync-agent/internal/domain/entity"
)

// LocationHandler ubicaciones del almacén (protegido).
type LocationHandler struct {
	vm *viewmodel.LocationViewModel
}

func NewLocationHandler(vm *viewmodel.LocationViewModel) *LocationHandler {
	return &LocationHandler{vm: vm}
}

// List GET /v1/ubicaciones?zona=A
// @Summary      Listar ubicaciones
// @Tags         ubicaciones
// @Produce      json
// @Param        zona  query  string  false  "zona"
// @Success      200   {object}  map[string]interface{}  "total, items []dto.LocationResponse"
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /v1/ubicaciones [get]
func (h *LocationHandler) List(c *fiber.Ctx) error {
	st := h.vm.Load(c.UserContext(), c.Query("zona"))
	return respond(c, st, fiber.StatusOK, func(l viewmodel.Listing[*entity.Location]) any {
		return listing(l, toLocationResponse)
	})
}

// Assign POST /v1/ubicaciones/asignaciones
// @Summary      Asignar producto a ubicación (queda en cola local)
// @Tags         ubicaciones
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AssignLocationRequest  true  "sku, idUbicacion, cantidad"
// @Success      202   {object}  dto.QueuedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      507   {object}  dto.ErrorResponse
// @Router       /v1/ubicaciones/asignaciones [post]
func (h *LocationHandler) Assign(c *fiber.Ctx) error {
	var in dto.AssignLocationRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	st := h.vm.AssignProduct(c.UserContext(), viewmodel.AssignForm{SKU: in.SKU, LocationID: in.LocationID, Quantity: in.Quantity})
	return respond(c, st, fiber.StatusAccepted, queued(string(entity.PendingKindLocationAssignment)))
}
