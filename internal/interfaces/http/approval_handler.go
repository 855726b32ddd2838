package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/wms-sync-agent/internal/application/dto"
	"github.com/jhoicas/wms-sync-agent/internal/application/viewmodel"
	"github.com/jhoicas/wms-sync-agent/internal/domain/entity"
)

// ApprovalHandler solicitudes de movimiento (protegido).
type ApprovalHandler struct {
	vm *viewmodel.ApprovalViewModel
}

func NewApprovalHandler(vm *viewmodel.ApprovalViewModel) *ApprovalHandler {
	return &ApprovalHandler{vm: vm}
}

// List GET /v1/aprobaciones?estado=PENDIENTE
// @Summary      Listar solicitudes de movimiento
// @Tags         aprobaciones
// @Produce      json
// @Param        estado  query  string  false  "PENDIENTE, APROBADO o RECHAZADO"
// @Success      200   {object}  map[string]interface{}  "total, items []dto.ApprovalResponse"
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /v1/aprobaciones [get]
func (h *ApprovalHandler) List(c *fiber.Ctx) error {
	st := h.vm.Load(c.UserContext(), c.Query("estado"))
	return respond(c, st, fiber.StatusOK, func(l viewmodel.Listing[*entity.Approval]) any {
		return listing(l, toApprovalResponse)
	})
}

// Create POST /v1/aprobaciones. La solicitud queda en la cola local (202).
// @Summary      Solicitar movimiento (queda en cola local)
// @Tags         aprobaciones
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovementRequest  true  "tipo, sku, cantidad, motivo y ubicaciones"
// @Success      202   {object}  dto.QueuedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      507   {object}  dto.ErrorResponse
// @Router       /v1/aprobaciones [post]
func (h *ApprovalHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	st := h.vm.CreateMovementRequest(c.UserContext(), viewmodel.MovementForm{
		Type:                  in.Type,
		SKU:                   in.SKU,
		Quantity:              in.Quantity,
		Reason:                in.Reason,
		SourceLocationID:      in.SourceLocationID,
		DestinationLocationID: in.DestinationLocationID,
	})
	return respond(c, st, fiber.StatusAccepted, queued(string(entity.PendingKindMovement)))
}

// Approve PUT /v1/aprobaciones/:id/aprobar
// @Summary      Aprobar solicitud
// @Tags         aprobaciones
// @Accept       json
// @Produce      json
// @Param        id    path   int  true  "ID"
// @Param        body  body  dto.DecisionRequest  false  "observaciones"
// @Success      200   {object}  map[string]string
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /v1/aprobaciones/{id}/aprobar [put]
func (h *ApprovalHandler) Approve(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return badID(c)
	}
	var in dto.DecisionRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return badBody(c)
		}
	}
	return respond(c, h.vm.Approve(c.UserContext(), int64(id), in.Observations), fiber.StatusOK, message)
}

// Reject PUT /v1/aprobaciones/:id/rechazar. Requiere observaciones.
// @Summary      Rechazar solicitud
// @Tags         aprobaciones
// @Accept       json
// @Produce      json
// @Param        id    path   int  true  "ID"
// @Param        body  body  dto.DecisionRequest  true  "observaciones"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /v1/aprobaciones/{id}/rechazar [put]
func (h *ApprovalHandler) Reject(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return badID(c)
	}
	var in dto.DecisionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	return respond(c, h.vm.Reject(c.UserContext(), int64(id), in.Observations), fiber.StatusOK, message)
}
