package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/wms-sync-agent/internal/application/dto"
	"github.com/jhoicas/wms-sync-agent/internal/application/viewmodel"
	"github.com/jhoicas/wms-sync-agent/internal/domain"
)

// SyncHandler estado de la cola local y gestión de rechazos (protegido).
type SyncHandler struct {
	vm *viewmodel.SyncViewModel
}

func NewSyncHandler(vm *viewmodel.SyncViewModel) *SyncHandler {
	return &SyncHandler{vm: vm}
}

// Status GET /v1/sync/estado
// @Summary      Estado de la cola de envío
// @Tags         sync
// @Produce      json
// @Success      200   {object}  dto.SyncStatusResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /v1/sync/estado [get]
func (h *SyncHandler) Status(c *fiber.Ctx) error {
	return respond(c, h.vm.Refresh(c.UserContext()), fiber.StatusOK, func(st viewmodel.SyncStatus) any {
		out := dto.SyncStatusResponse{
			Online:    st.Online,
			Pending:   make(map[string]int, len(st.Pending)),
			Stalled:   []dto.DeliveryAttemptResponse{},
			Retrying:  []dto.DeliveryAttemptResponse{},
			Rejected:  make([]dto.RejectedRecordResponse, 0, len(st.Rejected)),
			LastError: st.LastError,
		}
		for kind, n := range st.Pending {
			out.Pending[string(kind)] = n
		}
		for _, a := range st.Attempts {
			if st.Policy.Stalled(a.Attempts) {
				out.Stalled = append(out.Stalled, toAttemptResponse(a))
			} else {
				out.Retrying = append(out.Retrying, toAttemptResponse(a))
			}
		}
		for _, r := range st.Rejected {
			out.Rejected = append(out.Rejected, toRejectedResponse(r))
		}
		if st.LastReport != nil {
			out.LastRunAt = timePtr(st.LastReport.FinishedAt)
		}
		return out
	})
}

// SyncNow POST /v1/sync/ahora. Reactiva los registros detenidos.
// @Summary      Enviar ahora
// @Tags         sync
// @Produce      json
// @Success      202   {object}  map[string]string
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /v1/sync/ahora [post]
func (h *SyncHandler) SyncNow(c *fiber.Ctx) error {
	return respond(c, h.vm.SyncNow(c.UserContext()), fiber.StatusAccepted, message)
}

// Connectivity PUT /v1/sync/conectividad. La UI informa los cambios de red del dispositivo.
// @Summary      Informar conectividad del dispositivo
// @Tags         sync
// @Accept       json
// @Param        body  body  dto.ConnectivityRequest  true  "enLinea"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /v1/sync/conectividad [put]
func (h *SyncHandler) Connectivity(c *fiber.Ctx) error {
	var in dto.ConnectivityRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Online == nil {
		return writeError(c, domain.Invalid("enLinea", "es requerido"))
	}
	h.vm.SetOnline(*in.Online)
	return c.SendStatus(fiber.StatusNoContent)
}

// Discard DELETE /v1/sync/rechazados/:id
// @Summary      Descartar rechazo
// @Tags         sync
// @Produce      json
// @Param        id    path   int  true  "ID"
// @Success      200   {object}  map[string]string
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /v1/sync/rechazados/{id} [delete]
func (h *SyncHandler) Discard(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return badID(c)
	}
	return respond(c, h.vm.DiscardRejected(c.UserContext(), int64(id)), fiber.StatusOK, message)
}

// Rejected GET /v1/sync/rechazados/:id. Incluye el contenido para corregirlo.
// @Summary      Detalle de un rechazo
// @Tags         sync
// @Produce      json
// @Param        id    path   int  true  "ID"
// @Success      200   {object}  dto.RejectedDetailResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /v1/sync/rechazados/{id} [get]
func (h *SyncHandler) Rejected(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return badID(c)
	}
	rr, rec, err := h.vm.Rejected(c.UserContext(), int64(id))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(toRejectedDetail(rr, rec))
}

// Requeue POST /v1/sync/rechazados/:id/reencolar. Body opcional con la corrección.
// @Summary      Reencolar rechazo, opcionalmente corregido
// @Tags         sync
// @Accept       json
// @Produce      json
// @Param        id    path   int  true  "ID"
// @Param        body  body  dto.RequeueRequest  false  "corrección del mismo tipo"
// @Success      202   {object}  dto.QueuedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      507   {object}  dto.ErrorResponse
// @Router       /v1/sync/rechazados/{id}/reencolar [post]
func (h *SyncHandler) Requeue(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return badID(c)
	}
	var in dto.RequeueRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return badBody(c)
		}
	}
	corrected, err := fromRequeueRequest(in)
	if err != nil {
		return writeError(c, err)
	}
	return respond(c, h.vm.Requeue(c.UserContext(), int64(id), corrected), fiber.StatusAccepted, func(o viewmodel.Outcome) any {
		return dto.QueuedResponse{LocalID: o.LocalID, ClientRef: o.ClientRef, Status: "PENDIENTE_ENVIO"}
	})
}
