package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/wms-sync-agent/internal/application/dto"
	"github.com/jhoicas/wms-sync-agent/internal/application/viewmodel"
	"github.com/jhoicas/wms-sync-agent/internal/domain/entity"
)

// InventoryHandler toma física de inventario (protegido).
type InventoryHandler struct {
	vm *viewmodel.InventoryViewModel
}

func NewInventoryHandler(vm *viewmodel.InventoryViewModel) *InventoryHandler {
	return &InventoryHandler{vm: vm}
}

// Progress GET /v1/inventario/progreso
// @Summary      Avance de la toma física
// @Tags         inventario
// @Produce      json
// @Success      200   {object}  dto.InventoryProgressResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /v1/inventario/progreso [get]
func (h *InventoryHandler) Progress(c *fiber.Ctx) error {
	st := h.vm.LoadProgress(c.UserContext())
	return respond(c, st, fiber.StatusOK, func(p *entity.InventoryProgress) any { return toProgressResponse(p) })
}

// RegisterCount POST /v1/inventario/conteos
// @Summary      Registrar conteo (queda en cola local)
// @Tags         inventario
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterCountRequest  true  "sku, idUbicacion, cantidadFisica"
// @Success      202   {object}  dto.QueuedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      507   {object}  dto.ErrorResponse
// @Router       /v1/inventario/conteos [post]
func (h *InventoryHandler) RegisterCount(c *fiber.Ctx) error {
	var in dto.RegisterCountRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	st := h.vm.RegisterCount(c.UserContext(), viewmodel.CountForm{
		SKU:              in.SKU,
		LocationID:       in.LocationID,
		PhysicalQuantity: in.PhysicalQuantity,
	})
	return respond(c, st, fiber.StatusAccepted, queued(string(entity.PendingKindInventoryCount)))
}

// PendingCounts GET /v1/inventario/conteos
// @Summary      Conteos sin enviar
// @Tags         inventario
// @Produce      json
// @Success      200   {object}  map[string]interface{}  "total, items []dto.PendingCountResponse"
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /v1/inventario/conteos [get]
func (h *InventoryHandler) PendingCounts(c *fiber.Ctx) error {
	counts, err := h.vm.PendingCounts(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	out := make([]dto.PendingCountResponse, 0, len(counts))
	for _, cnt := range counts {
		out = append(out, toPendingCountResponse(cnt))
	}
	return c.JSON(fiber.Map{"total": len(out), "items": out})
}

// Differences POST /v1/inventario/diferencias con las cantidades del sistema.
// @Summary      Diferencias contra el stock del sistema
// @Tags         inventario
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SystemStockRequest  true  "cantidades del sistema"
// @Success      200   {object}  map[string]interface{}  "total, items []dto.CountDifferenceResponse"
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /v1/inventario/diferencias [post]
func (h *InventoryHandler) Differences(c *fiber.Ctx) error {
	var in dto.SystemStockRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	system := make(map[entity.StockKey]int, len(in.Items))
	for _, it := range in.Items {
		system[entity.StockKey{SKU: strings.ToUpper(strings.TrimSpace(it.SKU)), LocationID: it.LocationID}] = it.Quantity
	}
	diffs, err := h.vm.Differences(c.UserContext(), system)
	if err != nil {
		return writeError(c, err)
	}
	out := make([]dto.CountDifferenceResponse, 0, len(diffs))
	for _, d := range diffs {
		out = append(out, toDifferenceResponse(d))
	}
	return c.JSON(fiber.Map{"total": len(out), "items": out})
}

// Finalize POST /v1/inventario/finalizar. 409 mientras queden conteos sin enviar.
// @Summary      Finalizar inventario
// @Tags         inventario
// @Produce      json
// @Success      200   {object}  map[string]string
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /v1/inventario/finalizar [post]
func (h *InventoryHandler) Finalize(c *fiber.Ctx) error {
	return respond(c, h.vm.Finalize(c.UserContext()), fiber.StatusOK, message)
}
