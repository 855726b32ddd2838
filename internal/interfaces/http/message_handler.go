package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/wms-sync-agent/internal/application/dto"
	"github.com/jhoicas/wms-sync-agent/internal/application/viewmodel"
	"github.com/jhoicas/wms-sync-agent/internal/domain/entity"
)

// MessageHandler bandeja de mensajes (protegido).
type MessageHandler struct {
	vm *viewmodel.MessageViewModel
}

func NewMessageHandler(vm *viewmodel.MessageViewModel) *MessageHandler {
	return &MessageHandler{vm: vm}
}

// List GET /v1/mensajes?noLeidos=true&importantes=true
// @Summary      Listar mensajes
// @Tags         mensajes
// @Produce      json
// @Param        noLeidos     query  bool  false  "solo no leídos"
// @Param        importantes  query  bool  false  "solo importantes"
// @Success      200   {object}  map[string]interface{}  "total, items []dto.MessageResponse"
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /v1/mensajes [get]
func (h *MessageHandler) List(c *fiber.Ctx) error {
	filter := viewmodel.MessageFilter{
		UnreadOnly:    c.QueryBool("noLeidos", false),
		ImportantOnly: c.QueryBool("importantes", false),
	}
	st := h.vm.Load(c.UserContext(), filter)
	return respond(c, st, fiber.StatusOK, func(l viewmodel.Listing[*entity.Message]) any {
		return listing(l, toMessageResponse)
	})
}

// Send POST /v1/mensajes
// @Summary      Enviar mensaje (queda en cola local)
// @Tags         mensajes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SendMessageRequest  true  "titulo, cuerpo y destinatario opcional"
// @Success      202   {object}  dto.QueuedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      507   {object}  dto.ErrorResponse
// @Router       /v1/mensajes [post]
func (h *MessageHandler) Send(c *fiber.Ctx) error {
	var in dto.SendMessageRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	st := h.vm.Send(c.UserContext(), viewmodel.MessageForm{
		RecipientID: in.RecipientID,
		Title:       in.Title,
		Body:        in.Body,
		Important:   in.Important,
	})
	return respond(c, st, fiber.StatusAccepted, queued(string(entity.PendingKindMessage)))
}
