package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/skillx/skillx-api/internal/core/ports"
)

type MessageHandler struct {
	messageService ports.MessageService
}

func NewMessageHandler(messageService ports.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

type sendMessageRequest struct {
	ReceiverID string `json:"receiver_id" validate:"required"`
	Content    string `json:"content"     validate:"required"`
}

type messageItemResponse struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"sender_id"`
	ReceiverID string    `json:"receiver_id"`
	Content    string    `json:"content"`
	SentAt     time.Time `json:"sent_at"`
}

// Send delivers a direct message from the caller to another user.
//
// @Summary      Send a direct message
// @Tags         messages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      sendMessageRequest  true  "Message"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/messages [post]
func (h *MessageHandler) Send(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.messageService.Send(c.Request().Context(), userID, req.ReceiverID, req.Content); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, messageResponse{Message: "message sent"})
}

// Conversation returns the full exchange between the caller and another
// user, oldest first.
//
// @Summary      Conversation with another user
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        otherId  path      string  true  "Other user id"
// @Success      200      {array}   messageItemResponse
// @Failure      401      {object}  map[string]string
// @Router       /api/messages/{otherId} [get]
func (h *MessageHandler) Conversation(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	conversation, err := h.messageService.Conversation(c.Request().Context(), userID, c.Param("otherId"))
	if err != nil {
		return err
	}

	out := make([]messageItemResponse, len(conversation))
	for i, m := range conversation {
		out[i] = messageItemResponse{
			ID:         m.ID,
			SenderID:   m.SenderID,
			ReceiverID: m.ReceiverID,
			Content:    m.Content,
			SentAt:     m.SentAt.UTC(),
		}
	}
	return c.JSON(http.StatusOK, out)
}
