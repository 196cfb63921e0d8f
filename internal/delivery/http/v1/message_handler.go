package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	messageUC domain.MessageUsecase
}

func NewMessageHandler(r gin.IRoutes, write gin.HandlerFunc, messageUC domain.MessageUsecase) {
	handler := &MessageHandler{messageUC: messageUC}

	r.GET("/messages", handler.List)
	r.POST("/messages", write, handler.Create)
}

// ListMessages godoc
// @Summary      List messages
// @Tags         messages
// @Produce      json
// @Success      200  {array}   domain.Message
// @Failure      500  {object}  response.InternalErrorBody
// @Router       /messages [get]
func (h *MessageHandler) List(c *gin.Context) {
	messages, err := h.messageUC.ListMessages(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, messages)
}

// PostMessage godoc
// @Summary      Leave a message
// @Description  Content is limited to 300 characters; contact is free text.
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        message  body      domain.MessageDraft  true  "Message JSON"
// @Success      201      {object}  domain.CreateResult
// @Failure      400      {object}  response.ErrorBody
// @Failure      429      {object}  response.ErrorBody
// @Failure      500      {object}  response.InternalErrorBody
// @Router       /messages [post]
func (h *MessageHandler) Create(c *gin.Context) {
	var draft domain.MessageDraft
	if !bindJSON(c, &draft) {
		return
	}

	msg, err := h.messageUC.PostMessage(c.Request.Context(), &draft)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusCreated, domain.CreateResult{
		Success:   true,
		ID:        msg.ID,
		CreatedAt: msg.CreatedAt,
	})
}
