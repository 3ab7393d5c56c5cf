package handler

import (
	"playvault/internal/domain/entity"
	"playvault/internal/usecase"
	"playvault/pkg/response"
	"playvault/pkg/utils"

	"github.com/labstack/echo/v4"
)

type ChatHandler struct {
	chatUseCase *usecase.ChatUseCase
}

func NewChatHandler(chatUseCase *usecase.ChatUseCase) *ChatHandler {
	return &ChatHandler{
		chatUseCase: chatUseCase,
	}
}

type startConversationRequest struct {
	RecipientID    string `json:"recipient_id" validate:"required"`
	Subject        string `json:"subject"`
	RelatedContent string `json:"related_content"`
	RelatedRequest string `json:"related_request"`
	Body           string `json:"body"`
}

func (h *ChatHandler) StartConversation(c echo.Context) error {
	var req startConversationRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	conversation, err := h.chatUseCase.StartConversation(c.Request().Context(), uid, usecase.StartConversationInput{
		RecipientID:    req.RecipientID,
		Subject:        req.Subject,
		RelatedContent: req.RelatedContent,
		RelatedRequest: req.RelatedRequest,
		Body:           req.Body,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, conversation)
}

type attachmentRequest struct {
	FileName string `json:"file_name"`
	FileURL  string `json:"file_url" validate:"required,url"`
	FileType string `json:"file_type"`
	FileSize int64  `json:"file_size"`
}

type sendMessageRequest struct {
	Body        string              `json:"body"`
	Attachments []attachmentRequest `json:"attachments" validate:"dive"`
}

func (h *ChatHandler) SendMessage(c echo.Context) error {
	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	attachments := make([]entity.Attachment, len(req.Attachments))
	for i, a := range req.Attachments {
		attachments[i] = entity.Attachment{
			FileName: a.FileName,
			FileURL:  a.FileURL,
			FileType: a.FileType,
			FileSize: a.FileSize,
		}
	}

	message, err := h.chatUseCase.SendMessage(c.Request().Context(), uid, c.Param("id"), req.Body, attachments)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, message)
}

func (h *ChatHandler) GetConversation(c echo.Context) error {
	uid := c.Get("uid").(string)

	conversation, err := h.chatUseCase.GetConversation(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, conversation)
}

func (h *ChatHandler) ListConversations(c echo.Context) error {
	params := utils.GetPaginationParams(c)
	uid := c.Get("uid").(string)

	conversations, total, err := h.chatUseCase.ListConversations(c.Request().Context(), uid, params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, conversations, total, params.Page, params.PageSize)
}

func (h *ChatHandler) ListMessages(c echo.Context) error {
	params := utils.GetPaginationParams(c)
	uid := c.Get("uid").(string)

	messages, total, err := h.chatUseCase.ListMessages(c.Request().Context(), uid, c.Param("id"), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, messages, total, params.Page, params.PageSize)
}

func (h *ChatHandler) MarkRead(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.chatUseCase.MarkRead(c.Request().Context(), uid, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.SuccessMessage(c, "Conversation marked as read", nil)
}
