package handler

import (
	"time"

	"playvault/internal/usecase"
	"playvault/pkg/response"
	"playvault/pkg/utils"

	"github.com/labstack/echo/v4"
)

type CustomRequestHandler struct {
	requestUseCase *usecase.CustomRequestUseCase
}

func NewCustomRequestHandler(requestUseCase *usecase.CustomRequestUseCase) *CustomRequestHandler {
	return &CustomRequestHandler{
		requestUseCase: requestUseCase,
	}
}

type createRequestRequest struct {
	SellerID              string     `json:"seller_id" validate:"required"`
	Title                 string     `json:"title" validate:"required"`
	Description           string     `json:"description" validate:"required"`
	Sport                 string     `json:"sport" validate:"required"`
	ContentType           string     `json:"content_type" validate:"required,oneof=Video Document Playbook Program"`
	Budget                float64    `json:"budget" validate:"required,gt=0"`
	RequestedDeliveryDate *time.Time `json:"requested_delivery_date"`
}

func (h *CustomRequestHandler) CreateRequest(c echo.Context) error {
	var req createRequestRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	buyerID := c.Get("uid").(string)

	request, err := h.requestUseCase.CreateRequest(c.Request().Context(), buyerID, usecase.CreateRequestInput{
		SellerID:              req.SellerID,
		Title:                 req.Title,
		Description:           req.Description,
		Sport:                 req.Sport,
		ContentType:           req.ContentType,
		Budget:                req.Budget,
		RequestedDeliveryDate: req.RequestedDeliveryDate,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, request)
}

type respondRequest struct {
	Accept                bool       `json:"accept"`
	Price                 float64    `json:"price"`
	Message               string     `json:"message"`
	EstimatedDeliveryDate *time.Time `json:"estimated_delivery_date"`
}

func (h *CustomRequestHandler) Respond(c echo.Context) error {
	var req respondRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	sellerID := c.Get("uid").(string)

	request, err := h.requestUseCase.Respond(c.Request().Context(), sellerID, c.Param("id"), usecase.RespondInput{
		Accept:                req.Accept,
		Price:                 req.Price,
		Message:               req.Message,
		EstimatedDeliveryDate: req.EstimatedDeliveryDate,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, request)
}

func (h *CustomRequestHandler) CancelRequest(c echo.Context) error {
	uid := c.Get("uid").(string)

	request, err := h.requestUseCase.CancelRequest(c.Request().Context(), uid, isAdmin(c), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, request)
}

type submitContentRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Difficulty  string `json:"difficulty"`
	FileURL     string `json:"file_url" validate:"required,url"`
	FileSize    int64  `json:"file_size"`
	PreviewURL  string `json:"preview_url" validate:"omitempty,url"`
}

func (h *CustomRequestHandler) SubmitContent(c echo.Context) error {
	var req submitContentRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	sellerID := c.Get("uid").(string)

	request, content, err := h.requestUseCase.SubmitContent(c.Request().Context(), sellerID, c.Param("id"), usecase.SubmitContentInput{
		Title:       req.Title,
		Description: req.Description,
		Difficulty:  req.Difficulty,
		FileURL:     req.FileURL,
		FileSize:    req.FileSize,
		PreviewURL:  req.PreviewURL,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, map[string]interface{}{
		"request": request,
		"content": content,
	})
}

func (h *CustomRequestHandler) GetRequest(c echo.Context) error {
	uid := c.Get("uid").(string)

	request, err := h.requestUseCase.GetRequest(c.Request().Context(), uid, isAdmin(c), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, request)
}

func (h *CustomRequestHandler) ListMyRequests(c echo.Context) error {
	params := utils.GetPaginationParams(c)
	uid := c.Get("uid").(string)

	requests, total, err := h.requestUseCase.ListBuyerRequests(c.Request().Context(), uid, params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, requests, total, params.Page, params.PageSize)
}

func (h *CustomRequestHandler) ListIncomingRequests(c echo.Context) error {
	params := utils.GetPaginationParams(c)
	uid := c.Get("uid").(string)

	requests, total, err := h.requestUseCase.ListSellerRequests(c.Request().Context(), uid, params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, requests, total, params.Page, params.PageSize)
}

func (h *CustomRequestHandler) ListAllRequests(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	requests, total, err := h.requestUseCase.ListAllRequests(c.Request().Context(), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, requests, total, params.Page, params.PageSize)
}
