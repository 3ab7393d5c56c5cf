package handler

import (
	"strconv"
	"time"

	"playvault/internal/domain/entity"
	"playvault/internal/domain/repository"
	"playvault/internal/usecase"
	"playvault/pkg/errors"
	"playvault/pkg/response"
	"playvault/pkg/utils"

	"github.com/labstack/echo/v4"
)

type ContentHandler struct {
	contentUseCase *usecase.ContentUseCase
}

func NewContentHandler(contentUseCase *usecase.ContentUseCase) *ContentHandler {
	return &ContentHandler{
		contentUseCase: contentUseCase,
	}
}

type auctionDetailsRequest struct {
	StartingBid  float64    `json:"starting_bid" validate:"gt=0"`
	MinIncrement float64    `json:"min_increment"`
	ReservePrice float64    `json:"reserve_price"`
	EndTime      *time.Time `json:"end_time"`
}

func (r *auctionDetailsRequest) toEntity() *entity.AuctionDetails {
	if r == nil {
		return nil
	}
	return &entity.AuctionDetails{
		StartingBid:  r.StartingBid,
		MinIncrement: r.MinIncrement,
		ReservePrice: r.ReservePrice,
		EndTime:      r.EndTime,
	}
}

type createContentRequest struct {
	Title               string                 `json:"title" validate:"required"`
	Description         string                 `json:"description"`
	Sport               string                 `json:"sport" validate:"required"`
	ContentType         string                 `json:"content_type" validate:"required,oneof=Video Document Playbook Program"`
	Tags                []string               `json:"tags"`
	Difficulty          string                 `json:"difficulty"`
	SaleType            string                 `json:"sale_type" validate:"required,oneof=Fixed Auction Both"`
	Price               float64                `json:"price"`
	AuctionDetails      *auctionDetailsRequest `json:"auction_details"`
	AllowCustomRequests bool                   `json:"allow_custom_requests"`
	Visibility          string                 `json:"visibility" validate:"omitempty,oneof=Public Private"`
}

func (h *ContentHandler) CreateContent(c echo.Context) error {
	var req createContentRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	sellerID := c.Get("uid").(string)

	content, err := h.contentUseCase.CreateContent(c.Request().Context(), sellerID, usecase.CreateContentInput{
		Title:               req.Title,
		Description:         req.Description,
		Sport:               req.Sport,
		ContentType:         req.ContentType,
		Tags:                req.Tags,
		Difficulty:          req.Difficulty,
		SaleType:            req.SaleType,
		Price:               req.Price,
		AuctionDetails:      req.AuctionDetails.toEntity(),
		AllowCustomRequests: req.AllowCustomRequests,
		Visibility:          req.Visibility,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, content)
}

func (h *ContentHandler) GetContent(c echo.Context) error {
	content, err := h.contentUseCase.GetContent(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, content)
}

type updateContentRequest struct {
	Title               *string                `json:"title"`
	Description         *string                `json:"description"`
	Sport               *string                `json:"sport"`
	ContentType         *string                `json:"content_type"`
	Tags                []string               `json:"tags"`
	Difficulty          *string                `json:"difficulty"`
	Price               *float64               `json:"price"`
	AuctionDetails      *auctionDetailsRequest `json:"auction_details"`
	AllowCustomRequests *bool                  `json:"allow_custom_requests"`
	Visibility          *string                `json:"visibility"`
}

func (h *ContentHandler) UpdateContent(c echo.Context) error {
	var req updateContentRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	content, err := h.contentUseCase.UpdateContent(c.Request().Context(), uid, isAdmin(c), c.Param("id"), usecase.UpdateContentInput{
		Title:               req.Title,
		Description:         req.Description,
		Sport:               req.Sport,
		ContentType:         req.ContentType,
		Tags:                req.Tags,
		Difficulty:          req.Difficulty,
		Price:               req.Price,
		AuctionDetails:      req.AuctionDetails.toEntity(),
		AllowCustomRequests: req.AllowCustomRequests,
		Visibility:          req.Visibility,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, content)
}

type setStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Draft Published Archived"`
}

func (h *ContentHandler) SetStatus(c echo.Context) error {
	var req setStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	content, err := h.contentUseCase.SetStatus(c.Request().Context(), uid, isAdmin(c), c.Param("id"), req.Status)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, content)
}

func (h *ContentHandler) DeleteContent(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.contentUseCase.DeleteContent(c.Request().Context(), uid, isAdmin(c), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.SuccessMessage(c, "Content deleted", nil)
}

func (h *ContentHandler) ListContents(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	minPrice, _ := strconv.ParseFloat(c.QueryParam("min_price"), 64)
	maxPrice, _ := strconv.ParseFloat(c.QueryParam("max_price"), 64)

	filter := repository.ContentFilter{
		Sport:       c.QueryParam("sport"),
		ContentType: c.QueryParam("content_type"),
		Difficulty:  c.QueryParam("difficulty"),
		SaleType:    c.QueryParam("sale_type"),
		SellerID:    c.QueryParam("seller_id"),
		MinPrice:    minPrice,
		MaxPrice:    maxPrice,
	}

	contents, total, err := h.contentUseCase.ListContents(c.Request().Context(), filter, c.QueryParam("sort"), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, contents, total, params.Page, params.PageSize)
}

func (h *ContentHandler) ListMyContents(c echo.Context) error {
	params := utils.GetPaginationParams(c)
	sellerID := c.Get("uid").(string)

	contents, total, err := h.contentUseCase.ListSellerContents(c.Request().Context(), sellerID, c.QueryParam("status"), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, contents, total, params.Page, params.PageSize)
}

// UploadFile receives a multipart upload for the listing's main file,
// preview or thumbnail. The main file is stored privately and only served
// through the order download endpoint.
func (h *ContentHandler) UploadFile(c echo.Context) error {
	kind := c.FormValue("kind")
	if kind == "" {
		kind = "file"
	}
	if kind != "file" && kind != "preview" && kind != "thumbnail" {
		return response.Error(c, errors.BadRequest("kind must be one of file, preview, thumbnail", nil))
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("Missing file", err))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return response.Error(c, errors.BadRequest("Unable to read file", err))
	}
	defer src.Close()

	uid := c.Get("uid").(string)

	content, err := h.contentUseCase.UploadFile(
		c.Request().Context(),
		uid,
		isAdmin(c),
		c.Param("id"),
		kind,
		fileHeader.Header.Get("Content-Type"),
		src,
		fileHeader.Size,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, content)
}
