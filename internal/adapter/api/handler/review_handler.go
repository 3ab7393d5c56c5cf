package handler

import (
	"playvault/internal/usecase"
	"playvault/pkg/response"
	"playvault/pkg/utils"

	"github.com/labstack/echo/v4"
)

type ReviewHandler struct {
	reviewUseCase *usecase.ReviewUseCase
}

func NewReviewHandler(reviewUseCase *usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{
		reviewUseCase: reviewUseCase,
	}
}

type createReviewRequest struct {
	ContentID string `json:"content_id" validate:"required"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Title     string `json:"title"`
	Text      string `json:"text"`
}

func (h *ReviewHandler) CreateReview(c echo.Context) error {
	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	review, err := h.reviewUseCase.CreateReview(c.Request().Context(), uid, usecase.CreateReviewInput{
		ContentID: req.ContentID,
		Rating:    req.Rating,
		Title:     req.Title,
		Text:      req.Text,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, review)
}

type updateReviewRequest struct {
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
	Title  string `json:"title"`
	Text   string `json:"text"`
}

func (h *ReviewHandler) UpdateReview(c echo.Context) error {
	var req updateReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	review, err := h.reviewUseCase.UpdateReview(c.Request().Context(), uid, c.Param("id"), usecase.UpdateReviewInput{
		Rating: req.Rating,
		Title:  req.Title,
		Text:   req.Text,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, review)
}

func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.reviewUseCase.DeleteReview(c.Request().Context(), uid, isAdmin(c), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.SuccessMessage(c, "Review deleted", nil)
}

func (h *ReviewHandler) ListByContent(c echo.Context) error {
	reviews, err := h.reviewUseCase.ListByContent(c.Request().Context(), c.Param("contentId"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, reviews)
}

func (h *ReviewHandler) ListBySeller(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	reviews, total, err := h.reviewUseCase.ListBySeller(c.Request().Context(), c.Param("sellerId"), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, reviews, total, params.Page, params.PageSize)
}

func (h *ReviewHandler) ListAllReviews(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	reviews, total, err := h.reviewUseCase.ListAllReviews(c.Request().Context(), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, reviews, total, params.Page, params.PageSize)
}
