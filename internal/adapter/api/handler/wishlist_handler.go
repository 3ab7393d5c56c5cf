package handler

import (
	"playvault/internal/usecase"
	"playvault/pkg/response"
	"playvault/pkg/utils"

	"github.com/labstack/echo/v4"
)

type WishlistHandler struct {
	wishlistUseCase *usecase.WishlistUseCase
}

func NewWishlistHandler(wishlistUseCase *usecase.WishlistUseCase) *WishlistHandler {
	return &WishlistHandler{
		wishlistUseCase: wishlistUseCase,
	}
}

type addWishlistItemRequest struct {
	ContentID string `json:"content_id" validate:"required"`
	Notes     string `json:"notes"`
}

func (h *WishlistHandler) AddItem(c echo.Context) error {
	var req addWishlistItemRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	item, err := h.wishlistUseCase.AddItem(c.Request().Context(), uid, req.ContentID, req.Notes)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, item)
}

func (h *WishlistHandler) RemoveItem(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.wishlistUseCase.RemoveItem(c.Request().Context(), uid, c.Param("contentId")); err != nil {
		return response.Error(c, err)
	}

	return response.SuccessMessage(c, "Removed from wishlist", nil)
}

func (h *WishlistHandler) ListItems(c echo.Context) error {
	params := utils.GetPaginationParams(c)
	uid := c.Get("uid").(string)

	items, total, err := h.wishlistUseCase.ListItems(c.Request().Context(), uid, params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, items, total, params.Page, params.PageSize)
}
