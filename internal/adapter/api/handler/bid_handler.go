package handler

import (
	"playvault/internal/usecase"
	"playvault/pkg/response"
	"playvault/pkg/utils"

	"github.com/labstack/echo/v4"
)

type BidHandler struct {
	bidUseCase *usecase.BidUseCase
}

func NewBidHandler(bidUseCase *usecase.BidUseCase) *BidHandler {
	return &BidHandler{
		bidUseCase: bidUseCase,
	}
}

type placeBidRequest struct {
	ContentID        string  `json:"content_id" validate:"required"`
	Amount           float64 `json:"amount" validate:"required,gt=0"`
	IsAutoBid        bool    `json:"is_auto_bid"`
	MaxAutoBidAmount float64 `json:"max_auto_bid_amount"`
}

func (h *BidHandler) PlaceBid(c echo.Context) error {
	var req placeBidRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	bidderID := c.Get("uid").(string)

	bid, err := h.bidUseCase.PlaceBid(c.Request().Context(), bidderID, usecase.PlaceBidInput{
		ContentID:        req.ContentID,
		Amount:           req.Amount,
		IsAutoBid:        req.IsAutoBid,
		MaxAutoBidAmount: req.MaxAutoBidAmount,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, bid)
}

func (h *BidHandler) GetBid(c echo.Context) error {
	uid := c.Get("uid").(string)

	bid, err := h.bidUseCase.GetBid(c.Request().Context(), uid, isAdmin(c), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, bid)
}

func (h *BidHandler) CancelBid(c echo.Context) error {
	uid := c.Get("uid").(string)

	bid, err := h.bidUseCase.CancelBid(c.Request().Context(), uid, isAdmin(c), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, bid)
}

func (h *BidHandler) EndAuction(c echo.Context) error {
	uid := c.Get("uid").(string)

	result, err := h.bidUseCase.EndAuction(c.Request().Context(), uid, isAdmin(c), c.Param("contentId"))
	if err != nil {
		return response.Error(c, err)
	}

	if !result.ReserveMet {
		return response.SuccessMessage(c, "Auction ended without meeting the reserve price", result)
	}

	return response.Success(c, result)
}

func (h *BidHandler) ListBidsByContent(c echo.Context) error {
	bids, err := h.bidUseCase.ListBidsByContent(c.Request().Context(), c.Param("contentId"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, bids)
}

func (h *BidHandler) ListMyBids(c echo.Context) error {
	params := utils.GetPaginationParams(c)
	uid := c.Get("uid").(string)

	bids, total, err := h.bidUseCase.ListMyBids(c.Request().Context(), uid, params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, bids, total, params.Page, params.PageSize)
}

func (h *BidHandler) ListAllBids(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	bids, total, err := h.bidUseCase.ListAllBids(c.Request().Context(), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, bids, total, params.Page, params.PageSize)
}
