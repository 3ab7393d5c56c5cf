package handler

import (
	"io"

	"playvault/internal/usecase"
	"playvault/pkg/errors"
	"playvault/pkg/response"
	"playvault/pkg/utils"

	"github.com/labstack/echo/v4"
)

type PaymentHandler struct {
	paymentUseCase *usecase.PaymentUseCase
}

func NewPaymentHandler(paymentUseCase *usecase.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{
		paymentUseCase: paymentUseCase,
	}
}

type createIntentRequest struct {
	OrderID string `json:"order_id" validate:"required"`
}

func (h *PaymentHandler) CreateIntent(c echo.Context) error {
	var req createIntentRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	result, err := h.paymentUseCase.CreateIntent(c.Request().Context(), uid, isAdmin(c), req.OrderID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

type confirmPaymentRequest struct {
	OrderID         string `json:"order_id" validate:"required"`
	PaymentIntentID string `json:"payment_intent_id" validate:"required"`
}

func (h *PaymentHandler) ConfirmPayment(c echo.Context) error {
	var req confirmPaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	payment, err := h.paymentUseCase.ConfirmPayment(c.Request().Context(), uid, isAdmin(c), req.OrderID, req.PaymentIntentID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, payment)
}

// HandleWebhook processes provider callbacks. The raw body is read before
// any binding because the signature covers the exact bytes sent.
func (h *PaymentHandler) HandleWebhook(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.Error(c, errors.BadRequest("Unable to read webhook payload", err))
	}

	signature := c.Request().Header.Get("Stripe-Signature")

	if err := h.paymentUseCase.HandleWebhook(c.Request().Context(), payload, signature); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]bool{"received": true})
}

func (h *PaymentHandler) ProcessPayout(c echo.Context) error {
	payment, err := h.paymentUseCase.ProcessPayout(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, payment)
}

func (h *PaymentHandler) GetPayment(c echo.Context) error {
	uid := c.Get("uid").(string)

	payment, err := h.paymentUseCase.GetPayment(c.Request().Context(), uid, isAdmin(c), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, payment)
}

func (h *PaymentHandler) ListMyPayments(c echo.Context) error {
	params := utils.GetPaginationParams(c)
	uid := c.Get("uid").(string)

	payments, total, err := h.paymentUseCase.ListBuyerPayments(c.Request().Context(), uid, params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, payments, total, params.Page, params.PageSize)
}

func (h *PaymentHandler) ListSellerPayments(c echo.Context) error {
	params := utils.GetPaginationParams(c)
	uid := c.Get("uid").(string)

	payments, total, err := h.paymentUseCase.ListSellerPayments(c.Request().Context(), uid, params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, payments, total, params.Page, params.PageSize)
}

func (h *PaymentHandler) ListAllPayments(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	payments, total, err := h.paymentUseCase.ListAllPayments(c.Request().Context(), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, payments, total, params.Page, params.PageSize)
}
