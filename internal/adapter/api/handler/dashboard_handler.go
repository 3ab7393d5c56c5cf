package handler

import (
	"playvault/internal/usecase"
	"playvault/pkg/response"

	"github.com/labstack/echo/v4"
)

type DashboardHandler struct {
	dashboardUseCase *usecase.DashboardUseCase
}

func NewDashboardHandler(dashboardUseCase *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{
		dashboardUseCase: dashboardUseCase,
	}
}

func (h *DashboardHandler) AdminSummary(c echo.Context) error {
	summary, err := h.dashboardUseCase.AdminSummary(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, summary)
}

func (h *DashboardHandler) SellerSummary(c echo.Context) error {
	uid := c.Get("uid").(string)

	summary, err := h.dashboardUseCase.SellerSummary(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, summary)
}

func (h *DashboardHandler) BuyerSummary(c echo.Context) error {
	uid := c.Get("uid").(string)

	summary, err := h.dashboardUseCase.BuyerSummary(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, summary)
}
