package router

import (
	"playvault/internal/adapter/api/handler"
	"playvault/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupDashboardRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	dashboardHandler := handler.GetDashboardHandler()

	dashboard := e.Group("/v1/dashboard")
	dashboard.Use(authMiddleware.Authenticate)
	dashboard.GET("/buyer", dashboardHandler.BuyerSummary)
	dashboard.GET("/seller", dashboardHandler.SellerSummary, roleMiddleware.SellerOnly)

	admin := e.Group("/v1/admin/dashboard")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(roleMiddleware.AdminOnly)
	admin.GET("", dashboardHandler.AdminSummary)
}
