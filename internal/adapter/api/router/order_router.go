package router

import (
	"playvault/internal/adapter/api/handler"
	"playvault/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupOrderRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	orderHandler := handler.GetOrderHandler()

	orders := e.Group("/v1/orders")
	orders.Use(authMiddleware.Authenticate)
	orders.Use(roleMiddleware.Resolve)
	orders.POST("", orderHandler.CreateOrder, roleMiddleware.BuyerOrAdmin)
	orders.GET("/my", orderHandler.ListMyOrders)
	orders.GET("/sales", orderHandler.ListSales)
	orders.GET("/:id", orderHandler.GetOrder)
	orders.GET("/:id/download", orderHandler.Download)

	admin := e.Group("/v1/admin/orders")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(roleMiddleware.AdminOnly)
	admin.GET("", orderHandler.ListAllOrders)
	admin.PUT("/:id/status", orderHandler.UpdateStatus)
}
