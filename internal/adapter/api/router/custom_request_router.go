package router

import (
	"playvault/internal/adapter/api/handler"
	"playvault/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupCustomRequestRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	requestHandler := handler.GetCustomRequestHandler()

	requests := e.Group("/v1/custom-requests")
	requests.Use(authMiddleware.Authenticate)
	requests.Use(roleMiddleware.Resolve)
	requests.POST("", requestHandler.CreateRequest)
	requests.GET("/my", requestHandler.ListMyRequests)
	requests.GET("/incoming", requestHandler.ListIncomingRequests)
	requests.GET("/:id", requestHandler.GetRequest)
	requests.PUT("/:id/respond", requestHandler.Respond)
	requests.PUT("/:id/cancel", requestHandler.CancelRequest)
	requests.POST("/:id/content", requestHandler.SubmitContent)

	admin := e.Group("/v1/admin/custom-requests")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(roleMiddleware.AdminOnly)
	admin.GET("", requestHandler.ListAllRequests)
}
