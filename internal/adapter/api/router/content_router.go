package router

import (
	"playvault/internal/adapter/api/handler"
	"playvault/internal/adapter/api/middleware"
	"playvault/internal/infrastructure/ratelimit"

	"github.com/labstack/echo/v4"
)

func SetupContentRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware, limiter *ratelimit.RateLimiter) {
	contentHandler := handler.GetContentHandler()

	// Public catalog: only published, public listings come back.
	contents := e.Group("/v1/contents")
	contents.GET("", contentHandler.ListContents)
	contents.GET("/:id", contentHandler.GetContent)

	myContents := e.Group("/v1/my-contents")
	myContents.Use(authMiddleware.Authenticate)
	myContents.Use(roleMiddleware.Resolve)
	myContents.GET("", contentHandler.ListMyContents)
	myContents.POST("", contentHandler.CreateContent, middleware.RateLimit(limiter, "create_content"))
	myContents.PATCH("/:id", contentHandler.UpdateContent)
	myContents.PUT("/:id/status", contentHandler.SetStatus)
	myContents.DELETE("/:id", contentHandler.DeleteContent)
	myContents.POST("/:id/files", contentHandler.UploadFile)
}
