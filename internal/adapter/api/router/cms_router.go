package router

import (
	"playvault/internal/adapter/api/handler"
	"playvault/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupCmsRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	cmsHandler := handler.GetCmsHandler()

	e.GET("/v1/pages/:slug", cmsHandler.GetPublishedBySlug)

	admin := e.Group("/v1/admin/pages")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(roleMiddleware.AdminOnly)
	admin.GET("", cmsHandler.ListPages)
	admin.POST("", cmsHandler.CreatePage)
	admin.GET("/:id", cmsHandler.GetPage)
	admin.PUT("/:id", cmsHandler.UpdatePage)
	admin.DELETE("/:id", cmsHandler.DeletePage)
}
