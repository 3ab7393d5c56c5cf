package router

import (
	"playvault/internal/adapter/api/handler"
	"playvault/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupSettingRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	settingHandler := handler.GetSettingHandler()

	e.GET("/v1/settings", settingHandler.ListPublicSettings)

	admin := e.Group("/v1/admin/settings")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(roleMiddleware.AdminOnly)
	admin.GET("", settingHandler.ListSettings)
	admin.POST("", settingHandler.CreateSetting)
	admin.GET("/:key", settingHandler.GetSetting)
	admin.PUT("/:key", settingHandler.UpdateSetting)
	admin.DELETE("/:key", settingHandler.DeleteSetting)
}
