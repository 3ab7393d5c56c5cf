package router

import (
	"playvault/internal/adapter/api/handler"
	"playvault/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupPaymentRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	paymentHandler := handler.GetPaymentHandler()

	// The webhook is authenticated by its signature, not a bearer token.
	e.POST("/v1/payments/webhook", paymentHandler.HandleWebhook)

	payments := e.Group("/v1/payments")
	payments.Use(authMiddleware.Authenticate)
	payments.Use(roleMiddleware.Resolve)
	payments.POST("/create-intent", paymentHandler.CreateIntent)
	payments.POST("/confirm", paymentHandler.ConfirmPayment)
	payments.GET("/my", paymentHandler.ListMyPayments)
	payments.GET("/received", paymentHandler.ListSellerPayments)
	payments.GET("/:id", paymentHandler.GetPayment)

	admin := e.Group("/v1/admin/payments")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(roleMiddleware.AdminOnly)
	admin.GET("", paymentHandler.ListAllPayments)
	admin.POST("/:id/payout", paymentHandler.ProcessPayout)
}
