package router

import (
	"playvault/internal/adapter/api/handler"
	"playvault/internal/adapter/api/middleware"

	"github.com/labstack/echo/v4"
)

func SetupReviewRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware) {
	reviewHandler := handler.GetReviewHandler()

	e.GET("/v1/reviews/content/:contentId", reviewHandler.ListByContent)
	e.GET("/v1/reviews/seller/:sellerId", reviewHandler.ListBySeller)

	reviews := e.Group("/v1/reviews")
	reviews.Use(authMiddleware.Authenticate)
	reviews.Use(roleMiddleware.Resolve)
	reviews.POST("", reviewHandler.CreateReview, roleMiddleware.BuyerOnly)
	reviews.PUT("/:id", reviewHandler.UpdateReview)
	reviews.DELETE("/:id", reviewHandler.DeleteReview)

	admin := e.Group("/v1/admin/reviews")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(roleMiddleware.AdminOnly)
	admin.GET("", reviewHandler.ListAllReviews)
}
