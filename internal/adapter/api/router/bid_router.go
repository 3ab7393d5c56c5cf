package router

import (
	"playvault/internal/adapter/api/handler"
	"playvault/internal/adapter/api/middleware"
	"playvault/internal/infrastructure/ratelimit"

	"github.com/labstack/echo/v4"
)

func SetupBidRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware, limiter *ratelimit.RateLimiter) {
	bidHandler := handler.GetBidHandler()

	e.GET("/v1/bids/content/:contentId", bidHandler.ListBidsByContent)

	bids := e.Group("/v1/bids")
	bids.Use(authMiddleware.Authenticate)
	bids.Use(roleMiddleware.Resolve)
	bids.POST("", bidHandler.PlaceBid, roleMiddleware.BuyerOnly, middleware.RateLimit(limiter, "place_bid"))
	bids.GET("/my", bidHandler.ListMyBids)
	bids.GET("/:id", bidHandler.GetBid)
	bids.PUT("/:id/cancel", bidHandler.CancelBid)
	bids.PUT("/end-auction/:contentId", bidHandler.EndAuction)

	admin := e.Group("/v1/admin/bids")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(roleMiddleware.AdminOnly)
	admin.GET("", bidHandler.ListAllBids)
}
