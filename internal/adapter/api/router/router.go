package router

import (
	"playvault/internal/adapter/api/middleware"
	"playvault/internal/infrastructure/ratelimit"

	"github.com/labstack/echo/v4"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, roleMiddleware *middleware.RoleMiddleware, limiter *ratelimit.RateLimiter) {
	SetupAuthRouter(e, authMiddleware)
	SetupUserRouter(e, authMiddleware, roleMiddleware)
	SetupContentRouter(e, authMiddleware, roleMiddleware, limiter)
	SetupBidRouter(e, authMiddleware, roleMiddleware, limiter)
	SetupOrderRouter(e, authMiddleware, roleMiddleware)
	SetupPaymentRouter(e, authMiddleware, roleMiddleware)
	SetupCustomRequestRouter(e, authMiddleware, roleMiddleware)
	SetupReviewRouter(e, authMiddleware, roleMiddleware)
	SetupWishlistRouter(e, authMiddleware)
	SetupNotificationRouter(e, authMiddleware)
	SetupChatRouter(e, authMiddleware, limiter)
	SetupCmsRouter(e, authMiddleware, roleMiddleware)
	SetupSettingRouter(e, authMiddleware, roleMiddleware)
	SetupDashboardRouter(e, authMiddleware, roleMiddleware)
	SetupHealthRouter(e)
}
