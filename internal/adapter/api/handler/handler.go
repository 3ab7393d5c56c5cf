package handler

import (
	"playvault/internal/domain/entity"
	"playvault/internal/usecase"

	"github.com/labstack/echo/v4"
)

var (
	authHandler         *AuthHandler
	userHandler         *UserHandler
	contentHandler      *ContentHandler
	bidHandler          *BidHandler
	orderHandler        *OrderHandler
	paymentHandler      *PaymentHandler
	requestHandler      *CustomRequestHandler
	reviewHandler       *ReviewHandler
	wishlistHandler     *WishlistHandler
	notificationHandler *NotificationHandler
	chatHandler         *ChatHandler
	cmsHandler          *CmsHandler
	settingHandler      *SettingHandler
	dashboardHandler    *DashboardHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	userUseCase *usecase.UserUseCase,
	contentUseCase *usecase.ContentUseCase,
	bidUseCase *usecase.BidUseCase,
	orderUseCase *usecase.OrderUseCase,
	paymentUseCase *usecase.PaymentUseCase,
	requestUseCase *usecase.CustomRequestUseCase,
	reviewUseCase *usecase.ReviewUseCase,
	wishlistUseCase *usecase.WishlistUseCase,
	notificationUseCase *usecase.NotificationUseCase,
	chatUseCase *usecase.ChatUseCase,
	cmsUseCase *usecase.CmsUseCase,
	settingUseCase *usecase.SettingUseCase,
	dashboardUseCase *usecase.DashboardUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	userHandler = NewUserHandler(userUseCase)
	contentHandler = NewContentHandler(contentUseCase)
	bidHandler = NewBidHandler(bidUseCase)
	orderHandler = NewOrderHandler(orderUseCase)
	paymentHandler = NewPaymentHandler(paymentUseCase)
	requestHandler = NewCustomRequestHandler(requestUseCase)
	reviewHandler = NewReviewHandler(reviewUseCase)
	wishlistHandler = NewWishlistHandler(wishlistUseCase)
	notificationHandler = NewNotificationHandler(notificationUseCase)
	chatHandler = NewChatHandler(chatUseCase)
	cmsHandler = NewCmsHandler(cmsUseCase)
	settingHandler = NewSettingHandler(settingUseCase)
	dashboardHandler = NewDashboardHandler(dashboardUseCase)
}

func GetAuthHandler() *AuthHandler                   { return authHandler }
func GetUserHandler() *UserHandler                   { return userHandler }
func GetContentHandler() *ContentHandler             { return contentHandler }
func GetBidHandler() *BidHandler                     { return bidHandler }
func GetOrderHandler() *OrderHandler                 { return orderHandler }
func GetPaymentHandler() *PaymentHandler             { return paymentHandler }
func GetCustomRequestHandler() *CustomRequestHandler { return requestHandler }
func GetReviewHandler() *ReviewHandler               { return reviewHandler }
func GetWishlistHandler() *WishlistHandler           { return wishlistHandler }
func GetNotificationHandler() *NotificationHandler   { return notificationHandler }
func GetChatHandler() *ChatHandler                   { return chatHandler }
func GetCmsHandler() *CmsHandler                     { return cmsHandler }
func GetSettingHandler() *SettingHandler             { return settingHandler }
func GetDashboardHandler() *DashboardHandler         { return dashboardHandler }

// isAdmin reports whether the caller's resolved role is admin. The role is
// set by the role middleware; routes without it default to non-admin.
func isAdmin(c echo.Context) bool {
	role, _ := c.Get("role").(string)
	return role == entity.RoleAdmin
}
