package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"playvault/internal/domain/entity"
	"playvault/internal/domain/repository"
	"playvault/internal/domain/service"
	"playvault/pkg/errors"
	"playvault/pkg/logger"
)

type OrderUseCase struct {
	orderRepo            repository.OrderRepository
	contentRepo          repository.ContentRepository
	bidRepo              repository.BidRepository
	requestRepo          repository.CustomRequestRepository
	userRepo             repository.UserRepository
	settingRepo          repository.SettingRepository
	invoices             service.InvoiceService
	notifier             *NotificationUseCase
	defaultCommissionPct float64
}

func NewOrderUseCase(
	orderRepo repository.OrderRepository,
	contentRepo repository.ContentRepository,
	bidRepo repository.BidRepository,
	requestRepo repository.CustomRequestRepository,
	userRepo repository.UserRepository,
	settingRepo repository.SettingRepository,
	invoices service.InvoiceService,
	notifier *NotificationUseCase,
	defaultCommissionPct float64,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:            orderRepo,
		contentRepo:          contentRepo,
		bidRepo:              bidRepo,
		requestRepo:          requestRepo,
		userRepo:             userRepo,
		settingRepo:          settingRepo,
		invoices:             invoices,
		notifier:             notifier,
		defaultCommissionPct: defaultCommissionPct,
	}
}

type CreateOrderInput struct {
	ContentID       string
	OrderType       string
	BidID           string
	CustomRequestID string
}

// CreateOrder derives the amount from the order type, splits it between
// the platform and the seller, and renders the invoice. A Custom order
// completes its source request with a backreference.
func (uc *OrderUseCase) CreateOrder(ctx context.Context, buyerID string, input CreateOrderInput) (*entity.Order, error) {
	content, err := uc.contentRepo.GetByID(ctx, input.ContentID)
	if err != nil {
		return nil, err
	}
	if content.Status != entity.ContentStatusPublished {
		return nil, errors.InvalidState("Content is not published", nil)
	}

	var amount float64
	var sourceRequest *entity.CustomRequest
	order := &entity.Order{
		BuyerID:   buyerID,
		SellerID:  content.SellerID,
		ContentID: content.ID,
		OrderType: input.OrderType,
	}

	switch input.OrderType {
	case entity.OrderTypeFixed:
		if content.SaleType != entity.SaleTypeFixed && content.SaleType != entity.SaleTypeBoth {
			return nil, errors.InvalidState("Content is not sold at a fixed price", nil)
		}
		amount = content.Price

	case entity.OrderTypeAuction:
		if input.BidID == "" {
			return nil, errors.BadRequest("Auction orders require a bid", nil)
		}
		bid, err := uc.bidRepo.GetByID(ctx, input.BidID)
		if err != nil {
			return nil, err
		}
		if bid.BidderID != buyerID {
			return nil, errors.Forbidden("The bid does not belong to you", nil)
		}
		if bid.ContentID != content.ID {
			return nil, errors.BadRequest("The bid is for different content", nil)
		}
		if bid.Status != entity.BidStatusWon {
			return nil, errors.InvalidState("Only a winning bid can be ordered", nil)
		}
		amount = bid.Amount
		order.BidID = bid.ID

	case entity.OrderTypeCustom:
		if input.CustomRequestID == "" {
			return nil, errors.BadRequest("Custom orders require a custom request", nil)
		}
		request, err := uc.requestRepo.GetByID(ctx, input.CustomRequestID)
		if err != nil {
			return nil, err
		}
		if request.BuyerID != buyerID {
			return nil, errors.Forbidden("The custom request does not belong to you", nil)
		}
		if request.Status != entity.RequestStatusAccepted {
			return nil, errors.InvalidState("The custom request has not been accepted", nil)
		}
		if request.SellerResponse == nil {
			return nil, errors.InvalidState("The custom request has no seller response", nil)
		}
		amount = request.SellerResponse.Price
		order.CustomRequestID = request.ID
		sourceRequest = request

	default:
		return nil, errors.BadRequest("Invalid order type", nil)
	}

	commission, err := uc.commissionPct(ctx)
	if err != nil {
		return nil, err
	}

	order.Amount = amount
	order.PlatformFee = round2(amount * commission / 100)
	order.SellerEarnings = round2(amount - order.PlatformFee)
	order.Status = entity.OrderStatusPending
	order.PaymentStatus = entity.PaymentStatusPending

	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	if sourceRequest != nil {
		sourceRequest.Status = entity.RequestStatusCompleted
		sourceRequest.OrderID = order.ID
		if err := uc.requestRepo.Update(ctx, sourceRequest); err != nil {
			logger.Error("Failed to complete custom request %s for order %s: %v", sourceRequest.ID, order.ID, err)
		}
	}

	uc.attachInvoice(ctx, order)

	uc.notifier.Notify(ctx, order.SellerID, "New order",
		fmt.Sprintf("You received a new %s order for %q.", order.OrderType, content.Title),
		entity.NotificationTypeOrder, order.ID, "Order")

	return order, nil
}

// attachInvoice renders and stores the invoice PDF. Invoice failure does
// not fail the order.
func (uc *OrderUseCase) attachInvoice(ctx context.Context, order *entity.Order) {
	buyer, err := uc.userRepo.GetByID(ctx, order.BuyerID)
	if err != nil {
		logger.Error("Failed to load buyer for invoice on order %s: %v", order.ID, err)
		return
	}
	seller, err := uc.userRepo.GetByID(ctx, order.SellerID)
	if err != nil {
		logger.Error("Failed to load seller for invoice on order %s: %v", order.ID, err)
		return
	}

	url, err := uc.invoices.GenerateInvoice(ctx, order, buyer, seller)
	if err != nil {
		logger.Error("Failed to generate invoice for order %s: %v", order.ID, err)
		return
	}

	order.InvoiceURL = url
	if err := uc.orderRepo.Update(ctx, order); err != nil {
		logger.Error("Failed to store invoice URL on order %s: %v", order.ID, err)
	}
}

func (uc *OrderUseCase) commissionPct(ctx context.Context) (float64, error) {
	setting, err := uc.settingRepo.GetByKey(ctx, entity.SettingCommissionPct)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return uc.defaultCommissionPct, nil
		}
		return 0, err
	}

	switch v := setting.Value.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return uc.defaultCommissionPct, nil
	}
}

func (uc *OrderUseCase) GetOrder(ctx context.Context, callerID string, isAdmin bool, orderID string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.BuyerID != callerID && order.SellerID != callerID && !isAdmin {
		return nil, errors.Forbidden("You cannot view this order", nil)
	}

	return order, nil
}

func (uc *OrderUseCase) ListBuyerOrders(ctx context.Context, buyerID string, limit, offset int) ([]*entity.Order, int64, error) {
	return uc.orderRepo.ListByBuyer(ctx, buyerID, limit, offset)
}

func (uc *OrderUseCase) ListSellerOrders(ctx context.Context, sellerID string, limit, offset int) ([]*entity.Order, int64, error) {
	return uc.orderRepo.ListBySeller(ctx, sellerID, limit, offset)
}

func (uc *OrderUseCase) ListAllOrders(ctx context.Context, limit, offset int) ([]*entity.Order, int64, error) {
	return uc.orderRepo.List(ctx, limit, offset)
}

// UpdateStatus is the admin back-office status override.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, orderID, status string) (*entity.Order, error) {
	switch status {
	case entity.OrderStatusPending, entity.OrderStatusProcessing, entity.OrderStatusCompleted,
		entity.OrderStatusCancelled, entity.OrderStatusRefunded:
	default:
		return nil, errors.BadRequest("Invalid order status", nil)
	}

	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	order.Status = status
	if err := uc.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

// Download hands out the content file for a paid order and records the
// download.
func (uc *OrderUseCase) Download(ctx context.Context, callerID string, isAdmin bool, orderID string) (string, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return "", err
	}

	if order.BuyerID != callerID && !isAdmin {
		return "", errors.Forbidden("You cannot download this order", nil)
	}
	if order.PaymentStatus != entity.PaymentStatusCompleted {
		return "", errors.InvalidState("The order has not been paid", nil)
	}

	content, err := uc.contentRepo.GetByID(ctx, order.ContentID)
	if err != nil {
		return "", err
	}

	now := time.Now()
	order.DownloadCount++
	order.LastDownloaded = &now
	if err := uc.orderRepo.Update(ctx, order); err != nil {
		return "", err
	}

	return content.FileURL, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
