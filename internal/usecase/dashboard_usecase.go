package usecase

import (
	"context"

	"playvault/internal/domain/entity"
	"playvault/internal/domain/repository"
)

type DashboardUseCase struct {
	userRepo    repository.UserRepository
	contentRepo repository.ContentRepository
	orderRepo   repository.OrderRepository
}

func NewDashboardUseCase(
	userRepo repository.UserRepository,
	contentRepo repository.ContentRepository,
	orderRepo repository.OrderRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		userRepo:    userRepo,
		contentRepo: contentRepo,
		orderRepo:   orderRepo,
	}
}

type AdminDashboard struct {
	TotalUsers    int64   `json:"total_users"`
	TotalContents int64   `json:"total_contents"`
	TotalOrders   int64   `json:"total_orders"`
	GrossRevenue  float64 `json:"gross_revenue"`
	PlatformFees  float64 `json:"platform_fees"`
}

func (uc *DashboardUseCase) AdminSummary(ctx context.Context) (*AdminDashboard, error) {
	users, err := uc.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	contents, err := uc.contentRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := uc.orderRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	gross, fees, err := uc.orderRepo.RevenueTotals(ctx)
	if err != nil {
		return nil, err
	}

	return &AdminDashboard{
		TotalUsers:    users,
		TotalContents: contents,
		TotalOrders:   orders,
		GrossRevenue:  gross,
		PlatformFees:  fees,
	}, nil
}

type SellerDashboard struct {
	TotalListings   int64   `json:"total_listings"`
	TotalSales      int     `json:"total_sales"`
	TotalEarnings   float64 `json:"total_earnings"`
	PendingEarnings float64 `json:"pending_earnings"`
}

func (uc *DashboardUseCase) SellerSummary(ctx context.Context, sellerID string) (*SellerDashboard, error) {
	_, listings, err := uc.contentRepo.ListBySellerID(ctx, sellerID, "", 1, 0)
	if err != nil {
		return nil, err
	}

	orders, _, err := uc.orderRepo.ListBySeller(ctx, sellerID, 0, 0)
	if err != nil {
		return nil, err
	}

	summary := &SellerDashboard{TotalListings: listings}
	for _, order := range orders {
		switch order.PaymentStatus {
		case entity.PaymentStatusCompleted:
			summary.TotalSales++
			summary.TotalEarnings += order.SellerEarnings
		case entity.PaymentStatusPending:
			summary.PendingEarnings += order.SellerEarnings
		}
	}

	return summary, nil
}

type BuyerDashboard struct {
	TotalPurchases int     `json:"total_purchases"`
	TotalSpent     float64 `json:"total_spent"`
	PendingOrders  int     `json:"pending_orders"`
}

func (uc *DashboardUseCase) BuyerSummary(ctx context.Context, buyerID string) (*BuyerDashboard, error) {
	orders, _, err := uc.orderRepo.ListByBuyer(ctx, buyerID, 0, 0)
	if err != nil {
		return nil, err
	}

	summary := &BuyerDashboard{}
	for _, order := range orders {
		switch order.PaymentStatus {
		case entity.PaymentStatusCompleted:
			summary.TotalPurchases++
			summary.TotalSpent += order.Amount
		case entity.PaymentStatusPending:
			summary.PendingOrders++
		}
	}

	return summary, nil
}
