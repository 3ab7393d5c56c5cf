package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"playvault/internal/domain/entity"
	"playvault/pkg/errors"
)

type orderFixture struct {
	uc          *OrderUseCase
	orderRepo   *fakeOrderRepo
	contentRepo *fakeContentRepo
	bidRepo     *fakeBidRepo
	requestRepo *fakeRequestRepo
	userRepo    *fakeUserRepo
	settingRepo *fakeSettingRepo
	invoices    *fakeInvoices
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	f := &orderFixture{
		orderRepo:   newFakeOrderRepo(),
		contentRepo: newFakeContentRepo(),
		bidRepo:     newFakeBidRepo(),
		requestRepo: newFakeRequestRepo(),
		userRepo:    newFakeUserRepo(),
		settingRepo: newFakeSettingRepo(),
		invoices:    &fakeInvoices{},
	}
	notifier, _ := newTestNotifier()
	f.uc = NewOrderUseCase(f.orderRepo, f.contentRepo, f.bidRepo, f.requestRepo,
		f.userRepo, f.settingRepo, f.invoices, notifier, 10)

	ctx := context.Background()
	require.NoError(t, f.userRepo.Create(ctx, &entity.User{ID: "buyer-1", Email: "buyer@example.com", Role: entity.RoleBuyer}))
	require.NoError(t, f.userRepo.Create(ctx, &entity.User{ID: "seller-1", Email: "seller@example.com", Role: entity.RoleSeller}))
	return f
}

func (f *orderFixture) publishedContent(t *testing.T, saleType string, price float64) *entity.Content {
	t.Helper()
	content := &entity.Content{
		SellerID: "seller-1",
		Title:    "Goalkeeper Reflex Training",
		SaleType: saleType,
		Price:    price,
		Status:   entity.ContentStatusPublished,
	}
	if saleType != entity.SaleTypeFixed {
		content.AuctionDetails = &entity.AuctionDetails{StartingBid: 10, MinIncrement: 1}
	}
	require.NoError(t, f.contentRepo.Create(context.Background(), content))
	return content
}

func TestCreateFixedOrderFeeSplit(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	content := f.publishedContent(t, entity.SaleTypeFixed, 100)

	order, err := f.uc.CreateOrder(ctx, "buyer-1", CreateOrderInput{
		ContentID: content.ID,
		OrderType: entity.OrderTypeFixed,
	})
	require.NoError(t, err)

	assert.Equal(t, 100.0, order.Amount)
	assert.Equal(t, 10.0, order.PlatformFee)
	assert.Equal(t, 90.0, order.SellerEarnings)
	assert.InDelta(t, order.Amount, order.PlatformFee+order.SellerEarnings, 1e-9)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, entity.PaymentStatusPending, order.PaymentStatus)
	assert.NotEmpty(t, order.InvoiceURL)
	assert.Equal(t, 1, f.invoices.calls)
}

func TestCreateOrderCommissionFromSettings(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	require.NoError(t, f.settingRepo.Create(ctx, &entity.Setting{
		Key:   entity.SettingCommissionPct,
		Value: 20.0,
		Group: "payment",
	}))
	content := f.publishedContent(t, entity.SaleTypeFixed, 50)

	order, err := f.uc.CreateOrder(ctx, "buyer-1", CreateOrderInput{
		ContentID: content.ID,
		OrderType: entity.OrderTypeFixed,
	})
	require.NoError(t, err)
	assert.Equal(t, 10.0, order.PlatformFee)
	assert.Equal(t, 40.0, order.SellerEarnings)
}

func TestCreateAuctionOrderRequiresWonBid(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	content := f.publishedContent(t, entity.SaleTypeAuction, 0)

	bid, _, err := f.bidRepo.PlaceBid(ctx, placeBidFor(content.ID, "buyer-1", 75))
	require.NoError(t, err)

	// Still Active: not orderable.
	_, err = f.uc.CreateOrder(ctx, "buyer-1", CreateOrderInput{
		ContentID: content.ID,
		OrderType: entity.OrderTypeAuction,
		BidID:     bid.ID,
	})
	assert.True(t, errors.Is(err, "INVALID_STATE"))

	bid.Status = entity.BidStatusWon
	require.NoError(t, f.bidRepo.Update(ctx, bid))

	// Someone else's winning bid is off limits.
	_, err = f.uc.CreateOrder(ctx, "buyer-2", CreateOrderInput{
		ContentID: content.ID,
		OrderType: entity.OrderTypeAuction,
		BidID:     bid.ID,
	})
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	order, err := f.uc.CreateOrder(ctx, "buyer-1", CreateOrderInput{
		ContentID: content.ID,
		OrderType: entity.OrderTypeAuction,
		BidID:     bid.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, 75.0, order.Amount)
	assert.Equal(t, bid.ID, order.BidID)
	assert.InDelta(t, order.Amount, order.PlatformFee+order.SellerEarnings, 1e-9)
}

func TestCreateCustomOrderCompletesRequest(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	content := f.publishedContent(t, entity.SaleTypeFixed, 0)

	request := &entity.CustomRequest{
		BuyerID:  "buyer-1",
		SellerID: "seller-1",
		Title:    "Custom set-piece playbook",
		Budget:   200,
		Status:   entity.RequestStatusAccepted,
		SellerResponse: &entity.SellerResponse{
			Accepted: true,
			Price:    180,
		},
	}
	require.NoError(t, f.requestRepo.Create(ctx, request))

	order, err := f.uc.CreateOrder(ctx, "buyer-1", CreateOrderInput{
		ContentID:       content.ID,
		OrderType:       entity.OrderTypeCustom,
		CustomRequestID: request.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, 180.0, order.Amount)
	assert.InDelta(t, order.Amount, order.PlatformFee+order.SellerEarnings, 1e-9)

	refreshed, err := f.requestRepo.GetByID(ctx, request.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RequestStatusCompleted, refreshed.Status)
	assert.Equal(t, order.ID, refreshed.OrderID)
}

func TestCreateCustomOrderRequiresAcceptedRequest(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	content := f.publishedContent(t, entity.SaleTypeFixed, 0)

	request := &entity.CustomRequest{
		BuyerID:  "buyer-1",
		SellerID: "seller-1",
		Budget:   200,
		Status:   entity.RequestStatusPending,
	}
	require.NoError(t, f.requestRepo.Create(ctx, request))

	_, err := f.uc.CreateOrder(ctx, "buyer-1", CreateOrderInput{
		ContentID:       content.ID,
		OrderType:       entity.OrderTypeCustom,
		CustomRequestID: request.ID,
	})
	assert.True(t, errors.Is(err, "INVALID_STATE"))
}

func TestCreateOrderRejectsUnpublishedContent(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	content := f.publishedContent(t, entity.SaleTypeFixed, 30)
	content.Status = entity.ContentStatusDraft
	require.NoError(t, f.contentRepo.Update(ctx, content))

	_, err := f.uc.CreateOrder(ctx, "buyer-1", CreateOrderInput{
		ContentID: content.ID,
		OrderType: entity.OrderTypeFixed,
	})
	assert.True(t, errors.Is(err, "INVALID_STATE"))
}

func TestCreateOrderSurvivesInvoiceFailure(t *testing.T) {
	f := newOrderFixture(t)
	f.invoices.err = assert.AnError
	ctx := context.Background()
	content := f.publishedContent(t, entity.SaleTypeFixed, 30)

	order, err := f.uc.CreateOrder(ctx, "buyer-1", CreateOrderInput{
		ContentID: content.ID,
		OrderType: entity.OrderTypeFixed,
	})
	require.NoError(t, err)
	assert.Empty(t, order.InvoiceURL)
}

func TestDownloadRequiresPaidOrder(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	content := f.publishedContent(t, entity.SaleTypeFixed, 30)
	content.FileURL = "https://storage.example.com/contents/file/abc.mp4"
	require.NoError(t, f.contentRepo.Update(ctx, content))

	order, err := f.uc.CreateOrder(ctx, "buyer-1", CreateOrderInput{
		ContentID: content.ID,
		OrderType: entity.OrderTypeFixed,
	})
	require.NoError(t, err)

	_, err = f.uc.Download(ctx, "buyer-1", false, order.ID)
	assert.True(t, errors.Is(err, "INVALID_STATE"))

	order.PaymentStatus = entity.PaymentStatusCompleted
	require.NoError(t, f.orderRepo.Update(ctx, order))

	url, err := f.uc.Download(ctx, "buyer-1", false, order.ID)
	require.NoError(t, err)
	assert.Equal(t, content.FileURL, url)

	refreshed, _ := f.orderRepo.GetByID(ctx, order.ID)
	assert.Equal(t, 1, refreshed.DownloadCount)
	assert.NotNil(t, refreshed.LastDownloaded)

	_, err = f.uc.Download(ctx, "buyer-2", false, order.ID)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}
