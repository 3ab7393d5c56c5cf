package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"playvault/internal/domain/entity"
	"playvault/pkg/errors"
)

type paymentFixture struct {
	uc          *PaymentUseCase
	paymentRepo *fakePaymentRepo
	orderRepo   *fakeOrderRepo
	userRepo    *fakeUserRepo
	gateway     *fakeGateway
	verifier    *fakeVerifier
}

func newPaymentFixture(t *testing.T) *paymentFixture {
	t.Helper()
	f := &paymentFixture{
		paymentRepo: newFakePaymentRepo(),
		orderRepo:   newFakeOrderRepo(),
		userRepo:    newFakeUserRepo(),
		gateway:     newFakeGateway(),
		verifier:    &fakeVerifier{},
	}
	notifier, _ := newTestNotifier()
	f.uc = NewPaymentUseCase(f.paymentRepo, f.orderRepo, f.userRepo, f.gateway, f.verifier, notifier)

	ctx := context.Background()
	require.NoError(t, f.userRepo.Create(ctx, &entity.User{ID: "buyer-1", Role: entity.RoleBuyer}))
	require.NoError(t, f.userRepo.Create(ctx, &entity.User{
		ID:          "seller-1",
		Role:        entity.RoleSeller,
		PaymentInfo: &entity.PaymentInfo{ConnectID: "acct_123"},
	}))
	return f
}

func (f *paymentFixture) pendingOrder(t *testing.T) *entity.Order {
	t.Helper()
	order := &entity.Order{
		BuyerID:        "buyer-1",
		SellerID:       "seller-1",
		ContentID:      "content-1",
		OrderType:      entity.OrderTypeFixed,
		Amount:         100,
		PlatformFee:    10,
		SellerEarnings: 90,
		Status:         entity.OrderStatusPending,
		PaymentStatus:  entity.PaymentStatusPending,
	}
	require.NoError(t, f.orderRepo.Create(context.Background(), order))
	return order
}

func webhookPayload(intentID, orderID string) []byte {
	return []byte(fmt.Sprintf(
		`{"type":"payment_intent.succeeded","data":{"object":{"id":%q,"status":"succeeded","metadata":{"order_id":%q}}}}`,
		intentID, orderID))
}

func TestCreateIntent(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.Background()
	order := f.pendingOrder(t)

	result, err := f.uc.CreateIntent(ctx, "buyer-1", false, order.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, result.PaymentIntentID)
	assert.NotEmpty(t, result.ClientSecret)

	refreshed, _ := f.orderRepo.GetByID(ctx, order.ID)
	assert.Equal(t, result.PaymentIntentID, refreshed.PaymentIntentID)

	intent, err := f.gateway.GetIntent(ctx, result.PaymentIntentID)
	require.NoError(t, err)
	assert.Equal(t, int64(10000), intent.Amount)
	assert.Equal(t, order.ID, intent.Metadata["order_id"])

	// Only the buyer (or an admin) may pay.
	_, err = f.uc.CreateIntent(ctx, "buyer-2", false, order.ID)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestConfirmPaymentSettlesOrder(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.Background()
	order := f.pendingOrder(t)

	result, err := f.uc.CreateIntent(ctx, "buyer-1", false, order.ID)
	require.NoError(t, err)

	// The gateway has not confirmed the charge yet.
	_, err = f.uc.ConfirmPayment(ctx, "buyer-1", false, order.ID, result.PaymentIntentID)
	assert.True(t, errors.Is(err, "INVALID_STATE"))

	f.gateway.succeed(result.PaymentIntentID)

	payment, err := f.uc.ConfirmPayment(ctx, "buyer-1", false, order.ID, result.PaymentIntentID)
	require.NoError(t, err)
	assert.Equal(t, result.PaymentIntentID, payment.ID)
	assert.Equal(t, entity.PayoutStatusPending, payment.PayoutStatus)
	assert.Equal(t, order.Amount, payment.Amount)
	assert.InDelta(t, payment.Amount, payment.PlatformFee+payment.SellerEarnings, 1e-9)

	refreshed, _ := f.orderRepo.GetByID(ctx, order.ID)
	assert.Equal(t, entity.PaymentStatusCompleted, refreshed.PaymentStatus)
	assert.Equal(t, entity.OrderStatusCompleted, refreshed.Status)
}

func TestConfirmPaymentRejectsSettledOrder(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.Background()
	order := f.pendingOrder(t)

	result, err := f.uc.CreateIntent(ctx, "buyer-1", false, order.ID)
	require.NoError(t, err)
	f.gateway.succeed(result.PaymentIntentID)

	_, err = f.uc.ConfirmPayment(ctx, "buyer-1", false, order.ID, result.PaymentIntentID)
	require.NoError(t, err)

	_, err = f.uc.ConfirmPayment(ctx, "buyer-1", false, order.ID, result.PaymentIntentID)
	assert.True(t, errors.Is(err, "INVALID_STATE"))
	assert.Equal(t, 1, f.paymentRepo.count())
}

func TestWebhookSettlesOrder(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.Background()
	order := f.pendingOrder(t)

	err := f.uc.HandleWebhook(ctx, webhookPayload("pi_hook", order.ID), "t=1,v1=sig")
	require.NoError(t, err)

	refreshed, _ := f.orderRepo.GetByID(ctx, order.ID)
	assert.Equal(t, entity.PaymentStatusCompleted, refreshed.PaymentStatus)

	payment, err := f.paymentRepo.GetByIntentID(ctx, "pi_hook")
	require.NoError(t, err)
	assert.Equal(t, order.ID, payment.OrderID)
}

func TestWebhookDuplicateDeliverySuppressed(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.Background()
	order := f.pendingOrder(t)
	payload := webhookPayload("pi_dup", order.ID)

	require.NoError(t, f.uc.HandleWebhook(ctx, payload, "t=1,v1=sig"))
	require.NoError(t, f.uc.HandleWebhook(ctx, payload, "t=1,v1=sig"))

	assert.Equal(t, 1, f.paymentRepo.count())
}

func TestWebhookRejectsBadSignature(t *testing.T) {
	f := newPaymentFixture(t)
	f.verifier.err = assert.AnError
	ctx := context.Background()
	order := f.pendingOrder(t)

	err := f.uc.HandleWebhook(ctx, webhookPayload("pi_bad", order.ID), "t=1,v1=forged")
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
	assert.Equal(t, 0, f.paymentRepo.count())

	refreshed, _ := f.orderRepo.GetByID(ctx, order.ID)
	assert.Equal(t, entity.PaymentStatusPending, refreshed.PaymentStatus)
}

func TestWebhookIgnoresOtherEventTypes(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.Background()

	payload := []byte(`{"type":"payment_intent.created","data":{"object":{"id":"pi_x","metadata":{}}}}`)
	require.NoError(t, f.uc.HandleWebhook(ctx, payload, "t=1,v1=sig"))
	assert.Equal(t, 0, f.paymentRepo.count())
}

func TestProcessPayout(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.Background()
	order := f.pendingOrder(t)

	require.NoError(t, f.uc.HandleWebhook(ctx, webhookPayload("pi_payout", order.ID), "t=1,v1=sig"))

	payment, err := f.uc.ProcessPayout(ctx, "pi_payout")
	require.NoError(t, err)
	assert.Equal(t, entity.PayoutStatusCompleted, payment.PayoutStatus)
	assert.NotEmpty(t, payment.PayoutID)
	assert.NotNil(t, payment.PayoutDate)

	require.Len(t, f.gateway.transfers, 1)
	assert.Equal(t, int64(9000), f.gateway.transfers[0].Amount)
	assert.Equal(t, "acct_123", f.gateway.transfers[0].Destination)

	// Already paid out.
	_, err = f.uc.ProcessPayout(ctx, "pi_payout")
	assert.True(t, errors.Is(err, "INVALID_STATE"))
}

func TestProcessPayoutTransferFailureLeavesStateUntouched(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.Background()
	order := f.pendingOrder(t)

	require.NoError(t, f.uc.HandleWebhook(ctx, webhookPayload("pi_fail", order.ID), "t=1,v1=sig"))

	f.gateway.transferErr = assert.AnError
	_, err := f.uc.ProcessPayout(ctx, "pi_fail")
	assert.True(t, errors.Is(err, "EXTERNAL_ERROR"))

	payment, _ := f.paymentRepo.GetByID(ctx, "pi_fail")
	assert.Equal(t, entity.PayoutStatusPending, payment.PayoutStatus)
	assert.Empty(t, payment.PayoutID)
}

func TestProcessPayoutRequiresConnectID(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.Background()

	seller, _ := f.userRepo.GetByID(ctx, "seller-1")
	seller.PaymentInfo = nil
	require.NoError(t, f.userRepo.Update(ctx, seller))

	order := f.pendingOrder(t)
	require.NoError(t, f.uc.HandleWebhook(ctx, webhookPayload("pi_noconnect", order.ID), "t=1,v1=sig"))

	_, err := f.uc.ProcessPayout(ctx, "pi_noconnect")
	assert.True(t, errors.Is(err, "INVALID_STATE"))
}
