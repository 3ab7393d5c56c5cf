package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"playvault/internal/domain/entity"
	"playvault/internal/domain/repository"
	"playvault/internal/domain/service"
	"playvault/pkg/errors"
	"playvault/pkg/logger"
)

type PaymentUseCase struct {
	paymentRepo repository.PaymentRepository
	orderRepo   repository.OrderRepository
	userRepo    repository.UserRepository
	gateway     service.PaymentGateway
	verifier    service.WebhookVerifier
	notifier    *NotificationUseCase
}

func NewPaymentUseCase(
	paymentRepo repository.PaymentRepository,
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
	gateway service.PaymentGateway,
	verifier service.WebhookVerifier,
	notifier *NotificationUseCase,
) *PaymentUseCase {
	return &PaymentUseCase{
		paymentRepo: paymentRepo,
		orderRepo:   orderRepo,
		userRepo:    userRepo,
		gateway:     gateway,
		verifier:    verifier,
		notifier:    notifier,
	}
}

type CreateIntentResult struct {
	PaymentIntentID string `json:"payment_intent_id"`
	ClientSecret    string `json:"client_secret"`
}

// CreateIntent opens a payment intent at the gateway for the order amount.
func (uc *PaymentUseCase) CreateIntent(ctx context.Context, callerID string, isAdmin bool, orderID string) (*CreateIntentResult, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.BuyerID != callerID && !isAdmin {
		return nil, errors.Forbidden("You can only pay for your own orders", nil)
	}
	if order.PaymentStatus == entity.PaymentStatusCompleted {
		return nil, errors.InvalidState("The order is already paid", nil)
	}

	intent, err := uc.gateway.CreateIntent(ctx, service.CreateIntentRequest{
		Amount:   toCents(order.Amount),
		Currency: "usd",
		Metadata: map[string]string{
			"order_id": order.ID,
		},
	})
	if err != nil {
		return nil, errors.External("Failed to create payment intent", err)
	}

	order.PaymentIntentID = intent.ID
	if err := uc.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	return &CreateIntentResult{
		PaymentIntentID: intent.ID,
		ClientSecret:    intent.ClientSecret,
	}, nil
}

// ConfirmPayment settles an order after the client reports success. The
// gateway is always consulted; a client-asserted success is never trusted
// on its own.
func (uc *PaymentUseCase) ConfirmPayment(ctx context.Context, callerID string, isAdmin bool, orderID, paymentIntentID string) (*entity.Payment, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.BuyerID != callerID && !isAdmin {
		return nil, errors.Forbidden("You can only confirm your own orders", nil)
	}
	if order.PaymentStatus == entity.PaymentStatusCompleted {
		return nil, errors.InvalidState("The order is already paid", nil)
	}

	intent, err := uc.gateway.GetIntent(ctx, paymentIntentID)
	if err != nil {
		return nil, errors.External("Failed to retrieve payment intent", err)
	}
	if intent.Status != service.IntentStatusSucceeded {
		return nil, errors.InvalidState("The payment has not succeeded", nil)
	}

	return uc.settleOrder(ctx, order, paymentIntentID)
}

// webhookEvent is the subset of the provider's event schema we consume.
type webhookEvent struct {
	Type string `json:"type"`
	Data struct {
		Object struct {
			ID       string            `json:"id"`
			Status   string            `json:"status"`
			Metadata map[string]string `json:"metadata"`
		} `json:"object"`
	} `json:"data"`
}

// HandleWebhook verifies the provider signature and settles the referenced
// order. Delivery is at-least-once; the settlement path is idempotent, so
// a replayed event reports success without creating a second payment.
func (uc *PaymentUseCase) HandleWebhook(ctx context.Context, payload []byte, signatureHeader string) error {
	if err := uc.verifier.Verify(payload, signatureHeader); err != nil {
		return errors.Unauthorized("Invalid webhook signature", err)
	}

	var event webhookEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return errors.BadRequest("Malformed webhook payload", err)
	}

	if event.Type != "payment_intent.succeeded" {
		logger.Debug("Ignoring webhook event type %s", event.Type)
		return nil
	}

	orderID := event.Data.Object.Metadata["order_id"]
	if orderID == "" {
		return errors.BadRequest("Webhook event carries no order reference", nil)
	}

	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}

	if order.PaymentStatus == entity.PaymentStatusCompleted {
		// Replay of an already-settled order.
		return nil
	}

	_, err = uc.settleOrder(ctx, order, event.Data.Object.ID)
	return err
}

// settleOrder marks the order paid and records the Payment. The Payment
// document is keyed by the intent ID and created conditionally, so two
// deliveries for the same intent collapse onto one record.
func (uc *PaymentUseCase) settleOrder(ctx context.Context, order *entity.Order, paymentIntentID string) (*entity.Payment, error) {
	payment := &entity.Payment{
		OrderID:         order.ID,
		BuyerID:         order.BuyerID,
		SellerID:        order.SellerID,
		Amount:          order.Amount,
		PlatformFee:     order.PlatformFee,
		SellerEarnings:  order.SellerEarnings,
		PaymentMethod:   "card",
		PaymentIntentID: paymentIntentID,
		Status:          entity.PaymentStatusCompleted,
		PayoutStatus:    entity.PayoutStatusPending,
	}

	stored, created, err := uc.paymentRepo.CreateIfAbsent(ctx, payment)
	if err != nil {
		return nil, err
	}

	order.PaymentStatus = entity.PaymentStatusCompleted
	order.Status = entity.OrderStatusCompleted
	order.PaymentIntentID = paymentIntentID
	if err := uc.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	if created {
		uc.notifier.Notify(ctx, order.BuyerID, "Payment received",
			fmt.Sprintf("Your payment of $%.2f for order %s was received.", order.Amount, order.ID),
			entity.NotificationTypePayment, stored.ID, "Payment")
		uc.notifier.Notify(ctx, order.SellerID, "Content sold",
			fmt.Sprintf("Order %s was paid. Your earnings of $%.2f are pending payout.", order.ID, order.SellerEarnings),
			entity.NotificationTypePayment, stored.ID, "Payment")
	}

	return stored, nil
}

// ProcessPayout transfers the seller's earnings for a settled payment.
// A failed transfer leaves the payout status untouched.
func (uc *PaymentUseCase) ProcessPayout(ctx context.Context, paymentID string) (*entity.Payment, error) {
	payment, err := uc.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	if payment.Status != entity.PaymentStatusCompleted {
		return nil, errors.InvalidState("The payment has not settled", nil)
	}
	if payment.PayoutStatus == entity.PayoutStatusCompleted {
		return nil, errors.InvalidState("The payout has already been processed", nil)
	}

	seller, err := uc.userRepo.GetByID(ctx, payment.SellerID)
	if err != nil {
		return nil, err
	}
	if seller.PaymentInfo == nil || seller.PaymentInfo.ConnectID == "" {
		return nil, errors.InvalidState("The seller has no payout destination configured", nil)
	}

	transfer, err := uc.gateway.CreateTransfer(ctx, service.TransferRequest{
		Amount:        toCents(payment.SellerEarnings),
		Currency:      "usd",
		Destination:   seller.PaymentInfo.ConnectID,
		TransferGroup: payment.OrderID,
	})
	if err != nil {
		return nil, errors.External("Failed to create transfer", err)
	}

	now := time.Now()
	payment.PayoutStatus = entity.PayoutStatusCompleted
	payment.PayoutID = transfer.ID
	payment.PayoutDate = &now
	if err := uc.paymentRepo.Update(ctx, payment); err != nil {
		return nil, err
	}

	uc.notifier.Notify(ctx, payment.SellerID, "Payout sent",
		fmt.Sprintf("Your earnings of $%.2f for order %s have been transferred.", payment.SellerEarnings, payment.OrderID),
		entity.NotificationTypePayment, payment.ID, "Payment")

	return payment, nil
}

func (uc *PaymentUseCase) GetPayment(ctx context.Context, callerID string, isAdmin bool, paymentID string) (*entity.Payment, error) {
	payment, err := uc.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	if payment.BuyerID != callerID && payment.SellerID != callerID && !isAdmin {
		return nil, errors.Forbidden("You cannot view this payment", nil)
	}

	return payment, nil
}

func (uc *PaymentUseCase) ListBuyerPayments(ctx context.Context, buyerID string, limit, offset int) ([]*entity.Payment, int64, error) {
	return uc.paymentRepo.ListByBuyer(ctx, buyerID, limit, offset)
}

func (uc *PaymentUseCase) ListSellerPayments(ctx context.Context, sellerID string, limit, offset int) ([]*entity.Payment, int64, error) {
	return uc.paymentRepo.ListBySeller(ctx, sellerID, limit, offset)
}

func (uc *PaymentUseCase) ListAllPayments(ctx context.Context, limit, offset int) ([]*entity.Payment, int64, error) {
	return uc.paymentRepo.List(ctx, limit, offset)
}

func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
