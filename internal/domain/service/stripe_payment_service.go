package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"playvault/pkg/logger"
)

// StripePaymentService talks to the Stripe REST API over plain HTTP.
type StripePaymentService struct {
	secretKey  string
	baseURL    string
	httpClient *http.Client
}

func NewStripePaymentService(secretKey string) *StripePaymentService {
	return &StripePaymentService{
		secretKey: secretKey,
		baseURL:   "https://api.stripe.com/v1",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (s *StripePaymentService) CreateIntent(ctx context.Context, req CreateIntentRequest) (*PaymentIntent, error) {
	logger.Info("Creating payment intent: amount=%d %s", req.Amount, req.Currency)

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(req.Amount, 10))
	form.Set("currency", req.Currency)
	for key, value := range req.Metadata {
		form.Set(fmt.Sprintf("metadata[%s]", key), value)
	}

	var intent PaymentIntent
	if err := s.post(ctx, "/payment_intents", form, &intent); err != nil {
		return nil, err
	}

	return &intent, nil
}

func (s *StripePaymentService) GetIntent(ctx context.Context, id string) (*PaymentIntent, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/payment_intents/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+s.secretKey)

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to reach payment provider: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("payment provider returned status %d: %s", resp.StatusCode, string(body))
	}

	var intent PaymentIntent
	if err := json.Unmarshal(body, &intent); err != nil {
		return nil, fmt.Errorf("failed to parse intent response: %v", err)
	}

	return &intent, nil
}

func (s *StripePaymentService) CreateTransfer(ctx context.Context, req TransferRequest) (*Transfer, error) {
	logger.Info("Creating transfer: amount=%d %s destination=%s", req.Amount, req.Currency, req.Destination)

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(req.Amount, 10))
	form.Set("currency", req.Currency)
	form.Set("destination", req.Destination)
	if req.TransferGroup != "" {
		form.Set("transfer_group", req.TransferGroup)
	}

	var transfer Transfer
	if err := s.post(ctx, "/transfers", form, &transfer); err != nil {
		return nil, err
	}

	return &transfer, nil
}

func (s *StripePaymentService) post(ctx context.Context, path string, form url.Values, out interface{}) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create request: %v", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+s.secretKey)
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to reach payment provider: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("payment provider returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse provider response: %v", err)
	}

	return nil
}
