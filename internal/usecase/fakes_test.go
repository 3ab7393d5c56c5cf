package usecase

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"playvault/internal/domain/entity"
	"playvault/internal/domain/repository"
	"playvault/internal/domain/service"
	"playvault/pkg/errors"
)

// In-memory repository fakes. The bid fake mirrors the store-side placement
// contract (floor check, update-in-place, outbid) so the usecase scenarios
// run end to end.

type fakeBidRepo struct {
	mu   sync.Mutex
	bids map[string]*entity.Bid
	seq  int
}

func newFakeBidRepo() *fakeBidRepo {
	return &fakeBidRepo{bids: make(map[string]*entity.Bid)}
}

func (r *fakeBidRepo) PlaceBid(_ context.Context, input repository.PlaceBidInput) (*entity.Bid, *entity.Bid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var highest, existing *entity.Bid
	for _, b := range r.bids {
		if b.ContentID != input.ContentID || b.Status != entity.BidStatusActive {
			continue
		}
		if highest == nil || b.Amount > highest.Amount {
			highest = b
		}
		if b.BidderID == input.BidderID {
			existing = b
		}
	}

	if highest != nil && input.Amount < highest.Amount+input.MinIncrement {
		return nil, nil, errors.InvalidState("Bid amount is below the current highest bid plus the minimum increment", nil)
	}

	now := time.Now()
	maxAuto := input.MaxAutoBidAmount
	if maxAuto == 0 {
		maxAuto = input.Amount
	}

	var placed *entity.Bid
	if existing != nil {
		existing.Amount = input.Amount
		existing.IsAutoBid = input.IsAutoBid
		existing.MaxAutoBidAmount = maxAuto
		existing.UpdatedAt = now
		placed = existing
	} else {
		r.seq++
		placed = &entity.Bid{
			ID:               fmt.Sprintf("bid-%d", r.seq),
			ContentID:        input.ContentID,
			BidderID:         input.BidderID,
			Amount:           input.Amount,
			Status:           entity.BidStatusActive,
			IsAutoBid:        input.IsAutoBid,
			MaxAutoBidAmount: maxAuto,
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		r.bids[placed.ID] = placed
	}

	var outbid *entity.Bid
	if highest != nil && highest.ID != placed.ID {
		highest.Status = entity.BidStatusOutbid
		highest.UpdatedAt = now
		outbid = highest
	}

	return placed, outbid, nil
}

func (r *fakeBidRepo) GetByID(_ context.Context, id string) (*entity.Bid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b, ok := r.bids[id]; ok {
		return b, nil
	}
	return nil, errors.NotFound("Bid", nil)
}

func (r *fakeBidRepo) Update(_ context.Context, bid *entity.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bids[bid.ID] = bid
	return nil
}

func (r *fakeBidRepo) ListActiveByContent(_ context.Context, contentID string) ([]*entity.Bid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Bid
	for _, b := range r.bids {
		if b.ContentID == contentID && b.Status == entity.BidStatusActive {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Amount > out[j].Amount })
	return out, nil
}

func (r *fakeBidRepo) ListByContent(_ context.Context, contentID string) ([]*entity.Bid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Bid
	for _, b := range r.bids {
		if b.ContentID == contentID {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Amount > out[j].Amount })
	return out, nil
}

func (r *fakeBidRepo) ListByBidder(_ context.Context, bidderID string, limit, offset int) ([]*entity.Bid, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Bid
	for _, b := range r.bids {
		if b.BidderID == bidderID {
			out = append(out, b)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeBidRepo) List(_ context.Context, limit, offset int) ([]*entity.Bid, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Bid
	for _, b := range r.bids {
		out = append(out, b)
	}
	return out, int64(len(out)), nil
}

type fakeContentRepo struct {
	mu       sync.Mutex
	contents map[string]*entity.Content
	seq      int
}

func newFakeContentRepo() *fakeContentRepo {
	return &fakeContentRepo{contents: make(map[string]*entity.Content)}
}

func (r *fakeContentRepo) Create(_ context.Context, content *entity.Content) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if content.ID == "" {
		r.seq++
		content.ID = fmt.Sprintf("content-%d", r.seq)
	}
	content.CreatedAt = time.Now()
	content.UpdatedAt = content.CreatedAt
	r.contents[content.ID] = content
	return nil
}

func (r *fakeContentRepo) GetByID(_ context.Context, id string) (*entity.Content, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.contents[id]; ok {
		return c, nil
	}
	return nil, errors.NotFound("Content", nil)
}

func (r *fakeContentRepo) Update(_ context.Context, content *entity.Content) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	content.UpdatedAt = time.Now()
	r.contents[content.ID] = content
	return nil
}

func (r *fakeContentRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.contents, id)
	return nil
}

func (r *fakeContentRepo) List(_ context.Context, filter repository.ContentFilter, sort string, limit, offset int) ([]*entity.Content, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Content
	for _, c := range r.contents {
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		if filter.Visibility != "" && c.Visibility != filter.Visibility {
			continue
		}
		if filter.Sport != "" && c.Sport != filter.Sport {
			continue
		}
		if filter.SellerID != "" && c.SellerID != filter.SellerID {
			continue
		}
		out = append(out, c)
	}
	return out, int64(len(out)), nil
}

func (r *fakeContentRepo) ListBySellerID(_ context.Context, sellerID string, status string, limit, offset int) ([]*entity.Content, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Content
	for _, c := range r.contents {
		if c.SellerID != sellerID {
			continue
		}
		if status != "" && c.Status != status {
			continue
		}
		out = append(out, c)
	}
	return out, int64(len(out)), nil
}

func (r *fakeContentRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.contents)), nil
}

type fakeOrderRepo struct {
	mu     sync.Mutex
	orders map[string]*entity.Order
	seq    int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*entity.Order)}
}

func (r *fakeOrderRepo) Create(_ context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if order.ID == "" {
		r.seq++
		order.ID = fmt.Sprintf("order-%d", r.seq)
	}
	order.CreatedAt = time.Now()
	order.UpdatedAt = order.CreatedAt
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if o, ok := r.orders[id]; ok {
		return o, nil
	}
	return nil, errors.NotFound("Order", nil)
}

func (r *fakeOrderRepo) Update(_ context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	order.UpdatedAt = time.Now()
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) ListByBuyer(_ context.Context, buyerID string, limit, offset int) ([]*entity.Order, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Order
	for _, o := range r.orders {
		if o.BuyerID == buyerID {
			out = append(out, o)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeOrderRepo) ListBySeller(_ context.Context, sellerID string, limit, offset int) ([]*entity.Order, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Order
	for _, o := range r.orders {
		if o.SellerID == sellerID {
			out = append(out, o)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeOrderRepo) List(_ context.Context, limit, offset int) ([]*entity.Order, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Order
	for _, o := range r.orders {
		out = append(out, o)
	}
	return out, int64(len(out)), nil
}

func (r *fakeOrderRepo) FindCompletedByBuyerAndContent(_ context.Context, buyerID, contentID string) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.orders {
		if o.BuyerID == buyerID && o.ContentID == contentID && o.Status == entity.OrderStatusCompleted {
			return o, nil
		}
	}
	return nil, errors.NotFound("Completed order for content", nil)
}

func (r *fakeOrderRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.orders)), nil
}

func (r *fakeOrderRepo) RevenueTotals(_ context.Context) (float64, float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var gross, fees float64
	for _, o := range r.orders {
		if o.Status == entity.OrderStatusCompleted {
			gross += o.Amount
			fees += o.PlatformFee
		}
	}
	return gross, fees, nil
}

type fakePaymentRepo struct {
	mu       sync.Mutex
	payments map[string]*entity.Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[string]*entity.Payment)}
}

func (r *fakePaymentRepo) CreateIfAbsent(_ context.Context, payment *entity.Payment) (*entity.Payment, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.payments[payment.PaymentIntentID]; ok {
		return existing, false, nil
	}
	payment.ID = payment.PaymentIntentID
	payment.CreatedAt = time.Now()
	r.payments[payment.ID] = payment
	return payment, true, nil
}

func (r *fakePaymentRepo) GetByID(_ context.Context, id string) (*entity.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.payments[id]; ok {
		return p, nil
	}
	return nil, errors.NotFound("Payment", nil)
}

func (r *fakePaymentRepo) GetByIntentID(_ context.Context, intentID string) (*entity.Payment, error) {
	return r.GetByID(context.Background(), intentID)
}

func (r *fakePaymentRepo) Update(_ context.Context, payment *entity.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payments[payment.ID] = payment
	return nil
}

func (r *fakePaymentRepo) ListByBuyer(_ context.Context, buyerID string, limit, offset int) ([]*entity.Payment, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Payment
	for _, p := range r.payments {
		if p.BuyerID == buyerID {
			out = append(out, p)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakePaymentRepo) ListBySeller(_ context.Context, sellerID string, limit, offset int) ([]*entity.Payment, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Payment
	for _, p := range r.payments {
		if p.SellerID == sellerID {
			out = append(out, p)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakePaymentRepo) List(_ context.Context, limit, offset int) ([]*entity.Payment, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Payment
	for _, p := range r.payments {
		out = append(out, p)
	}
	return out, int64(len(out)), nil
}

func (r *fakePaymentRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.payments)
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.UpdatedAt = time.Now()
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) List(_ context.Context, role string, limit, offset int) ([]*entity.User, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.User
	for _, u := range r.users {
		if role != "" && u.Role != role {
			continue
		}
		out = append(out, u)
	}
	return out, int64(len(out)), nil
}

func (r *fakeUserRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.users)), nil
}

type fakeReviewRepo struct {
	mu      sync.Mutex
	reviews map[string]*entity.Review
	seq     int
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[string]*entity.Review)}
}

func (r *fakeReviewRepo) Create(_ context.Context, review *entity.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	review.ID = fmt.Sprintf("review-%d", r.seq)
	review.CreatedAt = time.Now()
	review.UpdatedAt = review.CreatedAt
	r.reviews[review.ID] = review
	return nil
}

func (r *fakeReviewRepo) GetByID(_ context.Context, id string) (*entity.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if rv, ok := r.reviews[id]; ok {
		return rv, nil
	}
	return nil, errors.NotFound("Review", nil)
}

func (r *fakeReviewRepo) GetByContentAndUser(_ context.Context, contentID, userID string) (*entity.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rv := range r.reviews {
		if rv.ContentID == contentID && rv.UserID == userID {
			return rv, nil
		}
	}
	return nil, errors.NotFound("Review", nil)
}

func (r *fakeReviewRepo) Update(_ context.Context, review *entity.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	review.UpdatedAt = time.Now()
	r.reviews[review.ID] = review
	return nil
}

func (r *fakeReviewRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.reviews, id)
	return nil
}

func (r *fakeReviewRepo) ListByContent(_ context.Context, contentID string) ([]*entity.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Review
	for _, rv := range r.reviews {
		if rv.ContentID == contentID {
			out = append(out, rv)
		}
	}
	return out, nil
}

func (r *fakeReviewRepo) ListByContents(_ context.Context, contentIDs []string, limit, offset int) ([]*entity.Review, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make(map[string]bool, len(contentIDs))
	for _, id := range contentIDs {
		ids[id] = true
	}
	var out []*entity.Review
	for _, rv := range r.reviews {
		if ids[rv.ContentID] {
			out = append(out, rv)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeReviewRepo) List(_ context.Context, limit, offset int) ([]*entity.Review, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Review
	for _, rv := range r.reviews {
		out = append(out, rv)
	}
	return out, int64(len(out)), nil
}

type fakeRequestRepo struct {
	mu       sync.Mutex
	requests map[string]*entity.CustomRequest
	seq      int
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: make(map[string]*entity.CustomRequest)}
}

func (r *fakeRequestRepo) Create(_ context.Context, request *entity.CustomRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	request.ID = fmt.Sprintf("request-%d", r.seq)
	request.CreatedAt = time.Now()
	request.UpdatedAt = request.CreatedAt
	r.requests[request.ID] = request
	return nil
}

func (r *fakeRequestRepo) GetByID(_ context.Context, id string) (*entity.CustomRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if req, ok := r.requests[id]; ok {
		return req, nil
	}
	return nil, errors.NotFound("Custom request", nil)
}

func (r *fakeRequestRepo) Update(_ context.Context, request *entity.CustomRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	request.UpdatedAt = time.Now()
	r.requests[request.ID] = request
	return nil
}

func (r *fakeRequestRepo) ListByBuyer(_ context.Context, buyerID string, limit, offset int) ([]*entity.CustomRequest, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.CustomRequest
	for _, req := range r.requests {
		if req.BuyerID == buyerID {
			out = append(out, req)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeRequestRepo) ListBySeller(_ context.Context, sellerID string, limit, offset int) ([]*entity.CustomRequest, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.CustomRequest
	for _, req := range r.requests {
		if req.SellerID == sellerID {
			out = append(out, req)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeRequestRepo) List(_ context.Context, limit, offset int) ([]*entity.CustomRequest, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.CustomRequest
	for _, req := range r.requests {
		out = append(out, req)
	}
	return out, int64(len(out)), nil
}

type fakeSettingRepo struct {
	mu       sync.Mutex
	settings map[string]*entity.Setting
}

func newFakeSettingRepo() *fakeSettingRepo {
	return &fakeSettingRepo{settings: make(map[string]*entity.Setting)}
}

func (r *fakeSettingRepo) Create(_ context.Context, setting *entity.Setting) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	setting.ID = setting.Key
	r.settings[setting.Key] = setting
	return nil
}

func (r *fakeSettingRepo) GetByKey(_ context.Context, key string) (*entity.Setting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.settings[key]; ok {
		return s, nil
	}
	return nil, errors.NotFound("Setting", nil)
}

func (r *fakeSettingRepo) Update(_ context.Context, setting *entity.Setting) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings[setting.Key] = setting
	return nil
}

func (r *fakeSettingRepo) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.settings, key)
	return nil
}

func (r *fakeSettingRepo) List(_ context.Context, group string, publicOnly bool) ([]*entity.Setting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Setting
	for _, s := range r.settings {
		if group != "" && s.Group != group {
			continue
		}
		if publicOnly && !s.IsPublic {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

type fakeNotificationRepo struct {
	mu            sync.Mutex
	notifications []*entity.Notification
	seq           int
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{}
}

func (r *fakeNotificationRepo) Create(_ context.Context, n *entity.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	n.ID = fmt.Sprintf("notification-%d", r.seq)
	n.CreatedAt = time.Now()
	r.notifications = append(r.notifications, n)
	return nil
}

func (r *fakeNotificationRepo) GetByID(_ context.Context, id string) (*entity.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.notifications {
		if n.ID == id {
			return n, nil
		}
	}
	return nil, errors.NotFound("Notification", nil)
}

func (r *fakeNotificationRepo) Update(_ context.Context, n *entity.Notification) error {
	return nil
}

func (r *fakeNotificationRepo) ListByUser(_ context.Context, userID string, unreadOnly bool, limit, offset int) ([]*entity.Notification, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Notification
	for _, n := range r.notifications {
		if n.UserID != userID {
			continue
		}
		if unreadOnly && n.IsRead {
			continue
		}
		out = append(out, n)
	}
	return out, int64(len(out)), nil
}

func (r *fakeNotificationRepo) MarkAllRead(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.notifications {
		if n.UserID == userID {
			n.IsRead = true
		}
	}
	return nil
}

// fakeGateway scripts intent and transfer behavior per test.
type fakeGateway struct {
	intents      map[string]*service.PaymentIntent
	transferErr  error
	transfers    []service.TransferRequest
	intentSeq    int
	clientSecret string
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		intents:      make(map[string]*service.PaymentIntent),
		clientSecret: "secret",
	}
}

func (g *fakeGateway) CreateIntent(_ context.Context, req service.CreateIntentRequest) (*service.PaymentIntent, error) {
	g.intentSeq++
	intent := &service.PaymentIntent{
		ID:           fmt.Sprintf("pi_%d", g.intentSeq),
		ClientSecret: g.clientSecret,
		Status:       "requires_payment_method",
		Amount:       req.Amount,
		Currency:     req.Currency,
		Metadata:     req.Metadata,
	}
	g.intents[intent.ID] = intent
	return intent, nil
}

func (g *fakeGateway) GetIntent(_ context.Context, id string) (*service.PaymentIntent, error) {
	if intent, ok := g.intents[id]; ok {
		return intent, nil
	}
	return nil, fmt.Errorf("no such intent %s", id)
}

func (g *fakeGateway) CreateTransfer(_ context.Context, req service.TransferRequest) (*service.Transfer, error) {
	if g.transferErr != nil {
		return nil, g.transferErr
	}
	g.transfers = append(g.transfers, req)
	return &service.Transfer{
		ID:          fmt.Sprintf("tr_%d", len(g.transfers)),
		Amount:      req.Amount,
		Currency:    req.Currency,
		Destination: req.Destination,
	}, nil
}

func (g *fakeGateway) succeed(intentID string) {
	if intent, ok := g.intents[intentID]; ok {
		intent.Status = service.IntentStatusSucceeded
	}
}

type fakeVerifier struct {
	err error
}

func (v *fakeVerifier) Verify(payload []byte, signatureHeader string) error {
	return v.err
}

type fakeInvoices struct {
	calls int
	err   error
}

func (f *fakeInvoices) GenerateInvoice(_ context.Context, order *entity.Order, buyer, seller *entity.User) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return "https://storage.example.com/invoices/" + order.ID + ".pdf", nil
}

func placeBidFor(contentID, bidderID string, amount float64) repository.PlaceBidInput {
	return repository.PlaceBidInput{
		ContentID:    contentID,
		BidderID:     bidderID,
		Amount:       amount,
		MinIncrement: 1,
	}
}

func newTestNotifier() (*NotificationUseCase, *fakeNotificationRepo) {
	repo := newFakeNotificationRepo()
	return NewNotificationUseCase(repo, nil), repo
}

type fakeUploader struct {
	uploads int
	deleted []string
}

func (f *fakeUploader) UploadFile(_ context.Context, _ io.Reader, fileType, folder string, isPublic bool) (string, error) {
	f.uploads++
	visibility := "private"
	if isPublic {
		visibility = "public"
	}
	return fmt.Sprintf("https://storage.example.com/%s/%s-%d", folder, visibility, f.uploads), nil
}

func (f *fakeUploader) DeleteFile(_ context.Context, fileURL string) error {
	f.deleted = append(f.deleted, fileURL)
	return nil
}

type fakeWishlistRepo struct {
	mu    sync.Mutex
	items map[string]*entity.WishlistItem
	seq   int
}

func newFakeWishlistRepo() *fakeWishlistRepo {
	return &fakeWishlistRepo{items: make(map[string]*entity.WishlistItem)}
}

func (r *fakeWishlistRepo) Create(_ context.Context, item *entity.WishlistItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	item.ID = fmt.Sprintf("wish-%d", r.seq)
	item.AddedAt = time.Now()
	r.items[item.ID] = item
	return nil
}

func (r *fakeWishlistRepo) GetByUserAndContent(_ context.Context, userID, contentID string) (*entity.WishlistItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range r.items {
		if item.UserID == userID && item.ContentID == contentID {
			return item, nil
		}
	}
	return nil, errors.NotFound("Wishlist item", nil)
}

func (r *fakeWishlistRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

func (r *fakeWishlistRepo) ListByUser(_ context.Context, userID string, limit, offset int) ([]*entity.WishlistItem, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.WishlistItem
	for _, item := range r.items {
		if item.UserID == userID {
			out = append(out, item)
		}
	}
	return out, int64(len(out)), nil
}
