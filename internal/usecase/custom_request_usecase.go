package usecase

import (
	"context"
	"fmt"
	"time"

	"playvault/internal/domain/entity"
	"playvault/internal/domain/repository"
	"playvault/pkg/errors"
)

type CustomRequestUseCase struct {
	requestRepo repository.CustomRequestRepository
	contentRepo repository.ContentRepository
	userRepo    repository.UserRepository
	notifier    *NotificationUseCase
}

func NewCustomRequestUseCase(
	requestRepo repository.CustomRequestRepository,
	contentRepo repository.ContentRepository,
	userRepo repository.UserRepository,
	notifier *NotificationUseCase,
) *CustomRequestUseCase {
	return &CustomRequestUseCase{
		requestRepo: requestRepo,
		contentRepo: contentRepo,
		userRepo:    userRepo,
		notifier:    notifier,
	}
}

type CreateRequestInput struct {
	SellerID              string
	Title                 string
	Description           string
	Sport                 string
	ContentType           string
	Budget                float64
	RequestedDeliveryDate *time.Time
}

func (uc *CustomRequestUseCase) CreateRequest(ctx context.Context, buyerID string, input CreateRequestInput) (*entity.CustomRequest, error) {
	seller, err := uc.userRepo.GetByID(ctx, input.SellerID)
	if err != nil {
		return nil, err
	}
	if seller.Role != entity.RoleSeller {
		return nil, errors.BadRequest("Custom requests can only be sent to sellers", nil)
	}
	if !seller.IsVerified {
		return nil, errors.InvalidState("The seller is not verified for custom requests", nil)
	}
	if input.Budget <= 0 {
		return nil, errors.BadRequest("Budget must be positive", nil)
	}

	request := &entity.CustomRequest{
		BuyerID:               buyerID,
		SellerID:              input.SellerID,
		Title:                 input.Title,
		Description:           input.Description,
		Sport:                 input.Sport,
		ContentType:           input.ContentType,
		Budget:                input.Budget,
		RequestedDeliveryDate: input.RequestedDeliveryDate,
		Status:                entity.RequestStatusPending,
	}

	if err := uc.requestRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	uc.notifier.Notify(ctx, request.SellerID, "New custom request",
		fmt.Sprintf("You received a custom content request: %q (budget $%.2f).", request.Title, request.Budget),
		entity.NotificationTypeCustomRequest, request.ID, "CustomRequest")

	return request, nil
}

type RespondInput struct {
	Accept                bool
	Price                 float64
	Message               string
	EstimatedDeliveryDate *time.Time
}

// Respond records the seller's accept/reject decision on a pending request.
func (uc *CustomRequestUseCase) Respond(ctx context.Context, sellerID, requestID string, input RespondInput) (*entity.CustomRequest, error) {
	request, err := uc.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if request.SellerID != sellerID {
		return nil, errors.Forbidden("You can only respond to your own requests", nil)
	}
	if request.Status != entity.RequestStatusPending {
		return nil, errors.InvalidState("The request has already been responded to", nil)
	}
	if input.Accept && input.Price <= 0 {
		return nil, errors.BadRequest("Accepting a request requires a positive price", nil)
	}

	request.SellerResponse = &entity.SellerResponse{
		Accepted:              input.Accept,
		Price:                 input.Price,
		Message:               input.Message,
		EstimatedDeliveryDate: input.EstimatedDeliveryDate,
		ResponseDate:          time.Now(),
	}
	if input.Accept {
		request.Status = entity.RequestStatusAccepted
	} else {
		request.Status = entity.RequestStatusRejected
	}

	if err := uc.requestRepo.Update(ctx, request); err != nil {
		return nil, err
	}

	if input.Accept {
		uc.notifier.Notify(ctx, request.BuyerID, "Custom request accepted",
			fmt.Sprintf("Your request %q was accepted at $%.2f.", request.Title, input.Price),
			entity.NotificationTypeCustomRequest, request.ID, "CustomRequest")
	} else {
		uc.notifier.Notify(ctx, request.BuyerID, "Custom request declined",
			fmt.Sprintf("Your request %q was declined.", request.Title),
			entity.NotificationTypeCustomRequest, request.ID, "CustomRequest")
	}

	return request, nil
}

func (uc *CustomRequestUseCase) CancelRequest(ctx context.Context, callerID string, isAdmin bool, requestID string) (*entity.CustomRequest, error) {
	request, err := uc.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if request.BuyerID != callerID && !isAdmin {
		return nil, errors.Forbidden("You can only cancel your own requests", nil)
	}
	if request.Status != entity.RequestStatusPending && request.Status != entity.RequestStatusAccepted {
		return nil, errors.InvalidState("Only pending or accepted requests can be cancelled", nil)
	}

	request.Status = entity.RequestStatusCancelled
	if err := uc.requestRepo.Update(ctx, request); err != nil {
		return nil, err
	}

	uc.notifier.Notify(ctx, request.SellerID, "Custom request cancelled",
		fmt.Sprintf("The request %q was cancelled by the buyer.", request.Title),
		entity.NotificationTypeCustomRequest, request.ID, "CustomRequest")

	return request, nil
}

type SubmitContentInput struct {
	Title       string
	Description string
	Difficulty  string
	FileURL     string
	FileSize    int64
	PreviewURL  string
}

// SubmitContent publishes the commissioned content against an accepted
// request. The delivered file comes with the submission, so the listing
// goes live immediately and the buyer can place the Custom order. It stays
// private to keep it out of the public catalog.
func (uc *CustomRequestUseCase) SubmitContent(ctx context.Context, sellerID, requestID string, input SubmitContentInput) (*entity.CustomRequest, *entity.Content, error) {
	request, err := uc.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, nil, err
	}

	if request.SellerID != sellerID {
		return nil, nil, errors.Forbidden("You can only submit content for your own requests", nil)
	}
	if request.Status != entity.RequestStatusAccepted {
		return nil, nil, errors.InvalidState("Content can only be submitted for an accepted request", nil)
	}
	if request.ContentID != "" {
		return nil, nil, errors.InvalidState("Content has already been submitted for this request", nil)
	}
	if input.FileURL == "" {
		return nil, nil, errors.BadRequest("A content file is required to submit the request", nil)
	}

	title := input.Title
	if title == "" {
		title = request.Title
	}
	description := input.Description
	if description == "" {
		description = request.Description
	}

	content := &entity.Content{
		SellerID:        sellerID,
		Title:           title,
		Description:     description,
		Sport:           request.Sport,
		ContentType:     request.ContentType,
		Difficulty:      input.Difficulty,
		SaleType:        entity.SaleTypeFixed,
		Price:           request.SellerResponse.Price,
		FileURL:         input.FileURL,
		FileSize:        input.FileSize,
		PreviewURL:      input.PreviewURL,
		Status:          entity.ContentStatusPublished,
		Visibility:      entity.VisibilityPrivate,
		IsCustomContent: true,
		CustomRequestID: request.ID,
	}

	if err := uc.contentRepo.Create(ctx, content); err != nil {
		return nil, nil, err
	}

	request.ContentID = content.ID
	if err := uc.requestRepo.Update(ctx, request); err != nil {
		return nil, nil, err
	}

	uc.notifier.Notify(ctx, request.BuyerID, "Custom content delivered",
		fmt.Sprintf("The seller submitted content for your request %q.", request.Title),
		entity.NotificationTypeCustomRequest, request.ID, "CustomRequest")

	return request, content, nil
}

func (uc *CustomRequestUseCase) GetRequest(ctx context.Context, callerID string, isAdmin bool, requestID string) (*entity.CustomRequest, error) {
	request, err := uc.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if request.BuyerID != callerID && request.SellerID != callerID && !isAdmin {
		return nil, errors.Forbidden("You cannot view this request", nil)
	}

	return request, nil
}

func (uc *CustomRequestUseCase) ListBuyerRequests(ctx context.Context, buyerID string, limit, offset int) ([]*entity.CustomRequest, int64, error) {
	return uc.requestRepo.ListByBuyer(ctx, buyerID, limit, offset)
}

func (uc *CustomRequestUseCase) ListSellerRequests(ctx context.Context, sellerID string, limit, offset int) ([]*entity.CustomRequest, int64, error) {
	return uc.requestRepo.ListBySeller(ctx, sellerID, limit, offset)
}

func (uc *CustomRequestUseCase) ListAllRequests(ctx context.Context, limit, offset int) ([]*entity.CustomRequest, int64, error) {
	return uc.requestRepo.List(ctx, limit, offset)
}
