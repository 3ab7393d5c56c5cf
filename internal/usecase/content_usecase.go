package usecase

import (
	"context"
	"io"

	"playvault/internal/domain/entity"
	"playvault/internal/domain/repository"
	"playvault/pkg/errors"
)

type ContentUseCase struct {
	contentRepo repository.ContentRepository
	userRepo    repository.UserRepository
	uploader    FileUploader
}

// FileUploader matches the storage client's upload surface.
type FileUploader interface {
	UploadFile(ctx context.Context, file io.Reader, fileType, folder string, isPublic bool) (string, error)
	DeleteFile(ctx context.Context, fileURL string) error
}

func NewContentUseCase(contentRepo repository.ContentRepository, userRepo repository.UserRepository, uploader FileUploader) *ContentUseCase {
	return &ContentUseCase{
		contentRepo: contentRepo,
		userRepo:    userRepo,
		uploader:    uploader,
	}
}

type CreateContentInput struct {
	Title               string
	Description         string
	Sport               string
	ContentType         string
	Tags                []string
	Difficulty          string
	SaleType            string
	Price               float64
	AuctionDetails      *entity.AuctionDetails
	AllowCustomRequests bool
	Visibility          string
}

func (uc *ContentUseCase) CreateContent(ctx context.Context, sellerID string, input CreateContentInput) (*entity.Content, error) {
	seller, err := uc.userRepo.GetByID(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	if seller.Role != entity.RoleSeller {
		return nil, errors.Forbidden("Only sellers can create content", nil)
	}

	switch input.SaleType {
	case entity.SaleTypeFixed:
		if input.Price <= 0 {
			return nil, errors.BadRequest("Fixed-price content requires a positive price", nil)
		}
	case entity.SaleTypeAuction, entity.SaleTypeBoth:
		if input.AuctionDetails == nil || input.AuctionDetails.StartingBid <= 0 {
			return nil, errors.BadRequest("Auction content requires auction details with a starting bid", nil)
		}
		if input.AuctionDetails.MinIncrement <= 0 {
			input.AuctionDetails.MinIncrement = 1
		}
		if input.SaleType == entity.SaleTypeBoth && input.Price <= 0 {
			return nil, errors.BadRequest("Content sold as both requires a fixed price as well", nil)
		}
	default:
		return nil, errors.BadRequest("Invalid sale type", nil)
	}

	visibility := input.Visibility
	if visibility == "" {
		visibility = entity.VisibilityPublic
	}

	content := &entity.Content{
		SellerID:            sellerID,
		Title:               input.Title,
		Description:         input.Description,
		Sport:               input.Sport,
		ContentType:         input.ContentType,
		Tags:                input.Tags,
		Difficulty:          input.Difficulty,
		SaleType:            input.SaleType,
		Price:               input.Price,
		AuctionDetails:      input.AuctionDetails,
		AllowCustomRequests: input.AllowCustomRequests,
		Status:              entity.ContentStatusDraft,
		Visibility:          visibility,
	}

	if err := uc.contentRepo.Create(ctx, content); err != nil {
		return nil, err
	}

	return content, nil
}

func (uc *ContentUseCase) GetContent(ctx context.Context, id string) (*entity.Content, error) {
	return uc.contentRepo.GetByID(ctx, id)
}

type UpdateContentInput struct {
	Title               *string
	Description         *string
	Sport               *string
	ContentType         *string
	Tags                []string
	Difficulty          *string
	Price               *float64
	AuctionDetails      *entity.AuctionDetails
	AllowCustomRequests *bool
	Visibility          *string
}

func (uc *ContentUseCase) UpdateContent(ctx context.Context, callerID string, isAdmin bool, contentID string, input UpdateContentInput) (*entity.Content, error) {
	content, err := uc.contentRepo.GetByID(ctx, contentID)
	if err != nil {
		return nil, err
	}

	if content.SellerID != callerID && !isAdmin {
		return nil, errors.Forbidden("You can only update your own content", nil)
	}

	if input.Title != nil {
		content.Title = *input.Title
	}
	if input.Description != nil {
		content.Description = *input.Description
	}
	if input.Sport != nil {
		content.Sport = *input.Sport
	}
	if input.ContentType != nil {
		content.ContentType = *input.ContentType
	}
	if input.Tags != nil {
		content.Tags = input.Tags
	}
	if input.Difficulty != nil {
		content.Difficulty = *input.Difficulty
	}
	if input.Price != nil {
		content.Price = *input.Price
	}
	if input.AuctionDetails != nil {
		content.AuctionDetails = input.AuctionDetails
	}
	if input.AllowCustomRequests != nil {
		content.AllowCustomRequests = *input.AllowCustomRequests
	}
	if input.Visibility != nil {
		content.Visibility = *input.Visibility
	}

	if err := uc.contentRepo.Update(ctx, content); err != nil {
		return nil, err
	}

	return content, nil
}

// SetStatus moves a listing along Draft -> Published -> Archived.
func (uc *ContentUseCase) SetStatus(ctx context.Context, callerID string, isAdmin bool, contentID, status string) (*entity.Content, error) {
	content, err := uc.contentRepo.GetByID(ctx, contentID)
	if err != nil {
		return nil, err
	}

	if content.SellerID != callerID && !isAdmin {
		return nil, errors.Forbidden("You can only update your own content", nil)
	}

	valid := map[string][]string{
		entity.ContentStatusDraft:     {entity.ContentStatusPublished},
		entity.ContentStatusPublished: {entity.ContentStatusArchived},
		entity.ContentStatusArchived:  {},
	}
	allowed := false
	for _, next := range valid[content.Status] {
		if next == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, errors.InvalidState("Content cannot move from "+content.Status+" to "+status, nil)
	}

	if status == entity.ContentStatusPublished && content.FileURL == "" {
		return nil, errors.InvalidState("Content needs an uploaded file before publishing", nil)
	}

	content.Status = status
	if err := uc.contentRepo.Update(ctx, content); err != nil {
		return nil, err
	}

	return content, nil
}

func (uc *ContentUseCase) DeleteContent(ctx context.Context, callerID string, isAdmin bool, contentID string) error {
	content, err := uc.contentRepo.GetByID(ctx, contentID)
	if err != nil {
		return err
	}

	if content.SellerID != callerID && !isAdmin {
		return errors.Forbidden("You can only delete your own content", nil)
	}

	if content.Status == entity.ContentStatusPublished {
		return errors.InvalidState("Published content must be archived before deletion", nil)
	}

	return uc.contentRepo.Delete(ctx, contentID)
}

// ListContents serves the public catalog: Published and Public only, with
// the enumerated filter fields bound from the request.
func (uc *ContentUseCase) ListContents(ctx context.Context, filter repository.ContentFilter, sort string, limit, offset int) ([]*entity.Content, int64, error) {
	filter.Status = entity.ContentStatusPublished
	filter.Visibility = entity.VisibilityPublic
	return uc.contentRepo.List(ctx, filter, sort, limit, offset)
}

func (uc *ContentUseCase) ListSellerContents(ctx context.Context, sellerID, status string, limit, offset int) ([]*entity.Content, int64, error) {
	return uc.contentRepo.ListBySellerID(ctx, sellerID, status, limit, offset)
}

// UploadFile attaches the main file, preview or thumbnail. kind is one of
// "file", "preview", "thumbnail".
func (uc *ContentUseCase) UploadFile(ctx context.Context, callerID string, isAdmin bool, contentID, kind, fileType string, file io.Reader, fileSize int64) (*entity.Content, error) {
	content, err := uc.contentRepo.GetByID(ctx, contentID)
	if err != nil {
		return nil, err
	}

	if content.SellerID != callerID && !isAdmin {
		return nil, errors.Forbidden("You can only upload files for your own content", nil)
	}

	// Main files stay private; previews and thumbnails are public.
	isPublic := kind != "file"
	url, err := uc.uploader.UploadFile(ctx, file, fileType, "contents/"+kind, isPublic)
	if err != nil {
		return nil, errors.External("Failed to upload file", err)
	}

	switch kind {
	case "file":
		content.FileURL = url
		content.FileSize = fileSize
	case "preview":
		content.PreviewURL = url
	case "thumbnail":
		content.ThumbnailURL = url
	default:
		return nil, errors.BadRequest("Invalid upload kind", nil)
	}

	if err := uc.contentRepo.Update(ctx, content); err != nil {
		return nil, err
	}

	return content, nil
}
