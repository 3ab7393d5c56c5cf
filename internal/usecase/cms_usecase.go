package usecase

import (
	"context"

	"playvault/internal/domain/entity"
	"playvault/internal/domain/repository"
	"playvault/pkg/errors"
	"playvault/pkg/utils"
)

type CmsUseCase struct {
	cmsRepo repository.CmsRepository
}

func NewCmsUseCase(cmsRepo repository.CmsRepository) *CmsUseCase {
	return &CmsUseCase{cmsRepo: cmsRepo}
}

type CmsPageInput struct {
	Title           string
	Content         string
	MetaTitle       string
	MetaDescription string
	Status          string
}

func (uc *CmsUseCase) CreatePage(ctx context.Context, adminID string, input CmsPageInput) (*entity.CmsPage, error) {
	slug := utils.Slugify(input.Title)

	if existing, err := uc.cmsRepo.GetBySlug(ctx, slug); err == nil && existing != nil {
		return nil, errors.Conflict("A page with this title already exists")
	}

	status := input.Status
	if status == "" {
		status = entity.PageStatusDraft
	}

	page := &entity.CmsPage{
		Title:           input.Title,
		Slug:            slug,
		Content:         input.Content,
		MetaTitle:       input.MetaTitle,
		MetaDescription: input.MetaDescription,
		Status:          status,
		CreatedBy:       adminID,
	}

	if err := uc.cmsRepo.Create(ctx, page); err != nil {
		return nil, err
	}

	return page, nil
}

func (uc *CmsUseCase) UpdatePage(ctx context.Context, adminID, pageID string, input CmsPageInput) (*entity.CmsPage, error) {
	page, err := uc.cmsRepo.GetByID(ctx, pageID)
	if err != nil {
		return nil, err
	}

	if input.Title != "" && input.Title != page.Title {
		page.Title = input.Title
		page.Slug = utils.Slugify(input.Title)
	}
	if input.Content != "" {
		page.Content = input.Content
	}
	if input.MetaTitle != "" {
		page.MetaTitle = input.MetaTitle
	}
	if input.MetaDescription != "" {
		page.MetaDescription = input.MetaDescription
	}
	if input.Status != "" {
		if input.Status != entity.PageStatusDraft && input.Status != entity.PageStatusPublished {
			return nil, errors.BadRequest("Invalid page status", nil)
		}
		page.Status = input.Status
	}
	page.UpdatedBy = adminID

	if err := uc.cmsRepo.Update(ctx, page); err != nil {
		return nil, err
	}

	return page, nil
}

func (uc *CmsUseCase) DeletePage(ctx context.Context, pageID string) error {
	if _, err := uc.cmsRepo.GetByID(ctx, pageID); err != nil {
		return err
	}
	return uc.cmsRepo.Delete(ctx, pageID)
}

func (uc *CmsUseCase) GetPage(ctx context.Context, pageID string) (*entity.CmsPage, error) {
	return uc.cmsRepo.GetByID(ctx, pageID)
}

// GetPublishedBySlug is the public page lookup. Draft pages stay hidden.
func (uc *CmsUseCase) GetPublishedBySlug(ctx context.Context, slug string) (*entity.CmsPage, error) {
	page, err := uc.cmsRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if page.Status != entity.PageStatusPublished {
		return nil, errors.NotFound("Page", nil)
	}

	return page, nil
}

func (uc *CmsUseCase) ListPages(ctx context.Context, status string, limit, offset int) ([]*entity.CmsPage, int64, error) {
	return uc.cmsRepo.List(ctx, status, limit, offset)
}
