package handler

import (
	"playvault/internal/usecase"
	"playvault/pkg/response"
	"playvault/pkg/utils"

	"github.com/labstack/echo/v4"
)

type CmsHandler struct {
	cmsUseCase *usecase.CmsUseCase
}

func NewCmsHandler(cmsUseCase *usecase.CmsUseCase) *CmsHandler {
	return &CmsHandler{
		cmsUseCase: cmsUseCase,
	}
}

type cmsPageRequest struct {
	Title           string `json:"title" validate:"required"`
	Content         string `json:"content"`
	MetaTitle       string `json:"meta_title"`
	MetaDescription string `json:"meta_description"`
	Status          string `json:"status" validate:"omitempty,oneof=Draft Published"`
}

func (r cmsPageRequest) toInput() usecase.CmsPageInput {
	return usecase.CmsPageInput{
		Title:           r.Title,
		Content:         r.Content,
		MetaTitle:       r.MetaTitle,
		MetaDescription: r.MetaDescription,
		Status:          r.Status,
	}
}

func (h *CmsHandler) CreatePage(c echo.Context) error {
	var req cmsPageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	page, err := h.cmsUseCase.CreatePage(c.Request().Context(), uid, req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, page)
}

func (h *CmsHandler) UpdatePage(c echo.Context) error {
	var req cmsPageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	page, err := h.cmsUseCase.UpdatePage(c.Request().Context(), uid, c.Param("id"), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, page)
}

func (h *CmsHandler) DeletePage(c echo.Context) error {
	if err := h.cmsUseCase.DeletePage(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.SuccessMessage(c, "Page deleted", nil)
}

func (h *CmsHandler) GetPage(c echo.Context) error {
	page, err := h.cmsUseCase.GetPage(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, page)
}

func (h *CmsHandler) GetPublishedBySlug(c echo.Context) error {
	page, err := h.cmsUseCase.GetPublishedBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, page)
}

func (h *CmsHandler) ListPages(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	pages, total, err := h.cmsUseCase.ListPages(c.Request().Context(), c.QueryParam("status"), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, pages, total, params.Page, params.PageSize)
}
