package handler

import (
	"playvault/internal/usecase"
	"playvault/pkg/response"

	"github.com/labstack/echo/v4"
)

type SettingHandler struct {
	settingUseCase *usecase.SettingUseCase
}

func NewSettingHandler(settingUseCase *usecase.SettingUseCase) *SettingHandler {
	return &SettingHandler{
		settingUseCase: settingUseCase,
	}
}

type createSettingRequest struct {
	Key         string      `json:"key" validate:"required"`
	Value       interface{} `json:"value" validate:"required"`
	Group       string      `json:"group"`
	IsPublic    bool        `json:"is_public"`
	Description string      `json:"description"`
}

func (h *SettingHandler) CreateSetting(c echo.Context) error {
	var req createSettingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	setting, err := h.settingUseCase.CreateSetting(c.Request().Context(), uid, usecase.SettingInput{
		Key:         req.Key,
		Value:       req.Value,
		Group:       req.Group,
		IsPublic:    req.IsPublic,
		Description: req.Description,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, setting)
}

type updateSettingRequest struct {
	Value    interface{} `json:"value" validate:"required"`
	IsPublic *bool       `json:"is_public"`
}

func (h *SettingHandler) UpdateSetting(c echo.Context) error {
	var req updateSettingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	setting, err := h.settingUseCase.UpdateSetting(c.Request().Context(), uid, c.Param("key"), req.Value, req.IsPublic)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, setting)
}

func (h *SettingHandler) GetSetting(c echo.Context) error {
	setting, err := h.settingUseCase.GetSetting(c.Request().Context(), c.Param("key"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, setting)
}

func (h *SettingHandler) DeleteSetting(c echo.Context) error {
	if err := h.settingUseCase.DeleteSetting(c.Request().Context(), c.Param("key")); err != nil {
		return response.Error(c, err)
	}

	return response.SuccessMessage(c, "Setting deleted", nil)
}

func (h *SettingHandler) ListSettings(c echo.Context) error {
	settings, err := h.settingUseCase.ListSettings(c.Request().Context(), c.QueryParam("group"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, settings)
}

func (h *SettingHandler) ListPublicSettings(c echo.Context) error {
	settings, err := h.settingUseCase.ListPublicSettings(c.Request().Context(), c.QueryParam("group"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, settings)
}
