package usecase

import (
	"context"

	"playvault/internal/domain/entity"
	"playvault/internal/domain/repository"
	"playvault/pkg/errors"
)

type SettingUseCase struct {
	settingRepo repository.SettingRepository
}

func NewSettingUseCase(settingRepo repository.SettingRepository) *SettingUseCase {
	return &SettingUseCase{settingRepo: settingRepo}
}

type SettingInput struct {
	Key         string
	Value       interface{}
	Group       string
	IsPublic    bool
	Description string
}

func (uc *SettingUseCase) CreateSetting(ctx context.Context, adminID string, input SettingInput) (*entity.Setting, error) {
	if input.Key == "" {
		return nil, errors.BadRequest("Setting key is required", nil)
	}

	if existing, err := uc.settingRepo.GetByKey(ctx, input.Key); err == nil && existing != nil {
		return nil, errors.Conflict("Setting key already exists")
	}

	setting := &entity.Setting{
		Key:         input.Key,
		Value:       input.Value,
		Group:       input.Group,
		IsPublic:    input.IsPublic,
		Description: input.Description,
		UpdatedBy:   adminID,
	}

	if err := uc.settingRepo.Create(ctx, setting); err != nil {
		return nil, err
	}

	return setting, nil
}

func (uc *SettingUseCase) UpdateSetting(ctx context.Context, adminID, key string, value interface{}, isPublic *bool) (*entity.Setting, error) {
	setting, err := uc.settingRepo.GetByKey(ctx, key)
	if err != nil {
		return nil, err
	}

	setting.Value = value
	if isPublic != nil {
		setting.IsPublic = *isPublic
	}
	setting.UpdatedBy = adminID

	if err := uc.settingRepo.Update(ctx, setting); err != nil {
		return nil, err
	}

	return setting, nil
}

func (uc *SettingUseCase) GetSetting(ctx context.Context, key string) (*entity.Setting, error) {
	return uc.settingRepo.GetByKey(ctx, key)
}

func (uc *SettingUseCase) DeleteSetting(ctx context.Context, key string) error {
	if _, err := uc.settingRepo.GetByKey(ctx, key); err != nil {
		return err
	}
	return uc.settingRepo.Delete(ctx, key)
}

func (uc *SettingUseCase) ListSettings(ctx context.Context, group string) ([]*entity.Setting, error) {
	return uc.settingRepo.List(ctx, group, false)
}

// ListPublicSettings exposes only the settings flagged public.
func (uc *SettingUseCase) ListPublicSettings(ctx context.Context, group string) ([]*entity.Setting, error) {
	return uc.settingRepo.List(ctx, group, true)
}
