package usecase

import (
	"context"

	"playvault/internal/domain/entity"
	"playvault/internal/domain/repository"
	"playvault/pkg/errors"
)

type UserUseCase struct {
	userRepo repository.UserRepository
	notifier *NotificationUseCase
}

func NewUserUseCase(userRepo repository.UserRepository, notifier *NotificationUseCase) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
		notifier: notifier,
	}
}

func (uc *UserUseCase) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	return uc.userRepo.GetByID(ctx, userID)
}

type UpdateProfileInput struct {
	FirstName    string
	LastName     string
	Phone        string
	Bio          string
	ProfileImage string
	SellerInfo   *entity.SellerInfo
}

func (uc *UserUseCase) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.FirstName != "" {
		user.FirstName = input.FirstName
	}
	if input.LastName != "" {
		user.LastName = input.LastName
	}
	if input.Phone != "" {
		user.Phone = input.Phone
	}
	if input.Bio != "" {
		user.Bio = input.Bio
	}
	if input.ProfileImage != "" {
		user.ProfileImage = input.ProfileImage
	}
	if input.SellerInfo != nil {
		if user.Role != entity.RoleSeller {
			return nil, errors.Forbidden("Only sellers can set seller details", nil)
		}
		user.SellerInfo = input.SellerInfo
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// SetSellerVerification flips the admin-managed verification flag.
func (uc *UserUseCase) SetSellerVerification(ctx context.Context, userID string, verified bool) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.Role != entity.RoleSeller {
		return nil, errors.InvalidState("Only seller accounts can be verified", nil)
	}

	user.IsVerified = verified
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	if verified {
		uc.notifier.Notify(ctx, user.ID, "Account verified",
			"Your seller account has been verified. You can now receive custom requests.",
			entity.NotificationTypeAccount, user.ID, "User")
	}

	return user, nil
}

func (uc *UserUseCase) ListUsers(ctx context.Context, role string, limit, offset int) ([]*entity.User, int64, error) {
	return uc.userRepo.List(ctx, role, limit, offset)
}

// UpdatePaymentInfo stores the payment provider references on the user.
func (uc *UserUseCase) UpdatePaymentInfo(ctx context.Context, userID string, info entity.PaymentInfo) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.PaymentInfo == nil {
		user.PaymentInfo = &entity.PaymentInfo{}
	}
	if info.CustomerID != "" {
		user.PaymentInfo.CustomerID = info.CustomerID
	}
	if info.ConnectID != "" {
		user.PaymentInfo.ConnectID = info.ConnectID
	}
	if info.DefaultPaymentMethod != "" {
		user.PaymentInfo.DefaultPaymentMethod = info.DefaultPaymentMethod
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
