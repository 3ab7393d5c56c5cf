package usecase

import (
	"context"
	"time"

	"playvault/internal/domain/entity"
	"playvault/internal/domain/repository"
	"playvault/pkg/errors"
)

// AuthClient is the identity provider surface the auth flow needs.
type AuthClient interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	VerifyToken(ctx context.Context, token string) (string, error)
	SignInWithPassword(ctx context.Context, email, password string) (idToken string, uid string, err error)
	UpdateUserPassword(ctx context.Context, uid, newPassword string) error
}

type AuthUseCase struct {
	userRepo   repository.UserRepository
	authClient AuthClient
}

func NewAuthUseCase(userRepo repository.UserRepository, authClient AuthClient) *AuthUseCase {
	return &AuthUseCase{
		userRepo:   userRepo,
		authClient: authClient,
	}
}

type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
	Role      string
}

type AuthResult struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	if input.Role != entity.RoleBuyer && input.Role != entity.RoleSeller {
		return nil, errors.BadRequest("Role must be buyer or seller", nil)
	}

	if existing, err := uc.userRepo.GetByEmail(ctx, input.Email); err == nil && existing != nil {
		return nil, errors.Conflict("Email is already registered")
	}

	displayName := input.FirstName + " " + input.LastName
	uid, err := uc.authClient.CreateUser(ctx, input.Email, input.Password, displayName)
	if err != nil {
		return nil, errors.External("Failed to create auth account", err)
	}

	user := &entity.User{
		ID:        uid,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
		Role:      input.Role,
	}
	if input.Role == entity.RoleSeller {
		user.SellerInfo = &entity.SellerInfo{}
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, _, err := uc.authClient.SignInWithPassword(ctx, input.Email, input.Password)
	if err != nil {
		return nil, errors.External("Account created but sign-in failed", err)
	}

	return &AuthResult{Token: token, User: user}, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	token, uid, err := uc.authClient.SignInWithPassword(ctx, email, password)
	if err != nil {
		return nil, errors.Unauthorized("Invalid email or password", err)
	}

	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user.LastLogin = &now
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return &AuthResult{Token: token, User: user}, nil
}

func (uc *AuthUseCase) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if _, _, err := uc.authClient.SignInWithPassword(ctx, user.Email, currentPassword); err != nil {
		return errors.Unauthorized("Current password is incorrect", err)
	}

	if err := uc.authClient.UpdateUserPassword(ctx, userID, newPassword); err != nil {
		return errors.External("Failed to update password", err)
	}

	return nil
}
