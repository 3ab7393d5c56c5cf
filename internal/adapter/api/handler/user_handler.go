package handler

import (
	"playvault/internal/domain/entity"
	"playvault/internal/usecase"
	"playvault/pkg/response"
	"playvault/pkg/utils"

	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

func (h *UserHandler) GetProfile(c echo.Context) error {
	uid := c.Get("uid").(string)

	user, err := h.userUseCase.GetProfile(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

type sellerInfoRequest struct {
	Sports         []string `json:"sports"`
	Expertise      []string `json:"expertise"`
	Experience     string   `json:"experience"`
	Certifications []string `json:"certifications"`
}

type updateProfileRequest struct {
	FirstName    string             `json:"first_name"`
	LastName     string             `json:"last_name"`
	Phone        string             `json:"phone"`
	Bio          string             `json:"bio"`
	ProfileImage string             `json:"profile_image"`
	SellerInfo   *sellerInfoRequest `json:"seller_info"`
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	input := usecase.UpdateProfileInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		Bio:          req.Bio,
		ProfileImage: req.ProfileImage,
	}
	if req.SellerInfo != nil {
		input.SellerInfo = &entity.SellerInfo{
			Sports:         req.SellerInfo.Sports,
			Expertise:      req.SellerInfo.Expertise,
			Experience:     req.SellerInfo.Experience,
			Certifications: req.SellerInfo.Certifications,
		}
	}

	user, err := h.userUseCase.UpdateProfile(c.Request().Context(), uid, input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

type paymentInfoRequest struct {
	CustomerID           string `json:"customer_id"`
	ConnectID            string `json:"connect_id"`
	DefaultPaymentMethod string `json:"default_payment_method"`
}

func (h *UserHandler) UpdatePaymentInfo(c echo.Context) error {
	var req paymentInfoRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	user, err := h.userUseCase.UpdatePaymentInfo(c.Request().Context(), uid, entity.PaymentInfo{
		CustomerID:           req.CustomerID,
		ConnectID:            req.ConnectID,
		DefaultPaymentMethod: req.DefaultPaymentMethod,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) GetUser(c echo.Context) error {
	user, err := h.userUseCase.GetProfile(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) ListUsers(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	users, total, err := h.userUseCase.ListUsers(c.Request().Context(), c.QueryParam("role"), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, users, total, params.Page, params.PageSize)
}

type verifySellerRequest struct {
	Verified bool `json:"verified"`
}

func (h *UserHandler) VerifySeller(c echo.Context) error {
	var req verifySellerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.SetSellerVerification(c.Request().Context(), c.Param("id"), req.Verified)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}
