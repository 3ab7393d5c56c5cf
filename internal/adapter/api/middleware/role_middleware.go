package middleware

import (
	"playvault/internal/domain/entity"
	"playvault/internal/domain/repository"
	"playvault/pkg/errors"
	"playvault/pkg/response"

	"github.com/labstack/echo/v4"
)

// RoleMiddleware loads the authenticated user's role so handlers and the
// role guards can act on it. It must run after AuthMiddleware.Authenticate.
type RoleMiddleware struct {
	userRepo repository.UserRepository
}

func NewRoleMiddleware(userRepo repository.UserRepository) *RoleMiddleware {
	return &RoleMiddleware{
		userRepo: userRepo,
	}
}

func (m *RoleMiddleware) Resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		uid, ok := c.Get("uid").(string)
		if !ok || uid == "" {
			return response.Error(c, errors.Unauthorized("Authentication required", nil))
		}

		user, err := m.userRepo.GetByID(c.Request().Context(), uid)
		if err != nil {
			return response.Error(c, errors.Unauthorized("User not found", err))
		}

		c.Set("role", user.Role)

		return next(c)
	}
}

func (m *RoleMiddleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return m.requireRole(next, entity.RoleAdmin)
}

func (m *RoleMiddleware) SellerOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return m.requireRole(next, entity.RoleSeller, entity.RoleAdmin)
}

func (m *RoleMiddleware) BuyerOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return m.requireRole(next, entity.RoleBuyer)
}

func (m *RoleMiddleware) BuyerOrAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return m.requireRole(next, entity.RoleBuyer, entity.RoleAdmin)
}

func (m *RoleMiddleware) requireRole(next echo.HandlerFunc, roles ...string) echo.HandlerFunc {
	return func(c echo.Context) error {
		uid, ok := c.Get("uid").(string)
		if !ok || uid == "" {
			return response.Error(c, errors.Unauthorized("Authentication required", nil))
		}

		role, ok := c.Get("role").(string)
		if !ok {
			user, err := m.userRepo.GetByID(c.Request().Context(), uid)
			if err != nil {
				return response.Error(c, errors.Unauthorized("User not found", err))
			}
			role = user.Role
			c.Set("role", role)
		}

		for _, allowed := range roles {
			if role == allowed {
				return next(c)
			}
		}

		return response.Error(c, errors.Forbidden("Insufficient permissions", nil))
	}
}
