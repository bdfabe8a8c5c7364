package middleware

import (
	"errors"
	"net/http"

	"payboard/internal/domain/entity"
	"payboard/internal/utils"
	"payboard/internal/utils/apierror"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type UserRepository interface {
	GetByID(id int32) (*entity.User, error)
}

type AuthMiddlewareConfig struct {
	UserRepo  UserRepository
	JWTSecret []byte
}

// NewAuthMiddleware guards routes behind the session cookie. The token's
// subject must resolve to an active user, which is then stashed on the
// request context.
func NewAuthMiddleware(cfg *AuthMiddlewareConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenData, err := utils.ParseTokenDataCtx(cfg.JWTSecret, c)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, apierror.InvalidAuthTokenError)
			}

			user, err := cfg.UserRepo.GetByID(tokenData.UserID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					// User deleted in DB but still has a valid token???
					return c.JSON(http.StatusUnauthorized, apierror.InvalidAuthTokenError)
				}
				return c.JSON(http.StatusInternalServerError, apierror.InternalServerError)
			}

			if !user.IsActive {
				return c.JSON(http.StatusForbidden, apierror.NewSimple(http.StatusForbidden, "Account is disabled"))
			}

			c.Set("user", user)
			return next(c)
		}
	}
}
