package middleware

import (
	"errors"
	"strings"

	"github.com/codigo-r/landing-backend/domain/auth"
	"github.com/codigo-r/landing-backend/pkg/apperrors"
	"github.com/codigo-r/landing-backend/pkg/logger"
	"github.com/codigo-r/landing-backend/pkg/token"
	"github.com/labstack/echo/v4"
	"github.com/spf13/viper"
)

// JWT validates the bearer token and resolves its subject against the user
// store. A token whose subject no longer exists is rejected.
func JWT(users auth.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				return apperrors.RespondWithError(c, apperrors.NewUnauthorized(
					apperrors.ErrCodeTokenMalformed,
					"Missing or invalid token.",
				))
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")

			username, err := token.Subject(tokenString, []byte(viper.GetString("JWT_SECRET")))
			if err != nil {
				if errors.Is(err, token.ErrExpired) {
					return apperrors.RespondWithError(c, apperrors.NewUnauthorized(
						apperrors.ErrCodeTokenExpired,
						"Token expired.",
					))
				}
				return apperrors.RespondWithError(c, apperrors.NewUnauthorized(
					apperrors.ErrCodeTokenInvalid,
					"Invalid token.",
				))
			}

			user, err := users.GetByUsername(c.Request().Context(), username)
			if err != nil {
				if errors.Is(err, auth.ErrNotFound) {
					return apperrors.RespondWithError(c, apperrors.NewUnauthorized(
						apperrors.ErrCodeUserNotFound,
						"User not found.",
					))
				}
				logger.Get().WithComponent("middleware").Error("Failed to resolve token subject", err)
				return apperrors.RespondWithError(c, apperrors.NewInternal(
					apperrors.ErrCodeDatabaseError,
					"Internal server error.",
					err,
				))
			}

			c.Set("username", user.Username)
			c.Set("is_admin", user.IsAdmin)

			return next(c)
		}
	}
}
