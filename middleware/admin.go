package middleware

import (
	"github.com/codigo-r/landing-backend/pkg/apperrors"
	"github.com/labstack/echo/v4"
)

// AdminOnly rejects requests from non-admin users. Must run after JWT.
func AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		isAdmin, ok := c.Get("is_admin").(bool)
		if !ok || !isAdmin {
			return apperrors.RespondWithError(c, apperrors.NewForbidden(
				apperrors.ErrCodeForbidden,
				"Admin access required.",
			))
		}
		return next(c)
	}
}
