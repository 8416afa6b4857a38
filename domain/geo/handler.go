package geo

import (
	"net/http"

	"github.com/codigo-r/landing-backend/domain/content"
	"github.com/codigo-r/landing-backend/pkg/apperrors"
	"github.com/codigo-r/landing-backend/pkg/logger"
	"github.com/labstack/echo/v4"
)

type Handler struct {
	content  content.Store
	resolver *Resolver
}

func NewHandler(contentStore content.Store, resolver *Resolver) *Handler {
	return &Handler{content: contentStore, resolver: resolver}
}

// DetectCountry geolocates the caller. Always succeeds; lookup failures
// degrade to the fallback country.
func (h *Handler) DetectCountry(c echo.Context) error {
	ip := ClientIP(c)
	location := h.resolver.Locate(c.Request().Context(), ip)
	return c.JSON(http.StatusOK, location)
}

// RecommendedPlatform returns the payment platform for a country code.
func (h *Handler) RecommendedPlatform(c echo.Context) error {
	countryCode := c.Param("country_code")

	doc, err := h.content.Get(c.Request().Context())
	if err != nil {
		logger.Get().WithComponent("geo").Error("Failed to load site content", err)
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}

	return c.JSON(http.StatusOK, Recommend(doc, countryCode))
}
