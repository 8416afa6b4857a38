package analytics

import (
	"net/http"
	"time"

	"github.com/codigo-r/landing-backend/pkg/apperrors"
	"github.com/codigo-r/landing-backend/pkg/logger"
	"github.com/labstack/echo/v4"
)

// Readback is bounded to the most recent month of day rows.
const recentDaysLimit = 30

type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) TrackPageView(c echo.Context) error {
	return h.track(c, KindPageView, "Page view tracked.")
}

func (h *Handler) TrackVideoView(c echo.Context) error {
	return h.track(c, KindVideoView, "Video view tracked.")
}

func (h *Handler) TrackButtonClick(c echo.Context) error {
	return h.track(c, KindButtonClick, "Button click tracked.")
}

func (h *Handler) track(c echo.Context, kind Kind, message string) error {
	if err := h.store.Track(c.Request().Context(), kind, time.Now()); err != nil {
		logger.Get().WithComponent("analytics").Error("Failed to track event", err,
			logger.String("kind", string(kind)))
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}
	return c.JSON(http.StatusOK, map[string]string{"message": message})
}

// GetAnalytics returns the recent day rows, newest first. Admin only.
func (h *Handler) GetAnalytics(c echo.Context) error {
	days, err := h.store.Recent(c.Request().Context(), recentDaysLimit)
	if err != nil {
		logger.Get().WithComponent("analytics").Error("Failed to fetch analytics", err)
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}
	return c.JSON(http.StatusOK, days)
}
