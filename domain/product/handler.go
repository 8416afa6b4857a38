package product

import (
	"errors"
	"net/http"

	"github.com/codigo-r/landing-backend/pkg/apperrors"
	"github.com/codigo-r/landing-backend/pkg/logger"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) List(c echo.Context) error {
	products, err := h.store.List(c.Request().Context())
	if err != nil {
		logger.Get().WithComponent("product").Error("Failed to list products", err)
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}
	return c.JSON(http.StatusOK, products)
}

func (h *Handler) Get(c echo.Context) error {
	p, err := h.store.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperrors.RespondWithError(c, apperrors.NewNotFound(
				apperrors.ErrCodeProductNotFound,
				"Product not found.",
			))
		}
		logger.Get().WithComponent("product").Error("Failed to fetch product", err)
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) Create(c echo.Context) error {
	p := new(Product)
	if err := c.Bind(p); err != nil {
		return apperrors.RespondWithError(c, apperrors.NewBadRequest(
			apperrors.ErrCodeValidationFailed,
			"Invalid request payload.",
		))
	}

	if p.Title == "" {
		return apperrors.RespondWithError(c, apperrors.NewBadRequest(
			apperrors.ErrCodeMissingField,
			"Title is required.",
		))
	}

	p.ID = uuid.New().String()
	if err := h.store.Create(c.Request().Context(), p); err != nil {
		logger.Get().WithComponent("product").Error("Failed to create product", err)
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}

	return c.JSON(http.StatusOK, p)
}

func (h *Handler) Update(c echo.Context) error {
	p := new(Product)
	if err := c.Bind(p); err != nil {
		return apperrors.RespondWithError(c, apperrors.NewBadRequest(
			apperrors.ErrCodeValidationFailed,
			"Invalid request payload.",
		))
	}

	p.ID = c.Param("id")
	if err := h.store.Update(c.Request().Context(), p); err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperrors.RespondWithError(c, apperrors.NewNotFound(
				apperrors.ErrCodeProductNotFound,
				"Product not found.",
			))
		}
		logger.Get().WithComponent("product").Error("Failed to update product", err)
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}

	return c.JSON(http.StatusOK, p)
}

// Delete soft-deletes a product by clearing is_active.
func (h *Handler) Delete(c echo.Context) error {
	if err := h.store.Deactivate(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperrors.RespondWithError(c, apperrors.NewNotFound(
				apperrors.ErrCodeProductNotFound,
				"Product not found.",
			))
		}
		logger.Get().WithComponent("product").Error("Failed to deactivate product", err)
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Product deactivated."})
}
