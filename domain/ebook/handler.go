package ebook

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
	ebooks, err := h.store.List(c.Request().Context())
	if err != nil {
		logger.Get().WithComponent("ebook").Error("Failed to list ebooks", err)
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}
	return c.JSON(http.StatusOK, ebooks)
}

func (h *Handler) Get(c echo.Context) error {
	e, err := h.store.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperrors.RespondWithError(c, apperrors.NewNotFound(
				apperrors.ErrCodeEbookNotFound,
				"Ebook not found.",
			))
		}
		logger.Get().WithComponent("ebook").Error("Failed to fetch ebook", err)
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}
	return c.JSON(http.StatusOK, e)
}

func (h *Handler) Create(c echo.Context) error {
	e := new(Ebook)
	if err := c.Bind(e); err != nil {
		return apperrors.RespondWithError(c, apperrors.NewBadRequest(
			apperrors.ErrCodeValidationFailed,
			"Invalid request payload.",
		))
	}

	if e.Title == "" {
		return apperrors.RespondWithError(c, apperrors.NewBadRequest(
			apperrors.ErrCodeMissingField,
			"Title is required.",
		))
	}

	e.ID = uuid.New().String()
	if err := h.store.Create(c.Request().Context(), e); err != nil {
		logger.Get().WithComponent("ebook").Error("Failed to create ebook", err)
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}

	return c.JSON(http.StatusOK, e)
}

func (h *Handler) Update(c echo.Context) error {
	e := new(Ebook)
	if err := c.Bind(e); err != nil {
		return apperrors.RespondWithError(c, apperrors.NewBadRequest(
			apperrors.ErrCodeValidationFailed,
			"Invalid request payload.",
		))
	}

	e.ID = c.Param("id")
	if err := h.store.Update(c.Request().Context(), e); err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperrors.RespondWithError(c, apperrors.NewNotFound(
				apperrors.ErrCodeEbookNotFound,
				"Ebook not found.",
			))
		}
		logger.Get().WithComponent("ebook").Error("Failed to update ebook", err)
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}

	return c.JSON(http.StatusOK, e)
}

func (h *Handler) Delete(c echo.Context) error {
	if err := h.store.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperrors.RespondWithError(c, apperrors.NewNotFound(
				apperrors.ErrCodeEbookNotFound,
				"Ebook not found.",
			))
		}
		logger.Get().WithComponent("ebook").Error("Failed to delete ebook", err)
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Ebook deleted."})
}
