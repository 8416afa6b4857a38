package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/codigo-r/landing-backend/pkg/apperrors"
	"github.com/codigo-r/landing-backend/pkg/hashing"
	"github.com/codigo-r/landing-backend/pkg/logger"
	"github.com/codigo-r/landing-backend/pkg/token"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/spf13/viper"
)

type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

// Register creates a new non-admin user.
func (h *Handler) Register(c echo.Context) error {
	log := logger.Get().WithComponent("auth")

	req := new(RegisterRequest)
	if err := c.Bind(req); err != nil {
		return apperrors.RespondWithError(c, apperrors.NewBadRequest(
			apperrors.ErrCodeValidationFailed,
			"Invalid request payload.",
		))
	}

	if req.Username == "" || req.Password == "" {
		return apperrors.RespondWithError(c, apperrors.NewBadRequest(
			apperrors.ErrCodeMissingField,
			"Username and password are required.",
		))
	}

	hashedPassword, err := hashing.HashPassword(req.Password)
	if err != nil {
		log.Error("Failed to hash password", err)
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeUnexpectedError,
			"Internal server error.",
			err,
		))
	}

	user := &User{
		ID:        uuid.New().String(),
		Username:  req.Username,
		Email:     req.Email,
		Password:  hashedPassword,
		IsAdmin:   false,
		CreatedAt: time.Now().UTC(),
	}

	if err := h.store.Create(c.Request().Context(), user); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return apperrors.RespondWithError(c, apperrors.NewConflict(
				apperrors.ErrCodeResourceExists,
				"Username already registered.",
			))
		}
		log.Error("Failed to create user", err, logger.Username(req.Username))
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}

	log.Info("User registered", logger.Username(req.Username))
	return c.JSON(http.StatusOK, map[string]string{"message": "User registered successfully."})
}

// Login verifies credentials and issues a bearer token.
func (h *Handler) Login(c echo.Context) error {
	log := logger.Get().WithComponent("auth")

	req := new(LoginRequest)
	if err := c.Bind(req); err != nil {
		return apperrors.RespondWithError(c, apperrors.NewBadRequest(
			apperrors.ErrCodeValidationFailed,
			"Invalid request payload.",
		))
	}

	user, err := h.store.GetByUsername(c.Request().Context(), req.Username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperrors.RespondWithError(c, apperrors.NewUnauthorized(
				apperrors.ErrCodeInvalidCredentials,
				"Incorrect username or password.",
			))
		}
		log.Error("Failed to fetch user", err, logger.Username(req.Username))
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}

	if !hashing.CheckPasswordHash(req.Password, user.Password) {
		log.Warn("Login failed - bad password", logger.Username(req.Username))
		return apperrors.RespondWithError(c, apperrors.NewUnauthorized(
			apperrors.ErrCodeInvalidCredentials,
			"Incorrect username or password.",
		))
	}

	accessToken, err := token.Generate(user.Username, []byte(viper.GetString("JWT_SECRET")))
	if err != nil {
		log.Error("Failed to sign token", err, logger.Username(req.Username))
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeUnexpectedError,
			"Internal server error.",
			err,
		))
	}

	log.Info("User logged in", logger.Username(user.Username), logger.Bool("is_admin", user.IsAdmin))
	return c.JSON(http.StatusOK, LoginResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		IsAdmin:     user.IsAdmin,
	})
}

// InitAdmin bootstraps the fixed admin identity. Idempotent: a no-op once
// any admin user exists.
func (h *Handler) InitAdmin(c echo.Context) error {
	log := logger.Get().WithComponent("auth")
	ctx := c.Request().Context()

	exists, err := h.store.AdminExists(ctx)
	if err != nil {
		log.Error("Failed to check for existing admin", err)
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}
	if exists {
		return c.JSON(http.StatusOK, map[string]string{"message": "Admin user already exists."})
	}

	hashedPassword, err := hashing.HashPassword(viper.GetString("ADMIN_BOOTSTRAP_PASSWORD"))
	if err != nil {
		log.Error("Failed to hash admin password", err)
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeUnexpectedError,
			"Internal server error.",
			err,
		))
	}

	admin := &User{
		ID:        uuid.New().String(),
		Username:  "admin",
		Email:     "admin@codigor.com",
		Password:  hashedPassword,
		IsAdmin:   true,
		CreatedAt: time.Now().UTC(),
	}

	if err := h.store.Create(ctx, admin); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return c.JSON(http.StatusOK, map[string]string{"message": "Admin user already exists."})
		}
		log.Error("Failed to create admin user", err)
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}

	log.Info("Admin user created")
	return c.JSON(http.StatusOK, map[string]string{"message": "Admin user created successfully."})
}

// Me returns the authenticated user.
func (h *Handler) Me(c echo.Context) error {
	username, _ := c.Get("username").(string)

	user, err := h.store.GetByUsername(c.Request().Context(), username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperrors.RespondWithError(c, apperrors.NewUnauthorized(
				apperrors.ErrCodeUserNotFound,
				"User no longer exists.",
			))
		}
		return apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}

	return c.JSON(http.StatusOK, user)
}
