package content

import (
	"net/http"

	"github.com/codigo-r/landing-backend/pkg/apperrors"
	"github.com/codigo-r/landing-backend/pkg/logger"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Images arrive base64-encoded; anything shorter than this cannot be a
// real image payload.
const minImageBase64Len = 100

type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

// getDoc fetches the document and maps store failures to a 500 response.
// Returns nil after responding when the fetch failed.
func (h *Handler) getDoc(c echo.Context) (*SiteContent, error) {
	doc, err := h.store.Get(c.Request().Context())
	if err != nil {
		logger.Get().WithComponent("content").Error("Failed to load site content", err)
		return nil, apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}
	return doc, nil
}

func (h *Handler) replaceDoc(c echo.Context, doc *SiteContent) (ok bool, err error) {
	if err := h.store.Replace(c.Request().Context(), doc); err != nil {
		logger.Get().WithComponent("content").Error("Failed to save site content", err)
		return false, apperrors.RespondWithError(c, apperrors.NewInternal(
			apperrors.ErrCodeDatabaseError,
			"Internal server error.",
			err,
		))
	}
	return true, nil
}

// GetSiteContent returns the whole document.
func (h *Handler) GetSiteContent(c echo.Context) error {
	doc, err := h.getDoc(c)
	if doc == nil {
		return err
	}
	return c.JSON(http.StatusOK, doc)
}

// UpdateSiteContent replaces the whole document.
func (h *Handler) UpdateSiteContent(c echo.Context) error {
	doc := new(SiteContent)
	if err := c.Bind(doc); err != nil {
		return apperrors.RespondWithError(c, apperrors.NewBadRequest(
			apperrors.ErrCodeValidationFailed,
			"Invalid request payload.",
		))
	}

	if ok, err := h.replaceDoc(c, doc); !ok {
		return err
	}
	return c.JSON(http.StatusOK, doc)
}

// GetSections returns the page-section visibility toggles.
func (h *Handler) GetSections(c echo.Context) error {
	doc, err := h.getDoc(c)
	if doc == nil {
		return err
	}
	return c.JSON(http.StatusOK, doc.Sections)
}

// UpdateSections replaces only the toggles, leaving the rest of the
// document untouched.
func (h *Handler) UpdateSections(c echo.Context) error {
	sections := new(Sections)
	if err := c.Bind(sections); err != nil {
		return apperrors.RespondWithError(c, apperrors.NewBadRequest(
			apperrors.ErrCodeValidationFailed,
			"Invalid request payload.",
		))
	}

	doc, err := h.getDoc(c)
	if doc == nil {
		return err
	}

	doc.Sections = *sections
	if ok, err := h.replaceDoc(c, doc); !ok {
		return err
	}
	return c.JSON(http.StatusOK, doc.Sections)
}

func (h *Handler) GetVSLConfig(c echo.Context) error {
	doc, err := h.getDoc(c)
	if doc == nil {
		return err
	}
	return c.JSON(http.StatusOK, doc.VSLConfig)
}

func (h *Handler) UpdateVSLConfig(c echo.Context) error {
	cfg := new(VSLConfig)
	if err := c.Bind(cfg); err != nil {
		return apperrors.RespondWithError(c, apperrors.NewBadRequest(
			apperrors.ErrCodeValidationFailed,
			"Invalid request payload.",
		))
	}

	doc, err := h.getDoc(c)
	if doc == nil {
		return err
	}

	doc.VSLConfig = *cfg
	if ok, err := h.replaceDoc(c, doc); !ok {
		return err
	}
	return c.JSON(http.StatusOK, doc.VSLConfig)
}

func (h *Handler) GetFunnelConfig(c echo.Context) error {
	doc, err := h.getDoc(c)
	if doc == nil {
		return err
	}
	return c.JSON(http.StatusOK, doc.FunnelConfig)
}

func (h *Handler) UpdateFunnelConfig(c echo.Context) error {
	cfg := new(FunnelConfig)
	if err := c.Bind(cfg); err != nil {
		return apperrors.RespondWithError(c, apperrors.NewBadRequest(
			apperrors.ErrCodeValidationFailed,
			"Invalid request payload.",
		))
	}

	doc, err := h.getDoc(c)
	if doc == nil {
		return err
	}

	for i := range cfg.Steps {
		if cfg.Steps[i].ID == "" {
			cfg.Steps[i].ID = uuid.New().String()
		}
	}

	doc.FunnelConfig = *cfg
	if ok, err := h.replaceDoc(c, doc); !ok {
		return err
	}
	return c.JSON(http.StatusOK, doc.FunnelConfig)
}

func (h *Handler) GetGeoConfig(c echo.Context) error {
	doc, err := h.getDoc(c)
	if doc == nil {
		return err
	}
	return c.JSON(http.StatusOK, GeoConfig{
		GeoTargetingEnabled: doc.GeoTargetingEnabled,
		DefaultPlatform:     doc.DefaultPlatform,
		GeoPlatformMappings: doc.GeoPlatformMappings,
		PlatformConfigs:     doc.PlatformConfigs,
	})
}

func (h *Handler) UpdateGeoConfig(c echo.Context) error {
	cfg := new(GeoConfig)
	if err := c.Bind(cfg); err != nil {
		return apperrors.RespondWithError(c, apperrors.NewBadRequest(
			apperrors.ErrCodeValidationFailed,
			"Invalid request payload.",
		))
	}

	doc, err := h.getDoc(c)
	if doc == nil {
		return err
	}

	for i := range cfg.GeoPlatformMappings {
		if cfg.GeoPlatformMappings[i].ID == "" {
			cfg.GeoPlatformMappings[i].ID = uuid.New().String()
		}
	}

	doc.GeoTargetingEnabled = cfg.GeoTargetingEnabled
	doc.DefaultPlatform = cfg.DefaultPlatform
	doc.GeoPlatformMappings = cfg.GeoPlatformMappings
	doc.PlatformConfigs = cfg.PlatformConfigs
	if ok, err := h.replaceDoc(c, doc); !ok {
		return err
	}
	return c.JSON(http.StatusOK, cfg)
}

// ListProofs returns the proofs-of-gains list.
func (h *Handler) ListProofs(c echo.Context) error {
	doc, err := h.getDoc(c)
	if doc == nil {
		return err
	}
	if doc.ProofsOfGains == nil {
		return c.JSON(http.StatusOK, []ProofOfGains{})
	}
	return c.JSON(http.StatusOK, doc.ProofsOfGains)
}

// CreateProof appends a new proof after validation. The generated id is
// re-rolled until unique within the document.
func (h *Handler) CreateProof(c echo.Context) error {
	proof := new(ProofOfGains)
	if err := c.Bind(proof); err != nil {
		return apperrors.RespondWithError(c, apperrors.NewBadRequest(
			apperrors.ErrCodeValidationFailed,
			"Invalid request payload.",
		))
	}

	if appErr := validateProof(proof); appErr != nil {
		return apperrors.RespondWithError(c, appErr)
	}

	doc, err := h.getDoc(c)
	if doc == nil {
		return err
	}

	proof.ID = uuid.New().String()
	for proofIndex(doc.ProofsOfGains, proof.ID) >= 0 {
		proof.ID = uuid.New().String()
	}

	doc.ProofsOfGains = append(doc.ProofsOfGains, *proof)
	if ok, err := h.replaceDoc(c, doc); !ok {
		return err
	}

	logger.Get().WithComponent("content").Info("Proof of gains created", logger.String("proof_id", proof.ID))
	return c.JSON(http.StatusOK, proof)
}

// UpdateProof replaces the proof with the given id.
func (h *Handler) UpdateProof(c echo.Context) error {
	id := c.Param("id")

	proof := new(ProofOfGains)
	if err := c.Bind(proof); err != nil {
		return apperrors.RespondWithError(c, apperrors.NewBadRequest(
			apperrors.ErrCodeValidationFailed,
			"Invalid request payload.",
		))
	}

	if appErr := validateProof(proof); appErr != nil {
		return apperrors.RespondWithError(c, appErr)
	}

	doc, err := h.getDoc(c)
	if doc == nil {
		return err
	}

	idx := proofIndex(doc.ProofsOfGains, id)
	if idx < 0 {
		return apperrors.RespondWithError(c, apperrors.NewNotFound(
			apperrors.ErrCodeProofNotFound,
			"Proof of gains not found.",
		))
	}

	proof.ID = id
	doc.ProofsOfGains[idx] = *proof
	if ok, err := h.replaceDoc(c, doc); !ok {
		return err
	}
	return c.JSON(http.StatusOK, proof)
}

// DeleteProof removes the proof with the given id, preserving the order
// of the remaining entries.
func (h *Handler) DeleteProof(c echo.Context) error {
	id := c.Param("id")

	doc, err := h.getDoc(c)
	if doc == nil {
		return err
	}

	idx := proofIndex(doc.ProofsOfGains, id)
	if idx < 0 {
		return apperrors.RespondWithError(c, apperrors.NewNotFound(
			apperrors.ErrCodeProofNotFound,
			"Proof of gains not found.",
		))
	}

	doc.ProofsOfGains = append(doc.ProofsOfGains[:idx], doc.ProofsOfGains[idx+1:]...)
	if ok, err := h.replaceDoc(c, doc); !ok {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Proof of gains deleted."})
}

func validateProof(proof *ProofOfGains) *apperrors.AppError {
	if proof.Title == "" || proof.Description == "" {
		return apperrors.NewBadRequest(
			apperrors.ErrCodeMissingField,
			"Title and description are required.",
		)
	}
	if proof.ImageBase64 != "" && len(proof.ImageBase64) < minImageBase64Len {
		return apperrors.NewBadRequest(
			apperrors.ErrCodeInvalidImage,
			"Image payload is too small to be a valid image.",
		)
	}
	return nil
}

func proofIndex(proofs []ProofOfGains, id string) int {
	for i := range proofs {
		if proofs[i].ID == id {
			return i
		}
	}
	return -1
}
