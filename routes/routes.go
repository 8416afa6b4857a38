package routes

import (
	"net/http"

	"github.com/codigo-r/landing-backend/domain/analytics"
	"github.com/codigo-r/landing-backend/domain/auth"
	"github.com/codigo-r/landing-backend/domain/content"
	"github.com/codigo-r/landing-backend/domain/ebook"
	"github.com/codigo-r/landing-backend/domain/geo"
	"github.com/codigo-r/landing-backend/domain/health"
	"github.com/codigo-r/landing-backend/domain/product"
	"github.com/codigo-r/landing-backend/middleware"
	"github.com/labstack/echo/v4"
)

// Handlers carries every routable handler plus the user store backing the
// auth middleware.
type Handlers struct {
	Auth      *auth.Handler
	Content   *content.Handler
	Geo       *geo.Handler
	Analytics *analytics.Handler
	Ebook     *ebook.Handler
	Product   *product.Handler
	Health    *health.Handler
	Users     auth.Store
}

// RegisterRoutes wires the API surface under /api. Reads are public;
// mutations and analytics readback require an admin bearer token.
func RegisterRoutes(e *echo.Echo, h Handlers) {
	jwt := middleware.JWT(h.Users)
	admin := middleware.AdminOnly

	api := e.Group("/api")

	api.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "Codigo R API"})
	})
	api.GET("/health", h.Health.Check)

	// Auth
	api.POST("/register", h.Auth.Register)
	api.POST("/login", h.Auth.Login)
	api.POST("/init-admin", h.Auth.InitAdmin)
	api.GET("/me", h.Auth.Me, jwt)

	// Site content and its sub-resource views
	api.GET("/site-content", h.Content.GetSiteContent)
	api.PUT("/site-content", h.Content.UpdateSiteContent, jwt, admin)
	api.GET("/sections", h.Content.GetSections)
	api.PUT("/sections", h.Content.UpdateSections, jwt, admin)
	api.GET("/vsl-config", h.Content.GetVSLConfig)
	api.PUT("/vsl-config", h.Content.UpdateVSLConfig, jwt, admin)
	api.GET("/funnel-config", h.Content.GetFunnelConfig)
	api.PUT("/funnel-config", h.Content.UpdateFunnelConfig, jwt, admin)
	api.GET("/geo-config", h.Content.GetGeoConfig)
	api.PUT("/geo-config", h.Content.UpdateGeoConfig, jwt, admin)

	// Proofs of gains
	api.GET("/proofs-of-gains", h.Content.ListProofs)
	api.POST("/proofs-of-gains", h.Content.CreateProof, jwt, admin)
	api.PUT("/proofs-of-gains/:id", h.Content.UpdateProof, jwt, admin)
	api.DELETE("/proofs-of-gains/:id", h.Content.DeleteProof, jwt, admin)

	// Geo targeting
	api.GET("/detect-country", h.Geo.DetectCountry)
	api.GET("/recommended-platform/:country_code", h.Geo.RecommendedPlatform)

	// Analytics
	api.POST("/analytics/page-view", h.Analytics.TrackPageView)
	api.POST("/analytics/video-view", h.Analytics.TrackVideoView)
	api.POST("/analytics/button-click", h.Analytics.TrackButtonClick)
	api.GET("/analytics", h.Analytics.GetAnalytics, jwt, admin)

	// Ebooks
	api.GET("/ebooks", h.Ebook.List)
	api.GET("/ebooks/:id", h.Ebook.Get)
	api.POST("/ebooks", h.Ebook.Create, jwt, admin)
	api.PUT("/ebooks/:id", h.Ebook.Update, jwt, admin)
	api.DELETE("/ebooks/:id", h.Ebook.Delete, jwt, admin)

	// Legacy products
	api.GET("/products", h.Product.List)
	api.GET("/products/:id", h.Product.Get)
	api.POST("/products", h.Product.Create, jwt, admin)
	api.PUT("/products/:id", h.Product.Update, jwt, admin)
	api.DELETE("/products/:id", h.Product.Delete, jwt, admin)
}
