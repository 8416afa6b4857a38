package content

import "time"

// SiteContent is the single mutable aggregate behind the landing page.
// It is stored as one JSONB document under a fixed key; every sub-resource
// endpoint is a view over one of its fields.
type SiteContent struct {
	SiteTitle     string `json:"site_title"`
	HeroTitle     string `json:"hero_title"`
	HeroSubtitle  string `json:"hero_subtitle"`
	HeroCTAText   string `json:"hero_cta_text"`
	FeaturesTitle string `json:"features_title"`

	Features []Feature `json:"features"`

	TestimonialsTitle string        `json:"testimonials_title"`
	Testimonials      []Testimonial `json:"testimonials"`

	PricingTitle  string      `json:"pricing_title"`
	Price         float64     `json:"price"`
	OriginalPrice float64     `json:"original_price"`
	BuyButtons    []BuyButton `json:"buy_buttons"`

	ProofsTitle    string         `json:"proofs_title"`
	ProofsSubtitle string         `json:"proofs_subtitle"`
	ProofsOfGains  []ProofOfGains `json:"proofs_of_gains"`

	FooterText string `json:"footer_text"`

	Sections     Sections     `json:"sections"`
	VSLConfig    VSLConfig    `json:"vsl_config"`
	FunnelConfig FunnelConfig `json:"funnel_config"`

	GeoTargetingEnabled bool                 `json:"geo_targeting_enabled"`
	DefaultPlatform     string               `json:"default_platform"`
	GeoPlatformMappings []GeoPlatformMapping `json:"geo_platform_mappings"`
	PlatformConfigs     []PlatformConfig     `json:"platform_configs"`

	UpdatedAt time.Time `json:"updated_at"`
}

type Feature struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Testimonial struct {
	Name   string `json:"name"`
	Text   string `json:"text"`
	Result string `json:"result"`
}

type BuyButton struct {
	ID       string `json:"id"`
	Platform string `json:"platform"`
	Label    string `json:"label"`
	URL      string `json:"url"`
	Enabled  bool   `json:"enabled"`
}

// Sections are independent visibility toggles, one per page region.
type Sections struct {
	Header       bool `json:"header"`
	Hero         bool `json:"hero"`
	VSL          bool `json:"vsl"`
	Features     bool `json:"features"`
	Testimonials bool `json:"testimonials"`
	Pricing      bool `json:"pricing"`
	FAQ          bool `json:"faq"`
	Footer       bool `json:"footer"`
}

type VSLConfig struct {
	Enabled      bool   `json:"enabled"`
	Title        string `json:"title"`
	Subtitle     string `json:"subtitle"`
	Description  string `json:"description"`
	VideoURL     string `json:"video_url"`
	ThumbnailURL string `json:"thumbnail_url"`
	CTAText      string `json:"cta_text"`
}

type FunnelStep struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Enabled     bool   `json:"enabled"`
	Order       int    `json:"order"`
}

type FunnelConfig struct {
	Steps []FunnelStep `json:"steps"`
}

// ProofOfGains is a testimonial-like trading result, optionally with an
// inline base64 image.
type ProofOfGains struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Amount      string `json:"amount,omitempty"`
	Date        string `json:"date"`
	ImageBase64 string `json:"image_base64,omitempty"`
	ImageAlt    string `json:"image_alt,omitempty"`
	ShowAmount  bool   `json:"show_amount"`
	Enabled     bool   `json:"enabled"`
}

type GeoPlatformMapping struct {
	ID              string   `json:"id"`
	CountryCode     string   `json:"country_code"`
	CountryName     string   `json:"country_name"`
	PrimaryPlatform string   `json:"primary_platform"`
	BackupPlatforms []string `json:"backup_platforms"`
	Enabled         bool     `json:"enabled"`
}

type PlatformConfig struct {
	PlatformName       string   `json:"platform_name"`
	DisplayName        string   `json:"display_name"`
	BaseURL            string   `json:"base_url"`
	CommissionRate     float64  `json:"commission_rate,omitempty"`
	SupportedCountries []string `json:"supported_countries"`
	PaymentMethods     []string `json:"payment_methods"`
	Enabled            bool     `json:"enabled"`
}

// GeoConfig is the geo-targeting view over the site content document.
type GeoConfig struct {
	GeoTargetingEnabled bool                 `json:"geo_targeting_enabled"`
	DefaultPlatform     string               `json:"default_platform"`
	GeoPlatformMappings []GeoPlatformMapping `json:"geo_platform_mappings"`
	PlatformConfigs     []PlatformConfig     `json:"platform_configs"`
}
