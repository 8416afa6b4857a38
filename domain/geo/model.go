package geo

// Location is the best-effort geolocation of a request.
type Location struct {
	CountryCode string `json:"country_code"`
	CountryName string `json:"country_name"`
	Region      string `json:"region"`
	City        string `json:"city"`
	IP          string `json:"ip"`
}

// Recommendation is the payment platform suggested for a country.
type Recommendation struct {
	Platform        string   `json:"platform"`
	BackupPlatforms []string `json:"backup_platforms,omitempty"`
	Country         string   `json:"country,omitempty"`
}
