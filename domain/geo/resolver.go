package geo

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/codigo-r/landing-backend/domain/content"
	"github.com/labstack/echo/v4"
)

// Geolocating a loopback address is meaningless, so local development
// traffic is looked up as this public address instead.
const testPublicIP = "8.8.8.8"

const lookupTimeout = 5 * time.Second

// Resolver turns an IP address into a Location via an external
// ip-api-shaped lookup service. It never fails: any transport error,
// non-OK status or non-"success" body yields the fallback location.
type Resolver struct {
	client   *http.Client
	baseURL  string
	fallback Location
}

func NewResolver(baseURL, fallbackCode, fallbackName string) *Resolver {
	return &Resolver{
		client:  &http.Client{Timeout: lookupTimeout},
		baseURL: strings.TrimSuffix(baseURL, "/"),
		fallback: Location{
			CountryCode: fallbackCode,
			CountryName: fallbackName,
		},
	}
}

type lookupResponse struct {
	Status      string `json:"status"`
	CountryCode string `json:"countryCode"`
	Country     string `json:"country"`
	RegionName  string `json:"regionName"`
	City        string `json:"city"`
}

// Locate resolves the given IP, falling back to the configured country on
// any failure.
func (r *Resolver) Locate(ctx context.Context, ip string) Location {
	fallback := r.fallback
	fallback.IP = ip

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/"+ip, nil)
	if err != nil {
		return fallback
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return fallback
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fallback
	}

	var body lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fallback
	}
	if body.Status != "success" {
		return fallback
	}

	return Location{
		CountryCode: body.CountryCode,
		CountryName: body.Country,
		Region:      body.RegionName,
		City:        body.City,
		IP:          ip,
	}
}

// ClientIP extracts the caller's address, preferring X-Forwarded-For
// (first entry) over X-Real-IP over the transport peer. Loopback and
// private addresses are substituted with a public test address.
func ClientIP(c echo.Context) string {
	ip := ""

	if xff := c.Request().Header.Get("X-Forwarded-For"); xff != "" {
		ip = strings.TrimSpace(strings.Split(xff, ",")[0])
	} else if realIP := c.Request().Header.Get("X-Real-IP"); realIP != "" {
		ip = strings.TrimSpace(realIP)
	} else {
		host, _, err := net.SplitHostPort(c.Request().RemoteAddr)
		if err != nil {
			host = c.Request().RemoteAddr
		}
		ip = host
	}

	if isLocalAddress(ip) {
		return testPublicIP
	}
	return ip
}

func isLocalAddress(ip string) bool {
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return true
	}
	return parsed.IsLoopback() || parsed.IsPrivate() || parsed.IsUnspecified()
}

// Recommend maps a country code to a payment platform using the
// document's mappings. Matching is exact string equality on the code.
func Recommend(doc *content.SiteContent, countryCode string) Recommendation {
	if !doc.GeoTargetingEnabled {
		return Recommendation{Platform: doc.DefaultPlatform}
	}

	for _, m := range doc.GeoPlatformMappings {
		if m.Enabled && m.CountryCode == countryCode {
			return Recommendation{
				Platform:        m.PrimaryPlatform,
				BackupPlatforms: m.BackupPlatforms,
				Country:         m.CountryName,
			}
		}
	}

	return Recommendation{Platform: doc.DefaultPlatform}
}
