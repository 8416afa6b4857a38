package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/codigo-r/landing-backend/domain/content"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func geoDoc(enabled bool) *content.SiteContent {
	return &content.SiteContent{
		GeoTargetingEnabled: enabled,
		DefaultPlatform:     "hotmart",
		GeoPlatformMappings: []content.GeoPlatformMapping{
			{ID: "1", CountryCode: "BR", CountryName: "Brasil", PrimaryPlatform: "hotmart", BackupPlatforms: []string{"kiwify"}, Enabled: true},
			{ID: "2", CountryCode: "US", CountryName: "Estados Unidos", PrimaryPlatform: "clickbank", BackupPlatforms: []string{"hotmart"}, Enabled: false},
		},
	}
}

func TestRecommend_MappedCountry(t *testing.T) {
	rec := Recommend(geoDoc(true), "BR")
	assert.Equal(t, "hotmart", rec.Platform)
	assert.Equal(t, []string{"kiwify"}, rec.BackupPlatforms)
	assert.Equal(t, "Brasil", rec.Country)
}

func TestRecommend_UnmappedCountryFallsBack(t *testing.T) {
	rec := Recommend(geoDoc(true), "JP")
	assert.Equal(t, "hotmart", rec.Platform)
	assert.Empty(t, rec.BackupPlatforms)
}

func TestRecommend_DisabledMappingSkipped(t *testing.T) {
	rec := Recommend(geoDoc(true), "US")
	assert.Equal(t, "hotmart", rec.Platform)
	assert.Empty(t, rec.BackupPlatforms)
}

func TestRecommend_GeoTargetingDisabled(t *testing.T) {
	rec := Recommend(geoDoc(false), "BR")
	assert.Equal(t, "hotmart", rec.Platform)
	assert.Empty(t, rec.BackupPlatforms)
}

func TestRecommend_ExactMatchOnly(t *testing.T) {
	// Matching never normalizes case.
	rec := Recommend(geoDoc(true), "br")
	assert.Equal(t, "hotmart", rec.Platform)
	assert.Empty(t, rec.BackupPlatforms)
	assert.Empty(t, rec.Country)
}

func TestLocate_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/203.0.113.9", r.URL.Path)
		w.Write([]byte(`{"status":"success","countryCode":"PT","country":"Portugal","regionName":"Lisboa","city":"Lisboa"}`))
	}))
	defer server.Close()

	r := NewResolver(server.URL, "BR", "Brasil")
	loc := r.Locate(context.Background(), "203.0.113.9")

	assert.Equal(t, "PT", loc.CountryCode)
	assert.Equal(t, "Portugal", loc.CountryName)
	assert.Equal(t, "Lisboa", loc.Region)
	assert.Equal(t, "203.0.113.9", loc.IP)
}

func TestLocate_NonSuccessStatusFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"fail","message":"private range"}`))
	}))
	defer server.Close()

	r := NewResolver(server.URL, "BR", "Brasil")
	loc := r.Locate(context.Background(), "203.0.113.9")

	assert.Equal(t, "BR", loc.CountryCode)
	assert.Equal(t, "Brasil", loc.CountryName)
	assert.Equal(t, "203.0.113.9", loc.IP)
}

func TestLocate_TransportErrorFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // already closed, every request fails

	r := NewResolver(server.URL, "BR", "Brasil")
	loc := r.Locate(context.Background(), "203.0.113.9")

	assert.Equal(t, "BR", loc.CountryCode)
}

func TestLocate_HTTPErrorFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	r := NewResolver(server.URL, "BR", "Brasil")
	loc := r.Locate(context.Background(), "203.0.113.9")

	assert.Equal(t, "BR", loc.CountryCode)
}

func clientIPFor(remoteAddr string, headers map[string]string) string {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = remoteAddr
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	return ClientIP(e.NewContext(req, rec))
}

func TestClientIP_PrefersForwardedFor(t *testing.T) {
	ip := clientIPFor("10.0.0.1:1234", map[string]string{
		"X-Forwarded-For": "203.0.113.7, 10.0.0.1",
		"X-Real-IP":       "198.51.100.2",
	})
	assert.Equal(t, "203.0.113.7", ip)
}

func TestClientIP_FallsBackToRealIP(t *testing.T) {
	ip := clientIPFor("10.0.0.1:1234", map[string]string{
		"X-Real-IP": "198.51.100.2",
	})
	assert.Equal(t, "198.51.100.2", ip)
}

func TestClientIP_UsesPeerAddress(t *testing.T) {
	ip := clientIPFor("203.0.113.10:5555", nil)
	assert.Equal(t, "203.0.113.10", ip)
}

func TestClientIP_LoopbackSubstituted(t *testing.T) {
	ip := clientIPFor("127.0.0.1:5555", nil)
	assert.Equal(t, testPublicIP, ip)

	ip = clientIPFor("10.0.0.1:1234", map[string]string{"X-Forwarded-For": "127.0.0.1"})
	assert.Equal(t, testPublicIP, ip)
}
