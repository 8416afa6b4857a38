package geo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/codigo-r/landing-backend/domain/content"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeContentStore struct {
	doc *content.SiteContent
}

func (f *fakeContentStore) Get(ctx context.Context) (*content.SiteContent, error) {
	return f.doc, nil
}

func (f *fakeContentStore) Replace(ctx context.Context, doc *content.SiteContent) error {
	f.doc = doc
	return nil
}

func TestRecommendedPlatformHandler(t *testing.T) {
	h := NewHandler(&fakeContentStore{doc: geoDoc(true)}, NewResolver("http://unused", "BR", "Brasil"))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/recommended-platform/BR", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("country_code")
	c.SetParamValues("BR")

	require.NoError(t, h.RecommendedPlatform(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var got Recommendation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "hotmart", got.Platform)
	assert.Equal(t, []string{"kiwify"}, got.BackupPlatforms)
}

func TestDetectCountryHandler_FallsBackOnLookupFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	h := NewHandler(&fakeContentStore{doc: geoDoc(true)}, NewResolver(server.URL, "BR", "Brasil"))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/detect-country", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7")
	rec := httptest.NewRecorder()

	require.NoError(t, h.DetectCountry(e.NewContext(req, rec)))
	require.Equal(t, http.StatusOK, rec.Code)

	var loc Location
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &loc))
	assert.Equal(t, "BR", loc.CountryCode)
	assert.Equal(t, "203.0.113.7", loc.IP)
}
