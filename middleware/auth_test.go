package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/codigo-r/landing-backend/domain/auth"
	"github.com/codigo-r/landing-backend/pkg/token"
	"github.com/labstack/echo/v4"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserStore struct {
	users map[string]*auth.User
}

func (f *fakeUserStore) GetByUsername(ctx context.Context, username string) (*auth.User, error) {
	u, ok := f.users[username]
	if !ok {
		return nil, auth.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserStore) Create(ctx context.Context, u *auth.User) error {
	f.users[u.Username] = u
	return nil
}

func (f *fakeUserStore) AdminExists(ctx context.Context) (bool, error) {
	return false, nil
}

func newServer(users *fakeUserStore) *echo.Echo {
	e := echo.New()
	ok := func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "ok"})
	}
	e.GET("/protected", ok, JWT(users))
	e.GET("/admin", ok, JWT(users), AdminOnly)
	return e
}

func doRequest(e *echo.Echo, path, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func init() {
	viper.Set("JWT_SECRET", "test-secret")
}

func TestJWT_MissingToken(t *testing.T) {
	e := newServer(&fakeUserStore{users: map[string]*auth.User{}})
	rec := doRequest(e, "/protected", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWT_InvalidToken(t *testing.T) {
	e := newServer(&fakeUserStore{users: map[string]*auth.User{}})
	rec := doRequest(e, "/protected", "not.a.jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWT_SubjectNoLongerExists(t *testing.T) {
	e := newServer(&fakeUserStore{users: map[string]*auth.User{}})

	tok, err := token.Generate("ghost", []byte("test-secret"))
	require.NoError(t, err)

	rec := doRequest(e, "/protected", tok)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWT_ValidTokenPasses(t *testing.T) {
	users := &fakeUserStore{users: map[string]*auth.User{
		"trader": {Username: "trader"},
	}}
	e := newServer(users)

	tok, err := token.Generate("trader", []byte("test-secret"))
	require.NoError(t, err)

	rec := doRequest(e, "/protected", tok)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminOnly_RejectsNonAdmin(t *testing.T) {
	users := &fakeUserStore{users: map[string]*auth.User{
		"trader": {Username: "trader"},
		"admin":  {Username: "admin", IsAdmin: true},
	}}
	e := newServer(users)

	tok, err := token.Generate("trader", []byte("test-secret"))
	require.NoError(t, err)
	rec := doRequest(e, "/admin", tok)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	tok, err = token.Generate("admin", []byte("test-secret"))
	require.NoError(t, err)
	rec = doRequest(e, "/admin", tok)
	assert.Equal(t, http.StatusOK, rec.Code)
}
