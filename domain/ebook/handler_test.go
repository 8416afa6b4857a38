package ebook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	ebooks map[string]*Ebook
	order  []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{ebooks: map[string]*Ebook{}}
}

func (f *fakeStore) List(ctx context.Context) ([]Ebook, error) {
	out := []Ebook{}
	for _, id := range f.order {
		out = append(out, *f.ebooks[id])
	}
	return out, nil
}

func (f *fakeStore) Get(ctx context.Context, id string) (*Ebook, error) {
	e, ok := f.ebooks[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *e
	return &copied, nil
}

func (f *fakeStore) Create(ctx context.Context, e *Ebook) error {
	now := time.Now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now
	copied := *e
	f.ebooks[e.ID] = &copied
	f.order = append(f.order, e.ID)
	return nil
}

func (f *fakeStore) Update(ctx context.Context, e *Ebook) error {
	if _, ok := f.ebooks[e.ID]; !ok {
		return ErrNotFound
	}
	e.UpdatedAt = time.Now().UTC()
	copied := *e
	f.ebooks[e.ID] = &copied
	return nil
}

func (f *fakeStore) Delete(ctx context.Context, id string) error {
	if _, ok := f.ebooks[id]; !ok {
		return ErrNotFound
	}
	delete(f.ebooks, id)
	for i, existing := range f.order {
		if existing == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCreate_RequiresTitle(t *testing.T) {
	h := NewHandler(newFakeStore())

	c, rec := newTestContext(http.MethodPost, "/api/ebooks", `{"description":"sem titulo"}`)
	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEbookLifecycle(t *testing.T) {
	store := newFakeStore()
	h := NewHandler(store)

	c, rec := newTestContext(http.MethodPost, "/api/ebooks",
		`{"title":"Guia Cripto","price":97,"enabled":true}`)
	require.NoError(t, h.Create(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var created Ebook
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "Guia Cripto", created.Title)

	c, rec = newTestContext(http.MethodGet, "/api/ebooks", "")
	require.NoError(t, h.List(c))
	var listed []Ebook
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 1)

	c, rec = newTestContext(http.MethodPut, "/api/ebooks/"+created.ID,
		`{"title":"Guia Cripto 2.0","price":147,"enabled":true}`)
	c.SetParamNames("id")
	c.SetParamValues(created.ID)
	require.NoError(t, h.Update(c))
	require.Equal(t, http.StatusOK, rec.Code)

	got, err := store.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Guia Cripto 2.0", got.Title)
	assert.Equal(t, float64(147), got.Price)

	c, rec = newTestContext(http.MethodDelete, "/api/ebooks/"+created.ID, "")
	c.SetParamNames("id")
	c.SetParamValues(created.ID)
	require.NoError(t, h.Delete(c))
	require.Equal(t, http.StatusOK, rec.Code)

	listed, err = store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestGet_NotFound(t *testing.T) {
	h := NewHandler(newFakeStore())

	c, rec := newTestContext(http.MethodGet, "/api/ebooks/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")
	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdate_NotFound(t *testing.T) {
	h := NewHandler(newFakeStore())

	c, rec := newTestContext(http.MethodPut, "/api/ebooks/missing", `{"title":"x"}`)
	c.SetParamNames("id")
	c.SetParamValues("missing")
	require.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
