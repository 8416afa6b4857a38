package analytics

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore accumulates counters per day like the upsert-with-increment
// SQL store does.
type fakeStore struct {
	days map[time.Time]*Day
}

func newFakeStore() *fakeStore {
	return &fakeStore{days: map[time.Time]*Day{}}
}

func (f *fakeStore) Track(ctx context.Context, kind Kind, day time.Time) error {
	key := DayOf(day)
	row, ok := f.days[key]
	if !ok {
		row = &Day{Date: key}
		f.days[key] = row
	}
	switch kind {
	case KindPageView:
		row.PageViews++
	case KindVideoView:
		row.VideoViews++
	case KindButtonClick:
		row.ButtonClicks++
	}
	return nil
}

func (f *fakeStore) Recent(ctx context.Context, limit int) ([]Day, error) {
	days := []Day{}
	for _, row := range f.days {
		days = append(days, *row)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date.After(days[j].Date) })
	if len(days) > limit {
		days = days[:limit]
	}
	return days, nil
}

func post(t *testing.T, h echo.HandlerFunc, target string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, target, nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	return rec
}

func TestTrack_ThreePageViewsSameDay(t *testing.T) {
	store := newFakeStore()
	h := NewHandler(store)

	for i := 0; i < 3; i++ {
		rec := post(t, h.TrackPageView, "/api/analytics/page-view")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "message")
	}

	require.Len(t, store.days, 1)
	for _, row := range store.days {
		assert.Equal(t, int64(3), row.PageViews)
		assert.Equal(t, int64(0), row.VideoViews)
	}
}

func TestTrack_KindsCountedSeparately(t *testing.T) {
	store := newFakeStore()
	h := NewHandler(store)

	post(t, h.TrackPageView, "/api/analytics/page-view")
	post(t, h.TrackVideoView, "/api/analytics/video-view")
	post(t, h.TrackButtonClick, "/api/analytics/button-click")
	post(t, h.TrackButtonClick, "/api/analytics/button-click")

	require.Len(t, store.days, 1)
	for _, row := range store.days {
		assert.Equal(t, int64(1), row.PageViews)
		assert.Equal(t, int64(1), row.VideoViews)
		assert.Equal(t, int64(2), row.ButtonClicks)
	}
}

func TestTrack_NewDayStartsNewRow(t *testing.T) {
	store := newFakeStore()

	today := time.Date(2025, 8, 30, 23, 59, 0, 0, time.UTC)
	tomorrow := time.Date(2025, 8, 31, 0, 1, 0, 0, time.UTC)

	require.NoError(t, store.Track(context.Background(), KindPageView, today))
	require.NoError(t, store.Track(context.Background(), KindPageView, tomorrow))

	require.Len(t, store.days, 2)
	assert.Equal(t, int64(1), store.days[DayOf(today)].PageViews)
	assert.Equal(t, int64(1), store.days[DayOf(tomorrow)].PageViews)
}

func TestGetAnalytics_NewestFirstBounded(t *testing.T) {
	store := newFakeStore()
	h := NewHandler(store)

	base := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 40; i++ {
		require.NoError(t, store.Track(context.Background(), KindPageView, base.AddDate(0, 0, i)))
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/analytics", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.GetAnalytics(e.NewContext(req, rec)))
	require.Equal(t, http.StatusOK, rec.Code)

	var days []Day
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &days))
	require.Len(t, days, recentDaysLimit)

	for i := 1; i < len(days); i++ {
		assert.True(t, days[i-1].Date.After(days[i].Date), "expected descending dates")
	}
	assert.Equal(t, DayOf(base.AddDate(0, 0, 39)), days[0].Date)
}

func TestDayOf_TruncatesToUTCDay(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*60*60)
	local := time.Date(2025, 8, 30, 22, 30, 0, 0, loc) // 01:30 next day UTC

	got := DayOf(local)
	assert.Equal(t, time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC), got)
}

func TestCounterColumn_KnownKinds(t *testing.T) {
	for kind, want := range map[Kind]string{
		KindPageView:    "page_views",
		KindVideoView:   "video_views",
		KindButtonClick: "button_clicks",
	} {
		col, err := counterColumn(kind)
		require.NoError(t, err)
		assert.Equal(t, want, col)
	}

	_, err := counterColumn(Kind("bogus"))
	assert.Error(t, err)
}
