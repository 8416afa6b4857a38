package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// Store persists the daily counters.
type Store interface {
	// Track increments the counter for kind on the given day, creating
	// the day row when it does not exist yet. The day primary key makes
	// the find-or-create atomic under concurrent first events.
	Track(ctx context.Context, kind Kind, day time.Time) error
	// Recent returns up to limit day rows, newest first.
	Recent(ctx context.Context, limit int) ([]Day, error)
}

type SQLStore struct {
	db *sqlx.DB
}

func NewStore(db *sqlx.DB) *SQLStore {
	return &SQLStore{db: db}
}

func counterColumn(kind Kind) (string, error) {
	switch kind {
	case KindPageView:
		return "page_views", nil
	case KindVideoView:
		return "video_views", nil
	case KindButtonClick:
		return "button_clicks", nil
	default:
		return "", fmt.Errorf("unknown analytics kind: %q", kind)
	}
}

func (s *SQLStore) Track(ctx context.Context, kind Kind, day time.Time) error {
	column, err := counterColumn(kind)
	if err != nil {
		return err
	}

	// The column name comes from the switch above, never from input.
	query := fmt.Sprintf(`
		INSERT INTO analytics_daily (day, %[1]s)
		VALUES ($1, 1)
		ON CONFLICT (day) DO UPDATE
		SET %[1]s = analytics_daily.%[1]s + 1
	`, column)

	_, err = s.db.ExecContext(ctx, query, DayOf(day))
	return err
}

func (s *SQLStore) Recent(ctx context.Context, limit int) ([]Day, error) {
	days := []Day{}
	err := s.db.SelectContext(ctx, &days, `
		SELECT day, page_views, video_views, button_clicks, conversions
		FROM analytics_daily
		ORDER BY day DESC
		LIMIT $1
	`, limit)
	return days, err
}
