package analytics

import "time"

// Kind is a trackable event type.
type Kind string

const (
	KindPageView    Kind = "page_view"
	KindVideoView   Kind = "video_view"
	KindButtonClick Kind = "button_click"
)

// Day aggregates one UTC calendar day's event counters.
type Day struct {
	Date         time.Time `db:"day" json:"date"`
	PageViews    int64     `db:"page_views" json:"page_views"`
	VideoViews   int64     `db:"video_views" json:"video_views"`
	ButtonClicks int64     `db:"button_clicks" json:"button_clicks"`
	Conversions  int64     `db:"conversions" json:"conversions"`
}

// DayOf truncates a timestamp to the start of its UTC day.
func DayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
