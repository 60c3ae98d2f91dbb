package domain

// AnalyticsEvent is a single tracked interaction, newest kept at the head of
// the session log
type AnalyticsEvent struct {
	ID        string                 `json:"id"`
	Name      string                 `json:"name"`
	Timestamp int64                  `json:"timestamp"` // milliseconds since epoch
	Data      map[string]interface{} `json:"data,omitempty"`
}

// DailyVisitorData is one point of the mock 30-day traffic series
type DailyVisitorData struct {
	Date      string `json:"date"`
	Visitors  int    `json:"visitors"`
	PageViews int    `json:"page_views"`
}

// GeoLocationData is one coarse visitor bucket
type GeoLocationData struct {
	Country    string `json:"country"`
	Visitors   int    `json:"visitors"`
	Percentage int    `json:"percentage"`
}

// SectionEngagement is a page section with its view counter and the share of
// all section views it represents, recomputed at query time
type SectionEngagement struct {
	Section    string `json:"section"`
	Views      int    `json:"views"`
	Percentage int    `json:"percentage"`
}

// ButtonAnalytics is a clicked button identified by label and page location
type ButtonAnalytics struct {
	Label    string `json:"label"`
	Location string `json:"location"`
	Count    int    `json:"count"`
}

// RealtimeStats carries the mocked live signal
type RealtimeStats struct {
	ActiveUsers int `json:"active_users"`
}

// TotalStats are fixed placeholder aggregates for the dashboard header
type TotalStats struct {
	Visitors    string `json:"visitors"`
	BounceRate  string `json:"bounce_rate"`
	AvgDuration string `json:"avg_duration"`
	Growth      string `json:"growth"`
}

// AnalyticsSnapshot is the composed read-only view served to the dashboard
type AnalyticsSnapshot struct {
	DailyStats        []DailyVisitorData  `json:"daily_stats"`
	GeoStats          []GeoLocationData   `json:"geo_stats"`
	RecentEvents      []AnalyticsEvent    `json:"recent_events"`
	SectionEngagement []SectionEngagement `json:"section_engagement"`
	TopButtons        []ButtonAnalytics   `json:"top_buttons"`
	PeakDay           DailyVisitorData    `json:"peak_day"`
	Realtime          RealtimeStats       `json:"realtime"`
	TotalStats        TotalStats          `json:"total_stats"`
}

// Coordinates are device geolocation coordinates cached per session
type Coordinates struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}
