package service

import (
	"context"
	"math"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Kim-Emmanuel/granger/internal/domain"
	"github.com/Kim-Emmanuel/granger/pkg/logger"
)

// eventLogCap bounds the session event log; the oldest entries beyond it are
// discarded
const eventLogCap = 100

// Baseline counters so the dashboard is populated on a fresh process
var baselineSectionViews = map[string]int{
	"Hero":         1450,
	"Features":     1200,
	"Program":      980,
	"Tracking":     850,
	"Events":       720,
	"Testimonials": 600,
	"Footer":       450,
}

var baselineButtonClicks = map[string]int{
	"Join Now (Hero)":           342,
	"Get Started (Navbar)":      287,
	"Join Class (Program)":      198,
	"Watch Live (Program)":      166,
	"Book Event (Events)":       154,
	"Full Game (Session Card)":  96,
	"Arrow Link (Session Card)": 88,
}

// Visitor buckets in fixed display order; percentages track the shared
// denominator and are recomputed together on every attribution
var baselineGeoStats = []domain.GeoLocationData{
	{Country: "United States", Visitors: 12500, Percentage: 45},
	{Country: "United Kingdom", Visitors: 5400, Percentage: 20},
	{Country: "Germany", Visitors: 3200, Percentage: 12},
	{Country: "Canada", Visitors: 2100, Percentage: 8},
	{Country: "Japan", Visitors: 1500, Percentage: 5},
	{Country: "Others", Visitors: 2800, Percentage: 10},
}

// analyticsService is the process-local analytics store. One instance per
// process; every field is owned by it and guarded by mu.
type analyticsService struct {
	log  *logger.Logger
	sink Sink

	mu           sync.Mutex
	events       []domain.AnalyticsEvent
	sectionViews map[string]int
	buttonClicks map[string]int
	geoStats     []domain.GeoLocationData
	geoSessions  map[string]string // session -> attributed bucket
	locations    map[string]domain.Coordinates
	dailyStats   []domain.DailyVisitorData
	rng          *rand.Rand
}

// NewAnalyticsService creates the analytics store seeded with baseline
// counters and a freshly generated 30-day mock series
func NewAnalyticsService(sink Sink, log *logger.Logger) AnalyticsService {
	if sink == nil {
		sink = NoopSink{}
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	sections := make(map[string]int, len(baselineSectionViews))
	for k, v := range baselineSectionViews {
		sections[k] = v
	}
	buttons := make(map[string]int, len(baselineButtonClicks))
	for k, v := range baselineButtonClicks {
		buttons[k] = v
	}
	geo := make([]domain.GeoLocationData, len(baselineGeoStats))
	copy(geo, baselineGeoStats)

	return &analyticsService{
		log:          log,
		sink:         sink,
		sectionViews: sections,
		buttonClicks: buttons,
		geoStats:     geo,
		geoSessions:  make(map[string]string),
		locations:    make(map[string]domain.Coordinates),
		dailyStats:   generateDailySeries(rng),
		rng:          rng,
	}
}

// generateDailySeries builds the mock traffic series for the trailing 30
// days. Generated once at construction, never mutated afterwards.
func generateDailySeries(rng *rand.Rand) []domain.DailyVisitorData {
	series := make([]domain.DailyVisitorData, 0, 30)
	today := time.Now()
	for i := 29; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		series = append(series, domain.DailyVisitorData{
			Date:      day.Format("Jan 02"),
			Visitors:  rng.Intn(800) + 1200,
			PageViews: rng.Intn(2000) + 3000,
		})
	}
	return series
}

// TrackEvent appends an event to the head of the log, enriching it with the
// session's cached coordinates when known, then forwards a normalized copy
// to the bridge. The bridge call is best effort.
func (s *analyticsService) TrackEvent(ctx context.Context, session, name string, data map[string]interface{}) domain.AnalyticsEvent {
	event := domain.AnalyticsEvent{
		ID:        uuid.NewString(),
		Name:      name,
		Timestamp: time.Now().UnixMilli(),
	}

	s.mu.Lock()
	if coords, ok := s.locations[session]; ok {
		if data == nil {
			data = make(map[string]interface{}, 2)
		}
		data["lat"] = coords.Latitude
		data["lng"] = coords.Longitude
	}
	event.Data = data

	s.events = append([]domain.AnalyticsEvent{event}, s.events...)
	if len(s.events) > eventLogCap {
		s.events = s.events[:eventLogCap]
	}
	s.mu.Unlock()

	if err := s.sink.Send(ctx, NormalizeEventName(name), data); err != nil {
		s.log.WithError(err).WithField("event", name).Warn("Bridge send failed")
	}

	return event
}

// TrackSectionView increments the section counter and logs the view
func (s *analyticsService) TrackSectionView(ctx context.Context, session, section string) {
	s.mu.Lock()
	s.sectionViews[section]++
	s.mu.Unlock()

	s.TrackEvent(ctx, session, "Section View", map[string]interface{}{"section": section})
}

// TrackButtonClick increments the composite button counter and logs the click
func (s *analyticsService) TrackButtonClick(ctx context.Context, session, label, location string) {
	s.mu.Lock()
	s.buttonClicks[buttonKey(label, location)]++
	s.mu.Unlock()

	s.TrackEvent(ctx, session, "Button Click", map[string]interface{}{
		"label":    label,
		"location": location,
	})
}

// DetectCountry attributes the session to a bucket using the timezone
// heuristic. A session contributes at most one increment to exactly one
// bucket; repeated calls return the original attribution.
func (s *analyticsService) DetectCountry(ctx context.Context, session, timezone string) string {
	s.mu.Lock()

	if bucket, ok := s.geoSessions[session]; ok {
		s.mu.Unlock()
		return bucket
	}

	bucket := matchTimezone(timezone)
	s.geoSessions[session] = bucket

	for i := range s.geoStats {
		if s.geoStats[i].Country == bucket {
			s.geoStats[i].Visitors++
			break
		}
	}
	recomputeGeoPercentages(s.geoStats)
	s.mu.Unlock()

	s.log.WithFields(map[string]interface{}{
		"timezone": timezone,
		"bucket":   bucket,
	}).Debug("Visitor attributed to geo bucket")

	s.TrackEvent(ctx, session, "Visitor Geo", map[string]interface{}{
		"timezone": timezone,
		"country":  bucket,
	})

	return bucket
}

// matchTimezone maps an IANA timezone to a coarse bucket. Rule order matters:
// the broad Europe/Asia fallbacks would shadow the specific matches if they
// ran first. The heuristic is intentionally approximate.
func matchTimezone(timezone string) string {
	switch {
	case strings.Contains(timezone, "America") || strings.Contains(timezone, "US"):
		return "United States"
	case strings.Contains(timezone, "London"):
		return "United Kingdom"
	case strings.Contains(timezone, "Berlin") || strings.Contains(timezone, "Europe"):
		return "Germany"
	case strings.Contains(timezone, "Tokyo") || strings.Contains(timezone, "Asia"):
		return "Japan"
	case strings.Contains(timezone, "Canada"):
		return "Canada"
	default:
		return "Others"
	}
}

func recomputeGeoPercentages(stats []domain.GeoLocationData) {
	total := 0
	for _, g := range stats {
		total += g.Visitors
	}
	if total == 0 {
		return
	}
	for i := range stats {
		stats[i].Percentage = int(math.Round(float64(stats[i].Visitors) / float64(total) * 100))
	}
}

// SetLocation caches device coordinates for the session
func (s *analyticsService) SetLocation(session string, lat, lng float64) {
	s.mu.Lock()
	s.locations[session] = domain.Coordinates{Latitude: lat, Longitude: lng}
	s.mu.Unlock()
}

// Snapshot assembles the dashboard view. Percentages and rankings are always
// recomputed fresh; no derived value is stored between calls.
func (s *analyticsService) Snapshot() domain.AnalyticsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	daily := make([]domain.DailyVisitorData, len(s.dailyStats))
	copy(daily, s.dailyStats)

	geo := make([]domain.GeoLocationData, len(s.geoStats))
	copy(geo, s.geoStats)

	events := make([]domain.AnalyticsEvent, len(s.events))
	copy(events, s.events)

	return domain.AnalyticsSnapshot{
		DailyStats:        daily,
		GeoStats:          geo,
		RecentEvents:      events,
		SectionEngagement: s.sectionEngagement(),
		TopButtons:        s.topButtons(),
		PeakDay:           peakDay(daily),
		Realtime:          domain.RealtimeStats{ActiveUsers: s.rng.Intn(20) + 85},
		TotalStats: domain.TotalStats{
			Visitors:    "28.5k",
			BounceRate:  "42%",
			AvgDuration: "4m 12s",
			Growth:      "+12.5%",
		},
	}
}

// sectionEngagement ranks sections by views with fresh percentages. Ties are
// broken alphabetically so the ordering is deterministic. Caller holds mu.
func (s *analyticsService) sectionEngagement() []domain.SectionEngagement {
	total := 0
	for _, v := range s.sectionViews {
		total += v
	}

	engagement := make([]domain.SectionEngagement, 0, len(s.sectionViews))
	for section, views := range s.sectionViews {
		percentage := 0
		if total > 0 {
			percentage = int(math.Round(float64(views) / float64(total) * 100))
		}
		engagement = append(engagement, domain.SectionEngagement{
			Section:    section,
			Views:      views,
			Percentage: percentage,
		})
	}

	sort.Slice(engagement, func(i, j int) bool {
		if engagement[i].Views != engagement[j].Views {
			return engagement[i].Views > engagement[j].Views
		}
		return engagement[i].Section < engagement[j].Section
	})

	return engagement
}

// topButtons returns up to five buttons by click count. Ties are broken
// alphabetically by composite key. Caller holds mu.
func (s *analyticsService) topButtons() []domain.ButtonAnalytics {
	type entry struct {
		key   string
		count int
	}
	entries := make([]entry, 0, len(s.buttonClicks))
	for key, count := range s.buttonClicks {
		entries = append(entries, entry{key: key, count: count})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].key < entries[j].key
	})

	if len(entries) > 5 {
		entries = entries[:5]
	}

	top := make([]domain.ButtonAnalytics, 0, len(entries))
	for _, e := range entries {
		label, location := splitButtonKey(e.key)
		top = append(top, domain.ButtonAnalytics{
			Label:    label,
			Location: location,
			Count:    e.count,
		})
	}
	return top
}

func peakDay(daily []domain.DailyVisitorData) domain.DailyVisitorData {
	var peak domain.DailyVisitorData
	for _, d := range daily {
		if d.Visitors > peak.Visitors {
			peak = d
		}
	}
	return peak
}

// buttonKey builds the composite counter key "<label> (<location>)"
func buttonKey(label, location string) string {
	return label + " (" + location + ")"
}

// splitButtonKey decomposes a composite key back into label and location
func splitButtonKey(key string) (label, location string) {
	idx := strings.LastIndex(key, " (")
	if idx < 0 || !strings.HasSuffix(key, ")") {
		return key, ""
	}
	return key[:idx], key[idx+2 : len(key)-1]
}
