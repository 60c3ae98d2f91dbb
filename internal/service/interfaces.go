package service

import (
	"context"

	"github.com/Kim-Emmanuel/granger/internal/domain"
)

// AnalyticsService defines the in-memory analytics aggregation operations.
// All state is scoped to the running process and resets on restart.
type AnalyticsService interface {
	// TrackEvent appends a named event to the session log and forwards a
	// normalized copy to the bridge sink (best effort)
	TrackEvent(ctx context.Context, session, name string, data map[string]interface{}) domain.AnalyticsEvent

	// TrackSectionView increments a section counter and logs a Section View event
	TrackSectionView(ctx context.Context, session, section string)

	// TrackButtonClick increments a button counter and logs a Button Click event
	TrackButtonClick(ctx context.Context, session, label, location string)

	// DetectCountry attributes the session to one geo bucket based on its
	// timezone, at most once per session, and returns the bucket name
	DetectCountry(ctx context.Context, session, timezone string) string

	// SetLocation caches device coordinates for the session; subsequent
	// events from that session are enriched with them
	SetLocation(session string, lat, lng float64)

	// Snapshot assembles the composed dashboard view
	Snapshot() domain.AnalyticsSnapshot
}

// ContentService defines the CMS editing operations over the page collections
type ContentService interface {
	// List returns the items of a collection
	List(kind domain.ContentKind) ([]domain.ContentItem, error)

	// Add inserts an item, assigning id = max existing + 1 (or 1 if empty)
	Add(kind domain.ContentKind, item domain.ContentItem) (domain.ContentItem, error)

	// Update merge-patches the item with the given id
	Update(kind domain.ContentKind, id int, patch domain.ContentItem) (domain.ContentItem, error)

	// Delete removes exactly the item with the given id
	Delete(kind domain.ContentKind, id int) error
}

// CoachService defines the generative-AI backed coach operations. Calls never
// fail from the caller's perspective: a missing credential or upstream error
// degrades to fixed fallback copy.
type CoachService interface {
	// DailyChallenge returns a short daily fitness challenge
	DailyChallenge(ctx context.Context) string

	// FitnessAdvice returns one-sentence motivation based on live stats
	FitnessAdvice(ctx context.Context, stats []domain.ActivityStat) string

	// CreateChat opens a multi-turn coach conversation seeded with live stats
	CreateChat(stats []domain.ActivityStat) string

	// SendMessage sends one user turn; errors only for unknown chat ids
	SendMessage(ctx context.Context, chatID, text string) (string, error)
}

// AuthService defines the operator authentication operations for the CMS
type AuthService interface {
	// Login exchanges the operator password for a signed token
	Login(password string) (string, error)

	// Validate checks a token issued by Login
	Validate(token string) error
}
