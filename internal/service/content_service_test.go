package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kim-Emmanuel/granger/internal/domain"
	apperrors "github.com/Kim-Emmanuel/granger/pkg/errors"
	"github.com/Kim-Emmanuel/granger/pkg/logger"
)

func newTestContent() ContentService {
	return NewContentService(logger.NewNop())
}

func TestContentService_ListSeeded(t *testing.T) {
	svc := newTestContent()

	for _, kind := range domain.ContentKinds {
		items, err := svc.List(kind)
		require.NoError(t, err)
		assert.NotEmpty(t, items, "collection %q must be seeded", kind)
	}

	_, err := svc.List("banners")
	assert.Error(t, err)
}

func TestContentService_AddAssignsMaxPlusOne(t *testing.T) {
	svc := newTestContent()

	existing, err := svc.List(domain.KindPrograms)
	require.NoError(t, err)

	maxID := 0
	for _, item := range existing {
		if id := item.ID(); id > maxID {
			maxID = id
		}
	}

	created, err := svc.Add(domain.KindPrograms, domain.ContentItem{
		"title": "New Program", "category": "Training", "style": "dark",
	})
	require.NoError(t, err)
	assert.Equal(t, maxID+1, created.ID())

	// The client cannot pick its own id
	forced, err := svc.Add(domain.KindPrograms, domain.ContentItem{"id": 999, "title": "Sneaky"})
	require.NoError(t, err)
	assert.Equal(t, maxID+2, forced.ID())
}

func TestContentService_AddToEmptyCollectionStartsAtOne(t *testing.T) {
	svc := newTestContent()

	sales, err := svc.List(domain.KindSales)
	require.NoError(t, err)
	for _, item := range sales {
		require.NoError(t, svc.Delete(domain.KindSales, item.ID()))
	}

	created, err := svc.Add(domain.KindSales, domain.ContentItem{"title": "Spring Sale"})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID())
}

func TestContentService_UpdateMergesPatch(t *testing.T) {
	svc := newTestContent()

	updated, err := svc.Update(domain.KindEvents, 1, domain.ContentItem{
		"spotsLeft": 449,
		"id":        42, // ignored
	})
	require.NoError(t, err)

	assert.Equal(t, 1, updated.ID(), "id is not patchable")
	assert.Equal(t, 449, updated["spotsLeft"])
	assert.Equal(t, "Online Fitness Challenge", updated["title"], "unpatched fields survive")

	_, err = svc.Update(domain.KindEvents, 12345, domain.ContentItem{"title": "x"})
	require.Error(t, err)
	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrorTypeNotFound, appErr.Type)
}

func TestContentService_Delete(t *testing.T) {
	svc := newTestContent()

	before, err := svc.List(domain.KindTestimonials)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(domain.KindTestimonials, before[0].ID()))

	after, err := svc.List(domain.KindTestimonials)
	require.NoError(t, err)
	assert.Len(t, after, len(before)-1, "exactly one entry removed")

	// Absent id leaves the collection untouched
	err = svc.Delete(domain.KindTestimonials, before[0].ID())
	require.Error(t, err)

	again, err := svc.List(domain.KindTestimonials)
	require.NoError(t, err)
	assert.Len(t, again, len(after))
}

func TestContentService_IdsNotReusedAfterDelete(t *testing.T) {
	svc := newTestContent()

	created, err := svc.Add(domain.KindSessions, domain.ContentItem{"title": "Temp"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(domain.KindSessions, 1))

	next, err := svc.Add(domain.KindSessions, domain.ContentItem{"title": "Next"})
	require.NoError(t, err)
	assert.Equal(t, created.ID()+1, next.ID(), "ids keep growing past deleted entries")
}

func TestContentService_ListReturnsCopies(t *testing.T) {
	svc := newTestContent()

	items, err := svc.List(domain.KindPrograms)
	require.NoError(t, err)
	items[0]["title"] = "mutated"

	fresh, err := svc.List(domain.KindPrograms)
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", fresh[0]["title"], "callers cannot mutate stored items")
}
