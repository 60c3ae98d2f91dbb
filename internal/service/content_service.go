package service

import (
	"sync"

	"github.com/Kim-Emmanuel/granger/internal/domain"
	"github.com/Kim-Emmanuel/granger/pkg/errors"
	"github.com/Kim-Emmanuel/granger/pkg/logger"
)

// contentService holds the editable page collections in memory. Single
// operator, no persistence: edits live until the process restarts.
type contentService struct {
	log *logger.Logger

	mu    sync.RWMutex
	items map[domain.ContentKind][]domain.ContentItem
}

// NewContentService creates the content store seeded with the launch page
// content
func NewContentService(log *logger.Logger) ContentService {
	items := make(map[domain.ContentKind][]domain.ContentItem, len(domain.ContentKinds))
	for kind, seed := range seedContent {
		list := make([]domain.ContentItem, 0, len(seed))
		for _, item := range seed {
			list = append(list, item.Clone())
		}
		items[kind] = list
	}

	return &contentService{log: log, items: items}
}

// List returns copies of a collection's items
func (s *contentService) List(kind domain.ContentKind) ([]domain.ContentItem, error) {
	if !kind.Valid() {
		return nil, errors.NewValidationError("unknown content kind", map[string]interface{}{"kind": string(kind)})
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]domain.ContentItem, 0, len(s.items[kind]))
	for _, item := range s.items[kind] {
		list = append(list, item.Clone())
	}
	return list, nil
}

// Add inserts an item with id = max existing + 1, or 1 for an empty
// collection. Ids are never reused within a session.
func (s *contentService) Add(kind domain.ContentKind, item domain.ContentItem) (domain.ContentItem, error) {
	if !kind.Valid() {
		return nil, errors.NewValidationError("unknown content kind", map[string]interface{}{"kind": string(kind)})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	maxID := 0
	for _, existing := range s.items[kind] {
		if id := existing.ID(); id > maxID {
			maxID = id
		}
	}

	stored := item.Clone()
	stored["id"] = maxID + 1
	s.items[kind] = append(s.items[kind], stored)

	s.log.WithFields(map[string]interface{}{
		"kind": string(kind),
		"id":   maxID + 1,
	}).Info("Content item added")

	return stored.Clone(), nil
}

// Update merge-patches the item with the given id. The id field itself
// cannot be patched.
func (s *contentService) Update(kind domain.ContentKind, id int, patch domain.ContentItem) (domain.ContentItem, error) {
	if !kind.Valid() {
		return nil, errors.NewValidationError("unknown content kind", map[string]interface{}{"kind": string(kind)})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.items[kind] {
		if existing.ID() != id {
			continue
		}
		for k, v := range patch {
			if k == "id" {
				continue
			}
			existing[k] = v
		}
		s.items[kind][i] = existing
		return existing.Clone(), nil
	}

	return nil, errors.NewNotFoundError("content item not found")
}

// Delete removes exactly the item with the given id. An absent id leaves the
// collection untouched and is reported as not found so the editor can tell.
func (s *contentService) Delete(kind domain.ContentKind, id int) error {
	if !kind.Valid() {
		return errors.NewValidationError("unknown content kind", map[string]interface{}{"kind": string(kind)})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.items[kind]
	for i, existing := range list {
		if existing.ID() == id {
			s.items[kind] = append(list[:i], list[i+1:]...)
			s.log.WithFields(map[string]interface{}{
				"kind": string(kind),
				"id":   id,
			}).Info("Content item deleted")
			return nil
		}
	}

	return errors.NewNotFoundError("content item not found")
}

// seedContent is the launch content for each collection
var seedContent = map[domain.ContentKind][]domain.ContentItem{
	domain.KindPrograms: {
		{
			"id": 1, "category": "Community", "style": "dark",
			"subtitle": "Sportcenter",
			"title":    "The coach experts and simple software Command for better sportainment.",
			"live":     true, "avatars": []int{11, 12, 33}, "buttonText": "granger.com",
			"iconType": "none",
		},
		{
			"id": 2, "category": "Training", "style": "image",
			"title": "Chemistry Sports Partner",
			"image": "https://images.unsplash.com/photo-1599474924187-334a405be2ce?q=80&w=1000&auto=format&fit=crop",
			"stats": map[string]interface{}{"main": "2.88k", "sub": "Membership", "badge": "+1.2k"},
			"location": "New York, US",
		},
		{
			"id": 3, "category": "Training", "style": "image",
			"title": "Marathon Pro Training",
			"image": "https://images.unsplash.com/photo-1552674605-46d531d0654c?q=80&w=1000&auto=format&fit=crop",
			"stats": map[string]interface{}{"main": "42km", "sub": "Distance", "badge": "Elite"},
			"location": "London, UK",
		},
		{
			"id": 4, "category": "Training", "style": "dark",
			"subtitle": "Masterclass",
			"title":    "Learn from the legends. Exclusive access to pro-athlete routines.",
			"iconType": "trophy", "buttonText": "Join Class",
		},
		{
			"id": 5, "category": "Wellness", "style": "dark",
			"subtitle": "Mental Wellness",
			"title":    "Mind & Body Sync. Meditation for high performance athletes.",
			"iconType": "zap", "buttonText": "Start Now",
		},
		{
			"id": 6, "category": "Wellness", "style": "image",
			"title": "Nutrition Workshops",
			"image": "https://images.unsplash.com/photo-1490645935967-10de6ba17061?q=80&w=1000&auto=format&fit=crop",
			"stats": map[string]interface{}{"main": "100+", "sub": "Recipes", "badge": "New"},
			"location": "Online",
		},
		{
			"id": 7, "category": "Community", "style": "image",
			"title": "Global Run Club",
			"image": "https://images.unsplash.com/photo-1551963831-b3b1ca40c98e?q=80&w=1000&auto=format&fit=crop",
			"stats": map[string]interface{}{"main": "15k", "sub": "Runners", "badge": "Hot"},
			"location": "Worldwide",
		},
	},
	domain.KindEvents: {
		{
			"id": 1, "title": "Online Fitness Challenge", "category": "Virtual",
			"image": "https://images.unsplash.com/photo-1517836357463-d25dfeac3438?q=80&w=1000&auto=format&fit=crop",
			"tags":  []string{"Global Access", "Free Entry"},
			"date":  "OCT 24", "time": "10:00 AM", "location": "Zoom / App",
			"spotsLeft": 450, "totalSpots": 1000, "price": "Free",
		},
		{
			"id": 2, "title": "Youth Sports Camp - 20yo", "category": "Community",
			"image": "https://images.unsplash.com/photo-1530915518997-64662adc2471?q=80&w=1000&auto=format&fit=crop",
			"tags":  []string{"Coach & Trainer", "Solid Community", "Team Uniform"},
			"date":  "NOV 02", "time": "08:00 AM", "location": "San Diego, CA",
			"spotsLeft": 12, "totalSpots": 50, "price": "$45.00",
		},
		{
			"id": 3, "title": "Obstacle Course Race", "category": "Physical",
			"image": "https://images.unsplash.com/photo-1526506118085-60ce8714f8c5?q=80&w=1000&auto=format&fit=crop",
			"tags":  []string{"Outdoor", "High Intensity"},
			"date":  "NOV 15", "time": "07:30 AM", "location": "Mud Creek Park",
			"spotsLeft": 85, "totalSpots": 200, "price": "$89.00",
		},
		{
			"id": 4, "title": "Sport x Game Day", "category": "Hybrid",
			"image": "https://images.unsplash.com/photo-1461896836934-ffe607ba8211?q=80&w=1000&auto=format&fit=crop",
			"tags":  []string{"Fun", "Family"},
			"date":  "DEC 10", "time": "01:00 PM", "location": "City Stadium",
			"spotsLeft": 20, "totalSpots": 500, "price": "$25.00",
		},
	},
	domain.KindTestimonials: {
		{
			"id":     1,
			"text":   "The coaching program completely changed how I train. Hit a sub-25 5k within two months.",
			"author": "Marcus Webb", "role": "Amateur Runner", "rating": 5,
			"avatar": "https://i.pravatar.cc/150?img=12",
		},
		{
			"id":     2,
			"text":   "Granger's community events are the highlight of my month. Great coaches, great people.",
			"author": "Elena Torres", "role": "Club Member", "rating": 5,
			"avatar": "https://i.pravatar.cc/150?img=32",
		},
		{
			"id":     3,
			"text":   "Signed my whole team up for the masterclass. Worth every cent.",
			"author": "Daniel Okafor", "role": "Team Captain", "rating": 4,
			"avatar": "https://i.pravatar.cc/150?img=54",
		},
	},
	domain.KindSessions: {
		{
			"id": 1, "title": "1-on-1 Performance Review",
			"subtitle": "Video analysis with a pro coach", "price": "$120",
			"image": "https://images.unsplash.com/photo-1622279457486-62dcc4a431d6?q=80&w=1000",
		},
		{
			"id": 2, "title": "Full Game Session",
			"subtitle": "90 minutes, full court, all levels", "price": "$45",
			"image": "https://images.unsplash.com/photo-1546519638-68e109498ee2?q=80&w=1000",
		},
	},
	domain.KindSales: {
		{
			"id": 1, "title": "February Sale",
			"image":    "https://images.unsplash.com/photo-1622279457486-62dcc4a431d6?q=80&w=1000",
			"category": "Apparel", "discount": "50%", "audience": "Members",
			"buttonText": "Shop Now",
		},
	},
}
