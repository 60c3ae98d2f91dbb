package domain

// ContentKind names one of the editable page collections
type ContentKind string

const (
	KindPrograms     ContentKind = "programs"
	KindEvents       ContentKind = "events"
	KindTestimonials ContentKind = "testimonials"
	KindSessions     ContentKind = "sessions"
	KindSales        ContentKind = "sales"
)

// ContentKinds lists every editable collection in display order
var ContentKinds = []ContentKind{
	KindPrograms,
	KindEvents,
	KindTestimonials,
	KindSessions,
	KindSales,
}

// Valid reports whether the kind names a known collection
func (k ContentKind) Valid() bool {
	switch k {
	case KindPrograms, KindEvents, KindTestimonials, KindSessions, KindSales:
		return true
	}
	return false
}

// ContentItem is a schemaless page record. Every item carries a numeric "id";
// the remaining fields vary by kind (title, image, price, stats, tags, ...).
// Items are schemaless because the editor applies merge patches, so a typed
// struct per kind would not survive partial updates.
type ContentItem map[string]interface{}

// ID extracts the numeric id, tolerating the float64 that JSON decoding
// produces for numbers
func (c ContentItem) ID() int {
	switch v := c["id"].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

// Clone returns a shallow copy so callers cannot mutate stored items
func (c ContentItem) Clone() ContentItem {
	out := make(ContentItem, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}
