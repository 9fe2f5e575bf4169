package database

import (
	"context"
	"encoding/json"
)

// Collection names. One collection per entity type.
const (
	ProjectsCollection           = "projects"
	ResearchProjectsCollection   = "research_projects"
	ServicesCollection           = "services"
	TestimonialsCollection       = "testimonials"
	AboutInfoCollection          = "about_info"
	ContactSubmissionsCollection = "contact_submissions"
	PageViewsCollection          = "page_views"
)

// MaxListLimit caps every list query.
const MaxListLimit = 1000

// Filter matches documents whose top-level fields equal the given values.
// An empty filter matches every document.
type Filter map[string]any

// ByID is the filter selecting the document with the given id.
func ByID(id string) Filter {
	return Filter{"id": id}
}

type SortDirection int

const (
	Ascending  SortDirection = 1
	Descending SortDirection = -1
)

// FindOptions controls FindMany. SortKey must name a field holding an RFC 3339
// timestamp. A Limit of zero or above MaxListLimit is treated as MaxListLimit.
type FindOptions struct {
	SortKey string
	SortDir SortDirection
	Limit   int
}

func (o FindOptions) limit() int {
	if o.Limit <= 0 || o.Limit > MaxListLimit {
		return MaxListLimit
	}
	return o.Limit
}

// Document is a raw JSON document as stored. Every document has a string "id" field.
type Document = json.RawMessage

// Store is the document database used by every repository. Implementations do
// not retry: a failed round-trip is returned as an errs.ErrStoreUnavailable error.
type Store interface {
	InsertOne(ctx context.Context, collection string, doc any) (string, error)
	InsertMany(ctx context.Context, collection string, docs []any) (int, error)
	// FindOne returns nil when nothing matches.
	FindOne(ctx context.Context, collection string, filter Filter) (Document, error)
	FindMany(ctx context.Context, collection string, filter Filter, opts FindOptions) ([]Document, error)
	// UpdateOne merges fields into the first matching document and returns the
	// number of documents matched (0 or 1).
	UpdateOne(ctx context.Context, collection string, filter Filter, fields map[string]any) (int64, error)
	DeleteOne(ctx context.Context, collection string, filter Filter) (int64, error)
	CountDocuments(ctx context.Context, collection string, filter Filter) (int64, error)
	EnsureCollection(ctx context.Context, collection string) error
	EnsureIndex(ctx context.Context, collection, field string) error
	Close() error
}

// documentID extracts the "id" field of a marshaled document.
func documentID(raw []byte) (string, error) {
	var head struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		return "", err
	}
	return head.ID, nil
}
