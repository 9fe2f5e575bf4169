package database

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
)

// collection is the CRUD shape shared by the entity repositories: records of
// type T stored under name, listed newest first by sortKey.
type collection[T any] struct {
	store   Store
	name    string
	entity  string
	sortKey string
	clock   func() time.Time
}

func newCollection[T any](store Store, clock func() time.Time, name, entity, sortKey string) collection[T] {
	return collection[T]{
		store:   store,
		name:    name,
		entity:  entity,
		sortKey: sortKey,
		clock:   clock,
	}
}

func (c collection[T]) newID() string {
	return uuid.NewString()
}

// now is truncated to microseconds so timestamps survive a round-trip through
// stores with microsecond precision unchanged.
func (c collection[T]) now() time.Time {
	return c.clock().UTC().Truncate(time.Microsecond)
}

func (c collection[T]) list(ctx context.Context, filter Filter) ([]T, error) {
	docs, err := c.store.FindMany(ctx, c.name, filter, FindOptions{
		SortKey: c.sortKey,
		SortDir: Descending,
		Limit:   MaxListLimit,
	})
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(docs))
	for _, doc := range docs {
		var v T
		if err := json.Unmarshal(doc, &v); err != nil {
			return nil, errs.NewStoreError("decode document", c.name, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func (c collection[T]) get(ctx context.Context, id string) (*T, error) {
	doc, err := c.store.FindOne(ctx, c.name, ByID(id))
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, errs.NewNotFound(c.entity)
	}
	var v T
	if err := json.Unmarshal(doc, &v); err != nil {
		return nil, errs.NewStoreError("decode document", c.name, err)
	}
	return &v, nil
}

func (c collection[T]) insert(ctx context.Context, v T) error {
	_, err := c.store.InsertOne(ctx, c.name, v)
	return err
}

// set merges fields into the record with the given id.
func (c collection[T]) set(ctx context.Context, id string, fields models.Fields) error {
	matched, err := c.store.UpdateOne(ctx, c.name, ByID(id), fields)
	if err != nil {
		return err
	}
	if matched == 0 {
		return errs.NewNotFound(c.entity)
	}
	return nil
}

// patch merges fields, refreshes updated_at and returns the stored record.
func (c collection[T]) patch(ctx context.Context, id string, fields models.Fields) (*T, error) {
	fields["updated_at"] = c.now()
	if err := c.set(ctx, id, fields); err != nil {
		return nil, err
	}
	return c.get(ctx, id)
}

func (c collection[T]) remove(ctx context.Context, id string) error {
	deleted, err := c.store.DeleteOne(ctx, c.name, ByID(id))
	if err != nil {
		return err
	}
	if deleted == 0 {
		return errs.NewNotFound(c.entity)
	}
	return nil
}

func (c collection[T]) count(ctx context.Context) (int64, error) {
	return c.store.CountDocuments(ctx, c.name, Filter{})
}

func (c collection[T]) insertMany(ctx context.Context, items []T) (int, error) {
	docs := make([]any, 0, len(items))
	for _, item := range items {
		docs = append(docs, item)
	}
	return c.store.InsertMany(ctx, c.name, docs)
}
