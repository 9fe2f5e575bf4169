package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"sync"
	"time"

	"github.com/rpupo63/portfolio-backend/errs"
)

var errMissingID = errors.New("document has no id")

// MemoryStore keeps documents in process memory. It backs the `memory` store
// driver and the test suites.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]map[string]any
	closed      bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string][]map[string]any)}
}

func (s *MemoryStore) InsertOne(ctx context.Context, collection string, doc any) (string, error) {
	m, err := toMap(doc)
	if err != nil {
		return "", errs.NewStoreError("insert document", collection, err)
	}
	id, _ := m["id"].(string)
	if id == "" {
		return "", errs.NewStoreError("insert document", collection, errMissingID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(); err != nil {
		return "", errs.NewStoreError("insert document", collection, err)
	}
	s.collections[collection] = append(s.collections[collection], m)
	return id, nil
}

func (s *MemoryStore) InsertMany(ctx context.Context, collection string, docs []any) (int, error) {
	inserted := 0
	for _, doc := range docs {
		if _, err := s.InsertOne(ctx, collection, doc); err != nil {
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}

func (s *MemoryStore) FindOne(ctx context.Context, collection string, filter Filter) (Document, error) {
	want, err := toMap(filter)
	if err != nil {
		return nil, errs.NewStoreError("find document", collection, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.check(); err != nil {
		return nil, errs.NewStoreError("find document", collection, err)
	}
	for _, doc := range s.collections[collection] {
		if matches(doc, want) {
			return marshalDoc(collection, doc)
		}
	}
	return nil, nil
}

func (s *MemoryStore) FindMany(ctx context.Context, collection string, filter Filter, opts FindOptions) ([]Document, error) {
	want, err := toMap(filter)
	if err != nil {
		return nil, errs.NewStoreError("find documents", collection, err)
	}

	found, err := s.snapshot(collection, want, opts.SortKey)
	if err != nil {
		return nil, err
	}

	if opts.SortKey != "" {
		sort.SliceStable(found, func(i, j int) bool {
			if opts.SortDir == Descending {
				return found[i].sortAt.After(found[j].sortAt)
			}
			return found[i].sortAt.Before(found[j].sortAt)
		})
	}
	if limit := opts.limit(); len(found) > limit {
		found = found[:limit]
	}

	out := make([]Document, 0, len(found))
	for _, m := range found {
		out = append(out, m.doc)
	}
	return out, nil
}

// match is a marshaled copy of a stored document taken under the read lock.
type match struct {
	doc    Document
	sortAt time.Time
}

// snapshot copies every document of collection matching want. Stored maps are
// mutated by UpdateOne, so nothing outside the lock may reference them.
func (s *MemoryStore) snapshot(collection string, want map[string]any, sortKey string) ([]match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.check(); err != nil {
		return nil, errs.NewStoreError("find documents", collection, err)
	}

	var found []match
	for _, doc := range s.collections[collection] {
		if !matches(doc, want) {
			continue
		}
		raw, err := marshalDoc(collection, doc)
		if err != nil {
			return nil, err
		}
		found = append(found, match{doc: raw, sortAt: timeField(doc, sortKey)})
	}
	return found, nil
}

func (s *MemoryStore) UpdateOne(ctx context.Context, collection string, filter Filter, fields map[string]any) (int64, error) {
	want, err := toMap(filter)
	if err != nil {
		return 0, errs.NewStoreError("update document", collection, err)
	}
	set, err := toMap(fields)
	if err != nil {
		return 0, errs.NewStoreError("update document", collection, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(); err != nil {
		return 0, errs.NewStoreError("update document", collection, err)
	}
	for _, doc := range s.collections[collection] {
		if matches(doc, want) {
			for k, v := range set {
				doc[k] = v
			}
			return 1, nil
		}
	}
	return 0, nil
}

func (s *MemoryStore) DeleteOne(ctx context.Context, collection string, filter Filter) (int64, error) {
	want, err := toMap(filter)
	if err != nil {
		return 0, errs.NewStoreError("delete document", collection, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(); err != nil {
		return 0, errs.NewStoreError("delete document", collection, err)
	}
	docs := s.collections[collection]
	for i, doc := range docs {
		if matches(doc, want) {
			s.collections[collection] = append(docs[:i:i], docs[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (s *MemoryStore) CountDocuments(ctx context.Context, collection string, filter Filter) (int64, error) {
	want, err := toMap(filter)
	if err != nil {
		return 0, errs.NewStoreError("count documents", collection, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.check(); err != nil {
		return 0, errs.NewStoreError("count documents", collection, err)
	}
	var n int64
	for _, doc := range s.collections[collection] {
		if matches(doc, want) {
			n++
		}
	}
	return n, nil
}

func (s *MemoryStore) EnsureCollection(ctx context.Context, collection string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.collections[collection]; !ok {
		s.collections[collection] = nil
	}
	return nil
}

// EnsureIndex is a no-op; every query scans the collection.
func (s *MemoryStore) EnsureIndex(ctx context.Context, collection, field string) error {
	return s.EnsureCollection(ctx, collection)
}

func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *MemoryStore) check() error {
	if s.closed {
		return errors.New("memory store is closed")
	}
	return nil
}

// toMap normalises v through JSON so stored values and filter values compare
// the same way they would after a round-trip to a real store.
func toMap(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	m := map[string]any{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("document is not a JSON object: %w", err)
	}
	return m, nil
}

func matches(doc, want map[string]any) bool {
	for k, v := range want {
		if !reflect.DeepEqual(doc[k], v) {
			return false
		}
	}
	return true
}

func timeField(doc map[string]any, key string) time.Time {
	s, _ := doc[key].(string)
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func marshalDoc(collection string, doc map[string]any) (Document, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, errs.NewStoreError("encode document", collection, err)
	}
	return raw, nil
}
