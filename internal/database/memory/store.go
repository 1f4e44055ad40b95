package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"sync"

	"github.com/placementhub/placement-portal/internal/database"

	"github.com/google/uuid"
)

// Store is an in-memory DocumentStore used by tests in place of Postgres.
// Filter semantics mirror the jsonb containment the real store relies on.
type Store struct {
	mu          sync.RWMutex
	collections map[string][]map[string]any
	uniques     map[string][][]string
}

func NewStore() *Store {
	return &Store{
		collections: map[string][]map[string]any{},
		uniques:     map[string][][]string{},
	}
}

// WithUniqueIndex declares a uniqueness constraint over the given fields,
// matching what migration V1 sets up for the applications collection.
func (s *Store) WithUniqueIndex(collection string, fields ...string) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.uniques[collection] = append(s.uniques[collection], fields)
	return s
}

func (s *Store) Insert(_ context.Context, collection string, record any) (uuid.UUID, error) {
	id := uuid.New()
	doc, err := database.EncodeRecord(record, id)
	if err != nil {
		return uuid.Nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, idx := range s.uniques[collection] {
		if s.violatesUniqueLocked(collection, doc, idx) {
			return uuid.Nil, database.ErrConflict
		}
	}

	s.collections[collection] = append(s.collections[collection], doc)
	return id, nil
}

func (s *Store) FindOne(_ context.Context, collection string, filter database.Filter) (json.RawMessage, bool, error) {
	cf, err := canonicalFilter(filter)
	if err != nil {
		return nil, false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, doc := range s.collections[collection] {
		if matches(doc, cf) {
			raw, err := json.Marshal(doc)
			if err != nil {
				return nil, false, err
			}
			return raw, true, nil
		}
	}
	return nil, false, nil
}

func (s *Store) FindMany(_ context.Context, collection string, filter database.Filter) ([]json.RawMessage, error) {
	cf, err := canonicalFilter(filter)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]json.RawMessage, 0)
	for _, doc := range s.collections[collection] {
		if !matches(doc, cf) {
			continue
		}
		raw, err := json.Marshal(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, raw)
	}
	return out, nil
}

func (s *Store) UpdateOne(_ context.Context, collection string, id uuid.UUID, fields database.Fields) (int64, error) {
	if len(fields) == 0 {
		return 0, fmt.Errorf("empty update")
	}

	patch, err := canonicalFilter(database.Filter(fields))
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, doc := range s.collections[collection] {
		if doc["id"] == id.String() {
			for k, v := range patch {
				doc[k] = v
			}
			return 1, nil
		}
	}
	return 0, nil
}

func (s *Store) violatesUniqueLocked(collection string, doc map[string]any, fields []string) bool {
	probe := database.Filter{}
	for _, f := range fields {
		v, ok := doc[f]
		if !ok || v == nil {
			return false
		}
		probe[f] = v
	}
	for _, existing := range s.collections[collection] {
		if matches(existing, map[string]any(probe)) {
			return true
		}
	}
	return false
}

// canonicalFilter round-trips the filter through JSON so its values compare
// cleanly against stored documents (numbers as float64, times as strings).
func canonicalFilter(filter database.Filter) (map[string]any, error) {
	if len(filter) == 0 {
		return map[string]any{}, nil
	}
	b, err := json.Marshal(filter)
	if err != nil {
		return nil, err
	}
	out := map[string]any{}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func matches(doc map[string]any, filter map[string]any) bool {
	for k, want := range filter {
		got, ok := doc[k]
		if !ok {
			return false
		}
		if wantSlice, isSlice := want.([]any); isSlice {
			gotSlice, ok := got.([]any)
			if !ok {
				return false
			}
			if !containsAll(gotSlice, wantSlice) {
				return false
			}
			continue
		}
		if !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}

func containsAll(haystack, needles []any) bool {
	for _, n := range needles {
		found := false
		for _, h := range haystack {
			if reflect.DeepEqual(h, n) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
