package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is the in-process driver used by tests and STORE_DRIVER=memory.
// Documents are deep-copied on the way in and out so callers never share
// state with the store.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]map[string]Fields
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: map[string]map[string]Fields{}}
}

func (s *MemoryStore) Insert(_ context.Context, collection string, fields Fields) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs, ok := s.collections[collection]
	if !ok {
		docs = map[string]Fields{}
		s.collections[collection] = docs
	}

	id := uuid.NewString()
	docs[id] = cloneFields(fields)
	return id, nil
}

func (s *MemoryStore) Get(_ context.Context, collection, id string) (*Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fields, ok := s.collections[collection][id]
	if !ok {
		return nil, nil
	}
	return &Document{ID: id, Fields: cloneFields(fields)}, nil
}

func (s *MemoryStore) ListAll(_ context.Context, collection string) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := make([]Document, 0, len(s.collections[collection]))
	for id, fields := range s.collections[collection] {
		docs = append(docs, Document{ID: id, Fields: cloneFields(fields)})
	}
	return docs, nil
}

func (s *MemoryStore) ListWhere(ctx context.Context, collection, field string, value any, order ...OrderBy) ([]Document, error) {
	all, err := s.ListAll(ctx, collection)
	if err != nil {
		return nil, err
	}

	want := fmt.Sprint(value)
	docs := make([]Document, 0, len(all))
	for _, doc := range all {
		if fmt.Sprint(doc.Fields[field]) == want {
			docs = append(docs, doc)
		}
	}

	for i := len(order) - 1; i >= 0; i-- {
		o := order[i]
		sort.SliceStable(docs, func(a, b int) bool {
			av, bv := fmt.Sprint(docs[a].Fields[o.Field]), fmt.Sprint(docs[b].Fields[o.Field])
			if o.Desc {
				return av > bv
			}
			return av < bv
		})
	}
	return docs, nil
}

func (s *MemoryStore) Update(_ context.Context, collection, id string, fields Fields) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.collections[collection][id]
	if !ok {
		// Matches the remote-store contract: updating an unknown id is not
		// the store's problem, the repository pre-checks existence.
		doc = Fields{}
		if s.collections[collection] == nil {
			s.collections[collection] = map[string]Fields{}
		}
		s.collections[collection][id] = doc
	}
	for k, v := range fields {
		doc[k] = cloneValue(v)
	}
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.collections[collection], id)
	return nil
}

func cloneFields(fields Fields) Fields {
	out := make(Fields, len(fields))
	for k, v := range fields {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case []string:
		return append([]string(nil), val...)
	case []any:
		return append([]any(nil), val...)
	case Fields:
		return cloneFields(val)
	case map[string]any:
		return cloneFields(Fields(val))
	}
	return v
}

var _ Store = (*MemoryStore)(nil)
