package store

import (
	"context"
	"time"
)

// Fields is the loosely-typed payload of a stored document. Values survive a
// JSON round-trip, so readers must tolerate float64 for numbers, []any for
// lists and RFC3339 strings for timestamps.
type Fields map[string]any

// Document is a stored record together with its store-assigned id.
type Document struct {
	ID     string
	Fields Fields
}

// OrderBy requests server-side ordering on a single field.
type OrderBy struct {
	Field string
	Desc  bool
}

// Store is the document-store boundary: two logical collections of
// schemaless documents keyed by store-assigned ids. Fields absent from a
// partial update are left unchanged by every implementation.
type Store interface {
	Insert(ctx context.Context, collection string, fields Fields) (string, error)

	// Get returns (nil, nil) when the id does not exist.
	Get(ctx context.Context, collection, id string) (*Document, error)

	ListAll(ctx context.Context, collection string) ([]Document, error)

	ListWhere(ctx context.Context, collection, field string, value any, order ...OrderBy) ([]Document, error)

	Update(ctx context.Context, collection, id string, fields Fields) error

	Delete(ctx context.Context, collection, id string) error
}

// --------- Field accessors ---------
//
// Documents come back with whatever shape the driver produced; these helpers
// centralize the coercions so mappers stay declarative.

func (f Fields) Has(key string) bool {
	_, ok := f[key]
	return ok
}

// String returns the field as a string, or "" when absent or not a string.
func (f Fields) String(key string) string {
	if s, ok := f[key].(string); ok {
		return s
	}
	return ""
}

// Bool returns the field value and whether it was an explicit boolean.
func (f Fields) Bool(key string) (value bool, present bool) {
	b, ok := f[key].(bool)
	return b, ok
}

// StringSlice tolerates both []string (memory driver) and []any (JSON).
func (f Fields) StringSlice(key string) []string {
	switch v := f[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// Time tolerates time.Time (memory driver) and RFC3339 strings (JSON).
func (f Fields) Time(key string) *time.Time {
	switch v := f[key].(type) {
	case time.Time:
		return &v
	case *time.Time:
		return v
	case string:
		if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
			return &t
		}
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return &t
		}
	}
	return nil
}
