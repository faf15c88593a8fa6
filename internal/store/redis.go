package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// RedisStore keeps each document as a JSON string under doc:<collection>:<id>
// and tracks collection membership in a set. Filtering and ordering happen
// client-side; the collections here are small enough for that to hold.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func docKey(collection, id string) string { return "doc:" + collection + ":" + id }
func setKey(collection string) string     { return "col:" + collection }

func (s *RedisStore) Insert(ctx context.Context, collection string, fields Fields) (string, error) {
	id := uuid.NewString()
	if err := s.write(ctx, collection, id, fields); err != nil {
		return "", err
	}
	if err := s.client.SAdd(ctx, setKey(collection), id).Err(); err != nil {
		return "", fmt.Errorf("insert: %w", err)
	}
	return id, nil
}

func (s *RedisStore) Get(ctx context.Context, collection, id string) (*Document, error) {
	raw, err := s.client.Get(ctx, docKey(collection, id)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get: %w", err)
	}

	var fields Fields
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, fmt.Errorf("decode document %s: %w", id, err)
	}
	return &Document{ID: id, Fields: fields}, nil
}

func (s *RedisStore) ListAll(ctx context.Context, collection string) ([]Document, error) {
	ids, err := s.client.SMembers(ctx, setKey(collection)).Result()
	if err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}

	docs := make([]Document, 0, len(ids))
	for _, id := range ids {
		doc, err := s.Get(ctx, collection, id)
		if err != nil {
			return nil, err
		}
		if doc != nil {
			docs = append(docs, *doc)
		}
	}
	return docs, nil
}

func (s *RedisStore) ListWhere(ctx context.Context, collection, field string, value any, order ...OrderBy) ([]Document, error) {
	all, err := s.ListAll(ctx, collection)
	if err != nil {
		return nil, err
	}

	want := fmt.Sprint(value)
	docs := all[:0]
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

// Update is a read-merge-write; concurrent writers can interleave, same as
// every other check-then-act in this service.
func (s *RedisStore) Update(ctx context.Context, collection, id string, fields Fields) error {
	doc, err := s.Get(ctx, collection, id)
	if err != nil {
		return err
	}
	merged := Fields{}
	if doc != nil {
		merged = doc.Fields
	}
	for k, v := range fields {
		merged[k] = v
	}
	return s.write(ctx, collection, id, merged)
}

func (s *RedisStore) Delete(ctx context.Context, collection, id string) error {
	if err := s.client.Del(ctx, docKey(collection, id)).Err(); err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	if err := s.client.SRem(ctx, setKey(collection), id).Err(); err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	return nil
}

func (s *RedisStore) write(ctx context.Context, collection, id string, fields Fields) error {
	data, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	if err := s.client.Set(ctx, docKey(collection, id), data, 0).Err(); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

var _ Store = (*RedisStore)(nil)
