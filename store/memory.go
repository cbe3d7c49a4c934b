package store

import (
	"context"
	"reflect"
	"sort"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Memory implements Store on an in-process map. It mirrors the Mongo
// implementation's Query semantics and is used by the handler tests and as a
// scratch backend during local development.
type Memory struct {
	mu    sync.RWMutex
	colls map[string][]map[string]any
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{colls: make(map[string][]map[string]any)}
}

func (m *Memory) Ping(ctx context.Context) error { return nil }

func (m *Memory) CollectionNames(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.colls))
	for name := range m.colls {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (m *Memory) Insert(ctx context.Context, coll string, doc map[string]any) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := primitive.NewObjectID().Hex()
	stored := copyDoc(doc)
	stored["_id"] = id
	m.colls[coll] = append(m.colls[coll], stored)
	return id, nil
}

func (m *Memory) Find(ctx context.Context, coll string, q Query) ([]map[string]any, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	docs := make([]map[string]any, 0)
	for _, d := range m.colls[coll] {
		if matches(d, q) {
			docs = append(docs, copyDoc(d))
		}
	}
	if q.SortBy != "" {
		key := q.SortBy
		sort.SliceStable(docs, func(i, j int) bool {
			a, b := asString(docs[i][key]), asString(docs[j][key])
			if q.SortDesc {
				return a > b
			}
			return a < b
		})
	}
	return docs, nil
}

func (m *Memory) ReplaceByID(ctx context.Context, coll, id string, doc map[string]any) (map[string]any, error) {
	if !IsValidID(id) {
		return nil, ErrInvalidID
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, d := range m.colls[coll] {
		if d["_id"] == id {
			updated := copyDoc(d)
			for k, v := range doc {
				updated[k] = v
			}
			m.colls[coll][i] = updated
			return copyDoc(updated), nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) DeleteByID(ctx context.Context, coll, id string) error {
	if !IsValidID(id) {
		return ErrInvalidID
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	docs := m.colls[coll]
	for i, d := range docs {
		if d["_id"] == id {
			m.colls[coll] = append(docs[:i], docs[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Count reports how many documents a collection holds. Test helper.
func (m *Memory) Count(coll string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.colls[coll])
}

func matches(doc map[string]any, q Query) bool {
	for k, want := range q.Equals {
		if !reflect.DeepEqual(doc[k], want) {
			return false
		}
	}
	for k, sub := range q.Contains {
		have := asString(doc[k])
		if !strings.Contains(strings.ToLower(have), strings.ToLower(sub)) {
			return false
		}
	}
	return true
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func copyDoc(doc map[string]any) map[string]any {
	out := make(map[string]any, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}
