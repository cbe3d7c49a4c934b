package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedPlants(t *testing.T, m *Memory) []string {
	t.Helper()
	ctx := context.Background()
	ids := make([]string, 0, 3)
	for _, doc := range []map[string]any{
		{"name": "Lavanda", "category": "trajnica", "availability": "na stanju"},
		{"name": "Bršljan", "category": "zivica", "availability": "na stanju"},
		{"name": "Božićna zvijezda", "category": "sezonsko cvijece", "availability": "sezonski"},
	} {
		id, err := m.Insert(ctx, "product", doc)
		require.NoError(t, err)
		ids = append(ids, id)
	}
	return ids
}

func TestMemoryInsertAssignsHexIDs(t *testing.T) {
	m := NewMemory()
	ids := seedPlants(t, m)
	for _, id := range ids {
		assert.True(t, IsValidID(id))
	}
	assert.Equal(t, 3, m.Count("product"))
}

func TestMemoryFindQuerySemantics(t *testing.T) {
	m := NewMemory()
	seedPlants(t, m)
	ctx := context.Background()

	tests := []struct {
		name  string
		q     Query
		wants []string
	}{
		{"no constraints, sorted by name", Query{SortBy: "name"}, []string{"Božićna zvijezda", "Bršljan", "Lavanda"}},
		{"equals is exact", Query{Equals: map[string]any{"category": "trajnica"}}, []string{"Lavanda"}},
		{"equals has no partial match", Query{Equals: map[string]any{"category": "trajn"}}, nil},
		{"contains is case-insensitive", Query{Contains: map[string]string{"name": "laVANda"}}, []string{"Lavanda"}},
		{"contains matches substrings", Query{Contains: map[string]string{"name": "zvijezda"}}, []string{"Božićna zvijezda"}},
		{"conditions are ANDed", Query{Equals: map[string]any{"availability": "na stanju"}, Contains: map[string]string{"name": "lav"}}, []string{"Lavanda"}},
		{"no match is an empty list", Query{Contains: map[string]string{"name": "orhideja"}}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docs, err := m.Find(ctx, "product", tt.q)
			require.NoError(t, err)
			names := make([]string, 0, len(docs))
			for _, d := range docs {
				names = append(names, d["name"].(string))
			}
			if tt.wants == nil {
				assert.Empty(t, names)
			} else {
				assert.Equal(t, tt.wants, names)
			}
		})
	}
}

func TestMemoryFindSortDesc(t *testing.T) {
	m := NewMemory()
	ids := seedPlants(t, m)

	docs, err := m.Find(context.Background(), "product", Query{SortBy: "_id", SortDesc: true})
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, ids[2], docs[0]["_id"])
}

func TestMemoryReplaceByID(t *testing.T) {
	m := NewMemory()
	ids := seedPlants(t, m)
	ctx := context.Background()

	updated, err := m.ReplaceByID(ctx, "product", ids[0], map[string]any{"name": "Lavanda uska", "availability": "rasprodano"})
	require.NoError(t, err)
	assert.Equal(t, "Lavanda uska", updated["name"])
	assert.Equal(t, ids[0], updated["_id"])

	_, err = m.ReplaceByID(ctx, "product", "ffffffffffffffffffffffff", map[string]any{"name": "x"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = m.ReplaceByID(ctx, "product", "abc", map[string]any{"name": "x"})
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestMemoryDeleteByID(t *testing.T) {
	m := NewMemory()
	ids := seedPlants(t, m)
	ctx := context.Background()

	require.NoError(t, m.DeleteByID(ctx, "product", ids[1]))
	assert.Equal(t, 2, m.Count("product"))

	assert.ErrorIs(t, m.DeleteByID(ctx, "product", ids[1]), ErrNotFound)
	assert.ErrorIs(t, m.DeleteByID(ctx, "product", "zzz"), ErrInvalidID)
}

func TestMemoryCollectionNames(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	_, err := m.Insert(ctx, "post", map[string]any{"title": "t"})
	require.NoError(t, err)
	_, err = m.Insert(ctx, "gallery", map[string]any{"title": "g"})
	require.NoError(t, err)

	names, err := m.CollectionNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"gallery", "post"}, names)
}

func TestIsValidID(t *testing.T) {
	assert.True(t, IsValidID("64a51f2b8f1b2c3d4e5f6a7b"))
	assert.False(t, IsValidID("abc"))
	assert.False(t, IsValidID(""))
	assert.False(t, IsValidID("64a51f2b8f1b2c3d4e5f6a7g")) // not hex
}
