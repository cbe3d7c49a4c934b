// Package store is the persistence gateway: a thin find/insert/update/delete
// surface over a document store, keyed by collection name. Documents cross
// this boundary as generic maps; everything above it works with typed models.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrNotFound means the id was well-formed but matched no document.
	ErrNotFound = errors.New("store: document not found")
	// ErrInvalidID means the id is not a valid 24-hex object id.
	ErrInvalidID = errors.New("store: invalid document id")
)

// Query narrows and orders a Find. All conditions are ANDed; the zero Query
// matches every document in the collection.
type Query struct {
	// Equals holds exact-match conditions per field.
	Equals map[string]any
	// Contains holds case-insensitive substring conditions per field.
	Contains map[string]string
	// SortBy names the field to order by; empty means store iteration order.
	SortBy   string
	SortDesc bool
}

// Store is the gateway contract. A nil Store means the database was never
// configured; handlers answer "service unavailable" without calling it.
type Store interface {
	Ping(ctx context.Context) error
	CollectionNames(ctx context.Context) ([]string, error)
	// Insert adds a document and returns its new id as a hex string.
	Insert(ctx context.Context, coll string, doc map[string]any) (string, error)
	// Find returns matching documents with "_id" rendered as a hex string.
	Find(ctx context.Context, coll string, q Query) ([]map[string]any, error)
	// ReplaceByID overwrites the document's fields and returns the updated
	// document, or ErrNotFound.
	ReplaceByID(ctx context.Context, coll, id string, doc map[string]any) (map[string]any, error)
	// DeleteByID removes the document, or returns ErrNotFound.
	DeleteByID(ctx context.Context, coll, id string) error
}

// IsValidID reports whether id is in the store's 24-hex id format. Malformed
// ids are rejected before any store call.
func IsValidID(id string) bool {
	_, err := primitive.ObjectIDFromHex(id)
	return err == nil
}
