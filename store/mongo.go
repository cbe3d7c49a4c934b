package store

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const connectTimeout = 10 * time.Second

// Mongo implements Store on a MongoDB database.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect dials the store and verifies the connection with a ping.
func Connect(ctx context.Context, uri, dbName string) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return &Mongo{client: client, db: client.Database(dbName)}, nil
}

// Close releases the underlying connection pool.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

func (m *Mongo) CollectionNames(ctx context.Context) ([]string, error) {
	return m.db.ListCollectionNames(ctx, bson.M{})
}

func (m *Mongo) Insert(ctx context.Context, coll string, doc map[string]any) (string, error) {
	res, err := m.db.Collection(coll).InsertOne(ctx, bson.M(doc))
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", ErrInvalidID
	}
	return oid.Hex(), nil
}

func (m *Mongo) Find(ctx context.Context, coll string, q Query) ([]map[string]any, error) {
	filter := bson.M{}
	for k, v := range q.Equals {
		filter[k] = v
	}
	for k, v := range q.Contains {
		filter[k] = bson.M{"$regex": regexp.QuoteMeta(v), "$options": "i"}
	}

	opts := options.Find()
	if q.SortBy != "" {
		dir := 1
		if q.SortDesc {
			dir = -1
		}
		opts.SetSort(bson.D{{Key: q.SortBy, Value: dir}})
	}

	cur, err := m.db.Collection(coll).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var raw []bson.M
	if err := cur.All(ctx, &raw); err != nil {
		return nil, err
	}
	docs := make([]map[string]any, 0, len(raw))
	for _, d := range raw {
		docs = append(docs, normalizeID(d))
	}
	return docs, nil
}

func (m *Mongo) ReplaceByID(ctx context.Context, coll, id string, doc map[string]any) (map[string]any, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	res := m.db.Collection(coll).FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M(doc)}, opts)

	var updated bson.M
	if err := res.Decode(&updated); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return normalizeID(updated), nil
}

func (m *Mongo) DeleteByID(ctx context.Context, coll, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	res, err := m.db.Collection(coll).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// normalizeID renders the driver's ObjectID as a hex string so callers never
// see driver types.
func normalizeID(d bson.M) map[string]any {
	doc := map[string]any(d)
	if oid, ok := doc["_id"].(primitive.ObjectID); ok {
		doc["_id"] = oid.Hex()
	}
	return doc
}
