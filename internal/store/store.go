package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when a lookup or conditional update matches
// no document.
var ErrNotFound = errors.New("document not found")

// SortSpec orders query results by a single field.
type SortSpec struct {
	Field string
	Desc  bool
}

// Store wraps a Mongo database with the small set of operations the
// services need. All documents pass through as plain records; the
// caller picks the collection by name.
type Store struct {
	db *mongo.Database
}

func New(db *mongo.Database) *Store {
	return &Store{db: db}
}

// Create → insert record and return the generated id as a hex string.
// Stamps created_at unless the record already carries one.
func (s *Store) Create(ctx context.Context, collection string, record any) (string, error) {
	doc, err := toDocument(record)
	if err != nil {
		return "", err
	}
	if _, ok := doc["created_at"]; !ok {
		doc["created_at"] = time.Now().UTC()
	}
	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert into %s: unexpected id type %T", collection, res.InsertedID)
	}
	return oid.Hex(), nil
}

// Find → decode every document matching filter into out, which must be
// a pointer to a slice. Each call runs a fresh query.
func (s *Store) Find(ctx context.Context, collection string, filter any, out any, sort ...SortSpec) error {
	opts := options.Find()
	if len(sort) > 0 {
		opts.SetSort(sortDoc(sort))
	}
	cur, err := s.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return fmt.Errorf("find in %s: %w", collection, err)
	}
	if err := cur.All(ctx, out); err != nil {
		return fmt.Errorf("decode from %s: %w", collection, err)
	}
	return nil
}

// FindOne → decode the first match into out, or ErrNotFound.
func (s *Store) FindOne(ctx context.Context, collection string, filter any, out any, sort ...SortSpec) error {
	opts := options.FindOne()
	if len(sort) > 0 {
		opts.SetSort(sortDoc(sort))
	}
	err := s.db.Collection(collection).FindOne(ctx, filter, opts).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("find one in %s: %w", collection, err)
	}
	return nil
}

// ConditionalUpdate → apply update to the single document matching
// filter and decode the post-update document into out. The match and
// the mutation are evaluated by the storage engine as one operation,
// so a returned ErrNotFound means no document satisfied filter at the
// moment the update would have applied.
func (s *Store) ConditionalUpdate(ctx context.Context, collection string, filter, update any, out any) error {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := s.db.Collection(collection).FindOneAndUpdate(ctx, filter, update, opts).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("conditional update in %s: %w", collection, err)
	}
	return nil
}

// Count → estimated number of documents in collection.
func (s *Store) Count(ctx context.Context, collection string) (int64, error) {
	n, err := s.db.Collection(collection).EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", collection, err)
	}
	return n, nil
}

// Collections → names of the collections present in the database.
func (s *Store) Collections(ctx context.Context) ([]string, error) {
	names, err := s.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	return names, nil
}

// Name returns the database name.
func (s *Store) Name() string {
	return s.db.Name()
}

// ByID builds an _id filter from a hex object id. An id that is not
// valid hex can never match a stored document, so it maps to
// ErrNotFound rather than a separate error kind.
func ByID(id string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return bson.M{"_id": oid}, nil
}

func toDocument(record any) (bson.M, error) {
	raw, err := bson.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("marshal record: %w", err)
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	return doc, nil
}

func sortDoc(specs []SortSpec) bson.D {
	d := make(bson.D, 0, len(specs))
	for _, spec := range specs {
		order := 1
		if spec.Desc {
			order = -1
		}
		d = append(d, bson.E{Key: spec.Field, Value: order})
	}
	return d
}
