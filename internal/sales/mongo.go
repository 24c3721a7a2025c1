package sales

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const salesCollection = "sales"

// MongoStorage implements Storage on a MongoDB collection.
type MongoStorage struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// Compile-time interface guard.
var _ Storage = (*MongoStorage)(nil)

// NewMongoStorage connects to the given MongoDB deployment and binds
// the sales collection of the named database.
func NewMongoStorage(ctx context.Context, uri, database string) (*MongoStorage, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb %q: %w", uri, err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb %q: %w", uri, err)
	}

	return &MongoStorage{
		client: client,
		coll:   client.Database(database).Collection(salesCollection),
	}, nil
}

// Close disconnects the underlying client.
func (m *MongoStorage) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// Find retrieves one sorted window of matching records.
func (m *MongoStorage) Find(ctx context.Context, q Query, skip, limit int) ([]*Sale, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: q.Sort.Field, Value: q.Sort.Order}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := m.coll.Find(ctx, mongoFilter(q), opts)
	if err != nil {
		return nil, fmt.Errorf("find sales: %w", err)
	}
	defer cursor.Close(ctx)

	sales := []*Sale{}
	if err := cursor.All(ctx, &sales); err != nil {
		return nil, fmt.Errorf("decode sales: %w", err)
	}
	return sales, nil
}

// Count returns the number of records matching the query.
func (m *MongoStorage) Count(ctx context.Context, q Query) (int64, error) {
	n, err := m.coll.CountDocuments(ctx, mongoFilter(q))
	if err != nil {
		return 0, fmt.Errorf("count sales: %w", err)
	}
	return n, nil
}

// Distinct enumerates the sorted distinct values of a field across
// the whole collection. For array fields (tags) the server unwinds
// the arrays, so each element counts individually.
func (m *MongoStorage) Distinct(ctx context.Context, field string) ([]string, error) {
	raw, err := m.coll.Distinct(ctx, field, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("distinct %s: %w", field, err)
	}

	values := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			values = append(values, s)
		}
	}
	sort.Strings(values)
	return values, nil
}

// Insert stores a new record.
func (m *MongoStorage) Insert(ctx context.Context, sale *Sale) error {
	if sale.ID == "" {
		return ErrEmptyID
	}
	if _, err := m.coll.InsertOne(ctx, sale); err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// Read retrieves a record by ID. Returns ErrNotFound if absent.
func (m *MongoStorage) Read(ctx context.Context, id string) (*Sale, error) {
	var sale Sale
	err := m.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&sale)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read sale %q: %w", id, err)
	}
	return &sale, nil
}

// mongoFilter translates the normalized query into a filter document
// equivalent to Query.Matches. The search pattern is quoted so the
// regex behaves as a plain case-insensitive substring match.
func mongoFilter(q Query) bson.M {
	filter := bson.M{}

	if q.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(q.Search), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"customerName": pattern},
			bson.M{"phoneNumber": pattern},
		}
	}

	if q.DateFrom != nil || q.DateTo != nil {
		dateRange := bson.M{}
		if q.DateFrom != nil {
			dateRange["$gte"] = *q.DateFrom
		}
		if q.DateTo != nil {
			dateRange["$lte"] = *q.DateTo
		}
		filter["date"] = dateRange
	}

	if len(q.Regions) > 0 {
		filter["customerRegion"] = bson.M{"$in": q.Regions}
	}
	if len(q.Genders) > 0 {
		filter["gender"] = bson.M{"$in": q.Genders}
	}
	if len(q.Categories) > 0 {
		filter["productCategory"] = bson.M{"$in": q.Categories}
	}
	if len(q.Tags) > 0 {
		filter["tags"] = bson.M{"$in": q.Tags}
	}
	if len(q.PaymentMethods) > 0 {
		filter["paymentMethod"] = bson.M{"$in": q.PaymentMethods}
	}

	if q.MinAge != nil || q.MaxAge != nil {
		ageRange := bson.M{}
		if q.MinAge != nil {
			ageRange["$gte"] = *q.MinAge
		}
		if q.MaxAge != nil {
			ageRange["$lte"] = *q.MaxAge
		}
		filter["age"] = ageRange
	}

	return filter
}
