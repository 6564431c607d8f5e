package repositories

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"rankeo/internal/database"
	"rankeo/internal/models"
)

const countersCollection = "usage_counters"

type counterDocument struct {
	ID      string `bson:"_id"`
	Kind    string `bson:"kind"`
	Scope   string `bson:"scope"`
	Day     string `bson:"day"`
	Subject string `bson:"subject"`
	Count   int64  `bson:"count"`
}

// mongoCounterRepository keeps one document per bucket and subject, so an increment is a
// single-document $inc upsert.
type mongoCounterRepository struct {
	db     database.Service
	dbName string
	now    Clock
}

func NewMongoCounterRepository(db database.Service, dbName string, now Clock) CounterRepository {
	return newMongoCounterRepository(db, dbName, now)
}

func newMongoCounterRepository(db database.Service, dbName string, now Clock) *mongoCounterRepository {
	if now == nil {
		now = systemClock
	}
	return &mongoCounterRepository{db: db, dbName: dbName, now: now}
}

func (r *mongoCounterRepository) Name() string { return "mongo" }

func (r *mongoCounterRepository) collection() *mongo.Collection {
	return r.db.Client().Database(r.dbName).Collection(countersCollection)
}

// EnsureIndexes creates the window lookup index. Safe to call on every start.
func (r *mongoCounterRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "kind", Value: 1}, {Key: "scope", Value: 1}, {Key: "day", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create counter index: %w", err)
	}
	return nil
}

func (r *mongoCounterRepository) Increment(ctx context.Context, kind models.EventKind, scope models.Scope, subject string) error {
	day := DayKey(r.now())
	id := bucketKey(kind, scope, day) + "#" + subject
	filter := bson.M{"_id": id}
	update := bson.M{
		"$inc": bson.M{"count": 1},
		"$setOnInsert": bson.M{
			"kind":    string(kind),
			"scope":   string(scope),
			"day":     day,
			"subject": subject,
		},
	}
	opts := options.Update().SetUpsert(true)

	done := trackQuery("mongo_counters", "increment")
	_, err := r.collection().UpdateOne(ctx, filter, update, opts)
	if mongo.IsDuplicateKeyError(err) {
		// Two concurrent upserts raced on insert; the document exists now.
		_, err = r.collection().UpdateOne(ctx, filter, update, opts)
	}
	done(err)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("Failed to increment usage counter")
		return fmt.Errorf("failed to increment %s: %w", id, err)
	}
	return nil
}

func (r *mongoCounterRepository) TopN(ctx context.Context, kind models.EventKind, scope models.Scope, windowDays, limit int) ([]models.TrendingEntry, error) {
	if limit <= 0 {
		return []models.TrendingEntry{}, nil
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"kind":  string(kind),
			"scope": string(scope),
			"day":   bson.M{"$in": RecentDayKeys(r.now(), windowDays)},
		}}},
		{{Key: "$group", Value: bson.M{"_id": "$subject", "count": bson.M{"$sum": "$count"}}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}},
		{{Key: "$limit", Value: limit}},
	}

	done := trackQuery("mongo_counters", "top")
	cursor, err := r.collection().Aggregate(ctx, pipeline)
	if err != nil {
		done(err)
		return nil, fmt.Errorf("failed to aggregate counters: %w", err)
	}
	defer cursor.Close(ctx)

	entries := []models.TrendingEntry{}
	err = cursor.All(ctx, &entries)
	done(err)
	if err != nil {
		return nil, fmt.Errorf("failed to decode counters: %w", err)
	}
	return entries, nil
}
