package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"suratguide/models"
)

// ErrNotFound is returned when no document matches.
var ErrNotFound = errors.New("db: not found")

type Database struct {
	Client              *mongo.Client
	ItineraryCollection *mongo.Collection
	ContactCollection   *mongo.Collection
}

// Connect opens the client, pings the server and ensures indexes.
func Connect(ctx context.Context, uri, database string) (*Database, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	d := &Database{
		Client:              client,
		ItineraryCollection: client.Database(database).Collection("itineraries"),
		ContactCollection:   client.Database(database).Collection("contact_messages"),
	}
	if err := d.createIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return d, nil
}

func (d *Database) createIndexes(ctx context.Context) error {
	_, err := d.ItineraryCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "itineraryid", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("mongo index itineraries: %w", err)
	}
	_, err = d.ContactCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("mongo index contact_messages: %w", err)
	}
	return nil
}

func (d *Database) Disconnect(ctx context.Context) error {
	return d.Client.Disconnect(ctx)
}

func findAndDecode[T any](ctx context.Context, coll *mongo.Collection, filter any, opts ...*options.FindOptions) ([]T, error) {
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	out := []T{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func newestFirst(limit int64) *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(limit)
}

// ItineraryStore persists saved trip-planner itineraries.
type ItineraryStore struct {
	coll *mongo.Collection
}

func NewItineraryStore(d *Database) *ItineraryStore {
	return &ItineraryStore{coll: d.ItineraryCollection}
}

func (s *ItineraryStore) Save(ctx context.Context, it models.SavedItinerary) error {
	if _, err := s.coll.InsertOne(ctx, it); err != nil {
		return fmt.Errorf("insert itinerary: %w", err)
	}
	return nil
}

func (s *ItineraryStore) Get(ctx context.Context, id string) (models.SavedItinerary, error) {
	var it models.SavedItinerary
	err := s.coll.FindOne(ctx, bson.M{"itineraryid": id}).Decode(&it)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.SavedItinerary{}, ErrNotFound
	}
	if err != nil {
		return models.SavedItinerary{}, fmt.Errorf("find itinerary %s: %w", id, err)
	}
	return it, nil
}

func (s *ItineraryStore) List(ctx context.Context, limit int64) ([]models.SavedItinerary, error) {
	its, err := findAndDecode[models.SavedItinerary](ctx, s.coll, bson.M{}, newestFirst(limit))
	if err != nil {
		return nil, fmt.Errorf("list itineraries: %w", err)
	}
	return its, nil
}

// ContactStore persists contact form submissions.
type ContactStore struct {
	coll *mongo.Collection
}

func NewContactStore(d *Database) *ContactStore {
	return &ContactStore{coll: d.ContactCollection}
}

func (s *ContactStore) Save(ctx context.Context, msg models.ContactMessage) error {
	if _, err := s.coll.InsertOne(ctx, msg); err != nil {
		return fmt.Errorf("insert contact message: %w", err)
	}
	return nil
}

func (s *ContactStore) List(ctx context.Context, limit int64) ([]models.ContactMessage, error) {
	msgs, err := findAndDecode[models.ContactMessage](ctx, s.coll, bson.M{}, newestFirst(limit))
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	return msgs, nil
}
