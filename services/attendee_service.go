package services

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"wedding-server/models"
)

// AttendeeStore abstracts attendee persistence so handlers don't care
// whether records land in MongoDB or, when no database is configured, in
// memory.
type AttendeeStore interface {
	Insert(ctx context.Context, attendee models.Attendee) (models.Attendee, error)
	List(ctx context.Context, limit int) ([]models.Attendee, error)
}

// MongoAttendeeStore keeps confirmations in the wedding_db.attendees
// collection.
type MongoAttendeeStore struct {
	collection *mongo.Collection
}

func NewMongoAttendeeStore(client *mongo.Client) *MongoAttendeeStore {
	collection := client.Database("wedding_db").Collection("attendees")

	indexModel := mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: -1}},
	}
	if _, err := collection.Indexes().CreateOne(context.Background(), indexModel); err != nil {
		log.Printf("Failed to create created_at index on attendees: %v", err)
	}

	return &MongoAttendeeStore{collection: collection}
}

func (s *MongoAttendeeStore) Insert(ctx context.Context, attendee models.Attendee) (models.Attendee, error) {
	attendee.ID = uuid.New().String()
	attendee.CreatedAt = time.Now().UTC()
	if _, err := s.collection.InsertOne(ctx, attendee); err != nil {
		return models.Attendee{}, err
	}
	return attendee, nil
}

func (s *MongoAttendeeStore) List(ctx context.Context, limit int) ([]models.Attendee, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))
	cursor, err := s.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var attendees []models.Attendee
	if err := cursor.All(ctx, &attendees); err != nil {
		return nil, err
	}
	return attendees, nil
}

// MemoryAttendeeStore backs the attendee endpoints when MONGODB_URI is not
// set. Records are lost on restart; fine for local runs and tests.
type MemoryAttendeeStore struct {
	mu        sync.Mutex
	attendees []models.Attendee
}

func NewMemoryAttendeeStore() *MemoryAttendeeStore {
	return &MemoryAttendeeStore{}
}

func (s *MemoryAttendeeStore) Insert(ctx context.Context, attendee models.Attendee) (models.Attendee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	attendee.ID = uuid.New().String()
	attendee.CreatedAt = time.Now().UTC()
	s.attendees = append(s.attendees, attendee)
	return attendee, nil
}

func (s *MemoryAttendeeStore) List(ctx context.Context, limit int) ([]models.Attendee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Attendee
	for i := len(s.attendees) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.attendees[i])
	}
	return out, nil
}
