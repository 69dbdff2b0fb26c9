package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/estatehub/viewings-api/internal/core/domain"
)

const collectionActivity = "appointment_activity"

// ActivityRepository implements ports.ActivityRepository using MongoDB.
// Entries are append-only and outlive the appointment they describe.
type ActivityRepository struct {
	col *mongo.Collection
}

// NewActivityRepository creates a new ActivityRepository.
func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{col: db.Collection(collectionActivity)}
}

// Insert persists an entry to the audit collection.
func (r *ActivityRepository) Insert(ctx context.Context, a *domain.AppointmentActivity) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"appointment_id":   a.AppointmentID,
		"property_id":      a.PropertyID,
		"actor_id":         a.ActorID,
		"action":           string(a.Action),
		"status":           string(a.Status),
		"appointment_date": a.AppointmentDate.UTC(),
		"duration_minutes": a.DurationMinutes,
		"occurred_at":      a.OccurredAt.UTC(),
	}

	_, err := r.col.InsertOne(ctx, doc)
	return err
}

func (r *ActivityRepository) ListByAppointment(ctx context.Context, appointmentID string) ([]*domain.AppointmentActivity, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"appointment_id": appointmentID},
		options.Find().SetSort(bson.D{{Key: "occurred_at", Value: 1}, {Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find activity: %w", err)
	}

	var out []*domain.AppointmentActivity
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode activity: %w", err)
	}
	return out, nil
}

func (r *ActivityRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "appointment_id", Value: 1}, {Key: "occurred_at", Value: 1}},
	})
	return err
}
