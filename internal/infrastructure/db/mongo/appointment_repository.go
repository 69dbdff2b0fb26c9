package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/estatehub/viewings-api/internal/core/domain"
	"github.com/estatehub/viewings-api/internal/core/ports"
)

const collectionAppointments = "appointments"

// sortFields maps API sort keys to document fields.
var sortFields = map[string]string{
	ports.SortAppointmentDate: "appointment_date",
	ports.SortClientName:      "client_name",
	ports.SortClientEmail:     "client_email",
	ports.SortStatus:          "status",
	ports.SortCreatedAt:       "created_at",
}

type AppointmentRepository struct {
	col *mongo.Collection
}

func NewAppointmentRepository(db *mongo.Database) *AppointmentRepository {
	return &AppointmentRepository{col: db.Collection(collectionAppointments)}
}

func (r *AppointmentRepository) Create(ctx context.Context, a *domain.Appointment) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, a)
	return err
}

func (r *AppointmentRepository) FindByID(ctx context.Context, id string) (*domain.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var a domain.Appointment
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAppointmentNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *AppointmentRepository) Update(ctx context.Context, a *domain.Appointment) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": a.ID}, a)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrAppointmentNotFound
	}
	return nil
}

func (r *AppointmentRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrAppointmentNotFound
	}
	return nil
}

func (r *AppointmentRepository) DeleteByProperty(ctx context.Context, propertyID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteMany(ctx, bson.M{"property_id": propertyID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// ListByProperty loads the whole schedule of a property.
func (r *AppointmentRepository) ListByProperty(ctx context.Context, propertyID string) ([]*domain.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"property_id": propertyID},
		options.Find().SetSort(bson.D{{Key: "appointment_date", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find schedule: %w", err)
	}

	var out []*domain.Appointment
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode schedule: %w", err)
	}
	return out, nil
}

func (r *AppointmentRepository) List(ctx context.Context, q ports.AppointmentQuery) ([]*domain.Appointment, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := buildAppointmentFilter(q)

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count appointments: %w", err)
	}

	opts := options.Find().
		SetSort(buildSort(q)).
		SetSkip(int64((q.Page - 1) * q.Limit)).
		SetLimit(int64(q.Limit))

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find appointments: %w", err)
	}

	items := make([]*domain.Appointment, 0, q.Limit)
	if err := cur.All(ctx, &items); err != nil {
		return nil, 0, fmt.Errorf("decode appointments: %w", err)
	}
	return items, total, nil
}

// buildAppointmentFilter translates a normalized query into a Mongo filter.
func buildAppointmentFilter(q ports.AppointmentQuery) bson.M {
	filter := bson.M{}

	if q.PropertyID != "" {
		filter["property_id"] = q.PropertyID
	}
	if q.AgentID != "" {
		filter["agent_id"] = q.AgentID
	}
	if q.ClientName != "" {
		filter["client_name"] = q.ClientName
	}
	if q.ClientEmail != "" {
		filter["client_email"] = q.ClientEmail
	}
	if q.ClientPhone != "" {
		filter["client_phone"] = q.ClientPhone
	}
	if q.Status != "" {
		filter["status"] = q.Status
	}

	if !q.StartDate.IsZero() || !q.EndDate.IsZero() {
		rng := bson.M{}
		if !q.StartDate.IsZero() {
			rng["$gte"] = q.StartDate.UTC()
		}
		if !q.EndDate.IsZero() {
			rng["$lte"] = q.EndDate.UTC()
		}
		filter["appointment_date"] = rng
	}

	if q.Search != "" {
		pattern := containsPattern(q.Search)
		filter["$or"] = bson.A{
			bson.M{"client_name": pattern},
			bson.M{"client_email": pattern},
		}
	}

	return filter
}

func containsPattern(s string) bson.M {
	return bson.M{"$regex": regexp.QuoteMeta(s), "$options": "i"}
}

// buildSort orders by the requested field with _id as a stable tiebreaker.
func buildSort(q ports.AppointmentQuery) bson.D {
	field, ok := sortFields[q.SortBy]
	if !ok {
		field = sortFields[ports.SortAppointmentDate]
	}
	dir := -1
	if q.SortOrder == ports.SortAsc {
		dir = 1
	}
	return bson.D{{Key: field, Value: dir}, {Key: "_id", Value: dir}}
}

// EnsureIndexes creates indexes backing the schedule scan and list filters.
func (r *AppointmentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "property_id", Value: 1}, {Key: "appointment_date", Value: 1}}},
		{Keys: bson.D{{Key: "agent_id", Value: 1}, {Key: "appointment_date", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
