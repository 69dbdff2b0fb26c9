package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/estatehub/viewings-api/internal/core/domain"
)

const collectionFeatures = "property_features"

// featureOrder lists highlights first, then by name.
var featureOrder = bson.D{{Key: "is_highlight", Value: -1}, {Key: "name", Value: 1}}

type FeatureRepository struct {
	col *mongo.Collection
}

func NewFeatureRepository(db *mongo.Database) *FeatureRepository {
	return &FeatureRepository{col: db.Collection(collectionFeatures)}
}

func (r *FeatureRepository) Create(ctx context.Context, f *domain.PropertyFeature) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, f)
	return err
}

func (r *FeatureRepository) FindByID(ctx context.Context, id string) (*domain.PropertyFeature, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var f domain.PropertyFeature
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&f); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrFeatureNotFound
		}
		return nil, err
	}
	return &f, nil
}

func (r *FeatureRepository) ListByProperty(ctx context.Context, propertyID string) ([]*domain.PropertyFeature, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"property_id": propertyID}, options.Find().SetSort(featureOrder))
	if err != nil {
		return nil, fmt.Errorf("find features: %w", err)
	}

	out := make([]*domain.PropertyFeature, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode features: %w", err)
	}
	return out, nil
}

func (r *FeatureRepository) Update(ctx context.Context, f *domain.PropertyFeature) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": f.ID}, f)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrFeatureNotFound
	}
	return nil
}

func (r *FeatureRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrFeatureNotFound
	}
	return nil
}

func (r *FeatureRepository) DeleteByProperty(ctx context.Context, propertyID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteMany(ctx, bson.M{"property_id": propertyID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// EnsureIndexes backs the per-property listing and its sort order.
func (r *FeatureRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	keys := append(bson.D{{Key: "property_id", Value: 1}}, featureOrder...)
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: keys})
	return err
}
