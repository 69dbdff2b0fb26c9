package domain

import (
	"errors"
	"time"
)

var ErrFeatureNotFound = errors.New("property feature not found")

// FeatureCategory groups the features shown on a listing page.
type FeatureCategory string

const (
	FeatureInterior  FeatureCategory = "INTERIOR"
	FeatureExterior  FeatureCategory = "EXTERIOR"
	FeatureCommunity FeatureCategory = "COMMUNITY"
)

func (c FeatureCategory) Valid() bool {
	switch c {
	case FeatureInterior, FeatureExterior, FeatureCommunity:
		return true
	}
	return false
}

const (
	MinFeatureNameLength = 2
	MaxFeatureNameLength = 50
	MaxFeatureUnitLength = 50
)

// PropertyFeature is a descriptive attribute of a listing, such as a pool
// or a parking space count.
type PropertyFeature struct {
	ID          string          `json:"id" bson:"_id"`
	PropertyID  string          `json:"property_id" bson:"property_id"`
	Name        string          `json:"name" bson:"name"`
	Description string          `json:"description" bson:"description"`
	Category    FeatureCategory `json:"category" bson:"category"`
	IsHighlight bool            `json:"is_highlight" bson:"is_highlight"`
	Value       *int            `json:"value" bson:"value"`
	Unit        string          `json:"unit" bson:"unit"`
	CreatedAt   time.Time       `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at" bson:"updated_at"`
}
