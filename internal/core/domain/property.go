package domain

import (
	"errors"
	"time"
)

var ErrPropertyNotFound = errors.New("property not found")

const (
	PropertyHouse      = "house"
	PropertyApartment  = "apartment"
	PropertyCondo      = "condo"
	PropertyTownhouse  = "townhouse"
	PropertyLand       = "land"
	PropertyCommercial = "commercial"
)

// Property is a listing owned by exactly one agent.
type Property struct {
	ID           string    `json:"id" bson:"_id"`
	Title        string    `json:"title" bson:"title"`
	Description  string    `json:"description" bson:"description"`
	Price        float64   `json:"price" bson:"price"`
	Address      string    `json:"address" bson:"address"`
	City         string    `json:"city" bson:"city"`
	Bedrooms     int       `json:"bedrooms" bson:"bedrooms"`
	Bathrooms    int       `json:"bathrooms" bson:"bathrooms"`
	Area         float64   `json:"area" bson:"area"`
	PropertyType string    `json:"property_type" bson:"property_type"`
	IsAvailable  bool      `json:"is_available" bson:"is_available"`
	AgentID      string    `json:"agent_id" bson:"agent_id"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}
