package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Event struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title           string             `bson:"title" json:"title" validate:"required"`
	Description     string             `bson:"description" json:"description" validate:"required"`
	Genre           string             `bson:"genre" json:"genre" validate:"required"`
	Date            time.Time          `bson:"date" json:"date" validate:"required"`
	DurationMinutes int                `bson:"duration_minutes" json:"duration_minutes" validate:"gte=10,lte=300"`
	PriceEUR        float64            `bson:"price_eur" json:"price_eur" validate:"gte=0"`
	SeatsTotal      int                `bson:"seats_total" json:"seats_total" validate:"gte=1"`
	SeatsAvailable  int                `bson:"seats_available" json:"seats_available" validate:"gte=0"`
	ImageURL        string             `bson:"image_url,omitempty" json:"image_url,omitempty"`
	CreatedAt       time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
	UpdatedAt       time.Time          `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
