package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Theater struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name           string             `bson:"name" json:"name" validate:"required"`
	Tagline        string             `bson:"tagline" json:"tagline" validate:"required"`
	Story          string             `bson:"story" json:"story" validate:"required"`
	Address        string             `bson:"address" json:"address" validate:"required"`
	Phone          string             `bson:"phone" json:"phone" validate:"required"`
	Email          string             `bson:"email" json:"email" validate:"required,email"`
	OpeningHours   string             `bson:"opening_hours,omitempty" json:"opening_hours,omitempty"`
	TransportHowto string             `bson:"transport_howto,omitempty" json:"transport_howto,omitempty"`
	CreatedAt      time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
}
