package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OwnerProfile struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string             `bson:"name" json:"name" validate:"required"`
	Role      string             `bson:"role" json:"role" validate:"required"`
	Bio       string             `bson:"bio" json:"bio" validate:"required"`
	ImageURL  string             `bson:"image_url,omitempty" json:"image_url,omitempty"`
	Instagram string             `bson:"instagram,omitempty" json:"instagram,omitempty"`
	Website   string             `bson:"website,omitempty" json:"website,omitempty"`
	CreatedAt time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
}
