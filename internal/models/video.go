package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Video struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	MonthKey  string             `bson:"month_key" json:"month_key" validate:"required,datetime=2006-01"`
	VideoURL  string             `bson:"video_url" json:"video_url" validate:"required"`
	Caption   string             `bson:"caption,omitempty" json:"caption,omitempty"`
	CreatedAt time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
}
