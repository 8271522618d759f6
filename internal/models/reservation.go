package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReservationRequest struct {
	EventID string `json:"event_id" validate:"required"`
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Tickets int    `json:"tickets" validate:"gte=1,lte=10"`
	Note    string `json:"note,omitempty"`
}

type Reservation struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	EventID   string             `bson:"event_id" json:"event_id" validate:"required"`
	Name      string             `bson:"name" json:"name" validate:"required"`
	Email     string             `bson:"email" json:"email" validate:"required,email"`
	Tickets   int                `bson:"tickets" json:"tickets" validate:"gte=1,lte=10"`
	Note      string             `bson:"note,omitempty" json:"note,omitempty"`
	CreatedAt time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
}

type ReservationResponse struct {
	ReservationID string `json:"reservation_id"`
	Message       string `json:"message"`
}
