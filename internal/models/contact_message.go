package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required,min=5"`
}

type ContactMessage struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string             `bson:"name" json:"name" validate:"required"`
	Email     string             `bson:"email" json:"email" validate:"required,email"`
	Subject   string             `bson:"subject" json:"subject" validate:"required"`
	Message   string             `bson:"message" json:"message" validate:"required,min=5"`
	CreatedAt time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
}

type ContactResponse struct {
	MessageID string `json:"message_id"`
	Message   string `json:"message"`
}
