package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Course groups a user's tasks.
type Course struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID    string             `bson:"user_id" json:"user_id"`
	Title     string             `bson:"title" json:"title"`
	Code      string             `bson:"code,omitempty" json:"code,omitempty"`
	Color     string             `bson:"color,omitempty" json:"color,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}
