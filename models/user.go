package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User defines a user entity. XP and streak are owned by the task
// completion protocol; clients never write them directly.
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email       string             `bson:"email" json:"email"`
	Name        string             `bson:"name" json:"name"`
	XP          int                `bson:"xp" json:"xp"`
	Streak      int                `bson:"streak" json:"streak"`
	LastCheckin *time.Time         `bson:"last_checkin,omitempty" json:"last_checkin,omitempty"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}
