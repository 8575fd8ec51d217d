package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Known mood labels. The field is stored as an open string; anything
// outside this set renders with the neutral suggestion template.
const (
	MoodHappy     = "happy"
	MoodNeutral   = "neutral"
	MoodTired     = "tired"
	MoodStressed  = "stressed"
	MoodMotivated = "motivated"
)

// Mood is an immutable check-in record, used only as a same-day signal.
type Mood struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID    string             `bson:"user_id" json:"user_id"`
	Mood      string             `bson:"mood" json:"mood"`
	Note      string             `bson:"note,omitempty" json:"note,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
