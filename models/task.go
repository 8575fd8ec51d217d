package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Task status values. Completed is terminal; there is no reverse edge.
const (
	TaskStatusPending   = "pending"
	TaskStatusCompleted = "completed"
)

// DefaultTaskXP is awarded when a task carries no explicit xp_value.
const DefaultTaskXP = 10

// Task belongs to exactly one user and optionally to one course.
// Rewarded records whether the XP/streak grant for a completed task has
// been persisted, so an interrupted completion can be resumed on retry.
type Task struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID    string             `bson:"user_id" json:"user_id"`
	CourseID  string             `bson:"course_id,omitempty" json:"course_id,omitempty"`
	Title     string             `bson:"title" json:"title"`
	Status    string             `bson:"status" json:"status"`
	XPValue   int                `bson:"xp_value" json:"xp_value"`
	DueDate   *time.Time         `bson:"due_date,omitempty" json:"due_date,omitempty"`
	Rewarded  bool               `bson:"rewarded" json:"-"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}
