package utils

import (
	"context"
	"time"

	"univo/db"
	"univo/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SeedDemoData inserts a sample user with a couple of pending tasks so a
// fresh install has something to complete and suggest. It is a no-op when
// any user already exists.
func SeedDemoData(store *db.Store) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	users := store.Collection(db.Users)
	count, err := users.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	user := models.User{
		ID:        primitive.NewObjectID(),
		Email:     "demo@univo.app",
		Name:      "Demo Student",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := users.InsertOne(ctx, user); err != nil {
		return err
	}

	due := now.Add(26 * time.Hour)
	tasks := []interface{}{
		models.Task{
			ID:        primitive.NewObjectID(),
			UserID:    user.ID.Hex(),
			Title:     "Review lecture notes",
			Status:    models.TaskStatusPending,
			XPValue:   models.DefaultTaskXP,
			DueDate:   &due,
			CreatedAt: now,
			UpdatedAt: now,
		},
		models.Task{
			ID:        primitive.NewObjectID(),
			UserID:    user.ID.Hex(),
			Title:     "Start assignment draft",
			Status:    models.TaskStatusPending,
			XPValue:   15,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	_, err = store.Collection(db.Tasks).InsertMany(ctx, tasks)
	return err
}
