package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"univo/db"
	"univo/models"
	"univo/streak"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FallbackSuggestion is returned when the user has no pending tasks,
// regardless of mood. An empty task list is a valid outcome, not an error.
const FallbackSuggestion = "No pending tasks. Consider a 10-minute mindfulness break or review notes."

const (
	moodLookback = 10
	taskLookback = 50
)

// SuggestionService picks the next task to recommend, informed by the
// user's same-day mood and the nearest deadline. Read-only.
type SuggestionService struct {
	store *db.Store
	now   func() time.Time
}

func NewSuggestionService(store *db.Store) *SuggestionService {
	return &SuggestionService{store: store, now: time.Now}
}

// SuggestNext renders a suggestion message for the user.
func (s *SuggestionService) SuggestNext(ctx context.Context, userID string) (string, error) {
	if _, err := ParseID(userID); err != nil {
		return "", err
	}
	now := s.now().UTC()

	moodOpts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(moodLookback)
	cursor, err := s.store.Collection(db.Moods).Find(ctx, bson.M{"user_id": userID}, moodOpts)
	if err != nil {
		return "", wrapStore("load moods", err)
	}
	var moods []models.Mood
	if err := cursor.All(ctx, &moods); err != nil {
		return "", wrapStore("decode moods", err)
	}

	taskOpts := options.Find().SetLimit(taskLookback)
	cursor, err = s.store.Collection(db.Tasks).Find(ctx, bson.M{
		"user_id": userID,
		"status":  bson.M{"$ne": models.TaskStatusCompleted},
	}, taskOpts)
	if err != nil {
		return "", wrapStore("load tasks", err)
	}
	var tasks []models.Task
	if err := cursor.All(ctx, &tasks); err != nil {
		return "", wrapStore("decode tasks", err)
	}

	next := nextTask(tasks)
	return buildSuggestion(todayMood(moods, now), next, now), nil
}

// todayMood returns the label of the newest mood logged today (UTC), or
// empty when none was.
func todayMood(moods []models.Mood, now time.Time) string {
	for _, m := range moods {
		if streak.SameDay(m.CreatedAt, now) {
			return m.Mood
		}
	}
	return ""
}

// nextTask orders pending tasks deterministically and returns the first:
// dated tasks ascending by due date, undated tasks last, ties broken by
// creation time and then id. Mongo sorts missing fields first ascending,
// which would put undated tasks ahead of urgent ones, so ordering happens
// here instead.
func nextTask(tasks []models.Task) *models.Task {
	if len(tasks) == 0 {
		return nil
	}
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		switch {
		case a.DueDate != nil && b.DueDate != nil:
			if !a.DueDate.Equal(*b.DueDate) {
				return a.DueDate.Before(*b.DueDate)
			}
		case a.DueDate != nil:
			return true
		case b.DueDate != nil:
			return false
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID.Hex() < b.ID.Hex()
	})
	return &tasks[0]
}

// buildSuggestion renders the message for the chosen task and mood bucket.
func buildSuggestion(mood string, task *models.Task, now time.Time) string {
	if task == nil {
		return FallbackSuggestion
	}

	var base string
	switch mood {
	case models.MoodTired, models.MoodStressed:
		base = "You seem a bit off today. Take a 10-minute reset, then tackle: "
	case models.MoodHappy, models.MoodMotivated:
		base = "You're on a roll! Next up: "
	default:
		base = "Here's your next best step: "
	}

	extra := ""
	if task.DueDate != nil {
		hoursLeft := int(math.Floor(task.DueDate.Sub(now).Hours()))
		extra = fmt.Sprintf(" due in %dh", hoursLeft)
	}
	return base + task.Title + extra + "."
}
