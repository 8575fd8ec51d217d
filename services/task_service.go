package services

import (
	"context"
	"fmt"
	"time"

	"univo/db"
	"univo/models"
	"univo/streak"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CompletionResult is the outcome of a task completion.
type CompletionResult struct {
	XPAwarded int         `json:"xp_awarded"`
	TotalXP   int         `json:"total_xp"`
	Streak    int         `json:"streak"`
	Task      models.Task `json:"task"`
}

// Attempts at the user CAS before giving up with ErrConflict.
const userUpdateRetries = 3

// TaskService drives the task completion protocol.
type TaskService struct {
	store *db.Store
	now   func() time.Time
}

func NewTaskService(store *db.Store) *TaskService {
	return &TaskService{store: store, now: time.Now}
}

// CompleteTask transitions a task from pending to completed exactly once
// and grants the owner XP plus a streak update. Completing an
// already-rewarded task is a read-only no-op with a zero award, so
// duplicate calls never double-grant. A task found completed but not yet
// rewarded means an earlier call died between the task and user writes;
// the grant is resumed.
func (s *TaskService) CompleteTask(ctx context.Context, taskID string) (*CompletionResult, error) {
	id, err := ParseID(taskID)
	if err != nil {
		return nil, err
	}

	tasks := s.store.Collection(db.Tasks)
	now := s.now().UTC()

	// Single conditional write for the status transition. A concurrent
	// completion of the same task can win this race; the loser lands in
	// the ErrNoDocuments branch and short-circuits or resumes.
	var task models.Task
	err = tasks.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "status": bson.M{"$ne": models.TaskStatusCompleted}},
		bson.M{"$set": bson.M{"status": models.TaskStatusCompleted, "updated_at": now}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&task)
	if err == mongo.ErrNoDocuments {
		if err := tasks.FindOne(ctx, bson.M{"_id": id}).Decode(&task); err != nil {
			if err == mongo.ErrNoDocuments {
				return nil, fmt.Errorf("task %s: %w", taskID, ErrNotFound)
			}
			return nil, wrapStore("load task", err)
		}
		if task.Rewarded {
			return s.echoCompleted(ctx, task)
		}
		return s.grant(ctx, task, now)
	}
	if err != nil {
		return nil, wrapStore("complete task", err)
	}

	return s.grant(ctx, task, now)
}

// echoCompleted is the idempotent short-circuit: no writes, current user
// state echoed with a zero award.
func (s *TaskService) echoCompleted(ctx context.Context, task models.Task) (*CompletionResult, error) {
	uid, err := ParseID(task.UserID)
	if err != nil {
		return nil, err
	}
	var user models.User
	if err := s.store.Collection(db.Users).FindOne(ctx, bson.M{"_id": uid}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("user %s: %w", task.UserID, ErrNotFound)
		}
		return nil, wrapStore("load user", err)
	}
	return &CompletionResult{
		XPAwarded: 0,
		TotalXP:   user.XP,
		Streak:    user.Streak,
		Task:      task,
	}, nil
}

// grant persists the XP award and streak update for a completed task,
// then marks the task rewarded.
func (s *TaskService) grant(ctx context.Context, task models.Task, now time.Time) (*CompletionResult, error) {
	uid, err := ParseID(task.UserID)
	if err != nil {
		return nil, err
	}
	users := s.store.Collection(db.Users)
	tasks := s.store.Collection(db.Tasks)

	var res streak.Result
	for attempt := 0; ; attempt++ {
		var user models.User
		if err := users.FindOne(ctx, bson.M{"_id": uid}).Decode(&user); err != nil {
			if err == mongo.ErrNoDocuments {
				return nil, fmt.Errorf("user %s: %w", task.UserID, ErrNotFound)
			}
			return nil, wrapStore("load user", err)
		}

		res = streak.Apply(streak.State{
			XP:          user.XP,
			Streak:      user.Streak,
			LastCheckin: user.LastCheckin,
		}, task.XPValue, false, now)

		// XP rides an atomic $inc. The streak decision is not commutative,
		// so it is guarded by a CAS on the last_checkin value read above:
		// every grant rewrites last_checkin, so a matched filter proves no
		// other grant interleaved.
		filter := bson.M{"_id": uid}
		if user.LastCheckin != nil {
			filter["last_checkin"] = *user.LastCheckin
		} else {
			filter["last_checkin"] = bson.M{"$exists": false}
		}
		update := bson.M{
			"$inc": bson.M{"xp": res.XPAward},
			"$set": bson.M{"streak": res.NewStreak, "last_checkin": now, "updated_at": now},
		}
		result, err := users.UpdateOne(ctx, filter, update)
		if err != nil {
			return nil, wrapStore("update user", err)
		}
		if result.MatchedCount > 0 {
			break
		}
		if attempt+1 >= userUpdateRetries {
			return nil, fmt.Errorf("user %s has concurrent check-ins: %w", task.UserID, ErrConflict)
		}
	}

	// The grant is durable; stop retries from re-awarding.
	if _, err := tasks.UpdateOne(ctx, bson.M{"_id": task.ID},
		bson.M{"$set": bson.M{"rewarded": true}}); err != nil {
		return nil, wrapStore("mark task rewarded", err)
	}

	// Reload both documents for the response.
	var freshTask models.Task
	if err := tasks.FindOne(ctx, bson.M{"_id": task.ID}).Decode(&freshTask); err != nil {
		return nil, wrapStore("reload task", err)
	}
	var freshUser models.User
	if err := users.FindOne(ctx, bson.M{"_id": uid}).Decode(&freshUser); err != nil {
		return nil, wrapStore("reload user", err)
	}

	return &CompletionResult{
		XPAwarded: res.XPAward,
		TotalXP:   freshUser.XP,
		Streak:    freshUser.Streak,
		Task:      freshTask,
	}, nil
}
