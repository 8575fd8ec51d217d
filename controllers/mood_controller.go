package controllers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"univo/db"
	"univo/models"
	"univo/services"
	"univo/streak"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MoodController handles mood check-ins.
type MoodController struct {
	store *db.Store
}

func NewMoodController(store *db.Store) *MoodController {
	return &MoodController{store: store}
}

type createMoodRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Mood   string `json:"mood" binding:"required"`
	Note   string `json:"note"`
}

// CreateMood records an immutable mood entry. As a side effect it
// refreshes the user's last_checkin, but only when the stored date
// differs from today: a same-day value is left alone so the completion
// protocol's date-based streak logic stays authoritative. The update is
// conditional on the last_checkin value read here, so it yields to any
// concurrent completion instead of clobbering it. The streak counter is
// never touched from this path.
func (mc *MoodController) CreateMood(c *gin.Context) {
	var req createMoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: %v", services.ErrValidation, err))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	user, err := requireUser(ctx, mc.store, req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	now := time.Now().UTC()
	mood := models.Mood{
		UserID:    req.UserID,
		Mood:      req.Mood,
		Note:      req.Note,
		CreatedAt: now,
	}
	result, err := mc.store.Collection(db.Moods).InsertOne(ctx, mood)
	if err != nil {
		respondError(c, err)
		return
	}
	mood.ID = result.InsertedID.(primitive.ObjectID)

	if user.LastCheckin == nil || !streak.SameDay(*user.LastCheckin, now) {
		filter := bson.M{"_id": user.ID}
		if user.LastCheckin != nil {
			filter["last_checkin"] = *user.LastCheckin
		} else {
			filter["last_checkin"] = bson.M{"$exists": false}
		}
		update := bson.M{"$set": bson.M{"last_checkin": now, "updated_at": now}}
		if _, err := mc.store.Collection(db.Users).UpdateOne(ctx, filter, update); err != nil {
			// The mood itself is saved; a lost check-in refresh only
			// matters on an otherwise idle day.
			log.Printf("mood check-in update for user %s failed: %v", req.UserID, err)
		}
	}

	c.JSON(http.StatusCreated, mood)
}
