package controllers

import (
	"context"
	"net/http"
	"strconv"

	"univo/db"
	"univo/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// LeaderboardEntry is a single leaderboard row.
type LeaderboardEntry struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	XP     int    `json:"xp"`
	Streak int    `json:"streak"`
}

// LeaderboardController serves users ranked by XP.
type LeaderboardController struct {
	store *db.Store
}

func NewLeaderboardController(store *db.Store) *LeaderboardController {
	return &LeaderboardController{store: store}
}

// GetLeaderboard returns the top users by XP, descending.
func (lc *LeaderboardController) GetLeaderboard(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit < 1 {
		limit = 10
	}
	if limit > 50 {
		limit = 50
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "xp", Value: -1}}).
		SetLimit(int64(limit))
	cursor, err := lc.store.Collection(db.Users).Find(ctx, bson.M{}, opts)
	if err != nil {
		respondError(c, err)
		return
	}
	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		respondError(c, err)
		return
	}

	entries := []LeaderboardEntry{}
	for _, user := range users {
		entries = append(entries, LeaderboardEntry{
			UserID: user.ID.Hex(),
			Name:   user.Name,
			XP:     user.XP,
			Streak: user.Streak,
		})
	}
	c.JSON(http.StatusOK, entries)
}
