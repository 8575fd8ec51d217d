package controllers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"univo/db"
	"univo/models"
	"univo/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PostController handles the community Q&A forum.
type PostController struct {
	store *db.Store
}

func NewPostController(store *db.Store) *PostController {
	return &PostController{store: store}
}

type createPostRequest struct {
	UserID  string `json:"user_id" binding:"required"`
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// CreatePost creates a forum post with an empty replies list.
func (pc *PostController) CreatePost(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: %v", services.ErrValidation, err))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	if _, err := requireUser(ctx, pc.store, req.UserID); err != nil {
		respondError(c, err)
		return
	}

	now := time.Now().UTC()
	post := models.Post{
		UserID:    req.UserID,
		Title:     req.Title,
		Content:   req.Content,
		Replies:   []models.Reply{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	result, err := pc.store.Collection(db.Posts).InsertOne(ctx, post)
	if err != nil {
		respondError(c, err)
		return
	}
	post.ID = result.InsertedID.(primitive.ObjectID)
	c.JSON(http.StatusCreated, post)
}

// ListPosts returns the newest posts first.
func (pc *PostController) ListPosts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit < 1 {
		limit = 50
	}
	if limit > 100 {
		limit = 100
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))
	cursor, err := pc.store.Collection(db.Posts).Find(ctx, bson.M{}, opts)
	if err != nil {
		respondError(c, err)
		return
	}
	posts := []models.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

type replyRequest struct {
	UserID  string `json:"user_id" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// AddReply appends a reply to a post atomically and returns the updated
// post.
func (pc *PostController) AddReply(c *gin.Context) {
	postID, err := services.ParseID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	var req replyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: %v", services.ErrValidation, err))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	if _, err := requireUser(ctx, pc.store, req.UserID); err != nil {
		respondError(c, err)
		return
	}

	now := time.Now().UTC()
	reply := models.Reply{
		UserID:    req.UserID,
		Content:   req.Content,
		CreatedAt: now,
	}
	var post models.Post
	err = pc.store.Collection(db.Posts).FindOneAndUpdate(ctx,
		bson.M{"_id": postID},
		bson.M{"$push": bson.M{"replies": reply}, "$set": bson.M{"updated_at": now}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&post)
	if err == mongo.ErrNoDocuments {
		respondError(c, fmt.Errorf("post: %w", services.ErrNotFound))
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}
