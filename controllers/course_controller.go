package controllers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"univo/db"
	"univo/models"
	"univo/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CourseController handles course CRUD.
type CourseController struct {
	store *db.Store
}

func NewCourseController(store *db.Store) *CourseController {
	return &CourseController{store: store}
}

type createCourseRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Title  string `json:"title" binding:"required"`
	Code   string `json:"code"`
	Color  string `json:"color"`
}

// CreateCourse creates a course for an existing user.
func (cc *CourseController) CreateCourse(c *gin.Context) {
	var req createCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: %v", services.ErrValidation, err))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	if _, err := requireUser(ctx, cc.store, req.UserID); err != nil {
		respondError(c, err)
		return
	}

	now := time.Now().UTC()
	course := models.Course{
		UserID:    req.UserID,
		Title:     req.Title,
		Code:      req.Code,
		Color:     req.Color,
		CreatedAt: now,
		UpdatedAt: now,
	}
	result, err := cc.store.Collection(db.Courses).InsertOne(ctx, course)
	if err != nil {
		respondError(c, err)
		return
	}
	course.ID = result.InsertedID.(primitive.ObjectID)
	c.JSON(http.StatusCreated, course)
}

// ListCourses returns a user's courses.
func (cc *CourseController) ListCourses(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		respondError(c, fmt.Errorf("%w: user_id is required", services.ErrValidation))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	opts := options.Find().SetLimit(200)
	cursor, err := cc.store.Collection(db.Courses).Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		respondError(c, err)
		return
	}
	courses := []models.Course{}
	if err := cursor.All(ctx, &courses); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, courses)
}
