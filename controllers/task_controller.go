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
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TaskController handles task CRUD plus the completion endpoint.
type TaskController struct {
	store *db.Store
	tasks *services.TaskService
}

func NewTaskController(store *db.Store, tasks *services.TaskService) *TaskController {
	return &TaskController{store: store, tasks: tasks}
}

type createTaskRequest struct {
	UserID   string     `json:"user_id" binding:"required"`
	Title    string     `json:"title" binding:"required"`
	CourseID string     `json:"course_id"`
	DueDate  *time.Time `json:"due_date"`
	XPValue  int        `json:"xp_value"`
}

// CreateTask creates a pending task after validating its references.
func (tc *TaskController) CreateTask(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: %v", services.ErrValidation, err))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	if _, err := requireUser(ctx, tc.store, req.UserID); err != nil {
		respondError(c, err)
		return
	}
	if req.CourseID != "" {
		courseID, err := services.ParseID(req.CourseID)
		if err != nil {
			respondError(c, err)
			return
		}
		var course models.Course
		err = tc.store.Collection(db.Courses).FindOne(ctx, bson.M{"_id": courseID}).Decode(&course)
		if err == mongo.ErrNoDocuments {
			respondError(c, fmt.Errorf("%w: course not found", services.ErrValidation))
			return
		}
		if err != nil {
			respondError(c, err)
			return
		}
	}

	xp := req.XPValue
	if xp <= 0 {
		xp = models.DefaultTaskXP
	}
	now := time.Now().UTC()
	task := models.Task{
		UserID:    req.UserID,
		CourseID:  req.CourseID,
		Title:     req.Title,
		Status:    models.TaskStatusPending,
		XPValue:   xp,
		DueDate:   req.DueDate,
		CreatedAt: now,
		UpdatedAt: now,
	}
	result, err := tc.store.Collection(db.Tasks).InsertOne(ctx, task)
	if err != nil {
		respondError(c, err)
		return
	}
	task.ID = result.InsertedID.(primitive.ObjectID)
	c.JSON(http.StatusCreated, task)
}

// ListTasks returns a user's tasks, optionally filtered by course and
// status.
func (tc *TaskController) ListTasks(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		respondError(c, fmt.Errorf("%w: user_id is required", services.ErrValidation))
		return
	}

	filter := bson.M{"user_id": userID}
	if courseID := c.Query("course_id"); courseID != "" {
		filter["course_id"] = courseID
	}
	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	opts := options.Find().SetLimit(500)
	cursor, err := tc.store.Collection(db.Tasks).Find(ctx, filter, opts)
	if err != nil {
		respondError(c, err)
		return
	}
	tasks := []models.Task{}
	if err := cursor.All(ctx, &tasks); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// CompleteTask runs the completion protocol for a task.
func (tc *TaskController) CompleteTask(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	result, err := tc.tasks.CompleteTask(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
