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
)

const requestTimeout = 5 * time.Second

// UserController handles user CRUD.
type UserController struct {
	store *db.Store
}

func NewUserController(store *db.Store) *UserController {
	return &UserController{store: store}
}

type createUserRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name" binding:"required"`
}

// CreateOrGetUser creates a user, or returns the existing one when the
// email is already registered.
func (uc *UserController) CreateOrGetUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: %v", services.ErrValidation, err))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	collection := uc.store.Collection(db.Users)
	var existing models.User
	err := collection.FindOne(ctx, bson.M{"email": req.Email}).Decode(&existing)
	if err == nil {
		c.JSON(http.StatusOK, existing)
		return
	}
	if err != mongo.ErrNoDocuments {
		respondError(c, err)
		return
	}

	now := time.Now().UTC()
	user := models.User{
		Email:     req.Email,
		Name:      req.Name,
		XP:        0,
		Streak:    0,
		CreatedAt: now,
		UpdatedAt: now,
	}
	result, err := collection.InsertOne(ctx, user)
	if err != nil {
		respondError(c, err)
		return
	}
	user.ID = result.InsertedID.(primitive.ObjectID)
	c.JSON(http.StatusCreated, user)
}

// GetUser returns a user by id.
func (uc *UserController) GetUser(c *gin.Context) {
	id, err := services.ParseID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	var user models.User
	if err := uc.store.Collection(db.Users).FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			respondError(c, fmt.Errorf("user: %w", services.ErrNotFound))
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// requireUser verifies a referenced user exists; missing references are a
// validation failure on the referring document, not a 404.
func requireUser(ctx context.Context, store *db.Store, idHex string) (*models.User, error) {
	id, err := services.ParseID(idHex)
	if err != nil {
		return nil, err
	}
	var user models.User
	if err := store.Collection(db.Users).FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("%w: user not found", services.ErrValidation)
		}
		return nil, err
	}
	return &user, nil
}
