package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Domain error kinds. Handlers map these to HTTP statuses; everything a
// service returns wraps exactly one of them.
var (
	ErrNotFound    = errors.New("not found")
	ErrInvalidID   = errors.New("invalid identifier")
	ErrValidation  = errors.New("validation failed")
	ErrConflict    = errors.New("conflict")
	ErrUnavailable = errors.New("store unavailable")
)

// ParseID converts an opaque id string to an ObjectID. Malformed ids are
// a client error distinct from "not found".
func ParseID(hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, hex)
	}
	return id, nil
}

// wrapStore classifies a store error: timeouts and network failures become
// ErrUnavailable (the only kind callers may retry), anything else is
// passed through with context.
func wrapStore(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) ||
		mongo.IsTimeout(err) || mongo.IsNetworkError(err) {
		return fmt.Errorf("%s: %w", op, ErrUnavailable)
	}
	return fmt.Errorf("%s: %v", op, err)
}
