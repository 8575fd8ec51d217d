package services

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseIDRoundTrip(t *testing.T) {
	want := primitive.NewObjectID()
	got, err := ParseID(want.Hex())
	if err != nil {
		t.Fatalf("ParseID: %v", err)
	}
	if got != want {
		t.Errorf("got %s, want %s", got.Hex(), want.Hex())
	}
}

func TestParseIDMalformed(t *testing.T) {
	for _, bad := range []string{"", "not-an-id", "123", "zzzzzzzzzzzzzzzzzzzzzzzz"} {
		_, err := ParseID(bad)
		if !errors.Is(err, ErrInvalidID) {
			t.Errorf("ParseID(%q): got %v, want ErrInvalidID", bad, err)
		}
	}
}

func TestWrapStoreClassifiesTimeouts(t *testing.T) {
	if err := wrapStore("op", context.DeadlineExceeded); !errors.Is(err, ErrUnavailable) {
		t.Errorf("deadline: got %v, want ErrUnavailable", err)
	}
	if err := wrapStore("op", context.Canceled); !errors.Is(err, ErrUnavailable) {
		t.Errorf("cancel: got %v, want ErrUnavailable", err)
	}
	if err := wrapStore("op", errors.New("decode failed")); errors.Is(err, ErrUnavailable) {
		t.Errorf("plain error misclassified as unavailable: %v", err)
	}
}
