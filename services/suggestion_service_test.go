package services

import (
	"testing"
	"time"

	"univo/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var suggestNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func pendingTask(title string, due *time.Time, created time.Time) models.Task {
	return models.Task{
		ID:        primitive.NewObjectID(),
		UserID:    primitive.NewObjectID().Hex(),
		Title:     title,
		Status:    models.TaskStatusPending,
		XPValue:   models.DefaultTaskXP,
		DueDate:   due,
		CreatedAt: created,
	}
}

func TestTodayMoodPicksFirstFromToday(t *testing.T) {
	yesterday := suggestNow.AddDate(0, 0, -1)
	moods := []models.Mood{
		{Mood: models.MoodStressed, CreatedAt: suggestNow.Add(-1 * time.Hour)},
		{Mood: models.MoodHappy, CreatedAt: yesterday},
	}
	if got := todayMood(moods, suggestNow); got != models.MoodStressed {
		t.Errorf("todayMood: got %q, want %q", got, models.MoodStressed)
	}
}

func TestTodayMoodAbsentWhenStale(t *testing.T) {
	moods := []models.Mood{
		{Mood: models.MoodHappy, CreatedAt: suggestNow.AddDate(0, 0, -2)},
	}
	if got := todayMood(moods, suggestNow); got != "" {
		t.Errorf("expected no same-day mood, got %q", got)
	}
}

func TestNextTaskEarliestDueFirst(t *testing.T) {
	soon := suggestNow.Add(2 * time.Hour)
	later := suggestNow.Add(48 * time.Hour)
	tasks := []models.Task{
		pendingTask("Later essay", &later, suggestNow),
		pendingTask("Math problem set", &soon, suggestNow),
	}
	next := nextTask(tasks)
	if next == nil || next.Title != "Math problem set" {
		t.Fatalf("expected earliest-due task first, got %+v", next)
	}
}

func TestNextTaskUndatedSortsLast(t *testing.T) {
	due := suggestNow.Add(72 * time.Hour)
	tasks := []models.Task{
		pendingTask("Someday reading", nil, suggestNow.Add(-time.Hour)),
		pendingTask("Dated homework", &due, suggestNow),
	}
	next := nextTask(tasks)
	if next == nil || next.Title != "Dated homework" {
		t.Fatalf("expected dated task to win over undated, got %+v", next)
	}
}

func TestNextTaskDeterministicForTies(t *testing.T) {
	tasks := []models.Task{
		pendingTask("B", nil, suggestNow),
		pendingTask("A", nil, suggestNow.Add(-time.Minute)),
	}
	first := nextTask(append([]models.Task(nil), tasks...))
	for i := 0; i < 5; i++ {
		again := nextTask(append([]models.Task(nil), tasks...))
		if again.Title != first.Title {
			t.Fatalf("ordering not deterministic: %q vs %q", again.Title, first.Title)
		}
	}
	if first.Title != "A" {
		t.Errorf("expected older undated task first, got %q", first.Title)
	}
}

func TestNextTaskEmpty(t *testing.T) {
	if next := nextTask(nil); next != nil {
		t.Errorf("expected nil for empty task list, got %+v", next)
	}
}

func TestBuildSuggestionStressedWithDeadline(t *testing.T) {
	due := suggestNow.Add(2*time.Hour + 30*time.Minute)
	task := pendingTask("Math problem set", &due, suggestNow)
	got := buildSuggestion(models.MoodStressed, &task, suggestNow)
	want := "You seem a bit off today. Take a 10-minute reset, then tackle: Math problem set due in 2h."
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBuildSuggestionMotivated(t *testing.T) {
	task := pendingTask("Read chapter 4", nil, suggestNow)
	got := buildSuggestion(models.MoodMotivated, &task, suggestNow)
	want := "You're on a roll! Next up: Read chapter 4."
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBuildSuggestionNeutralForUnknownMood(t *testing.T) {
	task := pendingTask("Lab report", nil, suggestNow)
	for _, mood := range []string{"", models.MoodNeutral, "confused"} {
		got := buildSuggestion(mood, &task, suggestNow)
		want := "Here's your next best step: Lab report."
		if got != want {
			t.Errorf("mood %q: got %q, want %q", mood, got, want)
		}
	}
}

func TestBuildSuggestionOverdueUsesFloor(t *testing.T) {
	due := suggestNow.Add(-30 * time.Minute)
	task := pendingTask("Quiz prep", &due, suggestNow)
	got := buildSuggestion("", &task, suggestNow)
	want := "Here's your next best step: Quiz prep due in -1h."
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBuildSuggestionFallbackIgnoresMood(t *testing.T) {
	for _, mood := range []string{"", models.MoodStressed, models.MoodHappy} {
		if got := buildSuggestion(mood, nil, suggestNow); got != FallbackSuggestion {
			t.Errorf("mood %q: got %q, want fallback", mood, got)
		}
	}
}
