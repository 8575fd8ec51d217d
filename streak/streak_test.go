package streak

import (
	"testing"
	"time"
)

var noon = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func ts(t time.Time) *time.Time { return &t }

func TestAdvanceFirstCheckin(t *testing.T) {
	if got := Advance(nil, 0, noon); got != 1 {
		t.Errorf("expected streak 1 for first check-in, got %d", got)
	}
}

func TestAdvanceSameDay(t *testing.T) {
	last := noon.Add(-3 * time.Hour)
	if got := Advance(ts(last), 4, noon); got != 4 {
		t.Errorf("expected streak unchanged at 4, got %d", got)
	}
}

func TestAdvanceConsecutiveDay(t *testing.T) {
	last := noon.AddDate(0, 0, -1)
	if got := Advance(ts(last), 4, noon); got != 5 {
		t.Errorf("expected streak 5 after consecutive day, got %d", got)
	}
}

func TestAdvanceGapResets(t *testing.T) {
	last := noon.AddDate(0, 0, -3)
	if got := Advance(ts(last), 7, noon); got != 1 {
		t.Errorf("expected streak reset to 1 after 3-day gap, got %d", got)
	}
}

func TestAdvanceNearMidnightBoundary(t *testing.T) {
	// 23:59 yesterday vs 00:01 today is a consecutive day, not same-day.
	last := time.Date(2025, 3, 9, 23, 59, 0, 0, time.UTC)
	now := time.Date(2025, 3, 10, 0, 1, 0, 0, time.UTC)
	if got := Advance(ts(last), 2, now); got != 3 {
		t.Errorf("expected streak 3 across midnight boundary, got %d", got)
	}
}

func TestApplyFirstCompletion(t *testing.T) {
	// Fresh user completes a 10-XP task.
	res := Apply(State{XP: 0, Streak: 0, LastCheckin: nil}, 10, false, noon)
	if res.XPAward != 10 || res.NewXP != 10 || res.NewStreak != 1 {
		t.Errorf("got %+v, want award 10, xp 10, streak 1", res)
	}
}

func TestApplyNextDayCompletion(t *testing.T) {
	last := noon.Add(-24 * time.Hour)
	res := Apply(State{XP: 10, Streak: 1, LastCheckin: ts(last)}, 15, false, noon)
	if res.XPAward != 15 || res.NewXP != 25 || res.NewStreak != 2 {
		t.Errorf("got %+v, want award 15, xp 25, streak 2", res)
	}
}

func TestApplySameDaySecondCompletion(t *testing.T) {
	last := noon.Add(-1 * time.Hour)
	res := Apply(State{XP: 25, Streak: 2, LastCheckin: ts(last)}, 5, false, noon)
	if res.XPAward != 5 || res.NewXP != 30 || res.NewStreak != 2 {
		t.Errorf("got %+v, want award 5, xp 30, streak 2", res)
	}
}

func TestApplyStaleCheckinResets(t *testing.T) {
	last := noon.AddDate(0, 0, -3)
	res := Apply(State{XP: 50, Streak: 6, LastCheckin: ts(last)}, 10, false, noon)
	if res.NewStreak != 1 {
		t.Errorf("expected streak reset to 1, got %d", res.NewStreak)
	}
	if res.NewXP != 60 {
		t.Errorf("expected xp 60, got %d", res.NewXP)
	}
}

func TestApplyAlreadyCompleted(t *testing.T) {
	last := noon.Add(-1 * time.Hour)
	res := Apply(State{XP: 30, Streak: 2, LastCheckin: ts(last)}, 10, true, noon)
	if res.XPAward != 0 || res.NewXP != 30 || res.NewStreak != 2 {
		t.Errorf("expected no-op for completed task, got %+v", res)
	}
}

func TestApplyDefaultsXPValue(t *testing.T) {
	res := Apply(State{}, 0, false, noon)
	if res.XPAward != DefaultXP {
		t.Errorf("expected default award %d, got %d", DefaultXP, res.XPAward)
	}
}

func TestApplyMonotonicOverSequence(t *testing.T) {
	// XP never decreases and grows by exactly the sum of awards.
	s := State{}
	now := noon
	total := 0
	for i, v := range []int{10, 15, 5, 20} {
		res := Apply(s, v, false, now)
		total += v
		if res.NewXP < s.XP {
			t.Fatalf("xp decreased at step %d: %d -> %d", i, s.XP, res.NewXP)
		}
		if res.NewXP != total {
			t.Fatalf("xp %d at step %d, want %d", res.NewXP, i, total)
		}
		checkin := now
		s = State{XP: res.NewXP, Streak: res.NewStreak, LastCheckin: &checkin}
		now = now.AddDate(0, 0, 1)
	}
}

func TestApplyDailyStreakContinuity(t *testing.T) {
	s := State{}
	now := noon
	for day := 1; day <= 5; day++ {
		res := Apply(s, 10, false, now)
		if res.NewStreak != day {
			t.Fatalf("day %d: streak %d, want %d", day, res.NewStreak, day)
		}
		checkin := now
		s = State{XP: res.NewXP, Streak: res.NewStreak, LastCheckin: &checkin}
		now = now.AddDate(0, 0, 1)
	}
	// Skip a day: streak falls back to 1.
	now = now.AddDate(0, 0, 1)
	res := Apply(s, 10, false, now)
	if res.NewStreak != 1 {
		t.Errorf("expected streak 1 after skipped day, got %d", res.NewStreak)
	}
}
