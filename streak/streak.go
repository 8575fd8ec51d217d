// Package streak implements the XP award and daily streak rules. It is
// purely computational; persistence lives in the services layer.
package streak

import "time"

// DefaultXP is granted when a task has no positive xp_value.
const DefaultXP = 10

// State is the gamification slice of a user document.
type State struct {
	XP          int
	Streak      int
	LastCheckin *time.Time
}

// Result describes one completion's effect on a user's state.
type Result struct {
	XPAward   int
	NewXP     int
	NewStreak int
}

// SameDay reports whether a and b fall on the same UTC calendar date.
// Comparison is by date extraction, not timestamp subtraction, so
// near-midnight instants cannot be off by one.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

// Advance returns the streak value after a check-in at now, given the
// previous check-in instant (nil for a first-ever check-in):
//   - same UTC date as now: unchanged, already counted today
//   - nil or yesterday: current + 1
//   - gap of two or more days: reset to 1
func Advance(last *time.Time, current int, now time.Time) int {
	if last == nil {
		return current + 1
	}
	if SameDay(*last, now) {
		return current
	}
	yesterday := now.UTC().AddDate(0, 0, -1)
	if SameDay(*last, yesterday) {
		return current + 1
	}
	return 1
}

// Apply computes the state transition for completing a task worth xpValue
// at now. When the task was already completed the award is zero and the
// state is echoed unchanged, so retries are harmless.
func Apply(s State, xpValue int, alreadyCompleted bool, now time.Time) Result {
	if alreadyCompleted {
		return Result{XPAward: 0, NewXP: s.XP, NewStreak: s.Streak}
	}
	if xpValue <= 0 {
		xpValue = DefaultXP
	}
	return Result{
		XPAward:   xpValue,
		NewXP:     s.XP + xpValue,
		NewStreak: Advance(s.LastCheckin, s.Streak, now),
	}
}
