package streak

import (
	"github.com/moonticket/backend/pkg/dateutil"
	"github.com/moonticket/backend/pkg/errorx"
)

const MaxStreak = 7

var rewards = [MaxStreak + 1]int64{0, 50, 50, 100, 200, 300, 500, 1000}

type Result struct {
	Streak           int
	Reward           int64
	AlreadyCheckedIn bool
}

// Next computes the streak after a check-in on today. lastDate is empty when
// the wallet never checked in. Dates are UTC calendar dates (YYYY-MM-DD), a
// malformed one is an error rather than a reset.
func Next(lastDate string, currentStreak int, today string) (Result, error) {
	yesterday, err := dateutil.PreviousDate(today)
	if err != nil {
		return Result{}, errorx.New(errorx.BadRequest, "Invalid check-in date %q", today)
	}

	if lastDate != "" {
		if _, err := dateutil.ParseDate(lastDate); err != nil {
			return Result{}, errorx.New(errorx.BadRequest, "Invalid last check-in date %q", lastDate)
		}
	}

	if lastDate == today {
		return Result{Streak: currentStreak, AlreadyCheckedIn: true}, nil
	}

	next := 1
	if lastDate == yesterday {
		next = min(currentStreak+1, MaxStreak)
	}

	// A corrupted stored streak never yields an index outside the table.
	next = max(next, 1)

	return Result{Streak: next, Reward: Reward(next)}, nil
}

// Reward returns the token units granted for reaching streak, zero for an
// invalid index.
func Reward(streak int) int64 {
	if streak < 1 || streak > MaxStreak {
		return 0
	}

	return rewards[streak]
}
