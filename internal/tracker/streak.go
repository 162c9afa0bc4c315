package tracker

import (
	"slices"
	"time"

	"github.com/heartmarshall/learning-tracker/internal/domain"
)

// Streak returns the number of consecutive logical days with at least one
// activity, ending today or yesterday. It is recomputed on every call
// because "today" moves with the clock.
func (s *Store) Streak() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.streak()
}

func (s *Store) streak() int {
	dates := make([]string, len(s.activities))
	for i, a := range s.activities {
		dates[i] = a.Date
	}
	return calculateStreak(dates, s.now().In(s.loc))
}

// calculateStreak counts the run of consecutive days in dates that ends at
// the most recent one, provided the most recent day is today or yesterday
// relative to now. Dates that are not YYYY-MM-DD are ignored.
func calculateStreak(dates []string, now time.Time) int {
	seen := make(map[string]struct{}, len(dates))
	days := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		if t, ok := domain.ParseDay(d); ok {
			days = append(days, t)
		}
	}
	if len(days) == 0 {
		return 0
	}

	// Most recent first.
	slices.SortFunc(days, func(a, b time.Time) int { return b.Compare(a) })

	// Calendar arithmetic on UTC midnights is immune to DST shifts.
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)
	if !days[0].Equal(today) && !days[0].Equal(yesterday) {
		return 0
	}

	streak := 0
	anchor := days[0]
	for _, d := range days {
		if wholeDaysBetween(d, anchor) > 1 {
			break
		}
		streak++
		anchor = d
	}
	return streak
}

func wholeDaysBetween(earlier, later time.Time) int {
	return int(later.Sub(earlier).Hours() / 24)
}
