package tracker

import (
	"slices"
	"strings"
	"time"

	"github.com/heartmarshall/learning-tracker/internal/domain"
)

// FilterItems returns the items matching every non-zero field of filter,
// in insertion order. Search is a case-insensitive title substring match;
// whitespace in it is significant.
func (s *Store) FilterItems(filter ItemFilter) []domain.LearningItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	search := strings.ToLower(filter.Search)
	out := make([]domain.LearningItem, 0, len(s.items))
	for _, it := range s.items {
		if search != "" && !strings.Contains(strings.ToLower(it.Title), search) {
			continue
		}
		if filter.Category != "" && it.Category != filter.Category {
			continue
		}
		if filter.Status != "" && it.Status != filter.Status {
			continue
		}
		out = append(out, it)
	}
	return out
}

// Dashboard aggregates counts, the streak, per-day activity for the chart
// window, the current focus item and the most recent activities.
func (s *Store) Dashboard() domain.Dashboard {
	s.mu.Lock()
	defer s.mu.Unlock()

	var d domain.Dashboard
	for _, it := range s.items {
		switch it.Status {
		case domain.StatusInProgress:
			d.ActiveCount++
		case domain.StatusCompleted:
			d.CompletedCount++
		}
	}

	d.Streak = s.streak()
	d.Days = s.dayCounts()
	d.CurrentFocus = s.currentFocus()

	n := min(s.recentActivities, len(s.activities))
	d.RecentActivities = make([]domain.Activity, 0, n)
	for i := len(s.activities) - 1; i >= len(s.activities)-n; i-- {
		d.RecentActivities = append(d.RecentActivities, cloneActivity(s.activities[i]))
	}

	return d
}

// Timeline groups activities by logical day, most recent day first. Within
// a day the newest entry comes first.
func (s *Store) Timeline() []domain.TimelineDay {
	s.mu.Lock()
	defer s.mu.Unlock()

	titles := make(map[string]string, len(s.items))
	for _, it := range s.items {
		titles[it.ID] = it.Title
	}

	byDate := make(map[string][]domain.TimelineEntry)
	for i := len(s.activities) - 1; i >= 0; i-- {
		a := s.activities[i]
		entry := domain.TimelineEntry{Activity: cloneActivity(a)}
		if a.LearningItemID != nil {
			entry.ItemTitle = titles[*a.LearningItemID]
		}
		byDate[a.Date] = append(byDate[a.Date], entry)
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	slices.Sort(dates)
	slices.Reverse(dates)

	days := make([]domain.TimelineDay, len(dates))
	for i, date := range dates {
		days[i] = domain.TimelineDay{Date: date, Entries: byDate[date]}
	}
	return days
}

// dayCounts returns the number of activities per day for the chart window
// ending today, oldest day first.
func (s *Store) dayCounts() []domain.DayCount {
	counts := make(map[string]int, len(s.activities))
	for _, a := range s.activities {
		counts[a.Date]++
	}

	now := s.now().In(s.loc)
	days := make([]domain.DayCount, s.chartDays)
	for i := range days {
		offset := s.chartDays - 1 - i
		date := now.AddDate(0, 0, -offset).Format(domain.DayLayout)
		days[i] = domain.DayCount{Date: date, Count: counts[date]}
	}
	return days
}

// currentFocus returns the most recently created in-progress item. Among
// items created at the same instant the earliest inserted wins.
func (s *Store) currentFocus() *domain.LearningItem {
	var focus *domain.LearningItem
	var newest time.Time
	for i := range s.items {
		it := s.items[i]
		if it.Status != domain.StatusInProgress {
			continue
		}
		if focus == nil || it.CreatedAt.After(newest) {
			copied := it
			focus = &copied
			newest = it.CreatedAt
		}
	}
	return focus
}
