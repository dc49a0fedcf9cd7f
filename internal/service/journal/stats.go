package journal

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/nestlingapp/nestling-backend/internal/domain"
	"github.com/nestlingapp/nestling-backend/pkg/ctxutil"
)

// MoodStats aggregates the user's mood data over a date range: per-mood
// counts with percentages, and the dominant mood of each day. Days are
// bucketed in the user's configured timezone. Percentages are computed
// over entries that carry a mood; entries without one only contribute
// to TotalEntries.
func (s *Service) MoodStats(ctx context.Context, input MoodStatsInput) (*domain.MoodStats, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	settings, err := s.settings.GetByUserID(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		settings = domain.DefaultSettings(userID)
	} else if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	tz := parseTimezone(settings.Timezone)

	entries, err := s.entries.List(ctx, userID, domain.JournalFilter{
		From: &input.From,
		To:   &input.To,
	})
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	stats := &domain.MoodStats{TotalEntries: len(entries)}

	moodCounts := make(map[domain.Mood]int)
	dayCounts := make(map[time.Time]map[domain.Mood]int)
	for _, e := range entries {
		if e.Mood == nil {
			continue
		}
		stats.WithMood++
		moodCounts[*e.Mood]++

		day := dayStart(e.EntryDate, tz)
		if dayCounts[day] == nil {
			dayCounts[day] = make(map[domain.Mood]int)
		}
		dayCounts[day][*e.Mood]++
	}

	for _, m := range domain.Moods {
		count := moodCounts[m]
		if count == 0 {
			continue
		}
		stats.Counts = append(stats.Counts, domain.MoodCount{
			Mood:    m,
			Count:   count,
			Percent: percentOf(count, stats.WithMood),
		})
	}

	days := make([]time.Time, 0, len(dayCounts))
	for day := range dayCounts {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	for _, day := range days {
		counts := dayCounts[day]
		dominant := domain.Moods[0]
		best, total := 0, 0
		// Moods order breaks ties deterministically.
		for _, m := range domain.Moods {
			total += counts[m]
			if counts[m] > best {
				best = counts[m]
				dominant = m
			}
		}
		stats.Days = append(stats.Days, domain.DayMood{
			Day:     day,
			Mood:    dominant,
			Entries: total,
		})
	}

	return stats, nil
}

// percentOf returns part/total as a percentage rounded to one decimal.
func percentOf(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(total)*1000) / 10
}

// parseTimezone parses an IANA timezone name, falling back to UTC.
func parseTimezone(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

// dayStart returns midnight of t's calendar day in the given timezone.
func dayStart(t time.Time, tz *time.Location) time.Time {
	lt := t.In(tz)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, tz)
}
