package kicks

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

// DailyStats aggregates the user's kick sessions over a date range,
// bucketed by calendar day in the user's timezone. Averages are rounded
// to one decimal. Days without sessions are omitted; AvgPerDay divides
// by days that had at least one session.
func (s *Service) DailyStats(ctx context.Context, input DailyStatsInput) (*domain.KickStats, error) {
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
	tz := ParseTimezone(settings.Timezone)

	sessions, err := s.sessions.ListByUser(ctx, userID, &input.From, &input.To)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	type bucket struct {
		sessions int
		kicks    int
	}
	buckets := make(map[time.Time]*bucket)
	stats := &domain.KickStats{TotalSessions: len(sessions)}

	for _, sess := range sessions {
		stats.TotalKicks += sess.KickCount
		day := DayStart(sess.StartedAt, tz)
		b := buckets[day]
		if b == nil {
			b = &bucket{}
			buckets[day] = b
		}
		b.sessions++
		b.kicks += sess.KickCount
	}

	days := make([]time.Time, 0, len(buckets))
	for day := range buckets {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	for _, day := range days {
		b := buckets[day]
		stats.Days = append(stats.Days, domain.KickDailyStat{
			Day:           day,
			Sessions:      b.sessions,
			TotalKicks:    b.kicks,
			AvgPerSession: round1(float64(b.kicks) / float64(b.sessions)),
		})
	}
	if len(days) > 0 {
		stats.AvgPerDay = round1(float64(stats.TotalKicks) / float64(len(days)))
	}

	return stats, nil
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
