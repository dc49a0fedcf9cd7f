package domain

import (
	"time"

	"github.com/google/uuid"
)

// KickSession is one completed fetal-movement counting session.
type KickSession struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	KickCount int
	StartedAt time.Time
	Duration  time.Duration
	Note      *string
	CreatedAt time.Time
}

// KickDailyStat aggregates the sessions of one calendar day in the
// user's timezone.
type KickDailyStat struct {
	Day           time.Time
	Sessions      int
	TotalKicks    int
	AvgPerSession float64
}

// KickStats summarizes kick activity over a date range.
type KickStats struct {
	Days          []KickDailyStat
	TotalKicks    int
	TotalSessions int
	AvgPerDay     float64
}
