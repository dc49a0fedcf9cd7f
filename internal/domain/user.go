package domain

import (
	"time"

	"github.com/google/uuid"
)

// WeekStyle controls how pregnancy progress is displayed.
type WeekStyle string

const (
	WeekStyleWeeks  WeekStyle = "WEEKS"
	WeekStyleMonths WeekStyle = "MONTHS"
)

func (w WeekStyle) String() string { return string(w) }

func (w WeekStyle) IsValid() bool {
	switch w {
	case WeekStyleWeeks, WeekStyleMonths:
		return true
	}
	return false
}

// UserSettings holds per-user display preferences. Timezone is an IANA
// name and drives all day bucketing in the aggregation services.
type UserSettings struct {
	UserID    uuid.UUID
	Timezone  string
	WeekStyle WeekStyle
	UpdatedAt time.Time
}

// DefaultSettings returns the settings used before the user has saved any.
func DefaultSettings(userID uuid.UUID) *UserSettings {
	return &UserSettings{
		UserID:    userID,
		Timezone:  "UTC",
		WeekStyle: WeekStyleWeeks,
	}
}
