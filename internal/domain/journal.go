package domain

import (
	"time"

	"github.com/google/uuid"
)

// Mood represents the self-reported mood attached to a journal entry.
type Mood string

const (
	MoodGreat Mood = "GREAT"
	MoodGood  Mood = "GOOD"
	MoodOkay  Mood = "OKAY"
	MoodLow   Mood = "LOW"
	MoodRough Mood = "ROUGH"
)

func (m Mood) String() string { return string(m) }

func (m Mood) IsValid() bool {
	switch m {
	case MoodGreat, MoodGood, MoodOkay, MoodLow, MoodRough:
		return true
	}
	return false
}

// Moods lists all valid moods in display order. Aggregations iterate this
// slice so per-mood output is deterministic.
var Moods = []Mood{MoodGreat, MoodGood, MoodOkay, MoodLow, MoodRough}

// JournalEntry is a user's journal record. TopicReferences and
// JourneyReferences are the merged result of scanning Content for
// mention tokens and validating any explicitly supplied references.
type JournalEntry struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	Content           string
	Mood              *Mood
	EntryDate         time.Time
	TopicReferences   []TopicReference
	JourneyReferences []JourneyReference
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// JournalFilter narrows a journal listing. Nil fields are ignored.
type JournalFilter struct {
	Mood *Mood
	From *time.Time
	To   *time.Time
}

// MoodCount is the share of entries carrying one mood within a range.
type MoodCount struct {
	Mood    Mood
	Count   int
	Percent float64
}

// DayMood is the dominant mood for one calendar day in the user's timezone.
type DayMood struct {
	Day     time.Time
	Mood    Mood
	Entries int
}

// MoodStats aggregates mood data over a date range. Percentages are
// computed over entries that have a mood, not over all entries.
type MoodStats struct {
	TotalEntries int
	WithMood     int
	Counts       []MoodCount
	Days         []DayMood
}
