package domain

// Journey is a catalog entry for a themed sequence of stories.
// IDs are string slugs and are matched case-insensitively everywhere.
type Journey struct {
	ID   string
	Name string
}

// JourneyReference points from a journal entry at a catalog journey.
// Title snapshots the journey's display name at resolution time.
type JourneyReference struct {
	JourneyID string `json:"journey_id"`
	Title     string `json:"title"`
}
