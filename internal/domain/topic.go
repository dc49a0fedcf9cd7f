package domain

// Topic is a story-catalog entry: one narrated educational story in the
// content library. The catalog is static in-process data supplied by the
// caller; nothing in this module loads or mutates it.
type Topic struct {
	ID    int
	Title string
}

// TopicReference points from a journal entry at a catalog topic.
// Title is a snapshot of the topic's title taken at resolution time;
// it is not re-synced if the catalog changes later.
type TopicReference struct {
	TopicID int    `json:"topic_id"`
	Title   string `json:"title"`
}
