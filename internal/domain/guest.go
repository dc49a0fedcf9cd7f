package domain

import "time"

// Guest records mirror what the client app stores locally before the
// user creates an account. They carry no server-side IDs; the migration
// service assigns those on import.

// GuestJournalEntry is a journal entry exported from guest-mode storage.
type GuestJournalEntry struct {
	Content   string
	Mood      string
	EntryDate time.Time
	CreatedAt time.Time
}

// GuestKickSession is a kick-counter session exported from guest-mode storage.
type GuestKickSession struct {
	KickCount int
	StartedAt time.Time
	Duration  time.Duration
	Note      *string
	CreatedAt time.Time
}

// GuestData is the full guest-mode export uploaded during account migration.
type GuestData struct {
	JournalEntries []GuestJournalEntry
	KickSessions   []GuestKickSession
	ExportedAt     time.Time
}
