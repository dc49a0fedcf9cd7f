package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Log.Level)) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug/info/warn/error (got %q)", c.Log.Level)
	}

	switch strings.ToLower(strings.TrimSpace(c.Log.Format)) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if c.Journal.MaxEntriesPerUser <= 0 {
		return fmt.Errorf("journal.max_entries_per_user must be > 0 (got %d)", c.Journal.MaxEntriesPerUser)
	}
	if c.Journal.MaxContentLength <= 0 {
		return fmt.Errorf("journal.max_content_length must be > 0 (got %d)", c.Journal.MaxContentLength)
	}
	if c.Kicks.MaxSessionsPerUser <= 0 {
		return fmt.Errorf("kicks.max_sessions_per_user must be > 0 (got %d)", c.Kicks.MaxSessionsPerUser)
	}
	if c.Migration.ChunkSize <= 0 {
		return fmt.Errorf("migration.chunk_size must be > 0 (got %d)", c.Migration.ChunkSize)
	}

	return nil
}
