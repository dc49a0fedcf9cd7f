package config

// Config is the root application configuration.
type Config struct {
	Log       LogConfig       `yaml:"log"`
	Journal   JournalConfig   `yaml:"journal"`
	Kicks     KicksConfig     `yaml:"kicks"`
	Migration MigrationConfig `yaml:"migration"`
	Catalog   CatalogConfig   `yaml:"catalog"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// JournalConfig holds journal service settings.
type JournalConfig struct {
	MaxEntriesPerUser int `yaml:"max_entries_per_user" env:"JOURNAL_MAX_ENTRIES_PER_USER" env-default:"10000"`
	MaxContentLength  int `yaml:"max_content_length"   env:"JOURNAL_MAX_CONTENT_LENGTH"   env-default:"10000"`
}

// KicksConfig holds kick-counter service settings.
type KicksConfig struct {
	MaxSessionsPerUser int `yaml:"max_sessions_per_user" env:"KICKS_MAX_SESSIONS_PER_USER" env-default:"20000"`
}

// MigrationConfig holds guest-data migration settings.
type MigrationConfig struct {
	ChunkSize int `yaml:"chunk_size" env:"MIGRATION_CHUNK_SIZE" env-default:"50"`
}

// CatalogConfig holds catalog file locations. Empty paths select the
// catalogs embedded in the binary.
type CatalogConfig struct {
	TopicsPath   string `yaml:"topics_path"   env:"CATALOG_TOPICS_PATH"`
	JourneysPath string `yaml:"journeys_path" env:"CATALOG_JOURNEYS_PATH"`
}
