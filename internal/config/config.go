package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`

	// MaxConns and MinConns bound the pgx connection pool.
	MaxConns int32 `mapstructure:"max_conns" validate:"gt=0,gtefield=MinConns"`
	MinConns int32 `mapstructure:"min_conns" validate:"gte=0"`

	// SnapshotReads runs the count and page queries of a listing inside one
	// read-only REPEATABLE READ transaction.
	SnapshotReads bool `mapstructure:"snapshot_reads"`
}
