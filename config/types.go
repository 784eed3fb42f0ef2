package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	Thoth       ThothConfig       `mapstructure:"thoth"`
	Export      ExportConfig      `mapstructure:"export"`
	Credentials CredentialsConfig `mapstructure:"credentials"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Sync        SyncConfig        `mapstructure:"sync"`
	Output      OutputConfig      `mapstructure:"output"`
	Logging     LoggingConfig     `mapstructure:"logging"`
}

// ThothConfig holds the GraphQL API connection details
type ThothConfig struct {
	Endpoint  string        `mapstructure:"endpoint" validate:"required,url"`
	Version   string        `mapstructure:"version" validate:"required,api_version"`
	Timeout   time.Duration `mapstructure:"timeout" validate:"gte=0"`
	RateLimit float64       `mapstructure:"rate_limit" validate:"gte=0"`
	UserAgent string        `mapstructure:"user_agent"`
}

// ExportConfig holds the REST export API connection details
type ExportConfig struct {
	Endpoint string `mapstructure:"endpoint" validate:"required,url"`
	Version  string `mapstructure:"version" validate:"required"`
}

// CredentialsConfig holds the account used for mutations
type CredentialsConfig struct {
	Email    string `mapstructure:"email" validate:"omitempty,email"`
	Password string `mapstructure:"password"`
}

// DatabaseConfig selects the local mirror database
type DatabaseConfig struct {
	Driver string `mapstructure:"driver" validate:"required,oneof=sqlite sqlite3 postgres postgresql"`
	DSN    string `mapstructure:"dsn" validate:"required"`
}

// SyncConfig lists the publishers mirrored by `thoth sync`
type SyncConfig struct {
	Concurrency int          `mapstructure:"concurrency" validate:"gte=1"`
	Limit       int          `mapstructure:"limit" validate:"gte=1"`
	Targets     []SyncTarget `mapstructure:"targets" validate:"dive"`
}

// SyncTarget is one publisher on one Thoth instance
type SyncTarget struct {
	Publisher string `mapstructure:"publisher" validate:"required,uuid"`
	Endpoint  string `mapstructure:"endpoint" validate:"omitempty,url"`
	Version   string `mapstructure:"version" validate:"omitempty,api_version"`
}

// OutputConfig sets the default rendering of results
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
