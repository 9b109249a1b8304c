package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server        ServerConfig        `mapstructure:"server"        validate:"required"`
	Database      DatabaseConfig      `mapstructure:"database"      validate:"required"`
	Auth          AuthConfig          `mapstructure:"auth"          validate:"required"`
	LLM           LLMConfig           `mapstructure:"llm"`
	Observability ObservabilityConfig `mapstructure:"observability"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// DefaultTimezone is the IANA zone used for calendar-day math when neither
	// the request nor the user profile names one. "Local" means the host zone.
	DefaultTimezone string `mapstructure:"default_timezone" validate:"required"`
	// RequestTimeoutSeconds bounds every API request, including LLM calls.
	RequestTimeoutSeconds int `mapstructure:"request_timeout_seconds" validate:"gt=0"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	// Driver selects the key-value backend: "pgx" (PostgreSQL), "sqlite" or "memory".
	Driver string `mapstructure:"driver" validate:"required,oneof=pgx sqlite memory"`
	URL    string `mapstructure:"url"    validate:"required_unless=Driver memory"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret                   string `mapstructure:"jwt_secret"                     validate:"required,min=32"`
	TokenLifetimeMinutes        int    `mapstructure:"token_lifetime_minutes"         validate:"required,gt=0"`
	RefreshTokenLifetimeMinutes int    `mapstructure:"refresh_token_lifetime_minutes" validate:"required,gtfield=TokenLifetimeMinutes"`
}

// LLMConfig contains all LLM integration related settings.
// An empty GeminiAPIKey is valid: affirmations are then served from the fallback pool.
type LLMConfig struct {
	GeminiAPIKey       string  `mapstructure:"gemini_api_key"`
	ModelName          string  `mapstructure:"model_name"           validate:"required"`
	Temperature        float32 `mapstructure:"temperature"          validate:"gte=0,lte=2"`
	MaxOutputTokens    int32   `mapstructure:"max_output_tokens"    validate:"gt=0"`
	MaxRetries         int     `mapstructure:"max_retries"          validate:"gte=0,lte=5"`
	RetryDelaySeconds  int     `mapstructure:"retry_delay_seconds"  validate:"gte=1,lte=60"`
	PromptTemplatePath string  `mapstructure:"prompt_template_path"`
}

// ObservabilityConfig contains error-reporting settings.
type ObservabilityConfig struct {
	SentryDSN   string `mapstructure:"sentry_dsn"`
	Environment string `mapstructure:"environment"`
}
