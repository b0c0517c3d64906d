package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"     validate:"required"`
	Database  DatabaseConfig  `mapstructure:"database"   validate:"required"`
	Redis     RedisConfig     `mapstructure:"redis"      validate:"required"`
	Auth      AuthConfig      `mapstructure:"auth"       validate:"required"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit" validate:"required"`
	Admin     AdminConfig     `mapstructure:"admin"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// RedisConfig contains connection settings for the rate-counter store.
type RedisConfig struct {
	Addr      string `mapstructure:"addr"       validate:"required"`
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db"         validate:"gte=0"`
	TimeoutMS int    `mapstructure:"timeout_ms" validate:"required,gt=0"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret                   string `mapstructure:"jwt_secret"                     validate:"required,min=32"`
	TokenLifetimeMinutes        int    `mapstructure:"token_lifetime_minutes"         validate:"required,gt=0"`
	RefreshTokenLifetimeMinutes int    `mapstructure:"refresh_token_lifetime_minutes" validate:"required,gt=0"`
	BCryptCost                  int    `mapstructure:"bcrypt_cost"                    validate:"gte=0,lte=31"`
}

// RateLimitConfig contains the request rate limiting settings.
// FailPolicy decides what happens when the counter store is unreachable:
// "allow" lets the request through (fail-open), "deny" rejects it
// (fail-closed).
type RateLimitConfig struct {
	Limit         int      `mapstructure:"limit"          validate:"required,gt=0"`
	WindowSeconds int      `mapstructure:"window_seconds" validate:"required,gt=0"`
	FailPolicy    string   `mapstructure:"fail_policy"    validate:"required,oneof=allow deny"`
	KeyPrefix     string   `mapstructure:"key_prefix"     validate:"required"`
	ExemptPaths   []string `mapstructure:"exempt_paths"`
}

// AdminConfig describes the admin user seeded at startup. Seeding is skipped
// when the password is empty.
type AdminConfig struct {
	Username string `mapstructure:"username"`
	Email    string `mapstructure:"email"    validate:"omitempty,email"`
	Password string `mapstructure:"password"`
}
