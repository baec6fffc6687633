package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const minJWTSecretLen = 32

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Port int `toml:"port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`

	// postgres
	DBHost     string `toml:"db_host"`
	DBPort     string `toml:"db_port"`
	DBUser     string `toml:"db_user"`
	DBPassword string `toml:"db_password"`
	DBName     string `toml:"db_name"`
	DBTracing  bool   `toml:"db_tracing"`

	// redis
	RedisHost     string `toml:"redis_host"`
	RedisPort     string `toml:"redis_port"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`

	// auth
	JWTSecret     string        `toml:"jwt_secret"`
	JWTIssuer     string        `toml:"jwt_issuer"`
	TokenDuration time.Duration `toml:"token_duration"`

	// rate limiting
	RateLimit       int           `toml:"rate_limit"`
	RateLimitWindow time.Duration `toml:"rate_limit_window"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

func Default() *Config {
	return &Config{
		Port:            8080,
		LogLevel:        "info",
		LogToStdout:     true,
		DBHost:          "localhost",
		DBPort:          "5432",
		DBName:          "adaptfitness",
		RedisHost:       "localhost",
		RedisPort:       "6379",
		JWTIssuer:       "adaptfitness-engine",
		TokenDuration:   24 * time.Hour,
		RateLimit:       100,
		RateLimitWindow: time.Minute,
	}
}

// Load builds the config from defaults, then the [env] section of tomlPath
// (skipped when tomlPath is empty), then environment variables. A .env file
// in the working directory is read first if present.
func Load(tomlPath, env string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	if tomlPath != "" {
		var t Toml
		if _, err := toml.DecodeFile(tomlPath, &t); err != nil {
			return nil, fmt.Errorf("decode %s: %w", tomlPath, err)
		}
		section, err := t.Get(env)
		if err != nil {
			return nil, err
		}
		if section != nil {
			cfg.merge(section)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if len(c.JWTSecret) < minJWTSecretLen {
		return fmt.Errorf("%w: JWT_SECRET must be at least %d characters", ErrInvalidConfig, minJWTSecretLen)
	}
	if c.DBPassword == "" {
		return fmt.Errorf("%w: DB_PASSWORD is required", ErrInvalidConfig)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidConfig, c.Port)
	}
	return nil
}

// PostgresDSN is the connection URL for pgx.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

func (c *Config) merge(o *Config) {
	if o.Port != 0 {
		c.Port = o.Port
	}
	setString(&c.LogLevel, o.LogLevel)
	setString(&c.LogsPath, o.LogsPath)
	c.LogToStdout = c.LogToStdout || o.LogToStdout
	c.LogFormatJSON = c.LogFormatJSON || o.LogFormatJSON
	setString(&c.DBHost, o.DBHost)
	setString(&c.DBPort, o.DBPort)
	setString(&c.DBUser, o.DBUser)
	setString(&c.DBPassword, o.DBPassword)
	setString(&c.DBName, o.DBName)
	c.DBTracing = c.DBTracing || o.DBTracing
	setString(&c.RedisHost, o.RedisHost)
	setString(&c.RedisPort, o.RedisPort)
	setString(&c.RedisPassword, o.RedisPassword)
	if o.RedisDB != 0 {
		c.RedisDB = o.RedisDB
	}
	setString(&c.JWTSecret, o.JWTSecret)
	setString(&c.JWTIssuer, o.JWTIssuer)
	if o.TokenDuration != 0 {
		c.TokenDuration = o.TokenDuration
	}
	if o.RateLimit != 0 {
		c.RateLimit = o.RateLimit
	}
	if o.RateLimitWindow != 0 {
		c.RateLimitWindow = o.RateLimitWindow
	}
}

func (c *Config) applyEnv() error {
	setString(&c.LogLevel, os.Getenv("LOG_LEVEL"))
	setString(&c.LogsPath, os.Getenv("LOGS_PATH"))
	setString(&c.DBHost, os.Getenv("DB_HOST"))
	setString(&c.DBPort, os.Getenv("DB_PORT"))
	setString(&c.DBUser, os.Getenv("DB_USER"))
	setString(&c.DBPassword, os.Getenv("DB_PASSWORD"))
	setString(&c.DBName, os.Getenv("DB_NAME"))
	setString(&c.RedisHost, os.Getenv("REDIS_HOST"))
	setString(&c.RedisPort, os.Getenv("REDIS_PORT"))
	setString(&c.RedisPassword, os.Getenv("REDIS_PASSWORD"))
	setString(&c.JWTSecret, os.Getenv("JWT_SECRET"))
	setString(&c.JWTIssuer, os.Getenv("JWT_ISSUER"))

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: PORT: %v", ErrInvalidConfig, err)
		}
		c.Port = port
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: REDIS_DB: %v", ErrInvalidConfig, err)
		}
		c.RedisDB = db
	}
	if v := os.Getenv("LOG_FORMAT_JSON"); v != "" {
		c.LogFormatJSON = v == "true" || v == "1"
	}
	if v := os.Getenv("TOKEN_DURATION"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: TOKEN_DURATION: %v", ErrInvalidConfig, err)
		}
		c.TokenDuration = d
	}
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
