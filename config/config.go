package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config is the application configuration, read from the environment.
type Config struct {
	Port    string `env:"PORT" env-default:":8080"`
	LogMode string `env:"LOG_MODE" env-default:"development"`

	// PublicBaseURL is where the website lives; used for links in exported itineraries.
	PublicBaseURL string `env:"PUBLIC_BASE_URL" env-default:"http://localhost:3000"`

	CORS  CORSConfig
	Mongo MongoConfig
	Redis RedisConfig
	Feeds FeedsConfig
	Chat  ChatConfig
	Auth  AuthConfig
	Rate  RateConfig
}

type CORSConfig struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" env-default:"*" env-separator:","`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI" env-default:"mongodb://localhost:27017"`
	Database string `env:"MONGO_DATABASE" env-default:"suratguide"`
}

type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB" env-default:"0"`
	CacheTTL time.Duration `env:"CACHE_TTL" env-default:"10m"`
}

// FeedsConfig holds the spreadsheet endpoint of each collection. An empty URL means
// the collection is served from the curated catalog compiled into the binary.
type FeedsConfig struct {
	Timeout         time.Duration `env:"FEED_TIMEOUT" env-default:"10s"`
	HomeURL         string        `env:"FEED_HOME_URL"`
	DestinationsURL string        `env:"FEED_DESTINATIONS_URL"`
	ActivitiesURL   string        `env:"FEED_ACTIVITIES_URL"`
	PlannerURL      string        `env:"FEED_PLANNER_URL"`
	DishesURL       string        `env:"FEED_DISHES_URL"`
	RestaurantsURL  string        `env:"FEED_RESTAURANTS_URL"`
}

type ChatConfig struct {
	WebhookURL string        `env:"CHAT_WEBHOOK_URL"`
	Timeout    time.Duration `env:"CHAT_TIMEOUT" env-default:"20s"`
}

type AuthConfig struct {
	JWTSecret         string        `env:"JWT_SECRET"`
	AdminUsername     string        `env:"ADMIN_USERNAME" env-default:"admin"`
	AdminPasswordHash string        `env:"ADMIN_PASSWORD_HASH"`
	TokenTTL          time.Duration `env:"TOKEN_TTL" env-default:"12h"`
}

// RateConfig limits chat, contact and login requests per client IP.
type RateConfig struct {
	PerMinute float64 `env:"RATE_LIMIT_PER_MINUTE" env-default:"20"`
	Burst     int     `env:"RATE_LIMIT_BURST" env-default:"5"`
}

// Load reads a .env file when present, then the environment.
func Load() (*Config, error) {
	// A missing .env is fine; the process environment is used as is.
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

func (c *Config) normalize() {
	if c.Port != "" && c.Port[0] != ':' && !strings.Contains(c.Port, ":") {
		c.Port = ":" + c.Port
	}
	c.PublicBaseURL = strings.TrimRight(c.PublicBaseURL, "/")
}

// Validate checks values cleanenv cannot check on its own.
func (c *Config) Validate() error {
	var errs []error

	for name, raw := range map[string]string{
		"FEED_HOME_URL":         c.Feeds.HomeURL,
		"FEED_DESTINATIONS_URL": c.Feeds.DestinationsURL,
		"FEED_ACTIVITIES_URL":   c.Feeds.ActivitiesURL,
		"FEED_PLANNER_URL":      c.Feeds.PlannerURL,
		"FEED_DISHES_URL":       c.Feeds.DishesURL,
		"FEED_RESTAURANTS_URL":  c.Feeds.RestaurantsURL,
		"CHAT_WEBHOOK_URL":      c.Chat.WebhookURL,
		"PUBLIC_BASE_URL":       c.PublicBaseURL,
	} {
		if raw == "" {
			continue
		}
		u, err := url.Parse(raw)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, fmt.Errorf("%s: not an http(s) URL: %q", name, raw))
		}
	}

	if c.Feeds.Timeout <= 0 {
		errs = append(errs, errors.New("FEED_TIMEOUT must be positive"))
	}
	if c.Chat.Timeout <= 0 {
		errs = append(errs, errors.New("CHAT_TIMEOUT must be positive"))
	}
	if c.Rate.PerMinute <= 0 || c.Rate.Burst < 1 {
		errs = append(errs, errors.New("RATE_LIMIT_PER_MINUTE and RATE_LIMIT_BURST must be positive"))
	}
	if c.Redis.CacheTTL < 0 {
		errs = append(errs, errors.New("CACHE_TTL must not be negative"))
	}
	if c.Auth.AdminPasswordHash != "" && len(c.Auth.JWTSecret) < 16 {
		errs = append(errs, errors.New("JWT_SECRET must be at least 16 characters when admin login is enabled"))
	}

	return errors.Join(errs...)
}

// AdminEnabled reports whether admin login is configured.
func (c *Config) AdminEnabled() bool {
	return c.Auth.AdminPasswordHash != "" && c.Auth.JWTSecret != ""
}
