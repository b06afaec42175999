package config

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config enumerates every deployment knob once at startup. Request handling
// never branches on environment variables directly.
type Config struct {
	Addr        string `yaml:"addr" env:"PYTRAIL_ADDR" env-default:":8080"`
	Environment string `yaml:"environment" env:"PYTRAIL_ENV" env-default:"development"`
	LogFormat   string `yaml:"log_format" env:"PYTRAIL_LOG_FORMAT" env-default:"text"`

	DatabasePath string `yaml:"database_path" env:"PYTRAIL_DB_PATH" env-default:"data/pytrail.db"`
	StaticDir    string `yaml:"static_dir" env:"PYTRAIL_STATIC_DIR" env-default:"web"`

	AllowedOrigins []string `yaml:"allowed_origins" env:"PYTRAIL_ALLOWED_ORIGINS"`

	CookieSecure   bool   `yaml:"cookie_secure" env:"PYTRAIL_COOKIE_SECURE" env-default:"false"`
	CookieSameSite string `yaml:"cookie_samesite" env:"PYTRAIL_COOKIE_SAMESITE" env-default:"lax"`
	CookieDomain   string `yaml:"cookie_domain" env:"PYTRAIL_COOKIE_DOMAIN"`

	SessionStoreKind  string        `yaml:"session_store" env:"PYTRAIL_SESSION_STORE" env-default:"memory"`
	SessionTTL        time.Duration `yaml:"session_ttl" env:"PYTRAIL_SESSION_TTL" env-default:"24h"`
	SessionSigningKey string        `yaml:"session_signing_key" env:"PYTRAIL_SESSION_KEY" env-default:"pytrail-dev-secret"`

	RedisAddr     string `yaml:"redis_addr" env:"PYTRAIL_REDIS_ADDR" env-default:"localhost:6379"`
	RedisPassword string `yaml:"redis_password" env:"PYTRAIL_REDIS_PASSWORD"`
	RedisDB       int    `yaml:"redis_db" env:"PYTRAIL_REDIS_DB" env-default:"0"`
}

// MustLoad reads an optional .env file, then an optional yaml config file
// (PYTRAIL_CONFIG), then environment overrides. Fatals on malformed input.
func MustLoad() *Config {
	_ = godotenv.Load()

	var cfg Config
	if path := os.Getenv("PYTRAIL_CONFIG"); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			log.Fatalf("read config %s: %v", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("read config from env: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}
	return &cfg
}

func (c *Config) Validate() error {
	switch c.SessionStoreKind {
	case "memory", "redis":
	default:
		return fmt.Errorf("unknown session_store %q (want memory or redis)", c.SessionStoreKind)
	}
	switch strings.ToLower(c.CookieSameSite) {
	case "lax", "strict", "none":
	default:
		return fmt.Errorf("unknown cookie_samesite %q (want lax, strict or none)", c.CookieSameSite)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("session_ttl must be positive, got %s", c.SessionTTL)
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("database_path is required")
	}
	return nil
}

// SameSite maps the configured cookie_samesite value onto the http constant.
func (c *Config) SameSite() http.SameSite {
	switch strings.ToLower(c.CookieSameSite) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
