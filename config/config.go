// Package config loads the Vastra runtime configuration from the
// environment. The resulting Config is passed by value into the server
// wiring; nothing in the application reads the environment directly.
package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env  string `env:"APP_ENV" env-default:"local"`
	Addr string `env:"APP_ADDR" env-default:":8080"`

	// StaticDir holds the pre-built front-end served on unmatched routes.
	StaticDir string `env:"STATIC_DIR" env-default:"public"`

	HTTP     HTTPConfig
	Mongo    MongoConfig
	JWT      JWTConfig
	Razorpay RazorpayConfig
	SMTP     SMTPConfig
}

type HTTPConfig struct {
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"30s"`
	IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI" env-default:"mongodb://localhost:27017"`
	Database string `env:"MONGO_DB" env-default:"vastra"`
}

type JWTConfig struct {
	Secret string        `env:"JWT_SECRET" env-default:"change-me-in-production"`
	TTL    time.Duration `env:"JWT_TTL" env-default:"168h"` // 7 days
}

type RazorpayConfig struct {
	KeyID     string `env:"RAZORPAY_KEY_ID"`
	KeySecret string `env:"RAZORPAY_KEY_SECRET"`
	BaseURL   string `env:"RAZORPAY_BASE_URL" env-default:"https://api.razorpay.com"`
}

type SMTPConfig struct {
	Host     string `env:"MAIL_HOST" env-default:"smtp.gmail.com"`
	Port     string `env:"MAIL_PORT" env-default:"587"`
	Username string `env:"MAIL_USERNAME"`
	Password string `env:"MAIL_PASSWORD"`
	From     string `env:"MAIL_FROM" env-default:"orders@vastra.shop"`
	FromName string `env:"MAIL_FROM_NAME" env-default:"Vastra"`
}

// Load reads configuration from the environment, applying defaults for
// anything unset.
func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: read env: %w", err)
	}
	return cfg, nil
}

// IsProduction reports whether the app runs with production settings.
func (c Config) IsProduction() bool {
	return c.Env == "production" || c.Env == "prod"
}
