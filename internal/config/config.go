package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	defaultPort     = "9001"
	defaultLogLevel = "info"
)

// Config holds process settings. Twitch credentials are not part of it,
// the client reads them from the environment on every token request.
type Config struct {
	Port          string
	DebugAddr     string
	LogLevel      string
	TwitchIDHost  string
	TwitchAPIHost string

	// CORSAllowedOrigins is empty when any origin is allowed.
	CORSAllowedOrigins []string
}

// Load reads .env when present and builds a Config from the environment.
func Load() *Config {
	// a missing .env is fine, the environment may be set directly
	_ = godotenv.Load()

	return FromEnv()
}

func FromEnv() *Config {
	return &Config{
		Port:          getEnv("PORT", defaultPort),
		DebugAddr:     os.Getenv("DEBUG_ADDR"),
		LogLevel:      getEnv("LOG_LEVEL", defaultLogLevel),
		TwitchIDHost:  os.Getenv("TWITCH_ID_HOST"),
		TwitchAPIHost: os.Getenv("TWITCH_API_HOST"),

		CORSAllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
	}
}

func (c *Config) ConfigureLogging() error {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return errors.Wrap(err, "LOG_LEVEL")
	}

	logrus.SetLevel(level)
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func splitList(raw string) []string {
	var values []string
	for _, value := range strings.Split(raw, ",") {
		if value = strings.TrimSpace(value); value != "" {
			values = append(values, value)
		}
	}
	return values
}
