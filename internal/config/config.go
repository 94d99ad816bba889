// Package config reads the service configuration from environment
// variables. Every knob has a default, so an empty environment boots a
// working development server on the builtin catalog.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
)

type Config struct {
	Port            string
	CORSOrigins     []string
	CORSCredentials bool
	CatalogPath     string
	Environment     string
}

// Load reads the environment. CORS_ORIGINS is comma separated; an
// empty value means every origin is allowed. CATALOG_PATH empty means
// the builtin product table.
func Load() *Config {
	return &Config{
		Port:            getEnv("PORT", "8080"),
		CORSOrigins:     splitOrigins(getEnv("CORS_ORIGINS", "")),
		CORSCredentials: getEnvBool("CORS_CREDENTIALS", true),
		CatalogPath:     getEnv("CATALOG_PATH", ""),
		Environment:     getEnv("APP_ENV", "development"),
	}
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// CORS maps the config onto the gin-contrib middleware. Without an
// origin list the server answers every origin, and the CORS spec then
// forbids credentialed requests, so they are forced off.
func (c *Config) CORS() cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:  []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders: []string{"X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}

	if len(c.CORSOrigins) == 0 {
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
		return cfg
	}

	cfg.AllowOrigins = c.CORSOrigins
	cfg.AllowCredentials = c.CORSCredentials
	return cfg
}

func splitOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	var origins []string
	for _, part := range strings.Split(raw, ",") {
		if origin := strings.TrimSpace(part); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultVal
}
