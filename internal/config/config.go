// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	SiteURL    string `env:"FOLIO_SITE_URL" envDefault:"http://localhost:3000"`
	SiteName   string `env:"FOLIO_SITE_NAME" envDefault:"folio"`
	ServerHost string `env:"FOLIO_SERVER_HOST" envDefault:"localhost"`
	ServerPort int    `env:"FOLIO_SERVER_PORT" envDefault:"3000"`
	Env        string `env:"FOLIO_ENV" envDefault:"development"`
	LogLevel   string `env:"FOLIO_LOG_LEVEL" envDefault:"info"`

	// Content configuration
	ContentDir    string `env:"FOLIO_CONTENT_DIR" envDefault:"./content"`
	DefaultLocale string `env:"FOLIO_DEFAULT_LOCALE" envDefault:"en"`

	// Contact form rate limiting
	ContactMaxRequests   int `env:"FOLIO_CONTACT_MAX_REQUESTS" envDefault:"5"`
	ContactWindowMinutes int `env:"FOLIO_CONTACT_WINDOW_MINUTES" envDefault:"60"`

	// SEO configuration
	RobotsDisallowAll bool `env:"FOLIO_ROBOTS_DISALLOW_ALL" envDefault:"false"` // Block all crawlers (for staging sites)
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// ContactWindow returns the contact form rate limit window as a duration.
func (c Config) ContactWindow() time.Duration {
	return time.Duration(c.ContactWindowMinutes) * time.Minute
}

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// Validate the site URL since it is embedded in feeds and sitemaps
	parsed, err := url.Parse(cfg.SiteURL)
	if err != nil {
		return nil, fmt.Errorf("FOLIO_SITE_URL is not a valid URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("FOLIO_SITE_URL must use http or https scheme, got %q", parsed.Scheme)
	}

	if cfg.ContactMaxRequests <= 0 {
		return nil, fmt.Errorf("FOLIO_CONTACT_MAX_REQUESTS must be positive, got %d", cfg.ContactMaxRequests)
	}
	if cfg.ContactWindowMinutes <= 0 {
		return nil, fmt.Errorf("FOLIO_CONTACT_WINDOW_MINUTES must be positive, got %d", cfg.ContactWindowMinutes)
	}

	return cfg, nil
}
