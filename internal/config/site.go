package config

import (
	"fmt"
	"net/url"

	"github.com/creasty/defaults"
)

// SiteConfig holds configuration for the storefront under test
type SiteConfig struct {
	BaseURL       string `default:"https://automationexercise.com"`
	LoginEmail    string `default:"testuser+dario@example.com"`
	LoginPassword string `default:"password123"`
	LoginName     string `default:"Test Automation"`
}

// LoadSiteConfig loads storefront configuration from environment variables
func LoadSiteConfig(getenv func(string) string) (*SiteConfig, error) {
	config := &SiteConfig{}
	if err := defaults.Set(config); err != nil {
		return nil, fmt.Errorf("failed to apply site defaults: %w", err)
	}

	overlay(&config.BaseURL, getenv("SITE_BASE_URL"))
	overlay(&config.LoginEmail, getenv("SITE_LOGIN_EMAIL"))
	overlay(&config.LoginPassword, getenv("SITE_LOGIN_PASSWORD"))
	overlay(&config.LoginName, getenv("SITE_LOGIN_NAME"))

	u, err := url.Parse(config.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("SITE_BASE_URL must be an absolute URL, got %q", config.BaseURL)
	}

	return config, nil
}

// Host returns the host part of the base URL, used to scope cookies
func (c *SiteConfig) Host() string {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}

// overlay replaces dst with value when value is set
func overlay(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
