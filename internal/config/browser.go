package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/creasty/defaults"
)

// Supported browser engines
const (
	BrowserChromium = "chromium"
	BrowserFirefox  = "firefox"
	BrowserWebKit   = "webkit"
)

// BrowserConfig holds configuration for the browser driving the suite
type BrowserConfig struct {
	Browser      string        `default:"chromium"`
	Headless     bool          `default:"true"`
	SlowMo       time.Duration `default:"0s"`
	Timeout      time.Duration `default:"30s"`
	DownloadsDir string        `default:"./playwright-downloads"`
}

// LoadBrowserConfig loads browser configuration from environment variables
func LoadBrowserConfig(getenv func(string) string) (*BrowserConfig, error) {
	config := &BrowserConfig{}
	if err := defaults.Set(config); err != nil {
		return nil, fmt.Errorf("failed to apply browser defaults: %w", err)
	}

	overlay(&config.Browser, getenv("BROWSER"))
	overlay(&config.DownloadsDir, getenv("DOWNLOADS_DIR"))

	switch config.Browser {
	case BrowserChromium, BrowserFirefox, BrowserWebKit:
	default:
		return nil, fmt.Errorf("BROWSER must be one of chromium, firefox, webkit, got %q", config.Browser)
	}

	if v := getenv("HEADLESS"); v != "" {
		headless, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid HEADLESS value %q: %w", v, err)
		}
		config.Headless = headless
	}

	if v := getenv("SLOW_MO"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SLOW_MO value %q: %w", v, err)
		}
		config.SlowMo = d
	}

	if v := getenv("ACTION_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid ACTION_TIMEOUT value %q: %w", v, err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("ACTION_TIMEOUT must be positive, got %s", d)
		}
		config.Timeout = d
	}

	return config, nil
}

// TimeoutMillis returns the action timeout in the unit Playwright expects
func (c *BrowserConfig) TimeoutMillis() float64 {
	return float64(c.Timeout / time.Millisecond)
}

// SlowMoMillis returns the slow-motion delay in milliseconds
func (c *BrowserConfig) SlowMoMillis() float64 {
	return float64(c.SlowMo / time.Millisecond)
}
