// Package suite launches the browser the scenario tests drive and hands each
// test an isolated context with one instance of every page object.
package suite

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"

	"github.com/adyen/ecommerce-e2e/internal/config"
	"github.com/adyen/ecommerce-e2e/internal/downloads"
	"github.com/adyen/ecommerce-e2e/internal/logging"
)

// Env is the process-wide state shared by every scenario: the Playwright
// runtime, one launched browser, configuration and the downloads directory.
type Env struct {
	PW         *playwright.Playwright
	Browser    playwright.Browser
	Site       *config.SiteConfig
	BrowserCfg *config.BrowserConfig
	Logger     *zap.Logger
	Downloads  *downloads.Dir
}

// Setup loads configuration through getenv, starts Playwright and launches
// the configured browser.
func Setup(getenv func(string) string) (*Env, error) {
	site, err := config.LoadSiteConfig(getenv)
	if err != nil {
		return nil, err
	}
	browserCfg, err := config.LoadBrowserConfig(getenv)
	if err != nil {
		return nil, err
	}
	logCfg, err := config.LoadLoggingConfig(getenv)
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(logCfg)
	if err != nil {
		return nil, err
	}

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	bt, err := browserType(pw, browserCfg.Browser)
	if err != nil {
		pw.Stop()
		return nil, err
	}
	browser, err := bt.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(browserCfg.Headless),
		SlowMo:   playwright.Float(browserCfg.SlowMoMillis()),
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("failed to launch %s: %w", browserCfg.Browser, err)
	}

	logger.Info("browser launched",
		zap.String("browser", browserCfg.Browser),
		zap.Bool("headless", browserCfg.Headless),
		zap.String("base_url", site.BaseURL),
	)

	return &Env{
		PW:         pw,
		Browser:    browser,
		Site:       site,
		BrowserCfg: browserCfg,
		Logger:     logger,
		Downloads:  downloads.NewOS(browserCfg.DownloadsDir, logger),
	}, nil
}

func browserType(pw *playwright.Playwright, name string) (playwright.BrowserType, error) {
	switch name {
	case config.BrowserChromium:
		return pw.Chromium, nil
	case config.BrowserFirefox:
		return pw.Firefox, nil
	case config.BrowserWebKit:
		return pw.WebKit, nil
	}
	return nil, fmt.Errorf("unsupported browser %q", name)
}

// Close releases the browser and the Playwright driver.
func (e *Env) Close() {
	if err := e.Browser.Close(); err != nil {
		e.Logger.Warn("closing browser", zap.Error(err))
	}
	if err := e.PW.Stop(); err != nil {
		e.Logger.Warn("stopping playwright", zap.Error(err))
	}
	_ = e.Logger.Sync()
}
