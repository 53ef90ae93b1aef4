package cli

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"
)

// Installer downloads the Playwright driver and browsers
type Installer func(opts ...*playwright.RunOptions) error

// RunInstall installs the Playwright driver and the named browsers. An empty
// list installs every browser Playwright supports.
func RunInstall(install Installer, browsers []string, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	opts := &playwright.RunOptions{Browsers: browsers, Verbose: true}

	logger.Info("installing playwright", zap.Strings("browsers", browsers))
	if err := install(opts); err != nil {
		return fmt.Errorf("failed to install playwright: %w", err)
	}
	logger.Info("playwright installed")
	return nil
}
