package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/playwright-community/playwright-go"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	internalcli "github.com/adyen/ecommerce-e2e/internal/cli"
	"github.com/adyen/ecommerce-e2e/internal/config"
	"github.com/adyen/ecommerce-e2e/internal/downloads"
	"github.com/adyen/ecommerce-e2e/internal/fixtures"
	"github.com/adyen/ecommerce-e2e/internal/logging"
	"github.com/adyen/ecommerce-e2e/internal/storeapi"
)

var version = "0.1.0"

func newLogger() (*zap.Logger, error) {
	cfg, err := config.LoadLoggingConfig(os.Getenv)
	if err != nil {
		return nil, err
	}
	return logging.New(cfg)
}

// InstallCommand returns the install command
func InstallCommand() *cli.Command {
	return &cli.Command{
		Name:  "install",
		Usage: "Install the Playwright driver and browsers",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "browser",
				Usage: "browser to install (repeatable); defaults to the configured BROWSER",
			},
		},
		Action: func(c *cli.Context) error {
			logger, err := newLogger()
			if err != nil {
				return err
			}
			defer logger.Sync()

			browsers := c.StringSlice("browser")
			if len(browsers) == 0 {
				browserCfg, err := config.LoadBrowserConfig(os.Getenv)
				if err != nil {
					return err
				}
				browsers = []string{browserCfg.Browser}
			}
			return internalcli.RunInstall(playwright.Install, browsers, logger)
		},
	}
}

// ProbeCommand returns the probe command
func ProbeCommand() *cli.Command {
	return &cli.Command{
		Name:  "probe",
		Usage: "Run the storefront API contract checks and print PASS/FAIL per check",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "base-url",
				Usage: "storefront to probe; defaults to SITE_BASE_URL",
			},
		},
		Action: func(c *cli.Context) error {
			logger, err := newLogger()
			if err != nil {
				return err
			}
			defer logger.Sync()

			site, err := config.LoadSiteConfig(os.Getenv)
			if err != nil {
				return err
			}
			browserCfg, err := config.LoadBrowserConfig(os.Getenv)
			if err != nil {
				return err
			}
			baseURL := site.BaseURL
			if v := c.String("base-url"); v != "" {
				baseURL = v
			}

			client := storeapi.NewClient(baseURL, browserCfg.Timeout, logger)
			creds := fixtures.LoginCredentials{Email: site.LoginEmail, Password: site.LoginPassword}
			fmt.Fprintf(c.App.Writer, "Probing %s\n\n", baseURL)
			_, err = internalcli.RunProbe(c.Context, client, internalcli.ProbeChecks(creds), c.App.Writer, logger)
			return err
		},
	}
}

// ServeFakeCommand returns the serve-fake command
func ServeFakeCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve-fake",
		Usage: "Serve an in-memory emulation of the storefront API",
		Action: func(c *cli.Context) error {
			logger, err := newLogger()
			if err != nil {
				return err
			}
			defer logger.Sync()

			site, err := config.LoadSiteConfig(os.Getenv)
			if err != nil {
				return err
			}
			deps, _, err := internalcli.BuildServerDependencies(config.LoadServerConfig(os.Getenv), site, logger)
			if err != nil {
				return err
			}
			return internalcli.RunServe(deps)
		},
	}
}

// CleanDownloadsCommand returns the clean-downloads command
func CleanDownloadsCommand() *cli.Command {
	return &cli.Command{
		Name:  "clean-downloads",
		Usage: "Delete files left in the downloads directory",
		Action: func(c *cli.Context) error {
			logger, err := newLogger()
			if err != nil {
				return err
			}
			defer logger.Sync()

			browserCfg, err := config.LoadBrowserConfig(os.Getenv)
			if err != nil {
				return err
			}
			dir := downloads.NewOS(browserCfg.DownloadsDir, logger)
			removed := dir.CleanupAll()
			fmt.Fprintf(c.App.Writer, "Removed %d file(s) from %s\n", removed, dir.Path())
			return nil
		},
	}
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	app := &cli.App{
		Name:    "shopcheck",
		Usage:   "Storefront end-to-end suite tooling",
		Version: version,
		Commands: []*cli.Command{
			InstallCommand(),
			ProbeCommand(),
			ServeFakeCommand(),
			CleanDownloadsCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
