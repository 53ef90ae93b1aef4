package pages

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"
)

// ConsentHelper dismisses the privacy consent dialog some regions show on
// first visit.
type ConsentHelper struct {
	Base
	domain string
}

// NewConsentHelper returns a helper for page. domain scopes the consent cookie.
func NewConsentHelper(page playwright.Page, domain string, logger *zap.Logger) *ConsentHelper {
	return &ConsentHelper{Base: newBase(page, logger, "consent"), domain: domain}
}

func (c *ConsentHelper) ConsentButton() playwright.Locator {
	return c.Page.Locator(`button:has-text("Consent")`)
}

// Modal is the consent dialog itself, not the site's own modals.
func (c *ConsentHelper) Modal() playwright.Locator {
	return c.Page.Locator(`.fc-consent-root, [role="dialog"]:has(button:has-text("Consent"))`)
}

// DismissConsentModal clicks the consent button if it shows up within a few
// seconds and reports whether it did. It never fails.
func (c *ConsentHelper) DismissConsentModal() bool {
	c.pause(consentSettle)

	button := c.ConsentButton()
	if !c.visibleWithin(button, visibleTimeout) {
		c.logger.Debug("no consent modal found")
		return false
	}
	if err := button.Click(); err != nil {
		c.logger.Debug("consent button not clickable", zap.Error(err))
		return false
	}
	c.logger.Info("consent modal dismissed")
	c.pause(shortPause)
	return true
}

// SetConsentCookies pre-grants consent so the dialog is not shown.
func (c *ConsentHelper) SetConsentCookies() error {
	err := c.Page.Context().AddCookies([]playwright.OptionalCookie{{
		Name:   "consent",
		Value:  "granted",
		Domain: playwright.String(c.domain),
		Path:   playwright.String("/"),
	}})
	if err != nil {
		return fmt.Errorf("setting consent cookie: %w", err)
	}
	return nil
}

// IsConsentModalVisible reports whether the consent dialog is currently shown.
func (c *ConsentHelper) IsConsentModalVisible() bool {
	return c.visibleWithin(c.Modal().First(), visibleTimeout/3)
}

// NavigateWithConsentHandling navigates to url and dismisses the consent
// dialog. A dialog that survives dismissal is logged, not returned.
func (c *ConsentHelper) NavigateWithConsentHandling(url string) error {
	if err := c.goTo(url); err != nil {
		return err
	}
	if !c.DismissConsentModal() && c.IsConsentModalVisible() {
		c.logger.Warn("consent dialog still shown", zap.String("url", url))
	}
	return nil
}
