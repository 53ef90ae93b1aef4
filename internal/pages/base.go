// Package pages models the storefront's pages as page objects over a
// playwright.Page.
//
// Locator accessors are methods, evaluated on every call, so a page object
// never holds stale DOM references. Action methods return an error. Query
// methods never fail: an element that is absent or unreadable yields a safe
// default (false, "", 0, nil) and a log entry. Assert methods return an error
// describing the expected and actual state.
package pages

import (
	"fmt"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"
)

// Bounded waits used across pages
const (
	modalTimeout   = 5 * time.Second
	sectionTimeout = 10 * time.Second
	visibleTimeout = 3 * time.Second
	shortPause     = 500 * time.Millisecond
	expandPause    = time.Second
	consentSettle  = time.Second
)

// Base carries the browser page and the helpers every page object shares.
type Base struct {
	Page   playwright.Page
	logger *zap.Logger
}

func newBase(page playwright.Page, logger *zap.Logger, name string) Base {
	if logger == nil {
		logger = zap.NewNop()
	}
	return Base{Page: page, logger: logger.Named(name)}
}

// Locator is shorthand for Page.Locator.
func (b Base) Locator(selector string) playwright.Locator {
	return b.Page.Locator(selector)
}

// SafeClick waits for selector to be visible, then clicks it.
func (b Base) SafeClick(selector string) error {
	loc := b.Page.Locator(selector)
	if err := loc.WaitFor(playwright.LocatorWaitForOptions{State: playwright.WaitForSelectorStateVisible}); err != nil {
		return fmt.Errorf("waiting for %s: %w", selector, err)
	}
	if err := loc.Click(); err != nil {
		return fmt.Errorf("clicking %s: %w", selector, err)
	}
	return nil
}

// TrimmedText returns the trimmed text of the first match. The boolean is
// false when nothing matches.
func (b Base) TrimmedText(selector string) (string, bool) {
	loc := b.Page.Locator(selector).First()
	if b.count(loc) == 0 {
		return "", false
	}
	text, err := loc.TextContent()
	if err != nil {
		b.logger.Debug("text unavailable", zap.String("selector", selector), zap.Error(err))
		return "", false
	}
	return strings.TrimSpace(text), true
}

// ClickAndWaitForLoad clicks selector and waits for the resulting document to load.
func (b Base) ClickAndWaitForLoad(selector string) error {
	if err := b.Page.Locator(selector).Click(); err != nil {
		return fmt.Errorf("clicking %s: %w", selector, err)
	}
	return b.waitForLoad()
}

func (b Base) goTo(path string) error {
	if _, err := b.Page.Goto(path); err != nil {
		return fmt.Errorf("navigating to %s: %w", path, err)
	}
	return nil
}

func (b Base) waitForLoad() error {
	err := b.Page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State: playwright.LoadStateDomcontentloaded,
	})
	if err != nil {
		return fmt.Errorf("waiting for page load: %w", err)
	}
	return nil
}

func (b Base) pause(d time.Duration) {
	b.Page.WaitForTimeout(float64(d / time.Millisecond))
}

func (b Base) click(loc playwright.Locator, what string) error {
	if err := loc.Click(); err != nil {
		return fmt.Errorf("clicking %s: %w", what, err)
	}
	return nil
}

func (b Base) fill(loc playwright.Locator, value, what string) error {
	if err := loc.Fill(value); err != nil {
		return fmt.Errorf("filling %s: %w", what, err)
	}
	return nil
}

func (b Base) selectOption(loc playwright.Locator, value, what string) error {
	_, err := loc.SelectOption(playwright.SelectOptionValues{ValuesOrLabels: &[]string{value}})
	if err != nil {
		return fmt.Errorf("selecting %q in %s: %w", value, what, err)
	}
	return nil
}

func (b Base) waitVisible(loc playwright.Locator, timeout time.Duration) error {
	return loc.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(float64(timeout / time.Millisecond)),
	})
}

// visible reports whether loc is currently visible; errors count as hidden.
func (b Base) visible(loc playwright.Locator) bool {
	ok, err := loc.IsVisible()
	if err != nil {
		b.logger.Debug("visibility check failed", zap.Error(err))
		return false
	}
	return ok
}

// visibleWithin waits up to timeout for loc to become visible.
func (b Base) visibleWithin(loc playwright.Locator, timeout time.Duration) bool {
	return b.waitVisible(loc, timeout) == nil
}

func (b Base) count(loc playwright.Locator) int {
	n, err := loc.Count()
	if err != nil {
		b.logger.Debug("count failed", zap.Error(err))
		return 0
	}
	return n
}

// text returns the raw text content of loc, or "" when it is absent.
func (b Base) text(loc playwright.Locator) string {
	if b.count(loc) == 0 {
		return ""
	}
	s, err := loc.TextContent()
	if err != nil {
		b.logger.Debug("text unavailable", zap.Error(err))
		return ""
	}
	return s
}

func (b Base) trimmed(loc playwright.Locator) string {
	return strings.TrimSpace(b.text(loc))
}

func (b Base) inputValue(loc playwright.Locator) string {
	if b.count(loc) == 0 {
		return ""
	}
	v, err := loc.InputValue()
	if err != nil {
		b.logger.Debug("input value unavailable", zap.Error(err))
		return ""
	}
	return v
}

func (b Base) attribute(loc playwright.Locator, name string) string {
	if b.count(loc) == 0 {
		return ""
	}
	v, err := loc.GetAttribute(name)
	if err != nil {
		b.logger.Debug("attribute unavailable", zap.String("attribute", name), zap.Error(err))
		return ""
	}
	return v
}

func (b Base) allTexts(loc playwright.Locator) []string {
	texts, err := loc.AllTextContents()
	if err != nil {
		b.logger.Debug("texts unavailable", zap.Error(err))
		return nil
	}
	return texts
}
