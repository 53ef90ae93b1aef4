package suite

import (
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/adyen/ecommerce-e2e/internal/storeapi"
)

// APIRequest returns a Playwright request context rooted at the site. It is
// disposed when t ends.
func (e *Env) APIRequest(t *testing.T) playwright.APIRequestContext {
	t.Helper()

	req, err := e.PW.Request.NewContext(playwright.APIRequestNewContextOptions{
		BaseURL: playwright.String(e.Site.BaseURL),
		Timeout: playwright.Float(e.BrowserCfg.TimeoutMillis()),
	})
	require.NoError(t, err, "failed to create API request context")
	t.Cleanup(func() {
		if err := req.Dispose(); err != nil {
			e.Logger.Warn("disposing API request context", zap.Error(err))
		}
	})
	return req
}

// APIClient returns the typed storefront API client for the configured site.
func (e *Env) APIClient() *storeapi.HTTPClient {
	return storeapi.NewClient(e.Site.BaseURL, e.BrowserCfg.Timeout, e.Logger)
}
