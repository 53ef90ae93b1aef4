package suite

import (
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/adyen/ecommerce-e2e/internal/downloads"
	"github.com/adyen/ecommerce-e2e/internal/pages"
)

// Pages bundles one instance of every page object, all bound to the same
// browser page.
type Pages struct {
	Page      playwright.Page
	Consent   *pages.ConsentHelper
	Home      *pages.HomePage
	Login     *pages.LoginPage
	Signup    *pages.SignupPage
	Products  *pages.ProductCatalogPage
	Product   *pages.ProductPage
	Cart      *pages.CartPage
	Checkout  *pages.CheckoutPage
	Contact   *pages.ContactPage
	TestCases *pages.TestCasesPage
	Downloads *downloads.Dir
}

// NewPages builds the page objects over page.
func NewPages(page playwright.Page, host string, dir *downloads.Dir, logger *zap.Logger) *Pages {
	consent := pages.NewConsentHelper(page, host, logger)
	return &Pages{
		Page:      page,
		Consent:   consent,
		Home:      pages.NewHomePage(page, consent, logger),
		Login:     pages.NewLoginPage(page, logger),
		Signup:    pages.NewSignupPage(page, logger),
		Products:  pages.NewProductCatalogPage(page, consent, logger),
		Product:   pages.NewProductPage(page, logger),
		Cart:      pages.NewCartPage(page, logger),
		Checkout:  pages.NewCheckoutPage(page, logger),
		Contact:   pages.NewContactPage(page, consent, logger),
		TestCases: pages.NewTestCasesPage(page, logger),
		Downloads: dir,
	}
}

// Run gives fn a fresh browser context and page. Downloads go to a
// subdirectory owned by the test, removed when the test ends.
func (e *Env) Run(t *testing.T, fn func(t *testing.T, p *Pages)) {
	t.Helper()

	dir := scopeDownloads(t, e.Downloads)

	ctx, err := e.Browser.NewContext(playwright.BrowserNewContextOptions{
		BaseURL:         playwright.String(e.Site.BaseURL),
		AcceptDownloads: playwright.Bool(true),
	})
	require.NoError(t, err, "failed to create browser context")
	t.Cleanup(func() {
		if err := ctx.Close(); err != nil {
			e.Logger.Warn("closing browser context", zap.Error(err))
		}
	})
	ctx.SetDefaultTimeout(e.BrowserCfg.TimeoutMillis())

	page, err := ctx.NewPage()
	require.NoError(t, err, "failed to open page")

	logger := e.Logger.With(zap.String("test", t.Name()))
	p := NewPages(page, e.Site.Host(), dir, logger)
	if err := p.Consent.SetConsentCookies(); err != nil {
		logger.Warn("pre-granting consent", zap.Error(err))
	}
	fn(t, p)
}

// scopeDownloads gives t its own empty subdirectory of root, removed when t
// ends however it ends. Parallel tests never see each other's files.
func scopeDownloads(t *testing.T, root *downloads.Dir) *downloads.Dir {
	t.Helper()

	dir := root.Sub(t.Name())
	require.NoError(t, dir.Ensure(), "failed to create downloads directory")
	dir.CleanupAll()
	t.Cleanup(dir.Remove)
	return dir
}
