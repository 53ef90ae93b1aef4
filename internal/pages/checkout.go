package pages

import (
	"errors"
	"fmt"
	"strings"

	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"

	"github.com/adyen/ecommerce-e2e/internal/downloads"
	"github.com/adyen/ecommerce-e2e/internal/fixtures"
)

// CheckoutPage spans /checkout, /payment and the /payment_done confirmation.
type CheckoutPage struct {
	Base
}

func NewCheckoutPage(page playwright.Page, logger *zap.Logger) *CheckoutPage {
	return &CheckoutPage{Base: newBase(page, logger, "checkout")}
}

func (c *CheckoutPage) AddressSection() playwright.Locator {
	return c.Page.Locator(".checkout-information")
}

func (c *CheckoutPage) PlaceOrderButton() playwright.Locator {
	return c.Page.GetByRole(*playwright.AriaRoleLink, playwright.PageGetByRoleOptions{Name: "Place Order"})
}

func (c *CheckoutPage) OrderConfirmation() playwright.Locator {
	return c.Page.Locator(".order-confirmation")
}

func (c *CheckoutPage) DeliveryAddressSection() playwright.Locator {
	return c.Page.Locator("#address_delivery")
}

func (c *CheckoutPage) BillingAddressSection() playwright.Locator {
	return c.Page.Locator("#address_invoice")
}

func (c *CheckoutPage) OrderReviewSection() playwright.Locator {
	return c.Page.Locator("#cart_info")
}

func (c *CheckoutPage) CommentTextArea() playwright.Locator {
	return c.Page.Locator(`textarea[name="message"]`)
}

func (c *CheckoutPage) payField(name string) playwright.Locator {
	return c.Page.Locator(`input[data-qa="` + name + `"]`)
}

func (c *CheckoutPage) NameOnCardInput() playwright.Locator { return c.payField("name-on-card") }
func (c *CheckoutPage) CardNumberInput() playwright.Locator { return c.payField("card-number") }
func (c *CheckoutPage) CVCInput() playwright.Locator { return c.payField("cvc") }
func (c *CheckoutPage) ExpiryMonthInput() playwright.Locator { return c.payField("expiry-month") }
func (c *CheckoutPage) ExpiryYearInput() playwright.Locator { return c.payField("expiry-year") }

func (c *CheckoutPage) PayAndConfirmButton() playwright.Locator {
	return c.Page.Locator(`button[data-qa="pay-button"]`)
}

func (c *CheckoutPage) OrderSuccessMessage() playwright.Locator {
	return c.Page.Locator(`h2[data-qa="order-placed"]`)
}

func (c *CheckoutPage) DownloadInvoiceButton() playwright.Locator {
	return c.Page.Locator(`a[href*="download_invoice"]`)
}

func (c *CheckoutPage) ContinueButton() playwright.Locator {
	return c.Page.Locator(`a[data-qa="continue-button"]`)
}

func (c *CheckoutPage) NavigateToCheckout() error {
	return c.goTo("/checkout")
}

func (c *CheckoutPage) IsCheckoutPageLoaded() bool {
	return c.visible(c.AddressSection()) && c.visible(c.PlaceOrderButton())
}

func (c *CheckoutPage) PlaceOrder() error {
	return c.click(c.PlaceOrderButton(), "place order")
}

func (c *CheckoutPage) IsOrderConfirmed() bool {
	return c.visible(c.OrderConfirmation())
}

func (c *CheckoutPage) GetDeliveryAddress() string {
	return c.text(c.DeliveryAddressSection())
}

func (c *CheckoutPage) GetBillingAddress() string {
	return c.text(c.BillingAddressSection())
}

func (c *CheckoutPage) EnterComment(comment string) error {
	return c.fill(c.CommentTextArea(), comment, "order comment")
}

func (c *CheckoutPage) FillPaymentDetails(p fixtures.PaymentData) error {
	steps := []struct {
		loc   playwright.Locator
		value string
		what  string
	}{
		{c.NameOnCardInput(), p.NameOnCard, "name on card"},
		{c.CardNumberInput(), p.CardNumber, "card number"},
		{c.CVCInput(), p.CVC, "cvc"},
		{c.ExpiryMonthInput(), p.ExpirationMonth, "expiry month"},
		{c.ExpiryYearInput(), p.ExpirationYear, "expiry year"},
	}
	for _, s := range steps {
		if err := c.fill(s.loc, s.value, s.what); err != nil {
			return err
		}
	}
	return nil
}

func (c *CheckoutPage) ConfirmPayment() error {
	return c.click(c.PayAndConfirmButton(), "pay and confirm")
}

func (c *CheckoutPage) GetOrderSuccessMessage() string {
	return c.text(c.OrderSuccessMessage())
}

// IsOrderSuccessful waits for the order-placed heading. Landing on
// /payment_done/ also counts as success.
func (c *CheckoutPage) IsOrderSuccessful() bool {
	err := c.Page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State:   playwright.LoadStateDomcontentloaded,
		Timeout: playwright.Float(float64(sectionTimeout.Milliseconds())),
	})
	if err == nil && c.visibleWithin(c.OrderSuccessMessage(), sectionTimeout) {
		return true
	}
	return strings.Contains(c.Page.URL(), "/payment_done/")
}

// DownloadInvoice clicks the invoice link, saves the file into dir and
// returns its path.
func (c *CheckoutPage) DownloadInvoice(dir *downloads.Dir) (string, error) {
	if err := dir.Ensure(); err != nil {
		return "", err
	}
	download, err := c.Page.ExpectDownload(func() error {
		return c.DownloadInvoiceButton().Click()
	})
	if err != nil {
		return "", fmt.Errorf("waiting for invoice download: %w", err)
	}

	name := download.SuggestedFilename()
	if name == "" {
		return "", errors.New("download failed: no filename suggested")
	}
	path := dir.Join(name)
	if err := download.SaveAs(path); err != nil {
		return "", fmt.Errorf("saving invoice to %s: %w", path, err)
	}
	c.logger.Info("invoice downloaded", zap.String("path", path))
	return path, nil
}

func (c *CheckoutPage) ClickContinueAfterOrder() error {
	return c.click(c.ContinueButton(), "continue button")
}

// VerifyAddressDetails checks the delivery address carries name, street and
// city, and the billing address carries the name.
func (c *CheckoutPage) VerifyAddressDetails(addr fixtures.AddressInfo) bool {
	delivery := c.GetDeliveryAddress()
	billing := c.GetBillingAddress()
	for _, part := range []string{addr.FirstName, addr.LastName, addr.Address, addr.City} {
		if !strings.Contains(delivery, part) {
			return false
		}
	}
	return strings.Contains(billing, addr.FirstName) && strings.Contains(billing, addr.LastName)
}

func (c *CheckoutPage) GetOrderTotal() string {
	return c.text(c.Page.Locator(".cart_total_price").Last())
}

func (c *CheckoutPage) GetOrderItems() []string {
	return c.allTexts(c.Page.Locator("#cart_info_table .cart_description h4"))
}

func (c *CheckoutPage) IsPaymentSectionVisible() bool {
	return c.visible(c.NameOnCardInput()) && c.visible(c.CardNumberInput())
}

func (c *CheckoutPage) WaitForOrderCompletion() error {
	done := c.Page.Locator(".alert-success, .order-placed, " + `h2[data-qa="order-placed"]`).First()
	if err := c.waitVisible(done, sectionTimeout); err != nil {
		return fmt.Errorf("waiting for order completion: %w", err)
	}
	return nil
}

func (c *CheckoutPage) AssertCheckoutPageLoaded() error {
	if !c.IsCheckoutPageLoaded() {
		return errors.New("checkout page not loaded: address section or place order button not visible")
	}
	return nil
}

func (c *CheckoutPage) AssertAddressDetailsMatch(addr fixtures.AddressInfo) error {
	if !c.visible(c.DeliveryAddressSection()) || !c.visible(c.BillingAddressSection()) {
		return errors.New("address sections not visible on checkout page")
	}
	sections := []struct{ kind, text string }{
		{"delivery", c.GetDeliveryAddress()},
		{"billing", c.GetBillingAddress()},
	}
	for _, s := range sections {
		if !strings.Contains(s.text, addr.FirstName) || !strings.Contains(s.text, addr.LastName) {
			return fmt.Errorf("%s address missing expected name: %s %s", s.kind, addr.FirstName, addr.LastName)
		}
	}
	return nil
}

func (c *CheckoutPage) AddCommentAndPlaceOrder(comment string) error {
	if err := c.EnterComment(comment); err != nil {
		return err
	}
	return c.PlaceOrder()
}

func (c *CheckoutPage) CompletePayment(p fixtures.PaymentData) error {
	if err := c.FillPaymentDetails(p); err != nil {
		return err
	}
	return c.ConfirmPayment()
}

func (c *CheckoutPage) AssertOrderSuccessful() error {
	if !c.IsOrderSuccessful() {
		return errors.New("order success message not visible: order may have failed")
	}
	return nil
}

// AssertInvoiceDownloaded downloads the invoice and checks a non-empty file
// landed in dir.
func (c *CheckoutPage) AssertInvoiceDownloaded(dir *downloads.Dir) error {
	path, err := c.DownloadInvoice(dir)
	if err != nil {
		return fmt.Errorf("invoice download assertion failed: %w", err)
	}
	if !dir.Verify(path) {
		return fmt.Errorf("invoice download assertion failed: %s missing or empty", path)
	}
	return nil
}
