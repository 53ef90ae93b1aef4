package pages

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/playwright-community/playwright-go"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/adyen/ecommerce-e2e/internal/fixtures"
)

// CartPage is /view_cart. Rows are addressed by product id.
type CartPage struct {
	Base
}

func NewCartPage(page playwright.Page, logger *zap.Logger) *CartPage {
	return &CartPage{Base: newBase(page, logger, "cart")}
}

func (c *CartPage) CartTable() playwright.Locator {
	return c.Page.Locator("#cart_info_table")
}

func (c *CartPage) CheckoutButton() playwright.Locator {
	return c.Page.Locator(".check_out")
}

func (c *CartPage) RemoveButtons() playwright.Locator {
	return c.Page.Locator(".cart_quantity_delete")
}

func (c *CartPage) CartItems() playwright.Locator {
	return c.Page.Locator("#cart_info_table tbody tr")
}

func (c *CartPage) ProductRow(productID int) playwright.Locator {
	return c.Page.Locator("#product-" + strconv.Itoa(productID))
}

func (c *CartPage) EmptyCartMessage() playwright.Locator {
	return c.Page.Locator("text=Cart is empty!")
}

func (c *CartPage) CheckoutModal() playwright.Locator {
	return c.Page.Locator("#checkoutModal, .modal").First()
}

func (c *CartPage) NavigateTo() error {
	if err := c.goTo("/view_cart"); err != nil {
		return err
	}
	if err := c.waitVisible(c.CartTable(), sectionTimeout); err != nil {
		return fmt.Errorf("waiting for cart table: %w", err)
	}
	return nil
}

// ProceedToCheckout clicks Proceed To Checkout. A guest gets a modal asking
// to log in; its Register / Login link is followed when present.
func (c *CartPage) ProceedToCheckout() error {
	if err := c.click(c.CheckoutButton(), "proceed to checkout"); err != nil {
		return err
	}

	modal := c.CheckoutModal()
	if !c.visibleWithin(modal, visibleTimeout) {
		return nil
	}
	login := modal.Locator(`a[href="/login"], a:has-text("Register / Login")`).First()
	if c.count(login) == 0 {
		return nil
	}
	c.logger.Info("checkout requires login, following modal link")
	return c.click(login, "checkout modal login link")
}

func (c *CartPage) RemoveFirstProduct() error {
	return c.click(c.RemoveButtons().First(), "first remove button")
}

// RemoveProduct deletes the row for productID and waits for the cart to update.
func (c *CartPage) RemoveProduct(productID int) error {
	row := c.ProductRow(productID)
	if err := c.waitVisible(row, modalTimeout); err != nil {
		return fmt.Errorf("product %d row not visible: %w", productID, err)
	}
	btn := row.Locator(".cart_delete a")
	if err := c.waitVisible(btn, visibleTimeout); err != nil {
		return fmt.Errorf("product %d remove button not visible: %w", productID, err)
	}
	if err := c.click(btn, fmt.Sprintf("remove product %d", productID)); err != nil {
		return err
	}
	c.pause(expandPause)
	return nil
}

func (c *CartPage) IsCartVisible() bool {
	return c.visible(c.CartTable())
}

func (c *CartPage) IsCartPageLoaded() bool {
	if err := c.waitForLoad(); err != nil {
		c.logger.Warn("cart page did not load", zap.Error(err))
		return false
	}
	if err := c.waitVisible(c.CartTable(), modalTimeout); err != nil {
		c.logger.Warn("cart table not visible", zap.Error(err))
		return false
	}
	return true
}

// IsProductInCart checks the row without waiting, so a removed row answers
// false immediately.
func (c *CartPage) IsProductInCart(productID int) bool {
	row := c.ProductRow(productID)
	if c.count(row) == 0 {
		return false
	}
	return c.visible(row)
}

// cell waits for the row and then for sel inside it. The row is attached
// but not necessarily visible.
func (c *CartPage) cell(productID int, sel string) (playwright.Locator, bool) {
	row := c.ProductRow(productID)
	attached := func(loc playwright.Locator, timeout float64) error {
		return loc.WaitFor(playwright.LocatorWaitForOptions{
			State:   playwright.WaitForSelectorStateAttached,
			Timeout: playwright.Float(timeout),
		})
	}
	if err := attached(row, float64(modalTimeout.Milliseconds())); err != nil {
		c.logger.Warn("cart row missing", zap.Int("product", productID), zap.Error(err))
		return nil, false
	}
	loc := row.Locator(sel)
	if err := attached(loc, float64(visibleTimeout.Milliseconds())); err != nil {
		c.logger.Warn("cart cell missing", zap.Int("product", productID), zap.String("cell", sel), zap.Error(err))
		return nil, false
	}
	return loc, true
}

// GetProductQuantity reads the quantity button of a row, "0" when missing.
func (c *CartPage) GetProductQuantity(productID int) string {
	if err := c.waitForLoad(); err != nil {
		return "0"
	}
	loc, ok := c.cell(productID, ".cart_quantity button")
	if !ok {
		return "0"
	}
	if q := c.trimmed(loc); q != "" {
		return q
	}
	return "0"
}

// GetCartItemsCount counts rows, 0 when the table is absent or hidden.
func (c *CartPage) GetCartItemsCount() int {
	if c.count(c.CartTable()) == 0 || !c.visible(c.CartTable()) {
		return 0
	}
	return c.count(c.CartItems())
}

func (c *CartPage) IsCartEmpty() bool {
	return c.GetCartItemsCount() == 0 || c.visible(c.EmptyCartMessage())
}

func (c *CartPage) cellText(productID int, sel string) string {
	loc, ok := c.cell(productID, sel)
	if !ok {
		return ""
	}
	return c.trimmed(loc)
}

func (c *CartPage) GetProductPrice(productID int) string {
	return c.cellText(productID, ".cart_price p")
}

func (c *CartPage) GetTotalPrice(productID int) string {
	return c.cellText(productID, ".cart_total_price p")
}

func (c *CartPage) GetProductName(productID int) string {
	return c.cellText(productID, ".cart_description h4 a")
}

// GetAllProductIDs returns the ids of every row, in table order.
func (c *CartPage) GetAllProductIDs() []int {
	if err := c.waitVisible(c.CartTable(), modalTimeout); err != nil {
		c.logger.Warn("cart table not visible", zap.Error(err))
		return nil
	}
	rows, err := c.CartItems().All()
	if err != nil {
		c.logger.Warn("listing cart rows", zap.Error(err))
		return nil
	}
	return lo.FilterMap(rows, func(row playwright.Locator, _ int) (int, bool) {
		return ParseCartRowID(c.attribute(row, "id"))
	})
}

// GetContents reads every row's id, quantity and price, in table order.
func (c *CartPage) GetContents() []fixtures.CartProductData {
	return CartContents(c.GetAllProductIDs(), c.GetProductQuantity, c.GetProductPrice)
}

// AssertProductsInCart checks the cart holds exactly expected.
func (c *CartPage) AssertProductsInCart(expected []fixtures.CartProductData) error {
	return c.checkContents(expected, "")
}

// AssertCartPersistence is AssertProductsInCart after a login.
func (c *CartPage) AssertCartPersistence(expected []fixtures.CartProductData) error {
	return c.checkContents(expected, "cart persistence failed after login: ")
}

func (c *CartPage) checkContents(expected []fixtures.CartProductData, prefix string) error {
	fail := func(format string, args ...any) error {
		return fmt.Errorf(prefix+format, args...)
	}
	if !c.IsCartPageLoaded() {
		return fail("cart page not loaded")
	}
	if n := c.GetCartItemsCount(); n != len(expected) {
		return fail("expected %d items in cart, found %d", len(expected), n)
	}
	for _, want := range expected {
		if !c.IsProductInCart(want.ProductID) {
			return fail("product %d not found in cart", want.ProductID)
		}
		if got := c.GetProductQuantity(want.ProductID); got != strconv.Itoa(want.Quantity) {
			return fail("product %d quantity mismatch: expected %d, got %s", want.ProductID, want.Quantity, got)
		}
		if want.ExpectedPrice == "" {
			continue
		}
		if got := strings.TrimSpace(c.GetProductPrice(want.ProductID)); got != want.ExpectedPrice {
			return fail("product %d price mismatch: expected %s, got %s", want.ProductID, want.ExpectedPrice, got)
		}
	}
	return nil
}

func (c *CartPage) AssertCartPageLoaded() error {
	if !c.IsCartPageLoaded() {
		return fmt.Errorf("cart page not loaded properly")
	}
	return nil
}
