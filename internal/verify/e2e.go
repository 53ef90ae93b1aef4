package verify

import (
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/adyen/ecommerce-e2e/internal/fixtures"
)

// CartState is the cart view ValidateCartState reads.
type CartState interface {
	IsCartPageLoaded() bool
	GetCartItemsCount() int
	IsProductInCart(productID int) bool
	GetProductQuantity(productID int) string
	GetProductPrice(productID int) string
}

// ExpectedCartProduct is one line the cart must contain.
type ExpectedCartProduct struct {
	ProductID     int
	Name          string
	Quantity      int
	ExpectedPrice string
}

// CartExpectations converts cart fixtures into expected lines.
func CartExpectations(data []fixtures.CartProductData) []ExpectedCartProduct {
	return lo.Map(data, func(d fixtures.CartProductData, _ int) ExpectedCartProduct {
		return ExpectedCartProduct{
			ProductID:     d.ProductID,
			Name:          "product " + strconv.Itoa(d.ProductID),
			Quantity:      d.Quantity,
			ExpectedPrice: d.ExpectedPrice,
		}
	})
}

// ValidateCartState checks the cart holds exactly expected, with matching
// quantities and, where given, prices.
func ValidateCartState(cart CartState, expected []ExpectedCartProduct) error {
	if !cart.IsCartPageLoaded() {
		return failf("cart page not loaded")
	}

	if count := cart.GetCartItemsCount(); count != len(expected) {
		return failf("expected %d items in cart, found %d", len(expected), count)
	}

	for _, want := range expected {
		if !cart.IsProductInCart(want.ProductID) {
			return failf("product %d (%s) not found in cart", want.ProductID, want.Name)
		}
		if got := cart.GetProductQuantity(want.ProductID); got != strconv.Itoa(want.Quantity) {
			return failf("product %s quantity mismatch: expected %d, got %q", want.Name, want.Quantity, got)
		}
		if want.ExpectedPrice != "" {
			if got := cart.GetProductPrice(want.ProductID); got != want.ExpectedPrice {
				return failf("product %s price mismatch: expected %q, got %q", want.Name, want.ExpectedPrice, got)
			}
		}
	}
	return nil
}

// SearchResults is the catalog view ValidateSearchResults reads.
type SearchResults interface {
	IsSearchResultsVisible() bool
	GetSearchResultsText() string
	GetProductCount() int
	GetProductName(index int) string
}

// SearchExpectations configures ValidateSearchResults.
type SearchExpectations struct {
	ShouldHaveResults bool
	MinimumResults    int
	ShouldContainTerm bool
}

// ValidateSearchResults checks the searched-products view against exp.
func ValidateSearchResults(view SearchResults, term string, exp SearchExpectations) error {
	visible := view.IsSearchResultsVisible()

	if !exp.ShouldHaveResults {
		if visible {
			return failf("expected no results for %q but found some", term)
		}
		return nil
	}

	if !visible {
		return failf("no search results found for %q", term)
	}
	if header := view.GetSearchResultsText(); !strings.Contains(strings.ToUpper(header), "SEARCHED PRODUCTS") {
		return failf("search results header not displayed correctly: %q", header)
	}

	count := view.GetProductCount()
	if exp.MinimumResults > 0 && count < exp.MinimumResults {
		return failf("expected at least %d results for %q, got %d", exp.MinimumResults, term, count)
	}

	if exp.ShouldContainTerm {
		needle := strings.ToLower(term)
		names := lo.Times(count, view.GetProductName)
		if !lo.SomeBy(names, func(name string) bool { return strings.Contains(strings.ToLower(name), needle) }) {
			return failf("no products found containing %q in their names: %v", term, names)
		}
	}
	return nil
}

// OrderSummary is the checkout view ValidateCheckoutComplete reads.
type OrderSummary interface {
	IsOrderSuccessful() bool
	GetOrderItems() []string
	GetDeliveryAddress() string
	GetBillingAddress() string
}

// OrderExpectations configures ValidateCheckoutComplete. Nil addresses are
// not checked.
type OrderExpectations struct {
	ExpectedItems   []string
	DeliveryAddress *fixtures.AddressInfo
	BillingAddress  *fixtures.AddressInfo
}

// ValidateCheckoutComplete checks the order succeeded, lists every expected
// item, and that the addresses name the expected person.
func ValidateCheckoutComplete(order OrderSummary, exp OrderExpectations) error {
	if !order.IsOrderSuccessful() {
		return failf("order was not completed successfully")
	}

	items := order.GetOrderItems()
	for _, want := range exp.ExpectedItems {
		if !lo.SomeBy(items, func(item string) bool { return strings.Contains(item, want) }) {
			return failf("expected item %q not found in order %v", want, items)
		}
	}

	if exp.DeliveryAddress != nil {
		if err := addressNames(order.GetDeliveryAddress(), "delivery", exp.DeliveryAddress); err != nil {
			return err
		}
	}
	if exp.BillingAddress != nil {
		if err := addressNames(order.GetBillingAddress(), "billing", exp.BillingAddress); err != nil {
			return err
		}
	}
	return nil
}

func addressNames(text, kind string, want *fixtures.AddressInfo) error {
	for _, part := range []string{want.FirstName, want.LastName} {
		if !strings.Contains(text, part) {
			return failf("%s address missing %q: %q", kind, part, text)
		}
	}
	return nil
}

// SubscriptionFooter is the footer section present on every page.
type SubscriptionFooter interface {
	IsSubscriptionSectionVisible() bool
	IsSubscriptionInputVisible() bool
	IsSubscribeButtonVisible() bool
}

// AssertSubscriptionVisible checks the footer subscription widget is shown.
func AssertSubscriptionVisible(footer SubscriptionFooter) error {
	if !footer.IsSubscriptionSectionVisible() {
		return failf("SUBSCRIPTION section not visible in footer")
	}
	if !footer.IsSubscriptionInputVisible() {
		return failf("subscription email input not visible")
	}
	if !footer.IsSubscribeButtonVisible() {
		return failf("subscribe button not visible")
	}
	return nil
}
