package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adyen/ecommerce-e2e/internal/fixtures"
)

type fakeCart struct {
	loaded     bool
	count      int
	quantities map[int]string
	prices     map[int]string
}

func (c fakeCart) IsCartPageLoaded() bool           { return c.loaded }
func (c fakeCart) GetCartItemsCount() int           { return c.count }
func (c fakeCart) IsProductInCart(id int) bool      { return c.quantities[id] != "" }
func (c fakeCart) GetProductQuantity(id int) string { return c.quantities[id] }
func (c fakeCart) GetProductPrice(id int) string    { return c.prices[id] }

func twoItemCart() fakeCart {
	return fakeCart{
		loaded:     true,
		count:      2,
		quantities: map[int]string{1: "1", 2: "1"},
		prices:     map[int]string{1: "Rs. 500", 2: "Rs. 400"},
	}
}

func TestValidateCartState(t *testing.T) {
	expected := CartExpectations(fixtures.CartProducts())

	testCases := []struct {
		name      string
		cart      fakeCart
		expectErr string
	}{
		{name: "matches", cart: twoItemCart()},
		{name: "not loaded", cart: fakeCart{}, expectErr: "cart page not loaded"},
		{
			name:      "count mismatch",
			cart:      func() fakeCart { c := twoItemCart(); c.count = 3; return c }(),
			expectErr: "expected 2 items in cart, found 3",
		},
		{
			name:      "missing product",
			cart:      fakeCart{loaded: true, count: 2, quantities: map[int]string{1: "1", 7: "1"}},
			expectErr: "product 2",
		},
		{
			name:      "quantity mismatch",
			cart:      func() fakeCart { c := twoItemCart(); c.quantities[2] = "3"; return c }(),
			expectErr: "quantity mismatch",
		},
		{
			name:      "price mismatch",
			cart:      func() fakeCart { c := twoItemCart(); c.prices[1] = "Rs. 499"; return c }(),
			expectErr: "price mismatch",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateCartState(tc.cart, expected)
			if tc.expectErr == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrAssertion)
			assert.Contains(t, err.Error(), tc.expectErr)
		})
	}
}

func TestValidateCartState_PriceOptional(t *testing.T) {
	cart := fakeCart{loaded: true, count: 1, quantities: map[int]string{1: "4"}}
	err := ValidateCartState(cart, []ExpectedCartProduct{{ProductID: 1, Name: "Blue Top", Quantity: 4}})
	assert.NoError(t, err)
}

type fakeSearch struct {
	visible bool
	header  string
	names   []string
}

func (s fakeSearch) IsSearchResultsVisible() bool { return s.visible }
func (s fakeSearch) GetSearchResultsText() string { return s.header }
func (s fakeSearch) GetProductCount() int         { return len(s.names) }
func (s fakeSearch) GetProductName(i int) string  { return s.names[i] }

func TestValidateSearchResults(t *testing.T) {
	tshirts := fakeSearch{
		visible: true,
		header:  "SEARCHED PRODUCTS",
		names:   []string{"Men Tshirt", "Pure Cotton Neon Green Tshirt", "Green Side Placket Detail T-Shirt"},
	}
	full := SearchExpectations{ShouldHaveResults: true, MinimumResults: 3, ShouldContainTerm: true}

	testCases := []struct {
		name      string
		view      fakeSearch
		term      string
		exp       SearchExpectations
		expectErr string
	}{
		{name: "full match", view: tshirts, term: "TSHIRT", exp: full},
		{name: "header in DOM case", view: fakeSearch{visible: true, header: "Searched Products", names: tshirts.names}, term: "tshirt", exp: full},
		{name: "invisible", view: fakeSearch{}, term: "tshirt", exp: full, expectErr: "no search results found"},
		{name: "bad header", view: fakeSearch{visible: true, header: "ALL PRODUCTS", names: tshirts.names}, term: "tshirt", exp: full, expectErr: "header"},
		{name: "too few", view: fakeSearch{visible: true, header: "SEARCHED PRODUCTS", names: tshirts.names[:1]}, term: "tshirt", exp: full, expectErr: "at least 3"},
		{name: "term absent", view: tshirts, term: "dress", exp: full, expectErr: "no products found containing"},
		{name: "expected none and none shown", view: fakeSearch{}, term: "zzz", exp: SearchExpectations{}},
		{name: "expected none but shown", view: tshirts, term: "zzz", exp: SearchExpectations{}, expectErr: "expected no results"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateSearchResults(tc.view, tc.term, tc.exp)
			if tc.expectErr == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrAssertion)
			assert.Contains(t, err.Error(), tc.expectErr)
		})
	}
}

type fakeOrder struct {
	successful bool
	items      []string
	delivery   string
	billing    string
}

func (o fakeOrder) IsOrderSuccessful() bool    { return o.successful }
func (o fakeOrder) GetOrderItems() []string    { return o.items }
func (o fakeOrder) GetDeliveryAddress() string { return o.delivery }
func (o fakeOrder) GetBillingAddress() string  { return o.billing }

func TestValidateCheckoutComplete(t *testing.T) {
	addr := fixtures.AddressFor(fixtures.UserData{Name: "Test Automation User 1-abcdef"})
	order := fakeOrder{
		successful: true,
		items:      []string{"Blue Top Women > Tops", "Men Tshirt Men > Tshirts"},
		delivery:   "Mr. Test Automation 123 Test Street",
		billing:    "Mr. Test Automation 123 Test Street",
	}

	assert.NoError(t, ValidateCheckoutComplete(order, OrderExpectations{
		ExpectedItems:   []string{"Blue Top", "Men Tshirt"},
		DeliveryAddress: &addr,
		BillingAddress:  &addr,
	}))

	failed := order
	failed.successful = false
	assert.ErrorIs(t, ValidateCheckoutComplete(failed, OrderExpectations{}), ErrAssertion)

	err := ValidateCheckoutComplete(order, OrderExpectations{ExpectedItems: []string{"Stylish Dress"}})
	require.ErrorIs(t, err, ErrAssertion)
	assert.Contains(t, err.Error(), `"Stylish Dress"`)

	wrongBilling := order
	wrongBilling.billing = "Mrs. Jane Doe"
	err = ValidateCheckoutComplete(wrongBilling, OrderExpectations{BillingAddress: &addr})
	require.ErrorIs(t, err, ErrAssertion)
	assert.Contains(t, err.Error(), "billing address")

	// Addresses are not read unless expected.
	noAddr := order
	noAddr.delivery, noAddr.billing = "", ""
	assert.NoError(t, ValidateCheckoutComplete(noAddr, OrderExpectations{ExpectedItems: []string{"Blue Top"}}))
}

type fakeFooter struct{ section, input, button bool }

func (f fakeFooter) IsSubscriptionSectionVisible() bool { return f.section }
func (f fakeFooter) IsSubscriptionInputVisible() bool   { return f.input }
func (f fakeFooter) IsSubscribeButtonVisible() bool     { return f.button }

func TestAssertSubscriptionVisible(t *testing.T) {
	assert.NoError(t, AssertSubscriptionVisible(fakeFooter{true, true, true}))

	err := AssertSubscriptionVisible(fakeFooter{false, true, true})
	require.ErrorIs(t, err, ErrAssertion)
	assert.Contains(t, err.Error(), "SUBSCRIPTION section")

	assert.ErrorContains(t, AssertSubscriptionVisible(fakeFooter{true, false, true}), "email input")
	assert.ErrorContains(t, AssertSubscriptionVisible(fakeFooter{true, true, false}), "subscribe button")
}
