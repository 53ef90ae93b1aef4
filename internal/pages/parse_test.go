package pages

import (
	"reflect"
	"testing"

	"github.com/adyen/ecommerce-e2e/internal/fixtures"
)

func TestCleanBrandName(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{" (8) Polo", "Polo"},
		{"(6)H&M", "H&M"},
		{"\n  (12)   Allen Solly Junior  ", "Allen Solly Junior"},
		{"Madame", "Madame"},
		{"(3)", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := CleanBrandName(tt.raw); got != tt.want {
			t.Errorf("CleanBrandName(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestParseCartRowID(t *testing.T) {
	tests := []struct {
		rowID  string
		want   int
		wantOK bool
	}{
		{"product-12", 12, true},
		{"product-1", 1, true},
		{"product-", 0, false},
		{"product-abc", 0, false},
		{"cart-12", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseCartRowID(tt.rowID)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseCartRowID(%q) = (%d, %v), want (%d, %v)", tt.rowID, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestStripLabel(t *testing.T) {
	tests := []struct {
		text, label, want string
	}{
		{"Condition: New", "Condition", "New"},
		{" Brand: Polo ", "Brand", "Polo"},
		{"Availability: In Stock", "Brand", "Availability: In Stock"},
		{"", "Brand", ""},
	}

	for _, tt := range tests {
		if got := StripLabel(tt.text, tt.label); got != tt.want {
			t.Errorf("StripLabel(%q, %q) = %q, want %q", tt.text, tt.label, got, tt.want)
		}
	}
}

func TestContainsFold(t *testing.T) {
	if !ContainsFold("Searched Products", "SEARCHED PRODUCTS") {
		t.Error("expected case-insensitive match")
	}
	if !ContainsFold("Blue Top", "") {
		t.Error("empty term should match")
	}
	if ContainsFold("Blue Top", "dress") {
		t.Error("unexpected match")
	}
}

func TestMatchIndices(t *testing.T) {
	titles := []string{
		"Test Case 1: Register User",
		"Test Case 2: Login User with correct email and password",
		"Test Case 9: Search Product",
		"Test Case 14: Place Order: Register while Checkout",
	}

	// GIVEN a list of test case titles
	// WHEN searching for a term in mixed case
	got := MatchIndices(titles, "REGISTER")

	// THEN every matching index is returned in order
	want := []int{0, 3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MatchIndices = %v, want %v", got, want)
	}

	if got := MatchIndices(titles, "nothing here"); len(got) != 0 {
		t.Errorf("expected no matches, got %v", got)
	}
}

func TestScreenshotName(t *testing.T) {
	if got := ScreenshotName("  Blue   Top "); got != "product-blue-top" {
		t.Errorf("ScreenshotName = %q", got)
	}
}

func TestCartContents(t *testing.T) {
	// GIVEN rows read from the cart table
	quantities := map[int]string{1: " 4 ", 2: "1", 7: ""}
	prices := map[int]string{1: "Rs. 500\n", 2: "Rs. 400", 7: "Rs. 1000"}

	// WHEN the contents are built in table order
	got := CartContents([]int{2, 1, 7},
		func(id int) string { return quantities[id] },
		func(id int) string { return prices[id] })

	// THEN each id keeps its quantity and trimmed price, unreadable quantity as 0
	want := []fixtures.CartProductData{
		{ProductID: 2, Quantity: 1, ExpectedPrice: "Rs. 400"},
		{ProductID: 1, Quantity: 4, ExpectedPrice: "Rs. 500"},
		{ProductID: 7, Quantity: 0, ExpectedPrice: "Rs. 1000"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CartContents = %+v, want %+v", got, want)
	}

	if got := CartContents(nil, nil, nil); len(got) != 0 {
		t.Errorf("expected no contents for an empty cart, got %v", got)
	}
}
