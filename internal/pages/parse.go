package pages

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/adyen/ecommerce-e2e/internal/fixtures"
)

var brandCountPrefix = regexp.MustCompile(`^\(\d+\)\s*`)

// CleanBrandName strips the product count the sidebar prints before each
// brand, so " (8) Polo" becomes "Polo".
func CleanBrandName(raw string) string {
	return brandCountPrefix.ReplaceAllString(strings.TrimSpace(raw), "")
}

// ParseCartRowID extracts the product id from a cart row id like "product-12".
func ParseCartRowID(rowID string) (int, bool) {
	rest, ok := strings.CutPrefix(rowID, "product-")
	if !ok {
		return 0, false
	}
	id, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return id, true
}

// StripLabel removes the first "Label:" occurrence from text and trims the rest.
func StripLabel(text, label string) string {
	return strings.TrimSpace(strings.Replace(text, label+":", "", 1))
}

// ContainsFold reports whether s contains term, ignoring case.
func ContainsFold(s, term string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(term))
}

// ScreenshotName turns a product title into a file-safe screenshot name.
func ScreenshotName(title string) string {
	return "product-" + strings.ToLower(strings.Join(strings.Fields(title), "-"))
}

// CartContents builds one entry per id from the row readers. A quantity that
// is not a number becomes 0.
func CartContents(ids []int, quantity, price func(id int) string) []fixtures.CartProductData {
	return lo.Map(ids, func(id int, _ int) fixtures.CartProductData {
		q, _ := strconv.Atoi(strings.TrimSpace(quantity(id)))
		return fixtures.CartProductData{ProductID: id, Quantity: q, ExpectedPrice: strings.TrimSpace(price(id))}
	})
}
