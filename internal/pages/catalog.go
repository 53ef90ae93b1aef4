package pages

import (
	"errors"
	"fmt"
	"strings"

	"github.com/playwright-community/playwright-go"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// ProductCatalogPage is /products plus the category and brand listings that
// share its layout.
type ProductCatalogPage struct {
	Base
	consent *ConsentHelper
}

func NewProductCatalogPage(page playwright.Page, consent *ConsentHelper, logger *zap.Logger) *ProductCatalogPage {
	return &ProductCatalogPage{Base: newBase(page, logger, "catalog"), consent: consent}
}

func (c *ProductCatalogPage) ProductList() playwright.Locator {
	return c.Page.Locator(".features_items")
}

func (c *ProductCatalogPage) SearchInput() playwright.Locator {
	return c.Page.Locator("input#search_product")
}

func (c *ProductCatalogPage) SearchButton() playwright.Locator {
	return c.Page.Locator("button#submit_search")
}

func (c *ProductCatalogPage) ProductItems() playwright.Locator {
	return c.Page.Locator(".productinfo.text-center")
}

func (c *ProductCatalogPage) ViewProductLinks() playwright.Locator {
	return c.Page.Locator(`a[href*="/product_details/"]`)
}

func (c *ProductCatalogPage) ContinueShoppingButton() playwright.Locator {
	return c.Page.Locator(`button[data-dismiss="modal"]`)
}

func (c *ProductCatalogPage) ViewCartLink() playwright.Locator {
	return c.Page.GetByRole(*playwright.AriaRoleLink, playwright.PageGetByRoleOptions{Name: "View Cart"})
}

func (c *ProductCatalogPage) AddedToCartModal() playwright.Locator {
	return c.Page.Locator(".modal-content")
}

// Header is the centred title shared by the all-products, search, category
// and brand listings.
func (c *ProductCatalogPage) Header() playwright.Locator {
	return c.Page.Locator("h2.title.text-center")
}

func (c *ProductCatalogPage) ListingHeader() playwright.Locator {
	return c.Page.Locator("h2.title.text-center, .features_items .title.text-center").First()
}

func (c *ProductCatalogPage) CategorySection() playwright.Locator {
	return c.Page.Locator(".left-sidebar #accordian")
}

func (c *ProductCatalogPage) BrandSection() playwright.Locator {
	return c.Page.Locator(".left-sidebar .brands_products")
}

func (c *ProductCatalogPage) BrandLinks() playwright.Locator {
	return c.Page.Locator(".brands_products a")
}

func (c *ProductCatalogPage) NavigateTo() error {
	return c.consent.NavigateWithConsentHandling("/products")
}

func (c *ProductCatalogPage) SearchForProduct(name string) error {
	if err := c.fill(c.SearchInput(), name, "search input"); err != nil {
		return err
	}
	return c.click(c.SearchButton(), "search button")
}

func (c *ProductCatalogPage) addToCart(index int) error {
	btn := c.ProductItems().Nth(index).Locator(".add-to-cart")
	return c.click(btn, fmt.Sprintf("add to cart for product %d", index))
}

func (c *ProductCatalogPage) waitForModal() error {
	if err := c.waitVisible(c.AddedToCartModal(), modalTimeout); err != nil {
		return fmt.Errorf("waiting for added-to-cart modal: %w", err)
	}
	return nil
}

// AddFirstProductToCart adds the first listed product and leaves the
// confirmation modal open.
func (c *ProductCatalogPage) AddFirstProductToCart() error {
	if err := c.addToCart(0); err != nil {
		return err
	}
	return c.waitForModal()
}

// AddFirstSearchResultToCart adds the first result and dismisses the modal
// so the listing stays in place.
func (c *ProductCatalogPage) AddFirstSearchResultToCart() error {
	if err := c.AddFirstProductToCart(); err != nil {
		return err
	}
	return c.ContinueShopping()
}

func (c *ProductCatalogPage) AddSecondProductToCart() error {
	return c.addToCart(1)
}

func (c *ProductCatalogPage) AddProductToCartByIndex(index int) error {
	return c.addToCart(index)
}

func (c *ProductCatalogPage) IsProductListVisible() bool {
	return c.visible(c.ProductList())
}

func (c *ProductCatalogPage) IsAllProductsPageLoaded() bool {
	if err := c.waitForLoad(); err != nil {
		c.logger.Warn("products page did not load", zap.Error(err))
		return false
	}
	header := c.Header().First()
	if err := c.waitVisible(header, sectionTimeout); err != nil {
		c.logger.Warn("products header not visible", zap.Error(err))
		return false
	}
	return strings.Contains(c.text(header), "ALL PRODUCTS")
}

func (c *ProductCatalogPage) ViewFirstProduct() error {
	return c.click(c.ViewProductLinks().First(), "first view product link")
}

func (c *ProductCatalogPage) ViewProductByIndex(index int) error {
	return c.click(c.ViewProductLinks().Nth(index), fmt.Sprintf("view product link %d", index))
}

// SelectCategory opens /products, expands category and follows subcategory.
func (c *ProductCatalogPage) SelectCategory(category, subcategory string) error {
	if err := c.goTo("/products"); err != nil {
		return err
	}
	if err := c.waitVisible(c.CategorySection(), sectionTimeout); err != nil {
		return fmt.Errorf("waiting for category sidebar: %w", err)
	}
	if err := c.click(c.Page.Locator(`a[href="#`+category+`"]`).First(), "category "+category); err != nil {
		return err
	}
	c.pause(expandPause)

	sub := c.Page.Locator(fmt.Sprintf(
		`a[href*="/category_products/"]:has-text(%q), a:has-text(%q)[href*="/category"]`,
		subcategory, subcategory,
	)).First()
	if err := c.waitVisible(sub, modalTimeout); err != nil {
		return fmt.Errorf("waiting for subcategory %s: %w", subcategory, err)
	}
	if err := c.click(sub, "subcategory "+subcategory); err != nil {
		return err
	}
	return c.waitForLoad()
}

func (c *ProductCatalogPage) SelectBrand(brand string) error {
	link := c.Page.Locator(fmt.Sprintf(`.brands_products a:has-text(%q)`, brand))
	return c.click(link, "brand "+brand)
}

func (c *ProductCatalogPage) IsSearchResultsVisible() bool {
	return c.visible(c.Header().First())
}

func (c *ProductCatalogPage) GetSearchResultsText() string {
	return c.text(c.Header().First())
}

func (c *ProductCatalogPage) GetCategoryHeaderText() string {
	return c.text(c.ListingHeader())
}

func (c *ProductCatalogPage) IsBrandPageLoaded() bool {
	return strings.Contains(c.text(c.Page.Locator(".features_items .title.text-center").First()), "BRAND")
}

func (c *ProductCatalogPage) IsCategorySectionVisible() bool {
	return c.visible(c.CategorySection())
}

func (c *ProductCatalogPage) IsBrandSectionVisible() bool {
	return c.visible(c.BrandSection())
}

func (c *ProductCatalogPage) ContinueShopping() error {
	return c.click(c.ContinueShoppingButton(), "continue shopping button")
}

// ViewCart follows the View Cart link in the added-to-cart modal.
func (c *ProductCatalogPage) ViewCart() error {
	if err := c.waitForModal(); err != nil {
		return err
	}
	return c.click(c.ViewCartLink(), "view cart link")
}

func (c *ProductCatalogPage) GetProductCount() int {
	return c.count(c.ProductItems())
}

func (c *ProductCatalogPage) GetProductName(index int) string {
	return c.text(c.ProductItems().Nth(index).Locator("p"))
}

func (c *ProductCatalogPage) GetProductPrice(index int) string {
	return c.text(c.ProductItems().Nth(index).Locator("h2"))
}

func (c *ProductCatalogPage) HoverOverProduct(index int) error {
	if err := c.ProductItems().Nth(index).Hover(); err != nil {
		return fmt.Errorf("hovering product %d: %w", index, err)
	}
	return nil
}

func (c *ProductCatalogPage) IsAddToCartVisible(index int) bool {
	return c.visible(c.ProductItems().Nth(index).Locator(".add-to-cart"))
}

// GetAvailableBrands lists the sidebar brands with their product counts removed.
func (c *ProductCatalogPage) GetAvailableBrands() ([]string, error) {
	if err := c.waitVisible(c.BrandSection(), sectionTimeout); err != nil {
		return nil, fmt.Errorf("waiting for brand sidebar: %w", err)
	}
	return lo.FilterMap(c.allTexts(c.BrandLinks()), func(raw string, _ int) (string, bool) {
		name := CleanBrandName(raw)
		return name, name != ""
	}), nil
}

// AssertPageLoaded accepts either a non-empty product list or the
// ALL PRODUCTS header.
func (c *ProductCatalogPage) AssertPageLoaded() error {
	if c.IsProductListVisible() {
		if c.GetProductCount() == 0 {
			return errors.New("no products found on page")
		}
		return nil
	}
	if !c.IsAllProductsPageLoaded() {
		return errors.New("products page not loaded: neither header nor product list visible")
	}
	return nil
}

func (c *ProductCatalogPage) AssertSearchResultsVisible(term string) error {
	if !c.IsSearchResultsVisible() {
		return fmt.Errorf("search results not visible for %q", term)
	}
	if text := c.GetSearchResultsText(); !ContainsFold(text, "SEARCHED PRODUCTS") {
		return fmt.Errorf("search results header missing, found %q", text)
	}
	if c.GetProductCount() == 0 {
		return fmt.Errorf("no search results found for %q", term)
	}
	return nil
}

func (c *ProductCatalogPage) AssertCategoryPageLoaded(expected string) error {
	return c.assertListing(expected, "category")
}

// AssertBrandPageLoaded checks the header, "Brand - Polo Products", names brand.
func (c *ProductCatalogPage) AssertBrandPageLoaded(brand string) error {
	return c.assertListing(brand, "brand")
}

func (c *ProductCatalogPage) assertListing(expected, kind string) error {
	if err := c.waitForLoad(); err != nil {
		return err
	}
	header := c.GetCategoryHeaderText()
	if !ContainsFold(header, expected) {
		return fmt.Errorf("%s page header mismatch: expected %q, found %q", kind, expected, header)
	}
	if c.GetProductCount() == 0 {
		return fmt.Errorf("no products found on %s page %q", kind, expected)
	}
	c.logger.Info("listing loaded", zap.String("kind", kind), zap.String("header", header))
	return nil
}
