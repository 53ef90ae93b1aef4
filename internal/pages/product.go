package pages

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"
)

// ProductPage is the product detail page, /product_details/<id>.
type ProductPage struct {
	Base
}

func NewProductPage(page playwright.Page, logger *zap.Logger) *ProductPage {
	return &ProductPage{Base: newBase(page, logger, "product")}
}

func (p *ProductPage) ProductTitle() playwright.Locator {
	return p.Page.Locator(".product-information h2")
}

func (p *ProductPage) ProductPrice() playwright.Locator {
	return p.Page.Locator(".product-information span span")
}

func (p *ProductPage) AddToCartButton() playwright.Locator {
	return p.Page.Locator("button.cart")
}

func (p *ProductPage) QuantityInput() playwright.Locator {
	return p.Page.Locator("input#quantity")
}

func (p *ProductPage) ProductImage() playwright.Locator {
	return p.Page.Locator(`[data-qa="product-image"], .product-details img, .view-product img`).First()
}

func (p *ProductPage) ProductInfo() playwright.Locator {
	return p.Page.Locator(".product-information p")
}

func (p *ProductPage) AvailabilityStatus() playwright.Locator {
	return p.Page.Locator(`.product-information p:has-text("Availability")`)
}

func (p *ProductPage) ProductCondition() playwright.Locator {
	return p.Page.Locator(`.product-information p:has-text("Condition"), .product-information p:has-text("condition")`)
}

func (p *ProductPage) ProductBrand() playwright.Locator {
	return p.Page.Locator(`.product-information p:has-text("Brand"), .product-information p:has-text("brand")`)
}

func (p *ProductPage) ReviewSection() playwright.Locator {
	return p.Page.Locator(".category-tab")
}

func (p *ProductPage) ReviewNameInput() playwright.Locator {
	return p.Page.Locator(`input[placeholder="Your Name"]`)
}

func (p *ProductPage) ReviewEmailInput() playwright.Locator {
	return p.Page.Locator(`input[placeholder="Email Address"]`)
}

func (p *ProductPage) ReviewTextArea() playwright.Locator {
	return p.Page.Locator(`textarea[placeholder="Add Review Here!"]`)
}

func (p *ProductPage) ReviewSubmitButton() playwright.Locator {
	return p.Page.Locator("button#button-review")
}

func (p *ProductPage) ReviewSuccessMessage() playwright.Locator {
	return p.Page.Locator("#review-section .alert-success, .category-tab .alert-success").First()
}

func (p *ProductPage) WriteReviewText() playwright.Locator {
	return p.Page.Locator("text=Write Your Review")
}

func (p *ProductPage) IsProductPageLoaded() bool {
	return p.visible(p.ProductTitle()) && p.visible(p.ProductPrice()) && p.visible(p.AddToCartButton())
}

// AddToCart sets the quantity and adds the product to the cart.
func (p *ProductPage) AddToCart(quantity int) error {
	if quantity < 1 {
		quantity = 1
	}
	if err := p.fill(p.QuantityInput(), strconv.Itoa(quantity), "quantity"); err != nil {
		return err
	}
	return p.click(p.AddToCartButton(), "add to cart button")
}

func (p *ProductPage) GetProductTitle() string {
	return p.text(p.ProductTitle())
}

func (p *ProductPage) GetProductPrice() string {
	return p.text(p.ProductPrice())
}

func (p *ProductPage) GetProductDescription() string {
	return p.text(p.ProductInfo().First())
}

func (p *ProductPage) IsProductAvailable() bool {
	return ContainsFold(p.text(p.AvailabilityStatus().First()), "in stock")
}

func (p *ProductPage) IsProductDetailVisible() bool {
	return p.visible(p.ProductTitle()) &&
		p.visible(p.ProductPrice()) &&
		p.visible(p.ProductInfo().First()) &&
		p.visible(p.AvailabilityStatus())
}

func (p *ProductPage) SubmitReview(name, email, review string) error {
	if err := p.ReviewSection().ScrollIntoViewIfNeeded(); err != nil {
		p.logger.Debug("review section not scrollable", zap.Error(err))
	}
	if err := p.fill(p.ReviewNameInput(), name, "review name"); err != nil {
		return err
	}
	if err := p.fill(p.ReviewEmailInput(), email, "review email"); err != nil {
		return err
	}
	if err := p.fill(p.ReviewTextArea(), review, "review text"); err != nil {
		return err
	}
	return p.click(p.ReviewSubmitButton(), "review submit button")
}

func (p *ProductPage) GetReviewSuccessMessage() string {
	msg := p.ReviewSuccessMessage()
	if !p.visibleWithin(msg, modalTimeout) {
		return ""
	}
	return p.text(msg)
}

func (p *ProductPage) IsWriteReviewVisible() bool {
	return p.visible(p.WriteReviewText())
}

func (p *ProductPage) SetQuantity(quantity int) error {
	if err := p.QuantityInput().Clear(); err != nil {
		return fmt.Errorf("clearing quantity: %w", err)
	}
	return p.fill(p.QuantityInput(), strconv.Itoa(quantity), "quantity")
}

func (p *ProductPage) AddToCartFromDetail() error {
	return p.click(p.AddToCartButton(), "add to cart button")
}

// GetProductCategory returns the first information line, "Category: Women > Tops".
func (p *ProductPage) GetProductCategory() string {
	return p.text(p.ProductInfo().First())
}

func (p *ProductPage) GetProductCondition() string {
	return StripLabel(p.text(p.ProductCondition().First()), "Condition")
}

func (p *ProductPage) GetProductBrand() string {
	return StripLabel(p.text(p.ProductBrand().First()), "Brand")
}

// GetQuantityValue returns the quantity field as a number, 1 when unreadable.
func (p *ProductPage) GetQuantityValue() int {
	n, err := strconv.Atoi(strings.TrimSpace(p.inputValue(p.QuantityInput())))
	if err != nil || n == 0 {
		return 1
	}
	return n
}

func (p *ProductPage) IsProductImageVisible() bool {
	return p.visible(p.ProductImage())
}

func (p *ProductPage) VerifyAllProductDetails() bool {
	return p.IsProductDetailVisible() &&
		p.IsProductImageVisible() &&
		p.GetProductCategory() != "" &&
		p.GetProductBrand() != ""
}

func (p *ProductPage) ClickReviewTab() error {
	return p.click(p.Page.Locator(`a[href="#reviews"]`), "review tab")
}

// TakeProductScreenshot saves a screenshot named after the product title into
// dir and returns its path.
func (p *ProductPage) TakeProductScreenshot(dir string) (string, error) {
	path := filepath.Join(dir, ScreenshotName(p.GetProductTitle())+".png")
	if _, err := p.Page.Screenshot(playwright.PageScreenshotOptions{Path: playwright.String(path)}); err != nil {
		return "", fmt.Errorf("taking product screenshot: %w", err)
	}
	return path, nil
}

func (p *ProductPage) AssertProductDetailPageLoaded() error {
	if !p.IsProductPageLoaded() {
		return errors.New("product detail page not loaded: basic elements not visible")
	}
	title := p.GetProductTitle()
	if title == "" {
		return errors.New("product name not visible")
	}
	price := p.GetProductPrice()
	if price == "" {
		return errors.New("product price not visible")
	}
	category := p.GetProductCategory()
	if category == "" {
		return errors.New("product category not visible")
	}
	if !p.visible(p.AvailabilityStatus()) {
		p.logger.Info("availability information not shown")
	}

	condition := p.GetProductCondition()
	brand := p.GetProductBrand()
	if condition == "" && brand == "" && len(p.allTexts(p.ProductInfo())) == 0 {
		return errors.New("no product details found")
	}
	if !p.IsProductImageVisible() {
		return errors.New("product image not visible")
	}

	p.logger.Info("product details verified",
		zap.String("title", title),
		zap.String("category", category),
		zap.String("price", price),
		zap.String("condition", condition),
		zap.String("brand", brand),
	)
	return nil
}

func (p *ProductPage) AssertReviewSubmitted() error {
	msg := p.GetReviewSuccessMessage()
	if !ContainsFold(msg, "thank you for your review") {
		return fmt.Errorf("review submission failed: success message %q", msg)
	}
	return nil
}
