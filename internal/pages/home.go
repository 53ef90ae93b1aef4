package pages

import (
	"errors"
	"fmt"

	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"
)

// HomeTitle is the document title of the storefront home page.
const HomeTitle = "Automation Exercise"

const (
	productsLinkSelector        = `a[href="/products"]`
	contactLinkSelector         = `a[href="/contact_us"]`
	subscriptionSuccessSelector = ".alert-success"
)

// HomePage is the landing page plus the header and footer shared by every page.
type HomePage struct {
	Base
	consent *ConsentHelper
}

func NewHomePage(page playwright.Page, consent *ConsentHelper, logger *zap.Logger) *HomePage {
	return &HomePage{Base: newBase(page, logger, "home"), consent: consent}
}

func (h *HomePage) NavBar() playwright.Locator {
	return h.Page.Locator("ul.nav.navbar-nav")
}

func (h *HomePage) FeaturedProducts() playwright.Locator {
	return h.Page.Locator(".features_items").First()
}

func (h *HomePage) SignupLoginLink() playwright.Locator {
	return h.Page.GetByRole(*playwright.AriaRoleLink, playwright.PageGetByRoleOptions{Name: " Signup / Login"}).First()
}

func (h *HomePage) ProductsLink() playwright.Locator {
	return h.Page.Locator(productsLinkSelector)
}

func (h *HomePage) CartLink() playwright.Locator {
	return h.Page.GetByRole(*playwright.AriaRoleLink, playwright.PageGetByRoleOptions{Name: " Cart"}).First()
}

func (h *HomePage) ContactLink() playwright.Locator {
	return h.Page.Locator(contactLinkSelector)
}

func (h *HomePage) LogoutLink() playwright.Locator {
	return h.Page.GetByRole(*playwright.AriaRoleLink, playwright.PageGetByRoleOptions{Name: " Logout"})
}

func (h *HomePage) DeleteAccountLink() playwright.Locator {
	return h.Page.GetByRole(*playwright.AriaRoleLink, playwright.PageGetByRoleOptions{Name: " Delete Account"})
}

func (h *HomePage) TestCasesLink() playwright.Locator {
	return h.Page.Locator("li").GetByRole(*playwright.AriaRoleLink, playwright.LocatorGetByRoleOptions{Name: " Test Cases"})
}

func (h *HomePage) UserName() playwright.Locator {
	return h.Page.Locator(".shop-menu .fa-user + b")
}

func (h *HomePage) LoggedInAs(name string) playwright.Locator {
	return h.Page.GetByText("Logged in as " + name)
}

func (h *HomePage) SubscriptionSection() playwright.Locator {
	return h.Page.Locator("#footer .single-widget")
}

func (h *HomePage) SubscriptionHeader() playwright.Locator {
	return h.Page.Locator("text=Subscription")
}

func (h *HomePage) SubscriptionEmailInput() playwright.Locator {
	return h.Page.Locator("input#susbscribe_email")
}

func (h *HomePage) SubscribeButton() playwright.Locator {
	return h.Page.Locator("button#subscribe")
}

func (h *HomePage) SubscriptionSuccessMessage() playwright.Locator {
	return h.Page.Locator(subscriptionSuccessSelector)
}

func (h *HomePage) RecommendedItemsSection() playwright.Locator {
	return h.Page.Locator(".recommended_items")
}

func (h *HomePage) RecommendedProducts() playwright.Locator {
	return h.Page.Locator(".recommended_items .item")
}

func (h *HomePage) RecommendedAddToCart() playwright.Locator {
	return h.Page.Locator(".recommended_items .add-to-cart")
}

func (h *HomePage) Carousel() playwright.Locator {
	return h.Page.Locator("#slider")
}

func (h *HomePage) CarouselNext() playwright.Locator {
	return h.Page.Locator(".carousel-control.right")
}

func (h *HomePage) CarouselPrev() playwright.Locator {
	return h.Page.Locator(".carousel-control.left")
}

// NavigateTo opens the home page and dismisses the consent dialog if shown.
func (h *HomePage) NavigateTo() error {
	return h.consent.NavigateWithConsentHandling("/")
}

func (h *HomePage) GoToLogin() error {
	return h.click(h.SignupLoginLink(), "Signup / Login link")
}

func (h *HomePage) GoToProducts() error {
	return h.ClickAndWaitForLoad(productsLinkSelector)
}

func (h *HomePage) GoToCart() error {
	if err := h.click(h.CartLink(), "Cart link"); err != nil {
		return err
	}
	return h.waitForLoad()
}

func (h *HomePage) GoToContact() error {
	return h.SafeClick(contactLinkSelector)
}

func (h *HomePage) GoToTestCasesPage() error {
	return h.click(h.TestCasesLink(), "Test Cases link")
}

func (h *HomePage) Logout() error {
	return h.click(h.LogoutLink(), "Logout link")
}

func (h *HomePage) DeleteAccount() error {
	return h.click(h.DeleteAccountLink(), "Delete Account link")
}

// IsUserLoggedIn requires the logout and delete-account links and the
// "Logged in as" banner. When expectedName is set the banner name must match.
func (h *HomePage) IsUserLoggedIn(expectedName string) bool {
	loggedIn := h.visible(h.LogoutLink()) &&
		h.visible(h.DeleteAccountLink()) &&
		h.visible(h.LoggedInAs(expectedName))
	if !loggedIn {
		return false
	}
	if expectedName == "" {
		return true
	}
	return h.trimmed(h.UserName()) == expectedName
}

// IsHomePageLoaded waits for the nav bar and carousel and checks the title.
func (h *HomePage) IsHomePageLoaded() bool {
	if err := h.waitForLoad(); err != nil {
		h.logger.Warn("home page did not load", zap.Error(err))
		return false
	}
	if err := h.waitVisible(h.NavBar(), sectionTimeout); err != nil {
		h.logger.Warn("nav bar not visible", zap.Error(err))
		return false
	}
	if err := h.waitVisible(h.Carousel(), sectionTimeout); err != nil {
		h.logger.Warn("carousel not visible", zap.Error(err))
		return false
	}
	title, err := h.Page.Title()
	if err != nil {
		h.logger.Warn("title unavailable", zap.Error(err))
		return false
	}
	return title == HomeTitle && h.visible(h.NavBar()) && h.visible(h.Carousel())
}

func (h *HomePage) ScrollToSubscription() error {
	if err := h.SubscriptionSection().ScrollIntoViewIfNeeded(); err != nil {
		return fmt.Errorf("scrolling to subscription: %w", err)
	}
	return nil
}

// ScrollToBottom scrolls the window to the end of the document.
func (h *HomePage) ScrollToBottom() error {
	if _, err := h.Page.Evaluate("() => window.scrollTo(0, document.body.scrollHeight)"); err != nil {
		return fmt.Errorf("scrolling to bottom: %w", err)
	}
	return nil
}

func (h *HomePage) IsSubscriptionSectionVisible() bool {
	return h.visible(h.SubscriptionHeader())
}

func (h *HomePage) IsSubscriptionInputVisible() bool {
	return h.visible(h.SubscriptionEmailInput())
}

func (h *HomePage) IsSubscribeButtonVisible() bool {
	return h.visible(h.SubscribeButton())
}

func (h *HomePage) SubscribeWithEmail(email string) error {
	if err := h.fill(h.SubscriptionEmailInput(), email, "subscription email"); err != nil {
		return err
	}
	return h.click(h.SubscribeButton(), "subscribe button")
}

func (h *HomePage) GetSubscriptionSuccessMessage() string {
	msg, _ := h.TrimmedText(subscriptionSuccessSelector)
	return msg
}

// IsSubscriptionSuccessMessageVisible waits briefly since the message is
// inserted after an AJAX round trip.
func (h *HomePage) IsSubscriptionSuccessMessageVisible() bool {
	return h.visibleWithin(h.SubscriptionSuccessMessage().First(), modalTimeout)
}

func (h *HomePage) IsRecommendedItemsVisible() bool {
	return h.visible(h.RecommendedItemsSection())
}

func (h *HomePage) AddRecommendedItemToCart(index int) error {
	return h.click(h.RecommendedAddToCart().Nth(index), fmt.Sprintf("recommended item %d", index))
}

func (h *HomePage) GetRecommendedItemsCount() int {
	return h.count(h.RecommendedProducts())
}

func (h *HomePage) AssertHomePageLoaded() error {
	if !h.IsHomePageLoaded() {
		return errors.New("home page is not loaded properly")
	}
	return nil
}

func (h *HomePage) AssertRecommendedItemsVisible() error {
	if !h.IsRecommendedItemsVisible() {
		return errors.New("recommended items section not visible")
	}
	if h.GetRecommendedItemsCount() == 0 {
		return errors.New("no recommended items found")
	}
	return nil
}

func (h *HomePage) AssertUserLoggedIn(expectedName string) error {
	if !h.IsUserLoggedIn(expectedName) {
		return fmt.Errorf("user %q is not logged in or name doesn't match (banner shows %q)", expectedName, h.trimmed(h.UserName()))
	}
	return nil
}
