package pages

import (
	"fmt"
	"strings"

	"github.com/playwright-community/playwright-go"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// minTestCaseGroups is how many test case panels /test_cases lists.
const minTestCaseGroups = 26

type TestCasesPage struct {
	Base
}

func NewTestCasesPage(page playwright.Page, logger *zap.Logger) *TestCasesPage {
	return &TestCasesPage{Base: newBase(page, logger, "testcases")}
}

func (t *TestCasesPage) Header() playwright.Locator {
	return t.Page.Locator(`h2:has-text("Test Cases"), .title:has-text("Test Cases")`).First()
}

func (t *TestCasesPage) Items() playwright.Locator {
	return t.Page.Locator(".panel, .test-case-item")
}

func (t *TestCasesPage) Titles() playwright.Locator {
	return t.Page.Locator(".panel-title, .test-case-title")
}

func (t *TestCasesPage) BackToHomeLink() playwright.Locator {
	return t.Page.Locator(`a[href="/"]`).First()
}

func (t *TestCasesPage) Breadcrumb() playwright.Locator {
	return t.Page.Locator(".breadcrumb, .nav-breadcrumb").First()
}

func (t *TestCasesPage) itemTitle(index int) playwright.Locator {
	return t.Items().Nth(index).Locator(".panel-title, .test-case-title").First()
}

func (t *TestCasesPage) itemBody(index int) playwright.Locator {
	return t.Items().Nth(index).Locator(".panel-body, .test-case-description").First()
}

func (t *TestCasesPage) NavigateTo() error {
	return t.goTo("/test_cases")
}

func (t *TestCasesPage) IsTestCasesPageLoaded() bool {
	return t.visible(t.Header())
}

func (t *TestCasesPage) GetPageTitle() string {
	title, err := t.Page.Title()
	if err != nil {
		t.logger.Debug("reading title", zap.Error(err))
		return ""
	}
	return title
}

func (t *TestCasesPage) GetTestCasesHeaderText() string {
	return t.text(t.Header())
}

func (t *TestCasesPage) IsTestCasesListVisible() bool {
	return t.count(t.Page.Locator(".panel-group")) >= minTestCaseGroups
}

func (t *TestCasesPage) GetTestCasesCount() int {
	return t.count(t.Items())
}

func (t *TestCasesPage) ClickTestCase(index int) error {
	return t.click(t.Items().Nth(index), fmt.Sprintf("test case %d", index))
}

func (t *TestCasesPage) GetTestCaseTitle(index int) string {
	return t.text(t.itemTitle(index))
}

func (t *TestCasesPage) GetTestCaseDescription(index int) string {
	return t.text(t.itemBody(index))
}

func (t *TestCasesPage) BackToHome() error {
	return t.click(t.BackToHomeLink(), "home link")
}

func (t *TestCasesPage) IsBreadcrumbVisible() bool {
	return t.visible(t.Breadcrumb())
}

func (t *TestCasesPage) VerifyTestCasesPageElements() bool {
	return t.IsTestCasesPageLoaded() && t.IsTestCasesListVisible()
}

func (t *TestCasesPage) GetAllTestCaseTitles() []string {
	return t.allTexts(t.Titles())
}

// SearchTestCase returns the indices of the titles containing term.
func (t *TestCasesPage) SearchTestCase(term string) []int {
	return MatchIndices(t.GetAllTestCaseTitles(), term)
}

// MatchIndices returns the positions in titles that contain term, ignoring case.
func MatchIndices(titles []string, term string) []int {
	return lo.FilterMap(titles, func(title string, i int) (int, bool) {
		return i, ContainsFold(title, term)
	})
}

func (t *TestCasesPage) IsTestCaseExpanded(index int) bool {
	return t.visible(t.itemBody(index))
}

func (t *TestCasesPage) ExpandTestCase(index int) error {
	if t.IsTestCaseExpanded(index) {
		return nil
	}
	return t.ClickTestCase(index)
}

func (t *TestCasesPage) CollapseTestCase(index int) error {
	if !t.IsTestCaseExpanded(index) {
		return nil
	}
	return t.ClickTestCase(index)
}

func (t *TestCasesPage) GetCurrentPageURL() string {
	return t.Page.URL()
}

func (t *TestCasesPage) VerifyTestCasesPageURL() bool {
	return strings.Contains(t.GetCurrentPageURL(), "/test_cases")
}
