package pages

import (
	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"
)

// LoginPage is the "Login to your account" half of /login.
type LoginPage struct {
	Base
}

func NewLoginPage(page playwright.Page, logger *zap.Logger) *LoginPage {
	return &LoginPage{Base: newBase(page, logger, "login")}
}

func (l *LoginPage) EmailInput() playwright.Locator {
	return l.Page.Locator(`input[data-qa="login-email"]`)
}

func (l *LoginPage) PasswordInput() playwright.Locator {
	return l.Page.Locator(`input[data-qa="login-password"]`)
}

func (l *LoginPage) LoginButton() playwright.Locator {
	return l.Page.Locator(`button[data-qa="login-button"]`)
}

func (l *LoginPage) ErrorMessage() playwright.Locator {
	return l.Page.Locator(".login-form p")
}

func (l *LoginPage) NavigateTo() error {
	return l.goTo("/login")
}

func (l *LoginPage) Login(email, password string) error {
	if err := l.fill(l.EmailInput(), email, "login email"); err != nil {
		return err
	}
	if err := l.fill(l.PasswordInput(), password, "login password"); err != nil {
		return err
	}
	return l.click(l.LoginButton(), "login button")
}

// GetErrorMessage returns the form error, or "" when none shows up.
func (l *LoginPage) GetErrorMessage() string {
	msg := l.ErrorMessage().First()
	if !l.visibleWithin(msg, modalTimeout) {
		return ""
	}
	return l.text(msg)
}

func (l *LoginPage) IsLoginFormVisible() bool {
	return l.visible(l.EmailInput()) && l.visible(l.PasswordInput()) && l.visible(l.LoginButton())
}
