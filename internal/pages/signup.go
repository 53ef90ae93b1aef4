package pages

import (
	"errors"

	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"

	"github.com/adyen/ecommerce-e2e/internal/fixtures"
)

// SignupPage covers the "New User Signup!" form, the account information
// form it leads to, and the account created/deleted confirmations.
type SignupPage struct {
	Base
}

func NewSignupPage(page playwright.Page, logger *zap.Logger) *SignupPage {
	return &SignupPage{Base: newBase(page, logger, "signup")}
}

func (s *SignupPage) dataQA(tag, name string) playwright.Locator {
	return s.Page.Locator(tag + `[data-qa="` + name + `"]`)
}

func (s *SignupPage) NameInput() playwright.Locator { return s.dataQA("input", "signup-name") }
func (s *SignupPage) EmailInput() playwright.Locator { return s.dataQA("input", "signup-email") }
func (s *SignupPage) SignupButton() playwright.Locator { return s.dataQA("button", "signup-button") }
func (s *SignupPage) ErrorMessage() playwright.Locator { return s.Page.Locator(".signup-form p") }
func (s *SignupPage) NewUserSignupText() playwright.Locator {
	return s.Page.Locator("text=New User Signup!")
}

func (s *SignupPage) EmailExistsText() playwright.Locator {
	return s.Page.Locator(`text="Email Address already exist!"`)
}

func (s *SignupPage) AccountInfoHeader() playwright.Locator {
	return s.Page.Locator("text=ENTER ACCOUNT INFORMATION")
}

func (s *SignupPage) TitleRadio(title string) playwright.Locator {
	return s.Page.Locator(`input[value="` + title + `"]`)
}

func (s *SignupPage) AccountNameInput() playwright.Locator { return s.dataQA("input", "name") }
func (s *SignupPage) AccountEmailInput() playwright.Locator { return s.dataQA("input", "email") }
func (s *SignupPage) PasswordInput() playwright.Locator { return s.dataQA("input", "password") }
func (s *SignupPage) DayDropdown() playwright.Locator { return s.dataQA("select", "days") }
func (s *SignupPage) MonthDropdown() playwright.Locator { return s.dataQA("select", "months") }
func (s *SignupPage) YearDropdown() playwright.Locator { return s.dataQA("select", "years") }
func (s *SignupPage) NewsletterCheckbox() playwright.Locator {
	return s.dataQA("input", "newsletter")
}

func (s *SignupPage) OffersCheckbox() playwright.Locator {
	return s.dataQA("input", "optin")
}

func (s *SignupPage) FirstNameInput() playwright.Locator { return s.dataQA("input", "first_name") }
func (s *SignupPage) LastNameInput() playwright.Locator { return s.dataQA("input", "last_name") }
func (s *SignupPage) CompanyInput() playwright.Locator { return s.dataQA("input", "company") }
func (s *SignupPage) AddressInput() playwright.Locator { return s.dataQA("input", "address") }
func (s *SignupPage) Address2Input() playwright.Locator { return s.dataQA("input", "address2") }
func (s *SignupPage) CountryDropdown() playwright.Locator { return s.dataQA("select", "country") }
func (s *SignupPage) StateInput() playwright.Locator { return s.dataQA("input", "state") }
func (s *SignupPage) CityInput() playwright.Locator { return s.dataQA("input", "city") }
func (s *SignupPage) ZipcodeInput() playwright.Locator { return s.dataQA("input", "zipcode") }
func (s *SignupPage) MobileNumberInput() playwright.Locator { return s.dataQA("input", "mobile_number") }

func (s *SignupPage) CreateAccountButton() playwright.Locator {
	return s.dataQA("button", "create-account")
}

func (s *SignupPage) AccountCreatedText() playwright.Locator {
	return s.Page.Locator("text=ACCOUNT CREATED!")
}

func (s *SignupPage) ContinueButton() playwright.Locator {
	return s.dataQA("a", "continue-button")
}

func (s *SignupPage) DeleteAccountButton() playwright.Locator {
	return s.Page.Locator(`a[href="/delete_account"]`)
}

func (s *SignupPage) AccountDeletedText() playwright.Locator {
	return s.Page.Locator("text=ACCOUNT DELETED!")
}

func (s *SignupPage) NavigateTo() error {
	return s.goTo("/login")
}

func (s *SignupPage) IsNewUserSignupVisible() bool {
	return s.visible(s.NewUserSignupText())
}

func (s *SignupPage) FillInitialSignupForm(name, email string) error {
	if err := s.fill(s.NameInput(), name, "signup name"); err != nil {
		return err
	}
	if err := s.fill(s.EmailInput(), email, "signup email"); err != nil {
		return err
	}
	return s.click(s.SignupButton(), "signup button")
}

func (s *SignupPage) IsAccountInfoFormVisible() bool {
	return s.visibleWithin(s.AccountInfoHeader(), sectionTimeout)
}

// FillAccountInformation fills title, name, password, birth date and the
// optional opt-in checkboxes. Missing checkboxes are skipped.
func (s *SignupPage) FillAccountInformation(info fixtures.AccountInfo) error {
	title := info.Title
	if title != "Mrs" {
		title = "Mr"
	}
	if err := s.TitleRadio(title).Check(); err != nil {
		return err
	}
	if err := s.fill(s.AccountNameInput(), info.Name, "account name"); err != nil {
		return err
	}
	if err := s.fill(s.PasswordInput(), info.Password, "password"); err != nil {
		return err
	}
	if err := s.selectOption(s.DayDropdown(), info.Day, "birth day"); err != nil {
		return err
	}
	if err := s.selectOption(s.MonthDropdown(), info.Month, "birth month"); err != nil {
		return err
	}
	if err := s.selectOption(s.YearDropdown(), info.Year, "birth year"); err != nil {
		return err
	}

	if info.Newsletter {
		s.checkIfPresent(s.NewsletterCheckbox(), "newsletter")
	}
	if info.Offers {
		s.checkIfPresent(s.OffersCheckbox(), "offers")
	}
	return nil
}

func (s *SignupPage) checkIfPresent(box playwright.Locator, what string) {
	if s.count(box) == 0 {
		s.logger.Info("checkbox not present", zap.String("checkbox", what))
		return
	}
	if err := box.Check(); err != nil {
		s.logger.Warn("checkbox not interactable", zap.String("checkbox", what), zap.Error(err))
	}
}

// FillAddressInformation fills the address form. Company and Address2 are
// left empty when unset.
func (s *SignupPage) FillAddressInformation(addr fixtures.AddressInfo) error {
	fields := []struct {
		loc   playwright.Locator
		value string
		what  string
		skip  bool
	}{
		{s.FirstNameInput(), addr.FirstName, "first name", false},
		{s.LastNameInput(), addr.LastName, "last name", false},
		{s.CompanyInput(), addr.Company, "company", addr.Company == ""},
		{s.AddressInput(), addr.Address, "address", false},
		{s.Address2Input(), addr.Address2, "address line 2", addr.Address2 == ""},
	}
	for _, f := range fields {
		if f.skip {
			continue
		}
		if err := s.fill(f.loc, f.value, f.what); err != nil {
			return err
		}
	}

	if err := s.selectOption(s.CountryDropdown(), addr.Country, "country"); err != nil {
		return err
	}
	if err := s.fill(s.StateInput(), addr.State, "state"); err != nil {
		return err
	}
	if err := s.fill(s.CityInput(), addr.City, "city"); err != nil {
		return err
	}
	if err := s.fill(s.ZipcodeInput(), addr.Zipcode, "zipcode"); err != nil {
		return err
	}
	return s.fill(s.MobileNumberInput(), addr.MobileNumber, "mobile number")
}

func (s *SignupPage) CreateAccount() error {
	return s.click(s.CreateAccountButton(), "create account button")
}

func (s *SignupPage) IsAccountCreated() bool {
	return s.visibleWithin(s.AccountCreatedText(), sectionTimeout)
}

func (s *SignupPage) ClickContinue() error {
	return s.click(s.ContinueButton(), "continue button")
}

func (s *SignupPage) DeleteAccount() error {
	return s.click(s.DeleteAccountButton(), "delete account link")
}

func (s *SignupPage) IsAccountDeleted() bool {
	return s.visibleWithin(s.AccountDeletedText(), sectionTimeout)
}

func (s *SignupPage) GetErrorMessage() string {
	return s.text(s.ErrorMessage().First())
}

func (s *SignupPage) IsSignupFormVisible() bool {
	return s.visible(s.NameInput()) && s.visible(s.EmailInput()) && s.visible(s.SignupButton())
}

func (s *SignupPage) IsEmailAlreadyExistVisible() bool {
	return s.visibleWithin(s.EmailExistsText(), modalTimeout)
}

func (s *SignupPage) AssertAccountInfoFormVisible() error {
	if !s.IsAccountInfoFormVisible() {
		return errors.New("account information form is not visible")
	}
	return nil
}

func (s *SignupPage) AssertAccountCreated() error {
	if !s.IsAccountCreated() {
		return errors.New("account creation confirmation not visible")
	}
	return nil
}

func (s *SignupPage) AssertAccountDeleted() error {
	if !s.IsAccountDeleted() {
		return errors.New("account deletion confirmation not visible")
	}
	return nil
}
