package pages

import (
	"errors"
	"fmt"

	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"

	"github.com/adyen/ecommerce-e2e/internal/fixtures"
)

type ContactPage struct {
	Base
	consent *ConsentHelper
}

func NewContactPage(page playwright.Page, consent *ConsentHelper, logger *zap.Logger) *ContactPage {
	return &ContactPage{Base: newBase(page, logger, "contact"), consent: consent}
}

func (c *ContactPage) NameInput() playwright.Locator {
	return c.Page.Locator(`input[data-qa="name"]`)
}

func (c *ContactPage) EmailInput() playwright.Locator {
	return c.Page.Locator(`input[data-qa="email"]`)
}

func (c *ContactPage) SubjectInput() playwright.Locator {
	return c.Page.Locator(`input[data-qa="subject"]`)
}

func (c *ContactPage) MessageTextArea() playwright.Locator {
	return c.Page.Locator(`textarea[data-qa="message"]`)
}

func (c *ContactPage) UploadFileInput() playwright.Locator {
	return c.Page.Locator(`input[name="upload_file"]`)
}

func (c *ContactPage) SubmitButton() playwright.Locator {
	return c.Page.Locator(`input[data-qa="submit-button"]`)
}

func (c *ContactPage) ContactUsHeader() playwright.Locator {
	return c.Page.Locator("text=Contact Us").First()
}

func (c *ContactPage) GetInTouchSection() playwright.Locator {
	return c.Page.Locator(`.contact-form h2:has-text("Get In Touch")`)
}

func (c *ContactPage) SuccessMessage() playwright.Locator {
	return c.Page.Locator(".contact-form .status.alert.alert-success")
}

func (c *ContactPage) HomeButton() playwright.Locator {
	return c.Page.Locator("#form-section").GetByRole(*playwright.AriaRoleLink, playwright.LocatorGetByRoleOptions{Name: " Home"})
}

func (c *ContactPage) ContactInfoSection() playwright.Locator {
	return c.Page.Locator(".contact-info")
}

func (c *ContactPage) NavigateTo() error {
	return c.consent.NavigateWithConsentHandling("/contact_us")
}

func (c *ContactPage) IsContactPageLoaded() bool {
	return c.visible(c.ContactUsHeader()) && c.visible(c.GetInTouchSection())
}

// FillContactForm fills the text fields and, when uploadPath is set,
// attaches that file.
func (c *ContactPage) FillContactForm(data fixtures.ContactFormData, uploadPath string) error {
	if err := c.fill(c.NameInput(), data.Name, "contact name"); err != nil {
		return err
	}
	if err := c.fill(c.EmailInput(), data.Email, "contact email"); err != nil {
		return err
	}
	if err := c.fill(c.SubjectInput(), data.Subject, "subject"); err != nil {
		return err
	}
	if err := c.fill(c.MessageTextArea(), data.Message, "message"); err != nil {
		return err
	}
	if uploadPath == "" {
		return nil
	}
	return c.UploadFile(uploadPath)
}

// SubmitForm submits and accepts the browser confirm dialog the site raises.
func (c *ContactPage) SubmitForm() error {
	c.Page.Once("dialog", func(d playwright.Dialog) {
		if err := d.Accept(); err != nil {
			c.logger.Warn("accepting submit dialog", zap.Error(err))
		}
	})
	if err := c.click(c.SubmitButton(), "submit button"); err != nil {
		return err
	}
	c.pause(expandPause)
	return nil
}

func (c *ContactPage) GetSuccessMessage() string {
	return c.text(c.SuccessMessage())
}

func (c *ContactPage) IsSuccessMessageVisible() bool {
	return c.visibleWithin(c.SuccessMessage(), sectionTimeout)
}

func (c *ContactPage) ClickHomeButton() error {
	return c.click(c.HomeButton(), "home button")
}

func (c *ContactPage) IsGetInTouchVisible() bool {
	return c.visible(c.GetInTouchSection())
}

func (c *ContactPage) HasContactInfo() bool {
	return c.visible(c.ContactInfoSection())
}

func (c *ContactPage) ClearForm() error {
	for _, loc := range []playwright.Locator{c.NameInput(), c.EmailInput(), c.SubjectInput(), c.MessageTextArea()} {
		if err := loc.Clear(); err != nil {
			return fmt.Errorf("clearing contact form: %w", err)
		}
	}
	return nil
}

func (c *ContactPage) validationMessage(loc playwright.Locator) string {
	v, err := loc.Evaluate("el => el.validationMessage", nil)
	if err != nil {
		c.logger.Debug("reading validation message", zap.Error(err))
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetFormValidationErrors returns the browser's constraint-validation
// messages, one "Field: message" entry per invalid field.
func (c *ContactPage) GetFormValidationErrors() []string {
	fields := []struct {
		label string
		loc   playwright.Locator
	}{
		{"Name", c.NameInput()},
		{"Email", c.EmailInput()},
		{"Subject", c.SubjectInput()},
		{"Message", c.MessageTextArea()},
	}
	var out []string
	for _, f := range fields {
		if msg := c.validationMessage(f.loc); msg != "" {
			out = append(out, f.label+": "+msg)
		}
	}
	return out
}

func (c *ContactPage) IsFormValid() bool {
	return len(c.GetFormValidationErrors()) == 0
}

func (c *ContactPage) UploadFile(path string) error {
	if err := c.UploadFileInput().SetInputFiles(path); err != nil {
		return fmt.Errorf("uploading %s: %w", path, err)
	}
	return nil
}

func (c *ContactPage) GetUploadedFileName() string {
	v, err := c.UploadFileInput().Evaluate("el => (el.files && el.files.length > 0) ? el.files[0].name : ''", nil)
	if err != nil {
		c.logger.Debug("reading uploaded file name", zap.Error(err))
		return ""
	}
	s, _ := v.(string)
	return s
}

func (c *ContactPage) AssertSubmitted() error {
	if !c.IsSuccessMessageVisible() {
		return errors.New("contact form success message not visible")
	}
	return nil
}
