// Package fixtures generates the test data used by the scenarios.
//
// Every generator is a pure function of the current time and a fresh random
// suffix; nothing is stored between calls. Unique variants embed an identifier
// of the form "<unix-millis>-<6 lowercase alphanumerics>" so that parallel
// scenarios never collide on account names or emails.
package fixtures

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultPassword is the password given to every generated account.
const DefaultPassword = "SecurePassword123!"

// now is replaced in tests.
var now = time.Now

// UniqueID returns a fresh identifier for embedding in names and emails.
func UniqueID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	return fmt.Sprintf("%d-%s", now().UnixMilli(), suffix)
}

// UserData describes an account to register through the UI.
type UserData struct {
	Name         string
	Email        string
	Password     string
	FirstName    string
	LastName     string
	Company      string
	Address      string
	Address2     string
	Country      string
	State        string
	City         string
	Zipcode      string
	MobileNumber string
}

// AccountInfo is the "Enter Account Information" form content.
type AccountInfo struct {
	Title      string
	Name       string
	Email      string
	Password   string
	Day        string
	Month      string
	Year       string
	Newsletter bool
	Offers     bool
}

// AddressInfo is the "Address Information" form content.
type AddressInfo struct {
	FirstName    string
	LastName     string
	Company      string
	Address      string
	Address2     string
	Country      string
	State        string
	City         string
	Zipcode      string
	MobileNumber string
}

// LoginCredentials is an email/password pair.
type LoginCredentials struct {
	Email    string
	Password string
}

// TestUser is the short form produced by GenerateTestUser.
type TestUser struct {
	Name     string
	Email    string
	Password string
}

// GenerateUniqueUser returns a new registrable user with a unique name and email.
func GenerateUniqueUser() UserData {
	id := UniqueID()
	return UserData{
		Name:         "Test Automation User " + id,
		Email:        "testuser+" + id + "@example.com",
		Password:     DefaultPassword,
		FirstName:    "Test",
		LastName:     "Automation",
		Company:      "Test Company",
		Address:      "123 Test Street",
		Address2:     "Apt 306A",
		Country:      "Canada",
		State:        "Alberta",
		City:         "Edmonton",
		Zipcode:      "T4X 0X4",
		MobileNumber: "+1234567890",
	}
}

// GenerateAccountInfo derives the account form content for user.
func GenerateAccountInfo(user UserData) AccountInfo {
	return AccountInfo{
		Title:      "Mr",
		Name:       user.Name,
		Email:      user.Email,
		Password:   user.Password,
		Day:        "15",
		Month:      "January",
		Year:       "1990",
		Newsletter: true,
		Offers:     true,
	}
}

// AddressFor splits the user's display name into first and last name.
// A single-word name gets "User" as last name.
func AddressFor(user UserData) AddressInfo {
	parts := strings.Fields(user.Name)
	first, last := "", "User"
	if len(parts) > 0 {
		first = parts[0]
	}
	if len(parts) > 1 {
		last = parts[1]
	}
	return AddressInfo{
		FirstName:    first,
		LastName:     last,
		Company:      "Test Company",
		Address:      "123 Test Street",
		Address2:     "Apt 306A",
		Country:      "Canada",
		State:        "Alberta",
		City:         "Edmonton",
		Zipcode:      "T4X 0X4",
		MobileNumber: "+1234567890",
	}
}

// GenerateTestUser returns a lightweight unique user whose name and email
// start with prefix.
func GenerateTestUser(prefix string) TestUser {
	if prefix == "" {
		prefix = "test"
	}
	id := UniqueID()
	return TestUser{
		Name:     prefix + " User " + id,
		Email:    prefix + "user+" + id + "@example.com",
		Password: "password123",
	}
}

// ValidLoginCredentials is the pre-registered account on the live site.
func ValidLoginCredentials() LoginCredentials {
	return LoginCredentials{Email: "testuser+dario@example.com", Password: "password123"}
}

// InvalidLoginCredentials never matches an account.
func InvalidLoginCredentials() LoginCredentials {
	return LoginCredentials{Email: "invalid@example.com", Password: "wrongpassword"}
}

// ExistingSignupEmail is already registered on the live site.
func ExistingSignupEmail() string {
	return "testuser@example.com"
}
