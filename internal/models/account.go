package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Title is the honorific selected at registration
type Title string

// Titles accepted by the account form
const (
	TitleMr   Title = "Mr"
	TitleMrs  Title = "Mrs"
	TitleMiss Title = "Miss"
)

// Account represents a registered storefront customer
type Account struct {
	ID           string
	Name         string
	Email        string
	Password     string
	Title        Title
	BirthDate    string
	BirthMonth   string
	BirthYear    string
	FirstName    string
	LastName     string
	Company      string
	Address1     string
	Address2     string
	Country      string
	Zipcode      string
	State        string
	City         string
	MobileNumber string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Domain errors
var (
	ErrAccountExists   = errors.New("email already exists")
	ErrAccountNotFound = errors.New("account not found")
	ErrInvalidEmail    = errors.New("email must contain '@'")
	ErrInvalidTitle    = errors.New("title must be Mr, Mrs or Miss")
)

// MissingFieldError names the first required form field that was absent
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s parameter is missing", e.Field)
}

// RequiredAccountFields lists the form keys createAccount insists on, in the order they are checked
var RequiredAccountFields = []string{
	"name", "email", "password", "title", "birth_date", "birth_month", "birth_year",
	"firstname", "lastname", "company", "address1", "address2", "country",
	"zipcode", "state", "city", "mobile_number",
}

// NewAccount creates an account from createAccount form values
func NewAccount(form map[string]string) (*Account, error) {
	for _, field := range RequiredAccountFields {
		if _, ok := form[field]; !ok {
			return nil, &MissingFieldError{Field: field}
		}
	}
	if !strings.Contains(form["email"], "@") {
		return nil, ErrInvalidEmail
	}

	now := time.Now()
	account := &Account{
		ID:        uuid.New().String(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := account.apply(form); err != nil {
		return nil, err
	}
	return account, nil
}

// Update overwrites the profile fields present in form. Email is the
// identity and cannot change.
func (a *Account) Update(form map[string]string) error {
	patch := make(map[string]string, len(form))
	for k, v := range form {
		if k != "email" {
			patch[k] = v
		}
	}
	if err := a.apply(patch); err != nil {
		return err
	}
	a.UpdatedAt = time.Now()
	return nil
}

// CheckPassword reports whether password matches
func (a *Account) CheckPassword(password string) bool {
	return a.Password == password
}

func (a *Account) apply(form map[string]string) error {
	if v, ok := form["title"]; ok {
		switch Title(v) {
		case TitleMr, TitleMrs, TitleMiss:
			a.Title = Title(v)
		default:
			return ErrInvalidTitle
		}
	}

	fields := map[string]*string{
		"name":          &a.Name,
		"email":         &a.Email,
		"password":      &a.Password,
		"birth_date":    &a.BirthDate,
		"birth_month":   &a.BirthMonth,
		"birth_year":    &a.BirthYear,
		"firstname":     &a.FirstName,
		"lastname":      &a.LastName,
		"company":       &a.Company,
		"address1":      &a.Address1,
		"address2":      &a.Address2,
		"country":       &a.Country,
		"zipcode":       &a.Zipcode,
		"state":         &a.State,
		"city":          &a.City,
		"mobile_number": &a.MobileNumber,
	}
	for key, dst := range fields {
		if v, ok := form[key]; ok {
			*dst = v
		}
	}
	return nil
}
