package repository

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/adyen/ecommerce-e2e/internal/models"
)

func newAccount(t *testing.T, email string) *models.Account {
	t.Helper()
	account, err := models.NewAccount(map[string]string{
		"name": "Repo User", "email": email, "password": "password123",
		"title": "Mr", "birth_date": "1", "birth_month": "1", "birth_year": "1990",
		"firstname": "Repo", "lastname": "User", "company": "", "address1": "1 Street",
		"address2": "", "country": "Canada", "zipcode": "T4X 0X4", "state": "Alberta",
		"city": "Edmonton", "mobile_number": "+1",
	})
	if err != nil {
		t.Fatalf("Failed to build account: %v", err)
	}
	return account
}

func TestCreateAccount_DuplicateEmail(t *testing.T) {
	// GIVEN
	repo := NewAccountRepository()
	if err := repo.CreateAccount(newAccount(t, "dup@example.com")); err != nil {
		t.Fatalf("Expected first create to succeed, got %v", err)
	}

	// WHEN
	err := repo.CreateAccount(newAccount(t, "DUP@example.com"))

	// THEN
	if !errors.Is(err, models.ErrAccountExists) {
		t.Errorf("Expected ErrAccountExists, got %v", err)
	}
	if repo.Count() != 1 {
		t.Errorf("Expected 1 account, got %d", repo.Count())
	}
}

func TestGetAccountByEmail(t *testing.T) {
	repo := NewAccountRepository()
	repo.CreateAccount(newAccount(t, "find@example.com"))

	account, err := repo.GetAccountByEmail("find@example.com")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if account.Name != "Repo User" {
		t.Errorf("Expected name 'Repo User', got '%s'", account.Name)
	}

	// Mutating the copy must not leak into the store.
	account.Name = "Changed"
	again, _ := repo.GetAccountByEmail("find@example.com")
	if again.Name != "Repo User" {
		t.Errorf("Expected stored name unchanged, got '%s'", again.Name)
	}

	if _, err := repo.GetAccountByEmail("missing@example.com"); !errors.Is(err, models.ErrAccountNotFound) {
		t.Errorf("Expected ErrAccountNotFound, got %v", err)
	}
}

func TestVerifyLogin(t *testing.T) {
	repo := NewAccountRepository()
	repo.CreateAccount(newAccount(t, "login@example.com"))

	testCases := []struct {
		name     string
		email    string
		password string
		expected bool
	}{
		{"valid", "login@example.com", "password123", true},
		{"case-insensitive email", "Login@Example.com", "password123", true},
		{"wrong password", "login@example.com", "nope", false},
		{"unknown email", "ghost@example.com", "password123", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := repo.VerifyLogin(tc.email, tc.password); got != tc.expected {
				t.Errorf("Expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestUpdateAccount(t *testing.T) {
	repo := NewAccountRepository()
	repo.CreateAccount(newAccount(t, "upd@example.com"))

	if err := repo.UpdateAccount("upd@example.com", "password123", map[string]string{"city": "Calgary"}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	account, _ := repo.GetAccountByEmail("upd@example.com")
	if account.City != "Calgary" {
		t.Errorf("Expected city 'Calgary', got '%s'", account.City)
	}

	if err := repo.UpdateAccount("upd@example.com", "wrong", nil); !errors.Is(err, models.ErrAccountNotFound) {
		t.Errorf("Expected ErrAccountNotFound for wrong password, got %v", err)
	}
	if err := repo.UpdateAccount("upd@example.com", "password123", map[string]string{"title": "Lord"}); !errors.Is(err, models.ErrInvalidTitle) {
		t.Errorf("Expected ErrInvalidTitle, got %v", err)
	}
}

func TestDeleteAccount(t *testing.T) {
	repo := NewAccountRepository()
	repo.CreateAccount(newAccount(t, "del@example.com"))

	if err := repo.DeleteAccount("del@example.com", "wrong"); !errors.Is(err, models.ErrAccountNotFound) {
		t.Errorf("Expected ErrAccountNotFound for wrong password, got %v", err)
	}
	if err := repo.DeleteAccount("del@example.com", "password123"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if repo.Count() != 0 {
		t.Errorf("Expected empty repository, got %d", repo.Count())
	}
	if err := repo.DeleteAccount("del@example.com", "password123"); !errors.Is(err, models.ErrAccountNotFound) {
		t.Errorf("Expected ErrAccountNotFound on second delete, got %v", err)
	}
}

func TestCreateAccount_Concurrent(t *testing.T) {
	repo := NewAccountRepository()
	accounts := make([]*models.Account, 50)
	for i := range accounts {
		accounts[i] = newAccount(t, fmt.Sprintf("user%d@example.com", i))
	}

	var wg sync.WaitGroup
	for _, account := range accounts {
		wg.Add(1)
		go func(a *models.Account) {
			defer wg.Done()
			repo.CreateAccount(a)
		}(account)
	}
	wg.Wait()

	if repo.Count() != 50 {
		t.Errorf("Expected 50 accounts, got %d", repo.Count())
	}
}
