package repository

import (
	"fmt"
	"strings"
	"sync"

	"github.com/adyen/ecommerce-e2e/internal/models"
)

// AccountRepository stores accounts in memory, keyed by lower-cased email
type AccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*models.Account
}

// NewAccountRepository creates an empty account repository
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		accounts: make(map[string]*models.Account),
	}
}

func key(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreateAccount stores a new account; the email must be unused
func (r *AccountRepository) CreateAccount(account *models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := key(account.Email)
	if _, ok := r.accounts[k]; ok {
		return fmt.Errorf("failed to create account %s: %w", account.Email, models.ErrAccountExists)
	}
	r.accounts[k] = account
	return nil
}

// GetAccountByEmail returns a copy of the account registered under email
func (r *AccountRepository) GetAccountByEmail(email string) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[key(email)]
	if !ok {
		return nil, models.ErrAccountNotFound
	}
	cp := *account
	return &cp, nil
}

// VerifyLogin reports whether email and password identify an account
func (r *AccountRepository) VerifyLogin(email, password string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[key(email)]
	return ok && account.CheckPassword(password)
}

// UpdateAccount applies form to the account identified by email and password
func (r *AccountRepository) UpdateAccount(email, password string, form map[string]string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[key(email)]
	if !ok || !account.CheckPassword(password) {
		return models.ErrAccountNotFound
	}
	if err := account.Update(form); err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}
	return nil
}

// DeleteAccount removes the account identified by email and password
func (r *AccountRepository) DeleteAccount(email, password string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := key(email)
	account, ok := r.accounts[k]
	if !ok || !account.CheckPassword(password) {
		return models.ErrAccountNotFound
	}
	delete(r.accounts, k)
	return nil
}

// Count returns the number of stored accounts
func (r *AccountRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.accounts)
}
