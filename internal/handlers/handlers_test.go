package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/adyen/ecommerce-e2e/internal/models"
	"github.com/adyen/ecommerce-e2e/internal/storeapi"
)

// mockAccountStore is a mock implementation of AccountStore
type mockAccountStore struct {
	createFunc func(account *models.Account) error
	getFunc    func(email string) (*models.Account, error)
	verifyFunc func(email, password string) bool
	updateFunc func(email, password string, form map[string]string) error
	deleteFunc func(email, password string) error
}

func (m *mockAccountStore) CreateAccount(account *models.Account) error {
	if m.createFunc != nil {
		return m.createFunc(account)
	}
	return nil
}

func (m *mockAccountStore) GetAccountByEmail(email string) (*models.Account, error) {
	if m.getFunc != nil {
		return m.getFunc(email)
	}
	return nil, models.ErrAccountNotFound
}

func (m *mockAccountStore) VerifyLogin(email, password string) bool {
	if m.verifyFunc != nil {
		return m.verifyFunc(email, password)
	}
	return false
}

func (m *mockAccountStore) UpdateAccount(email, password string, form map[string]string) error {
	if m.updateFunc != nil {
		return m.updateFunc(email, password, form)
	}
	return nil
}

func (m *mockAccountStore) DeleteAccount(email, password string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(email, password)
	}
	return nil
}

func formRequest(method, path string, form map[string]string) *http.Request {
	values := url.Values{}
	for k, v := range form {
		values.Set(k, v)
	}
	req := httptest.NewRequest(method, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// decode asserts the transport contract and returns the envelope
func decode(t *testing.T, w *httptest.ResponseRecorder) *storeapi.Envelope {
	t.Helper()
	if w.Code != http.StatusOK {
		t.Fatalf("Expected HTTP 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("Expected text/html content type, got '%s'", ct)
	}
	env, err := storeapi.DecodeEnvelope(w.Body.Bytes())
	if err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	return env
}

func accountForm() map[string]string {
	return map[string]string{
		"name": "API Test User", "email": "apitest@example.com", "password": "password123",
		"title": "Mr", "birth_date": "15", "birth_month": "6", "birth_year": "1990",
		"firstname": "API", "lastname": "User", "company": "Test Company",
		"address1": "123 Test Street", "address2": "Apt 4B", "country": "United States",
		"zipcode": "12345", "state": "California", "city": "Los Angeles", "mobile_number": "+1234567890",
	}
}

func TestMethodNotSupported(t *testing.T) {
	catalog := models.DefaultCatalog()
	store := &mockAccountStore{}
	logger := zaptest.NewLogger(t)

	testCases := []struct {
		name    string
		handler http.Handler
		method  string
	}{
		{"POST productsList", NewProductsListHandler(catalog, logger), http.MethodPost},
		{"PUT brandsList", NewBrandsListHandler(catalog, logger), http.MethodPut},
		{"GET searchProduct", NewSearchProductHandler(catalog, logger), http.MethodGet},
		{"DELETE verifyLogin", NewVerifyLoginHandler(store, logger), http.MethodDelete},
		{"GET createAccount", NewCreateAccountHandler(store, logger), http.MethodGet},
		{"POST deleteAccount", NewDeleteAccountHandler(store, logger), http.MethodPost},
		{"POST updateAccount", NewUpdateAccountHandler(store, logger), http.MethodPost},
		{"POST getUserDetailByEmail", NewUserDetailHandler(store, logger), http.MethodPost},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, "/api/x", nil)
			w := httptest.NewRecorder()

			tc.handler.ServeHTTP(w, req)

			env := decode(t, w)
			if env.ResponseCode != storeapi.CodeMethodNotAllowed {
				t.Errorf("Expected responseCode 405, got %d", env.ResponseCode)
			}
			if env.Message != storeapi.MsgMethodNotSupported {
				t.Errorf("Expected '%s', got '%s'", storeapi.MsgMethodNotSupported, env.Message)
			}
		})
	}
}

func TestProductsListHandler(t *testing.T) {
	h := NewProductsListHandler(models.DefaultCatalog(), zaptest.NewLogger(t))
	w := httptest.NewRecorder()

	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, storeapi.PathProductsList, nil))

	env := decode(t, w)
	if env.ResponseCode != storeapi.CodeOK {
		t.Errorf("Expected responseCode 200, got %d", env.ResponseCode)
	}
	if len(env.Products) == 0 {
		t.Fatal("Expected products")
	}
	first := env.Products[0]
	if first.ID != 1 || first.Name != "Blue Top" || first.Price != "Rs. 500" {
		t.Errorf("Unexpected first product %+v", first)
	}
	if first.Category.UserType.UserType != "Women" {
		t.Errorf("Expected nested usertype 'Women', got '%s'", first.Category.UserType.UserType)
	}
}

func TestBrandsListHandler(t *testing.T) {
	h := NewBrandsListHandler(models.DefaultCatalog(), zaptest.NewLogger(t))
	w := httptest.NewRecorder()

	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, storeapi.PathBrandsList, nil))

	env := decode(t, w)
	if len(env.Brands) == 0 || env.Brands[0].Brand != "Polo" {
		t.Errorf("Unexpected brands %+v", env.Brands)
	}
}

func TestSearchProductHandler(t *testing.T) {
	h := NewSearchProductHandler(models.DefaultCatalog(), zaptest.NewLogger(t))

	t.Run("with term", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, formRequest(http.MethodPost, storeapi.PathSearchProduct, map[string]string{"search_product": "top"}))

		env := decode(t, w)
		if env.ResponseCode != storeapi.CodeOK {
			t.Errorf("Expected responseCode 200, got %d", env.ResponseCode)
		}
		if len(env.Products) == 0 {
			t.Error("Expected search results for 'top'")
		}
	})

	t.Run("no matches keeps products key", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, formRequest(http.MethodPost, storeapi.PathSearchProduct, map[string]string{"search_product": "zzz"}))

		var raw map[string]json.RawMessage
		if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
			t.Fatal(err)
		}
		if string(raw["products"]) != "[]" {
			t.Errorf("Expected empty products array, got %s", raw["products"])
		}
	})

	t.Run("missing parameter", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, storeapi.PathSearchProduct, nil))

		env := decode(t, w)
		if env.ResponseCode != storeapi.CodeBadRequest {
			t.Errorf("Expected responseCode 400, got %d", env.ResponseCode)
		}
		if env.Message != storeapi.MsgSearchParamMissing {
			t.Errorf("Unexpected message '%s'", env.Message)
		}
	})
}

func TestVerifyLoginHandler(t *testing.T) {
	testCases := []struct {
		name            string
		form            map[string]string
		verify          func(email, password string) bool
		expectedCode    int
		expectedMessage string
	}{
		{
			name:            "valid credentials",
			form:            map[string]string{"email": "a@example.com", "password": "pw"},
			verify:          func(email, password string) bool { return email == "a@example.com" && password == "pw" },
			expectedCode:    storeapi.CodeOK,
			expectedMessage: storeapi.MsgUserExists,
		},
		{
			name:            "unknown user",
			form:            map[string]string{"email": "b@example.com", "password": "pw"},
			verify:          func(string, string) bool { return false },
			expectedCode:    storeapi.CodeNotFound,
			expectedMessage: storeapi.MsgUserNotFound,
		},
		{
			name:            "missing password",
			form:            map[string]string{"email": "a@example.com"},
			expectedCode:    storeapi.CodeBadRequest,
			expectedMessage: storeapi.MsgLoginParamsMissing,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewVerifyLoginHandler(&mockAccountStore{verifyFunc: tc.verify}, zaptest.NewLogger(t))
			w := httptest.NewRecorder()

			h.ServeHTTP(w, formRequest(http.MethodPost, storeapi.PathVerifyLogin, tc.form))

			env := decode(t, w)
			if env.ResponseCode != tc.expectedCode {
				t.Errorf("Expected responseCode %d, got %d", tc.expectedCode, env.ResponseCode)
			}
			if env.Message != tc.expectedMessage {
				t.Errorf("Expected message '%s', got '%s'", tc.expectedMessage, env.Message)
			}
		})
	}
}

func TestCreateAccountHandler(t *testing.T) {
	testCases := []struct {
		name            string
		mutate          func(map[string]string)
		createErr       error
		expectedCode    int
		expectedMessage string
	}{
		{
			name:            "created",
			expectedCode:    storeapi.CodeCreated,
			expectedMessage: storeapi.MsgUserCreated,
		},
		{
			name:            "duplicate email",
			createErr:       models.ErrAccountExists,
			expectedCode:    storeapi.CodeBadRequest,
			expectedMessage: storeapi.MsgEmailExists,
		},
		{
			name:            "missing field",
			mutate:          func(f map[string]string) { delete(f, "zipcode") },
			expectedCode:    storeapi.CodeBadRequest,
			expectedMessage: storeapi.MissingParamMessage("zipcode"),
		},
		{
			name:            "store failure",
			createErr:       errors.New("disk full"),
			expectedCode:    storeapi.CodeBadRequest,
			expectedMessage: "disk full",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// GIVEN
			var stored *models.Account
			store := &mockAccountStore{createFunc: func(a *models.Account) error {
				stored = a
				return tc.createErr
			}}
			form := accountForm()
			if tc.mutate != nil {
				tc.mutate(form)
			}
			h := NewCreateAccountHandler(store, zaptest.NewLogger(t))
			w := httptest.NewRecorder()

			// WHEN
			h.ServeHTTP(w, formRequest(http.MethodPost, storeapi.PathCreateAccount, form))

			// THEN
			env := decode(t, w)
			if env.ResponseCode != tc.expectedCode {
				t.Errorf("Expected responseCode %d, got %d", tc.expectedCode, env.ResponseCode)
			}
			if env.Message != tc.expectedMessage {
				t.Errorf("Expected message '%s', got '%s'", tc.expectedMessage, env.Message)
			}
			if tc.expectedCode == storeapi.CodeCreated && (stored == nil || stored.Email != "apitest@example.com") {
				t.Errorf("Expected account to be stored, got %+v", stored)
			}
		})
	}
}

func TestDeleteAccountHandler_ReadsDeleteBody(t *testing.T) {
	var gotEmail, gotPassword string
	store := &mockAccountStore{deleteFunc: func(email, password string) error {
		gotEmail, gotPassword = email, password
		return nil
	}}
	h := NewDeleteAccountHandler(store, zaptest.NewLogger(t))
	w := httptest.NewRecorder()

	h.ServeHTTP(w, formRequest(http.MethodDelete, storeapi.PathDeleteAccount, map[string]string{"email": "d@example.com", "password": "pw"}))

	env := decode(t, w)
	if env.ResponseCode != storeapi.CodeOK || env.Message != storeapi.MsgAccountDeleted {
		t.Errorf("Unexpected envelope %+v", env)
	}
	if gotEmail != "d@example.com" || gotPassword != "pw" {
		t.Errorf("Credentials not read from DELETE body: %s/%s", gotEmail, gotPassword)
	}
}

func TestDeleteAccountHandler_NotFound(t *testing.T) {
	store := &mockAccountStore{deleteFunc: func(string, string) error { return models.ErrAccountNotFound }}
	h := NewDeleteAccountHandler(store, zaptest.NewLogger(t))
	w := httptest.NewRecorder()

	h.ServeHTTP(w, formRequest(http.MethodDelete, storeapi.PathDeleteAccount, map[string]string{"email": "x", "password": "y"}))

	env := decode(t, w)
	if env.ResponseCode != storeapi.CodeNotFound || env.Message != storeapi.MsgAccountNotFound {
		t.Errorf("Unexpected envelope %+v", env)
	}
}

func TestUpdateAccountHandler(t *testing.T) {
	testCases := []struct {
		name         string
		updateErr    error
		form         map[string]string
		expectedCode int
	}{
		{"updated", nil, map[string]string{"email": "u@example.com", "password": "pw", "city": "X"}, storeapi.CodeOK},
		{"not found", models.ErrAccountNotFound, map[string]string{"email": "u@example.com", "password": "pw"}, storeapi.CodeNotFound},
		{"invalid field", models.ErrInvalidTitle, map[string]string{"email": "u@example.com", "password": "pw", "title": "Sir"}, storeapi.CodeBadRequest},
		{"missing credentials", nil, map[string]string{"city": "X"}, storeapi.CodeBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := &mockAccountStore{updateFunc: func(string, string, map[string]string) error { return tc.updateErr }}
			h := NewUpdateAccountHandler(store, zaptest.NewLogger(t))
			w := httptest.NewRecorder()

			h.ServeHTTP(w, formRequest(http.MethodPut, storeapi.PathUpdateAccount, tc.form))

			env := decode(t, w)
			if env.ResponseCode != tc.expectedCode {
				t.Errorf("Expected responseCode %d, got %d", tc.expectedCode, env.ResponseCode)
			}
		})
	}
}

func TestUserDetailHandler(t *testing.T) {
	account, err := models.NewAccount(accountForm())
	if err != nil {
		t.Fatal(err)
	}
	store := &mockAccountStore{getFunc: func(email string) (*models.Account, error) {
		if email == account.Email {
			return account, nil
		}
		return nil, models.ErrAccountNotFound
	}}
	h := NewUserDetailHandler(store, zaptest.NewLogger(t))

	t.Run("found", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, storeapi.PathUserDetailByEmail+"?email=apitest@example.com", nil))

		env := decode(t, w)
		if env.ResponseCode != storeapi.CodeOK || env.User == nil {
			t.Fatalf("Unexpected envelope %+v", env)
		}
		if env.User.Email != "apitest@example.com" || env.User.City != "Los Angeles" {
			t.Errorf("Unexpected user %+v", env.User)
		}
	})

	t.Run("not found", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, storeapi.PathUserDetailByEmail+"?email=ghost@example.com", nil))

		env := decode(t, w)
		if env.ResponseCode != storeapi.CodeNotFound {
			t.Errorf("Expected responseCode 404, got %d", env.ResponseCode)
		}
	})

	t.Run("missing email", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, storeapi.PathUserDetailByEmail, nil))

		env := decode(t, w)
		if env.ResponseCode != storeapi.CodeBadRequest || env.Message != storeapi.MsgEmailParamMissing {
			t.Errorf("Unexpected envelope %+v", env)
		}
	})
}
