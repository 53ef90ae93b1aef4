package storeapi

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"
)

// recordedRequest captures what the client sent
type recordedRequest struct {
	method      string
	path        string
	query       url.Values
	form        url.Values
	contentType string
}

func newRecordingServer(t *testing.T, body string) (*httptest.Server, *recordedRequest) {
	t.Helper()
	rec := &recordedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.query = r.URL.Query()
		rec.form, _ = url.ParseQuery(string(raw))
		rec.contentType = r.Header.Get("Content-Type")

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, rec
}

func TestHTTPClient_Endpoints(t *testing.T) {
	testCases := []struct {
		name           string
		call           func(c *HTTPClient) (*Response, error)
		expectedMethod string
		expectedPath   string
		expectedForm   map[string]string
		expectedQuery  map[string]string
	}{
		{
			name:           "products list",
			call:           func(c *HTTPClient) (*Response, error) { return c.ProductsList(context.Background()) },
			expectedMethod: http.MethodGet,
			expectedPath:   PathProductsList,
		},
		{
			name:           "brands list",
			call:           func(c *HTTPClient) (*Response, error) { return c.BrandsList(context.Background()) },
			expectedMethod: http.MethodGet,
			expectedPath:   PathBrandsList,
		},
		{
			name:           "search product",
			call:           func(c *HTTPClient) (*Response, error) { return c.SearchProduct(context.Background(), "top") },
			expectedMethod: http.MethodPost,
			expectedPath:   PathSearchProduct,
			expectedForm:   map[string]string{"search_product": "top"},
		},
		{
			name:           "verify login",
			call:           func(c *HTTPClient) (*Response, error) { return c.VerifyLogin(context.Background(), "a@b.c", "pw") },
			expectedMethod: http.MethodPost,
			expectedPath:   PathVerifyLogin,
			expectedForm:   map[string]string{"email": "a@b.c", "password": "pw"},
		},
		{
			name:           "delete account",
			call:           func(c *HTTPClient) (*Response, error) { return c.DeleteAccount(context.Background(), "a@b.c", "pw") },
			expectedMethod: http.MethodDelete,
			expectedPath:   PathDeleteAccount,
			expectedForm:   map[string]string{"email": "a@b.c", "password": "pw"},
		},
		{
			name: "update account",
			call: func(c *HTTPClient) (*Response, error) {
				return c.UpdateAccount(context.Background(), map[string]string{"email": "a@b.c", "city": "X"})
			},
			expectedMethod: http.MethodPut,
			expectedPath:   PathUpdateAccount,
			expectedForm:   map[string]string{"email": "a@b.c", "city": "X"},
		},
		{
			name:           "user detail",
			call:           func(c *HTTPClient) (*Response, error) { return c.UserDetailByEmail(context.Background(), "a@b.c") },
			expectedMethod: http.MethodGet,
			expectedPath:   PathUserDetailByEmail,
			expectedQuery:  map[string]string{"email": "a@b.c"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// GIVEN
			srv, rec := newRecordingServer(t, `{"responseCode": 200}`)
			client := NewClient(srv.URL+"/", 5*time.Second, zaptest.NewLogger(t))

			// WHEN
			resp, err := tc.call(client)

			// THEN
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if resp.Status() != http.StatusOK {
				t.Errorf("Expected status 200, got %d", resp.Status())
			}
			if rec.method != tc.expectedMethod {
				t.Errorf("Expected method %s, got %s", tc.expectedMethod, rec.method)
			}
			if rec.path != tc.expectedPath {
				t.Errorf("Expected path %s, got %s", tc.expectedPath, rec.path)
			}
			for k, v := range tc.expectedForm {
				if got := rec.form.Get(k); got != v {
					t.Errorf("Expected form %s='%s', got '%s'", k, v, got)
				}
			}
			if len(tc.expectedForm) > 0 && rec.contentType != "application/x-www-form-urlencoded" {
				t.Errorf("Expected form content type, got '%s'", rec.contentType)
			}
			for k, v := range tc.expectedQuery {
				if got := rec.query.Get(k); got != v {
					t.Errorf("Expected query %s='%s', got '%s'", k, v, got)
				}
			}
		})
	}
}

func TestHTTPClient_SearchWithoutTermSendsNoBody(t *testing.T) {
	srv, rec := newRecordingServer(t, `{"responseCode": 400}`)
	client := NewClient(srv.URL, time.Second, nil)

	if _, err := client.SearchProduct(context.Background(), ""); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(rec.form) != 0 {
		t.Errorf("Expected empty body, got %v", rec.form)
	}
	if rec.contentType != "" {
		t.Errorf("Expected no content type, got '%s'", rec.contentType)
	}
}

func TestHTTPClient_HeadersAreLowerCased(t *testing.T) {
	srv, _ := newRecordingServer(t, `{"responseCode": 200}`)
	client := NewClient(srv.URL, time.Second, nil)

	resp, err := client.ProductsList(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if got := resp.Headers()["content-type"]; got != "text/html; charset=utf-8" {
		t.Errorf("Expected text/html content type, got '%s'", got)
	}
}

func TestHTTPClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	client := NewClient(srv.URL, time.Second, nil)

	if _, err := client.ProductsList(context.Background()); err == nil {
		t.Error("Expected transport error, got nil")
	}
}

func TestResponse_Envelope(t *testing.T) {
	testCases := []struct {
		name          string
		status        int
		body          string
		expectedErr   error
		expectDecode  bool
		expectedCode  int
		expectedCount int
	}{
		{
			name:          "products body labelled html",
			status:        http.StatusOK,
			body:          `{"responseCode": 200, "products": [{"id": 1, "name": "Blue Top", "price": "Rs. 500", "brand": "Polo", "category": {"usertype": {"usertype": "Women"}, "category": "Tops"}}]}`,
			expectDecode:  true,
			expectedCode:  200,
			expectedCount: 1,
		},
		{
			name:         "business error inside 200",
			status:       http.StatusOK,
			body:         `{"responseCode": 405, "message": "This request method is not supported."}`,
			expectDecode: true,
			expectedCode: 405,
		},
		{
			name:        "transport error status",
			status:      http.StatusBadGateway,
			body:        "bad gateway",
			expectedErr: ErrUnexpectedStatus,
		},
		{
			name:   "not json",
			status: http.StatusOK,
			body:   "<html></html>",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp := NewResponse(tc.status, nil, []byte(tc.body))
			env, err := resp.Envelope()

			if !tc.expectDecode {
				if err == nil {
					t.Fatal("Expected error, got nil")
				}
				if tc.expectedErr != nil && !errors.Is(err, tc.expectedErr) {
					t.Errorf("Expected %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if env.ResponseCode != tc.expectedCode {
				t.Errorf("Expected responseCode %d, got %d", tc.expectedCode, env.ResponseCode)
			}
			if len(env.Products) != tc.expectedCount {
				t.Errorf("Expected %d products, got %d", tc.expectedCount, len(env.Products))
			}
		})
	}
}

func TestDecodeEnvelope_NestedCategory(t *testing.T) {
	env, err := DecodeEnvelope([]byte(`{"responseCode":200,"products":[{"id":2,"name":"Men Tshirt","price":"Rs. 400","brand":"H&M","category":{"usertype":{"usertype":"Men"},"category":"Tshirts"}}]}`))
	if err != nil {
		t.Fatal(err)
	}
	p := env.Products[0]
	if p.Category.UserType.UserType != "Men" || p.Category.Category != "Tshirts" {
		t.Errorf("Nested category not decoded: %+v", p.Category)
	}
}
