// Package verify holds the assertion helpers shared by scenarios: single-shot
// checks over API responses, and multi-step validators over page state.
// Every check returns an error wrapping ErrAssertion that names the expected
// and actual values; nil means the expectation held.
package verify

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/samber/lo"

	"github.com/adyen/ecommerce-e2e/internal/storeapi"
)

// ErrAssertion marks a failed expectation.
var ErrAssertion = errors.New("assertion failed")

func failf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrAssertion, fmt.Sprintf(format, args...))
}

// Response is an API response. Both *storeapi.Response and
// playwright.APIResponse satisfy it.
type Response interface {
	Status() int
	Headers() map[string]string
	Body() ([]byte, error)
}

// Expectations configures ValidateAPIResponse. Zero values are not checked,
// except ExpectedStatus which defaults to 200.
type Expectations struct {
	ExpectedStatus      int
	ExpectedContentType string
	RequiredFields      []string
	ExpectedMessage     string
}

// ValidateAPIResponse checks status, content type, required top-level fields
// and message substring, stopping at the first mismatch.
func ValidateAPIResponse(resp Response, exp Expectations) error {
	want := exp.ExpectedStatus
	if want == 0 {
		want = http.StatusOK
	}
	if resp.Status() != want {
		return failf("API returned status %d, expected %d", resp.Status(), want)
	}

	if exp.ExpectedContentType != "" {
		ct := headerValue(resp.Headers(), "content-type")
		if !strings.Contains(ct, exp.ExpectedContentType) {
			return failf("API response content type mismatch: expected %q in %q", exp.ExpectedContentType, ct)
		}
	}

	raw, err := rawBody(resp)
	if err != nil {
		return err
	}

	for _, field := range exp.RequiredFields {
		if _, ok := raw[field]; !ok {
			return failf("API response missing required field: %s", field)
		}
	}

	if exp.ExpectedMessage != "" {
		msg := firstString(raw, "message", "msg", "error")
		if !strings.Contains(msg, exp.ExpectedMessage) {
			return failf("API response message mismatch: expected %q in %q", exp.ExpectedMessage, msg)
		}
	}
	return nil
}

// AssertAPIUserExists checks a verifyLogin success.
func AssertAPIUserExists(resp Response) error {
	env, err := envelope(resp)
	if err != nil {
		return err
	}
	if env.ResponseCode == storeapi.CodeNotFound {
		return failf("user not found: %s", env.Message)
	}
	return expectCodeAndMessage(env, storeapi.CodeOK, storeapi.MsgUserExists)
}

// AssertAPIUserNotFound checks a verifyLogin miss.
func AssertAPIUserNotFound(resp Response) error {
	return assertCodeAndMessage(resp, storeapi.CodeNotFound, storeapi.MsgUserNotFound)
}

// AssertAPIMethodNotSupported checks the 405 business response.
func AssertAPIMethodNotSupported(resp Response) error {
	return assertCodeAndMessage(resp, storeapi.CodeMethodNotAllowed, storeapi.MsgMethodNotSupported)
}

// AssertAPIBadRequest checks a 400 business response containing message.
func AssertAPIBadRequest(resp Response, message string) error {
	return assertCodeAndMessage(resp, storeapi.CodeBadRequest, message)
}

// AssertAPIUserCreated checks a createAccount success.
func AssertAPIUserCreated(resp Response) error {
	return assertCodeAndMessage(resp, storeapi.CodeCreated, storeapi.MsgUserCreated)
}

// AssertAPIAccountDeleted checks a deleteAccount success.
func AssertAPIAccountDeleted(resp Response) error {
	return assertCodeAndMessage(resp, storeapi.CodeOK, storeapi.MsgAccountDeleted)
}

// AssertAPIUserUpdated checks an updateAccount success.
func AssertAPIUserUpdated(resp Response) error {
	return assertCodeAndMessage(resp, storeapi.CodeOK, storeapi.MsgUserUpdated)
}

// AssertAPIProductsList checks a non-empty product list whose first entry
// carries id, name and price.
func AssertAPIProductsList(resp Response) error {
	raw, err := rawOK(resp)
	if err != nil {
		return err
	}
	items, err := nonEmptyArray(raw, "products")
	if err != nil {
		return err
	}
	return hasFields(items[0], "product", "id", "name", "price")
}

// AssertAPIBrandsList checks a non-empty brand list whose first entry carries
// id and brand.
func AssertAPIBrandsList(resp Response) error {
	raw, err := rawOK(resp)
	if err != nil {
		return err
	}
	items, err := nonEmptyArray(raw, "brands")
	if err != nil {
		return err
	}
	return hasFields(items[0], "brand", "id", "brand")
}

// AssertAPISearchResults checks a search response. An empty result set
// passes; otherwise at least one product name must contain term.
func AssertAPISearchResults(resp Response, term string) error {
	raw, err := rawOK(resp)
	if err != nil {
		return err
	}
	if _, ok := raw["products"]; !ok {
		return failf("search response missing products")
	}

	env, err := envelope(resp)
	if err != nil {
		return err
	}
	if len(env.Products) == 0 {
		return nil
	}

	needle := strings.ToLower(term)
	matched := lo.SomeBy(env.Products, func(p storeapi.Product) bool {
		return strings.Contains(strings.ToLower(p.Name), needle)
	})
	if !matched {
		names := lo.Map(env.Products, func(p storeapi.Product, _ int) string { return p.Name })
		return failf("no product name contains %q: %v", term, names)
	}
	return nil
}

// AssertAPIUserDetail checks a getUserDetailByEmail hit for email.
func AssertAPIUserDetail(resp Response, email string) error {
	env, err := envelope(resp)
	if err != nil {
		return err
	}
	if env.ResponseCode != storeapi.CodeOK {
		return failf("expected responseCode %d, got %d (%s)", storeapi.CodeOK, env.ResponseCode, env.Message)
	}
	if env.User == nil {
		return failf("user detail missing from response")
	}
	if !strings.EqualFold(env.User.Email, email) {
		return failf("expected user %q, got %q", email, env.User.Email)
	}
	return nil
}

func assertCodeAndMessage(resp Response, code int, message string) error {
	env, err := envelope(resp)
	if err != nil {
		return err
	}
	return expectCodeAndMessage(env, code, message)
}

func expectCodeAndMessage(env *storeapi.Envelope, code int, message string) error {
	if env.ResponseCode != code {
		return failf("expected responseCode %d, got %d (%s)", code, env.ResponseCode, env.Message)
	}
	if !strings.Contains(env.Message, message) {
		return failf("expected message containing %q, got %q", message, env.Message)
	}
	return nil
}

// envelope checks the HTTP 200 transport status and decodes the body.
func envelope(resp Response) (*storeapi.Envelope, error) {
	if resp.Status() != http.StatusOK {
		return nil, failf("API returned status %d, expected %d", resp.Status(), http.StatusOK)
	}
	body, err := resp.Body()
	if err != nil {
		return nil, fmt.Errorf("failed to read API response: %w", err)
	}
	return storeapi.DecodeEnvelope(body)
}

func rawOK(resp Response) (map[string]json.RawMessage, error) {
	env, err := envelope(resp)
	if err != nil {
		return nil, err
	}
	if env.ResponseCode != storeapi.CodeOK {
		return nil, failf("expected responseCode %d, got %d (%s)", storeapi.CodeOK, env.ResponseCode, env.Message)
	}
	return rawBody(resp)
}

func rawBody(resp Response) (map[string]json.RawMessage, error) {
	body, err := resp.Body()
	if err != nil {
		return nil, fmt.Errorf("failed to read API response: %w", err)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse API response as JSON: %w", err)
	}
	return raw, nil
}

func nonEmptyArray(raw map[string]json.RawMessage, key string) ([]map[string]json.RawMessage, error) {
	value, ok := raw[key]
	if !ok {
		return nil, failf("response missing %s", key)
	}
	var items []map[string]json.RawMessage
	if err := json.Unmarshal(value, &items); err != nil {
		return nil, failf("%s is not an array of objects: %v", key, err)
	}
	if len(items) == 0 {
		return nil, failf("expected at least one entry in %s", key)
	}
	return items, nil
}

func hasFields(item map[string]json.RawMessage, kind string, fields ...string) error {
	for _, f := range fields {
		if _, ok := item[f]; !ok {
			return failf("first %s missing field %q", kind, f)
		}
	}
	return nil
}

func headerValue(headers map[string]string, name string) string {
	for k, v := range headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}

func firstString(raw map[string]json.RawMessage, keys ...string) string {
	for _, k := range keys {
		value, ok := raw[k]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(value, &s); err == nil && s != "" {
			return s
		}
	}
	return ""
}
