package storeapi

import (
	"encoding/json"
	"fmt"
)

// Business response codes carried in the responseCode field. The HTTP status
// of every API response is 200; these are what callers branch on.
const (
	CodeOK               = 200
	CodeCreated          = 201
	CodeBadRequest       = 400
	CodeNotFound         = 404
	CodeMethodNotAllowed = 405
)

// Messages returned by the storefront API
const (
	MsgUserExists            = "User exists!"
	MsgUserNotFound          = "User not found!"
	MsgMethodNotSupported    = "This request method is not supported."
	MsgSearchParamMissing    = "Bad request, search_product parameter is missing in POST request."
	MsgLoginParamsMissing    = "Bad request, email or password parameter is missing in POST request."
	MsgDeleteParamsMissing   = "Bad request, email or password parameter is missing in DELETE request."
	MsgUpdateParamsMissing   = "Bad request, email or password parameter is missing in PUT request."
	MsgEmailParamMissing     = "Bad request, email parameter is missing in GET request."
	MsgUserCreated           = "User created!"
	MsgEmailExists           = "Email already exists!"
	MsgAccountDeleted        = "Account deleted!"
	MsgAccountNotFound       = "Account not found!"
	MsgUserUpdated           = "User updated!"
	MsgAccountNotFoundByMail = "Account not found with this email, try another email!"
)

// MissingParamMessage is the 400 message for a missing POST form field
func MissingParamMessage(field string) string {
	return fmt.Sprintf("Bad request, %s parameter is missing in POST request.", field)
}

// Envelope is the decoded body of any API response
type Envelope struct {
	ResponseCode int         `json:"responseCode"`
	Message      string      `json:"message,omitempty"`
	Products     []Product   `json:"products,omitempty"`
	Brands       []Brand     `json:"brands,omitempty"`
	User         *UserDetail `json:"user,omitempty"`
}

// Product as listed by productsList and searchProduct
type Product struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Price    string   `json:"price"`
	Brand    string   `json:"brand"`
	Category Category `json:"category"`
}

// Category nests the user type the way the API does
type Category struct {
	UserType UserType `json:"usertype"`
	Category string   `json:"category"`
}

type UserType struct {
	UserType string `json:"usertype"`
}

// Brand as listed by brandsList
type Brand struct {
	ID    int    `json:"id"`
	Brand string `json:"brand"`
}

// UserDetail as returned by getUserDetailByEmail
type UserDetail struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Title      string `json:"title"`
	BirthDay   string `json:"birth_day"`
	BirthMonth string `json:"birth_month"`
	BirthYear  string `json:"birth_year"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Company    string `json:"company"`
	Address1   string `json:"address1"`
	Address2   string `json:"address2"`
	Country    string `json:"country"`
	State      string `json:"state"`
	City       string `json:"city"`
	Zipcode    string `json:"zipcode"`
}

// DecodeEnvelope parses an API body. The storefront labels its JSON as
// text/html, so the content type is never consulted.
func DecodeEnvelope(body []byte) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("failed to parse API response as JSON: %w", err)
	}
	return &env, nil
}
