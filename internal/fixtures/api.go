package fixtures

// APIProductSearchData is the form body for POST /api/searchProduct.
type APIProductSearchData struct {
	SearchProduct string
}

// APIUserAccountData is the form body for POST /api/createAccount. Field
// names follow the form keys the API expects.
type APIUserAccountData struct {
	Name         string
	Email        string
	Password     string
	Title        string
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
}

// Form returns the account as API form values.
func (a APIUserAccountData) Form() map[string]string {
	return map[string]string{
		"name":          a.Name,
		"email":         a.Email,
		"password":      a.Password,
		"title":         a.Title,
		"birth_date":    a.BirthDate,
		"birth_month":   a.BirthMonth,
		"birth_year":    a.BirthYear,
		"firstname":     a.FirstName,
		"lastname":      a.LastName,
		"company":       a.Company,
		"address1":      a.Address1,
		"address2":      a.Address2,
		"country":       a.Country,
		"zipcode":       a.Zipcode,
		"state":         a.State,
		"city":          a.City,
		"mobile_number": a.MobileNumber,
	}
}

func APIProductSearch() APIProductSearchData {
	return APIProductSearchData{SearchProduct: "top"}
}

// APIUserAccount returns a unique account for the createAccount endpoint.
func APIUserAccount() APIUserAccountData {
	id := UniqueID()
	return APIUserAccountData{
		Name:         "API Test User " + id,
		Email:        "apitest+" + id + "@example.com",
		Password:     "password123",
		Title:        "Mr",
		BirthDate:    "15",
		BirthMonth:   "6",
		BirthYear:    "1990",
		FirstName:    "API",
		LastName:     "User",
		Company:      "Test Company",
		Address1:     "123 Test Street",
		Address2:     "Apt 4B",
		Country:      "United States",
		Zipcode:      "12345",
		State:        "California",
		City:         "Los Angeles",
		MobileNumber: "+1234567890",
	}
}

func APILoginCredentials() LoginCredentials {
	return ValidLoginCredentials()
}

func APIInvalidLoginCredentials() LoginCredentials {
	return InvalidLoginCredentials()
}
