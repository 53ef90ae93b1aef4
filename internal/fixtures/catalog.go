package fixtures

// ProductSearchData is a catalog search term with its expected minimum hits.
type ProductSearchData struct {
	SearchTerm           string
	ExpectedResultsCount int
}

// ProductReviewData is the content of a product review.
type ProductReviewData struct {
	Name   string
	Email  string
	Review string
}

// CategoryData identifies a category link and the header it produces.
type CategoryData struct {
	Category     string
	Subcategory  string
	ExpectedText string
}

// CartProductData is an expected cart line.
type CartProductData struct {
	ProductID     int
	Quantity      int
	ExpectedPrice string
}

// PaymentData is the card form content.
type PaymentData struct {
	NameOnCard      string
	CardNumber      string
	CVC             string
	ExpirationMonth string
	ExpirationYear  string
}

// CheckoutCommentData is the order comment typed before placing an order.
type CheckoutCommentData struct {
	Comment string
}

func ProductSearch() ProductSearchData {
	return ProductSearchData{SearchTerm: "tshirt", ExpectedResultsCount: 3}
}

func ProductReview() ProductReviewData {
	return ProductReviewData{
		Name:   "John Reviewer",
		Email:  "reviewer@example.com",
		Review: "This is a great product! I highly recommend it for anyone looking for quality and style.",
	}
}

func WomenDressCategory() CategoryData {
	return CategoryData{Category: "Women", Subcategory: "Dress", ExpectedText: "WOMEN - DRESS PRODUCTS"}
}

func MenTshirtsCategory() CategoryData {
	return CategoryData{Category: "Men", Subcategory: "Tshirts", ExpectedText: "MEN - TSHIRTS PRODUCTS"}
}

// CartProducts are the first two catalog products at quantity one.
func CartProducts() []CartProductData {
	return []CartProductData{
		{ProductID: 1, Quantity: 1, ExpectedPrice: "Rs. 500"},
		{ProductID: 2, Quantity: 1, ExpectedPrice: "Rs. 400"},
	}
}

// SingleProductCart is product 1 added four times from its detail page.
func SingleProductCart() CartProductData {
	return CartProductData{ProductID: 1, Quantity: 4, ExpectedPrice: "Rs. 2000"}
}

func Payment() PaymentData {
	return PaymentData{
		NameOnCard:      "John Doe",
		CardNumber:      "4242424242424242",
		CVC:             "123",
		ExpirationMonth: "12",
		ExpirationYear:  "2027",
	}
}

func CheckoutComment() CheckoutCommentData {
	return CheckoutCommentData{Comment: "Please deliver during business hours. Thank you!"}
}
