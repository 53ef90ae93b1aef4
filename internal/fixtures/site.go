package fixtures

// ContactFormData is the "Get In Touch" form content.
type ContactFormData struct {
	Name     string
	Email    string
	Subject  string
	Message  string
	FileName string
}

// SubscriptionData is a footer newsletter subscription.
type SubscriptionData struct {
	Email string
}

func ContactForm() ContactFormData {
	return ContactFormData{
		Name:     "Test User",
		Email:    "testuser@example.com",
		Subject:  "Test Contact Form",
		Message:  "This is a test message for the contact form functionality. Please ignore this message.",
		FileName: "test-file.txt",
	}
}

// Subscription returns a unique subscription address.
func Subscription() SubscriptionData {
	return SubscriptionData{Email: "subscribe+" + UniqueID() + "@example.com"}
}
