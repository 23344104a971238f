package models

// LeadPrefill carries partially-filled contact data staged by one of the
// storefront micro-forms, read back by the main contact form. Empty
// fields are simply not prefilled.
type LeadPrefill struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Message   string `json:"message,omitempty"`
}
