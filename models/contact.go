package models

// Contact is a message sent through the contact form. Append-only, like orders.
type Contact struct {
	FullName string  `json:"full_name" validate:"required"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Message  string  `json:"message" validate:"required"`
	Consent  *bool   `json:"consent" validate:"required"`
}

// ValidateContact returns any schema violations.
func ValidateContact(c *Contact) []FieldError {
	return checkStruct(c)
}

// Doc flattens the contact message for the persistence gateway.
func (c Contact) Doc() map[string]any {
	return map[string]any{
		"full_name": c.FullName,
		"phone":     ptrVal(c.Phone),
		"email":     ptrVal(c.Email),
		"message":   c.Message,
		"consent":   *c.Consent,
	}
}
