package models

// Order is a bouquet/arrangement request. Orders are append-only: once
// created they are never updated through the API.
//
// Consent is a pointer on purpose: the privacy acknowledgment must be present
// in the payload, and an explicit false is still a present value. Pickup and
// Delivery default to true/false respectively when omitted.
type Order struct {
	FullName        string   `json:"full_name" validate:"required"`
	Phone           string   `json:"phone" validate:"required"`
	Email           *string  `json:"email" validate:"omitempty,email"`
	Message         *string  `json:"message"`
	EventDate       *string  `json:"event_date" validate:"omitempty,datetime=2006-01-02"`
	Pickup          *bool    `json:"pickup"`
	Delivery        *bool    `json:"delivery"`
	BudgetEUR       *float64 `json:"budget_eur" validate:"omitempty,gte=0"`
	ReferenceImages []string `json:"reference_images" validate:"omitempty,dive,url"`
	Consent         *bool    `json:"consent" validate:"required"`
}

// ValidateOrder applies defaults and returns any schema violations.
func ValidateOrder(o *Order) []FieldError {
	if o.Pickup == nil {
		t := true
		o.Pickup = &t
	}
	if o.Delivery == nil {
		f := false
		o.Delivery = &f
	}
	return checkStruct(o)
}

// Doc flattens the order for the persistence gateway.
func (o Order) Doc() map[string]any {
	var refs any
	if o.ReferenceImages != nil {
		refs = o.ReferenceImages
	}
	return map[string]any{
		"full_name":        o.FullName,
		"phone":            o.Phone,
		"email":            ptrVal(o.Email),
		"message":          ptrVal(o.Message),
		"event_date":       ptrVal(o.EventDate),
		"pickup":           *o.Pickup,
		"delivery":         *o.Delivery,
		"budget_eur":       ptrVal(o.BudgetEUR),
		"reference_images": refs,
		"consent":          *o.Consent,
	}
}
