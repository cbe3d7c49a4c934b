package models

import "fmt"

// Product categories and availability states form closed sets; any other
// value is a validation failure, with no fuzzy or case-insensitive matching.
var (
	ProductCategories = []string{
		"sobne biljke",
		"trajnica",
		"grmovi",
		"zivica",
		"povrtne sadnice",
		"zacinsko bilje",
		"sezonsko cvijece",
		"posude i aranzmani",
	}
	AvailabilityStates = []string{"na stanju", "sezonski", "rasprodano"}
)

// AvailabilityDefault is applied when an input omits availability.
const AvailabilityDefault = "na stanju"

// Product is one catalog item. Price is a pointer so a missing price can be
// told apart from a free item.
type Product struct {
	Name         string   `json:"name" validate:"required"`
	Category     string   `json:"category" validate:"required,oneof='sobne biljke' 'trajnica' 'grmovi' 'zivica' 'povrtne sadnice' 'zacinsko bilje' 'sezonsko cvijece' 'posude i aranzmani'"`
	Price        *float64 `json:"price" validate:"required,gte=0"`
	Availability string   `json:"availability" validate:"oneof='na stanju' 'sezonski' 'rasprodano'"`
	SKU          *string  `json:"sku"`
	Care         *string  `json:"care"`
	Image        *string  `json:"image" validate:"omitempty,url"`
}

// ValidateProduct applies defaults and returns any schema violations.
func ValidateProduct(p *Product) []FieldError {
	if p.Availability == "" {
		p.Availability = AvailabilityDefault
	}
	return checkStruct(p)
}

// Doc flattens the product for the persistence gateway. Optional fields that
// are absent are stored as nulls, matching how the collections were
// provisioned historically.
func (p Product) Doc() map[string]any {
	var price float64
	if p.Price != nil {
		price = *p.Price
	}
	return map[string]any{
		"name":         p.Name,
		"category":     p.Category,
		"price":        price,
		"availability": p.Availability,
		"sku":          ptrVal(p.SKU),
		"care":         ptrVal(p.Care),
		"image":        ptrVal(p.Image),
	}
}

// ProductOut is the read projection: id always present as a string, image
// coerced to string-or-absent.
type ProductOut struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Price        float64 `json:"price"`
	Availability string  `json:"availability"`
	SKU          *string `json:"sku"`
	Care         *string `json:"care"`
	Image        *string `json:"image"`
}

// ProductOutFromDoc builds the read projection from a raw store document.
func ProductOutFromDoc(doc map[string]any) ProductOut {
	return ProductOut{
		ID:           docString(doc["_id"]),
		Name:         docString(doc["name"]),
		Category:     docString(doc["category"]),
		Price:        docFloat(doc["price"]),
		Availability: docString(doc["availability"]),
		SKU:          docStringPtr(doc["sku"]),
		Care:         docStringPtr(doc["care"]),
		Image:        docStringPtr(doc["image"]),
	}
}

func ptrVal[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

func docString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func docStringPtr(v any) *string {
	if v == nil {
		return nil
	}
	s := docString(v)
	return &s
}

// docFloat tolerates the numeric types the driver may hand back.
func docFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return 0
	}
}
