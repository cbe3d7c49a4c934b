package models

// Collection names in the document store. The store itself enforces nothing
// about them; these constants are the single place they are spelled out.
const (
	CollProducts = "product"
	CollOrders   = "order"
	CollContact  = "contact"
	CollGallery  = "gallery"
	CollPosts    = "post"
)

// CollectionSchema lists the field names of one collection, for the admin
// tooling introspection endpoint.
type CollectionSchema struct {
	Name   string   `json:"name"`
	Fields []string `json:"fields"`
}

// Schemas returns the field-name lists per collection, in declaration order.
func Schemas() []CollectionSchema {
	return []CollectionSchema{
		{Name: CollProducts, Fields: []string{"name", "category", "price", "availability", "sku", "care", "image"}},
		{Name: CollOrders, Fields: []string{"full_name", "phone", "email", "message", "event_date", "pickup", "delivery", "budget_eur", "reference_images", "consent"}},
		{Name: CollContact, Fields: []string{"full_name", "phone", "email", "message", "consent"}},
		{Name: CollGallery, Fields: []string{"title", "category", "image", "photographer", "alt"}},
		{Name: CollPosts, Fields: []string{"title", "slug", "excerpt", "content", "cover_image", "published"}},
	}
}
