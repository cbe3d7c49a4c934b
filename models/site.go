package models

// Gallery and Post collections are provisioned out-of-band and only read
// through the API, but their schema rules are kept here so out-of-band
// tooling can validate against the same contract the API documents.

// GalleryCategories is the closed set of gallery sections.
var GalleryCategories = []string{"staklenik", "buketi", "krajobraz", "sezonske vitrine"}

// Gallery is one credited photo in the site gallery.
type Gallery struct {
	Title        string  `json:"title" validate:"required"`
	Category     string  `json:"category" validate:"required,oneof='staklenik' 'buketi' 'krajobraz' 'sezonske vitrine'"`
	Image        string  `json:"image" validate:"required,url"`
	Photographer *string `json:"photographer"`
	Alt          *string `json:"alt"`
}

// ValidateGallery returns any schema violations.
func ValidateGallery(g *Gallery) []FieldError {
	return checkStruct(g)
}

// Post is a blog/tips entry. Only published posts are listable.
type Post struct {
	Title      string  `json:"title" validate:"required"`
	Slug       string  `json:"slug" validate:"required"`
	Excerpt    *string `json:"excerpt"`
	Content    string  `json:"content" validate:"required"`
	CoverImage *string `json:"cover_image" validate:"omitempty,url"`
	Published  *bool   `json:"published"`
}

// ValidatePost applies the published default and returns any schema violations.
func ValidatePost(p *Post) []FieldError {
	if p.Published == nil {
		t := true
		p.Published = &t
	}
	return checkStruct(p)
}
