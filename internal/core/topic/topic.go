package topic

// Topic is a category that articles are published under.
type Topic struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// Global field names for validation
const (
	FieldSlug        = "slug"
	FieldDescription = "description"
)
