package schema

// RefTopicsTable represents the 'topics' table
type RefTopicsTable struct {
	Table       string
	Slug        string
	Description string
}

// RefTopics is the schema definition for topics
var RefTopics = RefTopicsTable{
	Table:       "topics",
	Slug:        "slug",
	Description: "description",
}

func (t RefTopicsTable) Columns() []string {
	return []string{t.Slug, t.Description}
}
