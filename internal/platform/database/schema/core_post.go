package schema

// CorePostTable represents the 'core.post' table
type CorePostTable struct {
	Table     string
	ID        string
	Title     string
	Content   string
	Slug      string
	AuthorID  string
	Published string
	CreatedAt string

	// Constraint names used to classify violations.
	SlugKey    string
	AuthorFKey string
}

// CorePost is the schema definition for core.post
var CorePost = CorePostTable{
	Table:     "core.post",
	ID:        "id",
	Title:     "title",
	Content:   "content",
	Slug:      "slug",
	AuthorID:  "authorid",
	Published: "published",
	CreatedAt: "createdat",

	SlugKey:    "post_slug_key",
	AuthorFKey: "post_authorid_fkey",
}

// Columns returns the select list in scan order.
func (t CorePostTable) Columns() []string {
	return []string{t.ID, t.Title, t.Content, t.Slug, t.AuthorID, t.Published, t.CreatedAt}
}
