package schema

// CoreAuthorTable represents the 'core.author' table
type CoreAuthorTable struct {
	Table     string
	ID        string
	Name      string
	Email     string
	CreatedAt string
}

// CoreAuthor is the schema definition for core.author
var CoreAuthor = CoreAuthorTable{
	Table:     "core.author",
	ID:        "id",
	Name:      "name",
	Email:     "email",
	CreatedAt: "createdat",
}

// Columns returns the select list in scan order.
func (t CoreAuthorTable) Columns() []string {
	return []string{t.ID, t.Name, t.Email, t.CreatedAt}
}
