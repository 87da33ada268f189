package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/quill/internal/platform/database/schema"
)

/*
TestColumns verifies the select lists match the scan order of the stores.
*/
func TestColumns(t *testing.T) {
	assert.Equal(t, []string{"id", "name", "email", "createdat"}, schema.CoreAuthor.Columns())
	assert.Equal(t, []string{"id", "title", "content", "slug", "authorid", "published", "createdat"}, schema.CorePost.Columns())
	assert.Equal(t, "post_slug_key", schema.CorePost.SlugKey)
}
