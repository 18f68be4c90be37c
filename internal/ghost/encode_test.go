package ghost

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDocument_Compact(t *testing.T) {
	doc := &Document{
		Meta: Meta{ExportedOn: 1, Version: ExportVersion},
		Data: Data{Posts: []Post{}, Tags: []Tag{}, PostsTags: []PostTag{}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteDocument(&buf, doc))

	out := strings.TrimSpace(buf.String())
	assert.Equal(t, `{"meta":{"exported_on":1,"version":"000"},"data":{"posts":[],"tags":[],"posts_tags":[]}}`, out)
}

func TestWriteDocument_KeepsMarkupUnescaped(t *testing.T) {
	doc := &Document{Data: Data{Posts: []Post{{Markdown: "<audio controls>&"}}}}

	var buf bytes.Buffer
	require.NoError(t, WriteDocument(&buf, doc))
	assert.Contains(t, buf.String(), `"markdown":"<audio controls>&"`)
}

func TestWriteRedirects_Indented(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRedirects(&buf, []Redirect{{From: "^/a", To: "/2020/01/02/a", Permanent: true}}))

	assert.Equal(t, "[\n  {\n    \"from\": \"^/a\",\n    \"to\": \"/2020/01/02/a\",\n    \"permanent\": true\n  }\n]\n", buf.String())
}

func TestWriteRedirects_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRedirects(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}
