package ghost

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagID_JSONKeepsIDSpaces(t *testing.T) {
	tags := []Tag{
		{ID: TermID(12), Slug: "go", Name: "Go"},
		{ID: SyntheticID(3), Slug: "misc", Name: "Misc"},
	}

	data, err := json.Marshal(tags)
	require.NoError(t, err)

	assert.JSONEq(t, `[
		{"id":12,"slug":"go","name":"Go","description":""},
		{"id":"tag-3","slug":"misc","name":"Misc","description":""}
	]`, string(data))

	var back []Tag
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, tags, back)
	assert.False(t, back[0].ID.IsSynthetic())
	assert.True(t, back[1].ID.IsSynthetic())
	assert.Equal(t, "tag-3", back[1].ID.String())
}

func TestPostTag_UnresolvedTagOmitted(t *testing.T) {
	id := TermID(4)
	data, err := json.Marshal([]PostTag{{TagID: &id, PostID: 1}, {PostID: 2}})
	require.NoError(t, err)

	assert.JSONEq(t, `[{"tag_id":4,"post_id":1},{"post_id":2}]`, string(data))
}

func TestPost_JSONFields(t *testing.T) {
	author := 2
	post := Post{
		ID:          7,
		Title:       "Hello",
		Slug:        "hello",
		Markdown:    "body",
		HTML:        "body",
		Status:      StatusPublished,
		Language:    DefaultLanguage,
		AuthorID:    &author,
		CreatedAt:   1000,
		CreatedBy:   SystemUserID,
		UpdatedAt:   1000,
		UpdatedBy:   SystemUserID,
		PublishedAt: 2000,
		PublishedBy: SystemUserID,
	}

	data, err := json.Marshal(post)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))

	assert.Nil(t, fields["image"])
	assert.Contains(t, fields, "image")
	assert.Contains(t, fields, "meta_title")
	assert.Equal(t, false, fields["page"])
	assert.Equal(t, float64(2), fields["author_id"])
	assert.NotContains(t, fields, "uuid")
}
