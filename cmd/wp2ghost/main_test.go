package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const export = `<?xml version="1.0" encoding="UTF-8"?>
<rss xmlns:content="http://purl.org/rss/1.0/modules/content/" xmlns:wp="http://wordpress.org/export/1.2/">
<channel>
	<pubDate>Tue, 14 Jan 2014 20:25:13 +0000</pubDate>
	<item>
		<title>Hello</title>
		<pubDate>Fri, 10 Jan 2014 09:30:00 +0000</pubDate>
		<content:encoded><![CDATA[[code lang="go"]
fmt.Println("hi")
[/code]]]></content:encoded>
		<wp:post_id>1</wp:post_id>
		<wp:post_name>hello</wp:post_name>
		<wp:status>publish</wp:status>
		<wp:post_type>post</wp:post_type>
	</item>
</channel>
</rss>`

func setup(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	for _, key := range []string{"ENV", "LOG_LEVEL", "WP2GHOST_GENERATE_SLUGS", "WP2GHOST_INCLUDE_USERS", "WP2GHOST_REDIRECTS_FILE"} {
		t.Setenv(key, "")
	}
	t.Setenv("LOG_LEVEL", "error")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "export.xml"), []byte(export), 0o600))
	return dir
}

func TestRun_UsageError(t *testing.T) {
	setup(t)

	assert.Equal(t, 2, run(nil))
	assert.Equal(t, 2, run([]string{"export.xml"}))
}

func TestRun_Help(t *testing.T) {
	setup(t)

	assert.Equal(t, 0, run([]string{"-h"}))
}

func TestRun_Convert(t *testing.T) {
	dir := setup(t)

	require.Equal(t, 0, run([]string{"export.xml", "ghost.json", "--redirect"}))

	raw, err := os.ReadFile(filepath.Join(dir, "ghost.json"))
	require.NoError(t, err)

	var doc struct {
		Data struct {
			Posts []struct {
				Slug     string `json:"slug"`
				Markdown string `json:"markdown"`
			} `json:"posts"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &doc))
	require.Len(t, doc.Data.Posts, 1)
	assert.Equal(t, "hello", doc.Data.Posts[0].Slug)
	assert.Equal(t, "```go\nfmt.Println(\"hi\")\n```", doc.Data.Posts[0].Markdown)

	assert.FileExists(t, filepath.Join(dir, "redirects.json"))
}

func TestRun_StreamError(t *testing.T) {
	dir := setup(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.xml"), []byte(export[:200]), 0o600))

	assert.Equal(t, 3, run([]string{"broken.xml", "ghost.json", "--redirect"}))
	assert.NoFileExists(t, filepath.Join(dir, "ghost.json"))
	assert.NoFileExists(t, filepath.Join(dir, "redirects.json"))
}

func TestRun_MissingInput(t *testing.T) {
	setup(t)

	assert.Equal(t, 4, run([]string{"missing.xml", "ghost.json"}))
}
