// Package ghost models the Ghost 1.x import document and redirects file.
package ghost

import (
	"encoding/json"
	"strconv"
)

// ExportVersion is the version written into every document's meta block.
const ExportVersion = "000"

// Post statuses.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Placeholder values for fields WordPress has no equivalent for.
const (
	DefaultLanguage = "en_US"
	DefaultTitle    = "Untitled post"
	SystemUserID    = 1
)

// Document is the root of a Ghost import file.
type Document struct {
	Meta Meta `json:"meta"`
	Data Data `json:"data"`
}

// Meta describes the export itself.
type Meta struct {
	// ExportedOn is in epoch microseconds.
	ExportedOn int64  `json:"exported_on"`
	Version    string `json:"version"`
}

// Data holds the imported collections. A nil Users omits the collection for
// Ghost versions that cannot import it; a non-nil one is always written,
// even when empty.
type Data struct {
	Posts     []Post    `json:"posts"`
	Tags      []Tag     `json:"tags"`
	PostsTags []PostTag `json:"posts_tags"`
	Users     *[]User   `json:"users,omitempty"`
}

// Post is a Ghost post or page. Timestamps are epoch milliseconds.
type Post struct {
	ID              int     `json:"id"`
	UUID            string  `json:"uuid,omitempty"`
	Title           string  `json:"title"`
	Slug            string  `json:"slug"`
	Markdown        string  `json:"markdown"`
	HTML            string  `json:"html"`
	Image           *string `json:"image"`
	Featured        bool    `json:"featured"`
	Page            bool    `json:"page"`
	Status          string  `json:"status"`
	Language        string  `json:"language"`
	MetaTitle       *string `json:"meta_title"`
	MetaDescription *string `json:"meta_description"`
	AuthorID        *int    `json:"author_id,omitempty"`
	CreatedAt       int64   `json:"created_at"`
	CreatedBy       int     `json:"created_by"`
	UpdatedAt       int64   `json:"updated_at"`
	UpdatedBy       int     `json:"updated_by"`
	PublishedAt     int64   `json:"published_at"`
	PublishedBy     int     `json:"published_by"`
}

// Tag is a Ghost tag built from a WordPress category or tag.
type Tag struct {
	ID          TagID  `json:"id"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// PostTag links a post to a tag. TagID is nil when the referenced
// nicename was never registered.
type PostTag struct {
	TagID  *TagID `json:"tag_id,omitempty"`
	PostID int    `json:"post_id"`
}

// User is a Ghost user built from a WordPress author.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Email string `json:"email"`
}

// TagID is either a numeric WordPress term id or a synthetic string id
// ("tag-N") for tags that only appeared as bare <category> elements. The
// two id spaces share the JSON field and keep their JSON types.
type TagID struct {
	term      int
	synthetic string
}

// TermID returns a numeric tag id.
func TermID(id int) TagID {
	return TagID{term: id}
}

// SyntheticID returns the string id "tag-n".
func SyntheticID(n int) TagID {
	return TagID{synthetic: "tag-" + strconv.Itoa(n)}
}

// IsSynthetic reports whether the id is a "tag-N" id.
func (id TagID) IsSynthetic() bool {
	return id.synthetic != ""
}

// String returns the id as text.
func (id TagID) String() string {
	if id.synthetic != "" {
		return id.synthetic
	}
	return strconv.Itoa(id.term)
}

// MarshalJSON writes term ids as numbers and synthetic ids as strings.
func (id TagID) MarshalJSON() ([]byte, error) {
	if id.synthetic != "" {
		return json.Marshal(id.synthetic)
	}
	return json.Marshal(id.term)
}

// UnmarshalJSON accepts both a number and a string.
func (id *TagID) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*id = TagID{term: n}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*id = TagID{synthetic: s}
	return nil
}
