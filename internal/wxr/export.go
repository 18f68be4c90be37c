package wxr

import (
	"time"

	"github.com/wp2ghost/wp2ghost/internal/ghost"
)

// Export holds everything collected from one WordPress export. It is owned
// by a single extraction and read-only once Extract returns.
type Export struct {
	// ExportedOn is the first <pubDate> in the stream; zero if there was none.
	ExportedOn time.Time

	Users     []ghost.User
	Tags      []ghost.Tag
	PostsTags []ghost.PostTag
	Posts     []ghost.Post

	// FeaturedImages maps a parent post id to its attachment URL.
	FeaturedImages map[int]string

	// Dropped counts posts skipped for having no slug.
	Dropped int

	sawPubDate       bool
	authorIDs        map[string]int
	tagIDs           map[string]ghost.TagID
	nextSyntheticTag int
}

func newExport() *Export {
	return &Export{
		Users:            []ghost.User{},
		Tags:             []ghost.Tag{},
		PostsTags:        []ghost.PostTag{},
		Posts:            []ghost.Post{},
		FeaturedImages:   make(map[int]string),
		authorIDs:        make(map[string]int),
		tagIDs:           make(map[string]ghost.TagID),
		nextSyntheticTag: 1,
	}
}

// AuthorID returns the user id registered for a WordPress login.
func (x *Export) AuthorID(login string) (int, bool) {
	id, ok := x.authorIDs[login]
	return id, ok
}

// TagID returns the tag id registered for a slug.
func (x *Export) TagID(slug string) (ghost.TagID, bool) {
	id, ok := x.tagIDs[slug]
	return id, ok
}

func (x *Export) addUser(a author) {
	u := ghost.User{
		ID:    len(x.Users) + 1,
		Name:  a.DisplayName,
		Slug:  a.Login,
		Email: a.Email,
	}
	x.Users = append(x.Users, u)
	x.authorIDs[u.Slug] = u.ID
}

// addTag registers t unless its slug is taken. First writer wins.
func (x *Export) addTag(t ghost.Tag) bool {
	if _, ok := x.tagIDs[t.Slug]; ok {
		return false
	}
	x.Tags = append(x.Tags, t)
	x.tagIDs[t.Slug] = t.ID
	return true
}

// addCategory registers a bare <category>. Every category with a nicename
// consumes a synthetic id, even when its slug is already taken.
func (x *Export) addCategory(c category) {
	if c.NiceName == "" {
		return
	}
	id := ghost.SyntheticID(x.nextSyntheticTag)
	x.nextSyntheticTag++
	x.addTag(ghost.Tag{ID: id, Slug: c.NiceName, Name: c.Name})
}
