// Package migrate turns an extracted WordPress export into a Ghost import
// document and redirects, and drives whole conversions.
package migrate

import (
	"time"

	"github.com/wp2ghost/wp2ghost/internal/ghost"
	"github.com/wp2ghost/wp2ghost/internal/logger"
	"github.com/wp2ghost/wp2ghost/internal/slug"
	"github.com/wp2ghost/wp2ghost/internal/wxr"
)

// AssembleOptions controls the shape of the document.
type AssembleOptions struct {
	// IncludeUsers keeps the users collection. Ghost versions that reject
	// user imports need it off.
	IncludeUsers bool
}

// Result is the output of one conversion.
type Result struct {
	Document  *ghost.Document
	Redirects []ghost.Redirect
	Summary   Summary
}

// Summary counts what a conversion produced.
type Summary struct {
	Posts          int
	Pages          int
	Drafts         int
	Tags           int
	Users          int
	FeaturedImages int
	Renamed        int
	Dropped        int
}

// Assemble deduplicates slugs in encounter order, attaches featured images
// and builds the document plus one redirect per post.
func Assemble(x *wxr.Export, opts AssembleOptions, log *logger.Logger) *Result {
	if log == nil {
		log = logger.Discard()
	}

	registry := slug.NewRegistry()
	posts := make([]ghost.Post, 0, len(x.Posts))
	redirects := make([]ghost.Redirect, 0, len(x.Posts))
	summary := Summary{Tags: len(x.Tags), Dropped: x.Dropped}

	for _, p := range x.Posts {
		resolved, collided := registry.Resolve(p.Slug, p.Title)
		if collided {
			log.Warn("slug repeated, renamed", "post", p.Title, "slug", p.Slug, "renamed", resolved)
			summary.Renamed++
		}
		p.Slug = resolved

		if url, ok := x.FeaturedImages[p.ID]; ok {
			p.Image = &url
			summary.FeaturedImages++
		}

		if p.Page {
			summary.Pages++
		} else {
			summary.Posts++
		}
		if p.Status == ghost.StatusDraft {
			summary.Drafts++
		}

		posts = append(posts, p)
		redirects = append(redirects, ghost.NewRedirect(p.Slug, time.UnixMilli(p.PublishedAt)))
	}

	doc := &ghost.Document{
		Meta: ghost.Meta{
			ExportedOn: exportedOn(x),
			Version:    ghost.ExportVersion,
		},
		Data: ghost.Data{
			Posts:     posts,
			Tags:      x.Tags,
			PostsTags: x.PostsTags,
		},
	}
	if opts.IncludeUsers {
		users := x.Users
		if users == nil {
			users = []ghost.User{}
		}
		doc.Data.Users = &users
		summary.Users = len(users)
	}

	return &Result{Document: doc, Redirects: redirects, Summary: summary}
}

// exportedOn returns the export date in epoch microseconds at millisecond
// precision, or 0 when the export carried no date.
func exportedOn(x *wxr.Export) int64 {
	if x.ExportedOn.IsZero() {
		return 0
	}
	return x.ExportedOn.UnixMilli() * 1000
}
