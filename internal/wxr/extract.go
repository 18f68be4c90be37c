// Package wxr extracts posts, pages, tags and authors from a WordPress
// eXtended RSS export in a single streaming pass.
package wxr

import (
	"context"
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/net/html/charset"

	domainerrors "github.com/wp2ghost/wp2ghost/internal/errors"
	"github.com/wp2ghost/wp2ghost/internal/ghost"
	"github.com/wp2ghost/wp2ghost/internal/logger"
	"github.com/wp2ghost/wp2ghost/internal/slug"
)

// ContentConverter turns a post body into Markdown.
type ContentConverter interface {
	Convert(html, title string) (string, error)
}

// Options controls per-post policies.
type Options struct {
	// GenerateMissingSlugs derives a slug from the title for posts that
	// have none. When false such posts are dropped.
	GenerateMissingSlugs bool
}

// Extractor reads WordPress exports.
type Extractor struct {
	converter ContentConverter
	opts      Options
	logger    *logger.Logger
}

// NewExtractor creates an extractor.
func NewExtractor(converter ContentConverter, opts Options, log *logger.Logger) *Extractor {
	if log == nil {
		log = logger.Discard()
	}
	return &Extractor{converter: converter, opts: opts, logger: log}
}

var statusMap = map[string]string{
	"publish": ghost.StatusPublished,
	"draft":   ghost.StatusDraft,
}

// Extract consumes r to the end and returns the collected export.
// Declarations (authors, categories, tags) must precede the items that
// reference them, as in every WordPress export. Any read or parse error
// fails the whole extraction.
func (e *Extractor) Extract(ctx context.Context, r io.Reader) (*Export, error) {
	x := newExport()

	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel
	dec.Entity = xml.HTMLEntity

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, domainerrors.Wrap(err, domainerrors.CodeStream, "read wordpress export")
		}

		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		if err := e.handle(dec, &se, x); err != nil {
			return nil, domainerrors.Wrapf(err, domainerrors.CodeStream, "decode <%s>", se.Name.Local)
		}
	}

	return x, nil
}

func (e *Extractor) handle(dec *xml.Decoder, se *xml.StartElement, x *Export) error {
	switch {
	case se.Name.Local == "item":
		var it item
		if err := dec.DecodeElement(&it, se); err != nil {
			return err
		}
		return e.handleItem(it, x)

	case se.Name.Local == "pubDate":
		var pd string
		if err := dec.DecodeElement(&pd, se); err != nil {
			return err
		}
		x.notePubDate(pd)

	case se.Name.Local == "author" && isWordPress(se.Name):
		var a author
		if err := dec.DecodeElement(&a, se); err != nil {
			return err
		}
		x.addUser(a)

	case se.Name.Local == "category" && isWordPress(se.Name):
		var t term
		if err := dec.DecodeElement(&t, se); err != nil {
			return err
		}
		x.addTag(ghost.Tag{
			ID:          ghost.TermID(atoi(t.TermID)),
			Slug:        t.NiceName,
			Name:        t.CatName,
			Description: t.Description,
		})

	case se.Name.Local == "tag" && isWordPress(se.Name):
		var t term
		if err := dec.DecodeElement(&t, se); err != nil {
			return err
		}
		x.addTag(ghost.Tag{
			ID:   ghost.TermID(atoi(t.TermID)),
			Slug: t.TagSlug,
			Name: t.TagName,
		})

	case se.Name.Local == "category" && se.Name.Space == "":
		var c category
		if err := dec.DecodeElement(&c, se); err != nil {
			return err
		}
		x.addCategory(c)
	}
	return nil
}

func (x *Export) notePubDate(pd string) {
	if x.sawPubDate {
		return
	}
	x.sawPubDate = true
	if t, ok := parseRSSDate(pd); ok {
		x.ExportedOn = t
	}
}

func (e *Extractor) handleItem(it item, x *Export) error {
	x.notePubDate(it.PubDate)

	// Item categories are declarations too, and come before the item.
	for _, c := range it.Categories {
		x.addCategory(c)
	}

	switch it.PostType {
	case "post", "page":
	case "attachment":
		e.handleAttachment(it, x)
		return nil
	default:
		return nil
	}

	created := contentDate(it.PostDateGMT, it.PostDate)
	published := publishDate(it.PubDate, created)

	title := it.Title
	if title == "" {
		title = ghost.DefaultTitle
	}

	postSlug := it.PostName
	if postSlug == "" {
		if !e.opts.GenerateMissingSlugs {
			e.logger.Info("post ignored as it has no slug", "link", it.Link)
			x.Dropped++
			return nil
		}
		postSlug = slug.Slugify(title)
		e.logger.Info("post has no slug, generated one", "link", it.Link, "slug", postSlug)
	}

	md, err := e.converter.Convert(it.content(), title)
	if err != nil {
		return err
	}

	status, ok := statusMap[it.Status]
	if !ok {
		status = ghost.StatusDraft
	}

	post := ghost.Post{
		ID:          atoi(it.PostID),
		UUID:        postUUID(it),
		Title:       title,
		Slug:        postSlug,
		Markdown:    md,
		HTML:        md,
		Featured:    it.IsSticky == "1",
		Page:        it.PostType == "page",
		Status:      status,
		Language:    ghost.DefaultLanguage,
		CreatedAt:   created.UnixMilli(),
		CreatedBy:   ghost.SystemUserID,
		UpdatedAt:   created.UnixMilli(),
		UpdatedBy:   ghost.SystemUserID,
		PublishedAt: published.UnixMilli(),
		PublishedBy: ghost.SystemUserID,
	}
	if id, ok := x.AuthorID(it.Creator); ok {
		post.AuthorID = &id
	}

	for _, c := range it.Categories {
		if c.NiceName == "" {
			continue
		}
		link := ghost.PostTag{PostID: post.ID}
		if id, ok := x.TagID(c.NiceName); ok {
			link.TagID = &id
		}
		x.PostsTags = append(x.PostsTags, link)
	}

	x.Posts = append(x.Posts, post)
	e.logger.Debug("post extracted", "id", post.ID, "slug", post.Slug, "status", post.Status)
	return nil
}

// handleAttachment records the URL of an attachment that belongs to a post.
// The last attachment seen for a parent wins.
func (e *Extractor) handleAttachment(it item, x *Export) {
	parent := atoi(it.PostParent)
	if parent == 0 {
		return
	}

	url := strings.TrimSpace(it.GUID)
	if url == "" {
		url = strings.TrimSpace(it.AttachmentURL)
	}
	if url == "" {
		return
	}
	x.FeaturedImages[parent] = url
}

// postUUID derives a stable UUID so re-running a conversion yields the same ids.
func postUUID(it item) string {
	key := strings.TrimSpace(it.GUID)
	if key == "" {
		key = strings.TrimSpace(it.Link)
	}
	if key == "" {
		key = "wordpress-post:" + strings.TrimSpace(it.PostID)
	}
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(key)).String()
}

func atoi(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
