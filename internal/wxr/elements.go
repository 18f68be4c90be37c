package wxr

import (
	"encoding/xml"
	"strings"
)

const (
	contentSpace   = "http://purl.org/rss/1.0/modules/content/"
	wordpressSpace = "http://wordpress.org/export/"
)

// Elements are matched on their local name; WordPress has shipped several
// export namespace versions (1.0 to 1.2).

// item is a post, page, attachment or any other WordPress post type.
type item struct {
	Title         string     `xml:"title"`
	Link          string     `xml:"link"`
	PubDate       string     `xml:"pubDate"`
	GUID          string     `xml:"guid"`
	Creator       string     `xml:"creator"` // dc
	Encoded       []encoded  `xml:"encoded"` // content or excerpt
	PostID        string     `xml:"post_id"`
	PostDate      string     `xml:"post_date"`
	PostDateGMT   string     `xml:"post_date_gmt"`
	PostName      string     `xml:"post_name"`
	Status        string     `xml:"status"` // publish, draft, inherit, trash ...
	PostParent    string     `xml:"post_parent"`
	PostType      string     `xml:"post_type"`
	IsSticky      string     `xml:"is_sticky"`
	AttachmentURL string     `xml:"attachment_url"`
	Categories    []category `xml:"category"`
}

// content returns the content:encoded body. CDATA or escaped text is
// returned as text; when the element has child markup the raw inner XML is
// kept so nothing is lost.
func (it item) content() string {
	for _, enc := range it.Encoded {
		if enc.XMLName.Space != contentSpace && enc.XMLName.Space != "content" {
			continue
		}
		if len(enc.Children) > 0 {
			return enc.Inner
		}
		return enc.Text
	}
	return ""
}

// encoded is a content:encoded or excerpt:encoded payload.
type encoded struct {
	XMLName  xml.Name
	Text     string       `xml:",chardata"`
	Inner    string       `xml:",innerxml"`
	Children []anyElement `xml:",any"`
}

type anyElement struct {
	XMLName xml.Name
}

// category is a bare <category> element, e.g.
// <category domain="post_tag" nicename="compilers"><![CDATA[Compilers]]></category>
type category struct {
	Domain   string `xml:"domain,attr"` // category, post_tag, nav_menu ...
	NiceName string `xml:"nicename,attr"`
	Name     string `xml:",chardata"`
}

// author is a <wp:author> element.
type author struct {
	Login       string `xml:"author_login"`
	Email       string `xml:"author_email"`
	DisplayName string `xml:"author_display_name"`
}

// term is a <wp:category> or <wp:tag> element.
type term struct {
	TermID      string `xml:"term_id"`
	NiceName    string `xml:"category_nicename"`
	CatName     string `xml:"cat_name"`
	Description string `xml:"category_description"`
	TagSlug     string `xml:"tag_slug"`
	TagName     string `xml:"tag_name"`
}

func isWordPress(name xml.Name) bool {
	return name.Space == "wp" || strings.HasPrefix(name.Space, wordpressSpace)
}
