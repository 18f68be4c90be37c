// Package markdown turns WordPress post bodies into Ghost Markdown.
package markdown

import (
	"strings"

	"github.com/wp2ghost/wp2ghost/internal/logger"
	"github.com/wp2ghost/wp2ghost/internal/shortcode"
)

// leftoverMarkers are shortcode openings that should not survive conversion.
var leftoverMarkers = []string{"[caption", "[audio", "[video", "[google", "[code ", "[source "}

// Converter runs the shortcode and Markdown pipeline over post content.
type Converter struct {
	renderer Renderer
	logger   *logger.Logger
}

// NewConverter creates a converter. A nil renderer selects html-to-markdown.
func NewConverter(renderer Renderer, log *logger.Logger) *Converter {
	if renderer == nil {
		renderer = NewHTMLToMarkdown()
	}
	if log == nil {
		log = logger.Discard()
	}
	return &Converter{renderer: renderer, logger: log}
}

// Convert turns raw content:encoded HTML into Markdown. The title is only
// used in diagnostics.
//
// Code listings and media elements are parked behind placeholders before the
// renderer runs and restored after it, so they reach the output byte for byte.
func (c *Converter) Convert(html, title string) (string, error) {
	html = shortcode.StripCaptions(html)

	protector, err := shortcode.NewProtector(html)
	if err != nil {
		return "", err
	}
	html = shortcode.ProtectListings(protector, html)
	html = shortcode.ProtectMedia(protector, html)
	if n := protector.Len(); n > 0 {
		c.logger.Debug("shortcodes held for rendering", "post", title, "count", n)
	}
	html = normalizeNewlines(html)

	md, err := c.renderer.Render(html)
	if err != nil {
		c.logger.Warn("markdown rendering failed, keeping html", "post", title, "error", err)
		md = html
	}

	md = protector.Restore(md)
	if protector.Leaked(md) {
		c.logger.Warn("placeholder survived conversion", "post", title)
	}

	for _, marker := range Leftovers(md) {
		c.logger.Info("detected unconverted shortcode", "marker", marker, "post", title)
	}

	return md, nil
}

// Leftovers returns the shortcode markers still present in md.
func Leftovers(md string) []string {
	var found []string
	for _, marker := range leftoverMarkers {
		if strings.Contains(md, marker) {
			found = append(found, marker)
		}
	}
	return found
}

// normalizeNewlines puts a <br> before every newline so hard line breaks
// survive HTML whitespace collapsing.
func normalizeNewlines(html string) string {
	html = strings.ReplaceAll(html, "\r\n", "\n")
	return strings.ReplaceAll(html, "\n", "<br>\n")
}
