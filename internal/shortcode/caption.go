package shortcode

import "regexp"

// Matches [caption ...]inner[/caption] on a single line, capturing inner.
var captionRe = regexp.MustCompile(`\[caption[^\]]*\](.+?)\[/caption\]`)

// StripCaptions removes [caption] wrappers and keeps the wrapped content.
// Markdown has no notion of a caption.
func StripCaptions(html string) string {
	return captionRe.ReplaceAllString(html, "$1")
}
