// Package slug provides Ghost-compatible slug generation and collision resolution.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// Matches URL reserved characters: `:/?#[]@!$&'()*+,;=` as well as `\%<>|^~£"`.
	reservedCharsRe = regexp.MustCompile(`[:/?#\[\]@!$&'()*+,;=\\%<>|^~£"]`)
	// Matches multiple consecutive dashes.
	multipleDashRe = regexp.MustCompile(`-+`)
)

// reservedRoutes are slugs Ghost uses for its own routes.
var reservedRoutes = map[string]bool{
	"ghost": true, "ghost-admin": true, "admin": true, "wp-admin": true, "wp-login": true,
	"dashboard": true, "logout": true, "login": true, "signin": true, "signup": true,
	"signout": true, "register": true, "archive": true, "archives": true, "category": true,
	"categories": true, "tag": true, "tags": true, "page": true, "pages": true,
	"post": true, "posts": true, "user": true, "users": true, "rss": true,
}

// Slugify converts a title to a URL-safe slug the way Ghost does.
//
// Rules:
//  1. Remove URL reserved characters
//  2. Replace whitespace and periods with dashes
//  3. Collapse multiple dashes
//  4. Lowercase with Unicode full case mapping (final sigma included)
//  5. Drop a single trailing dash
//  6. Append "-post" to reserved route names
//
// Examples:
//
//	"Hello, World!"  → "hello-world"
//	"Version 2.0"    → "version-2-0"
//	"Tags"           → "tags-post"
func Slugify(title string) string {
	s := reservedCharsRe.ReplaceAllString(title, "")

	s = strings.Map(func(r rune) rune {
		if r == '.' || unicode.IsSpace(r) {
			return '-'
		}
		return r
	}, s)

	s = multipleDashRe.ReplaceAllString(s, "-")
	s = cases.Lower(language.Und).String(s)
	s = strings.TrimSuffix(s, "-")

	if reservedRoutes[s] {
		s += "-post"
	}
	return s
}
