package shortcode

import "strings"

// Listing is one [code] or [sourcecode] block found in post content.
//
// Grammar of the opening tag (keywords are case-sensitive):
//
//	open  = "[" ( "code" | "sourcecode" ) [ " " lang ] { " " attr } "]"
//	attr  = title | name "=" quoted | name "=" bare | name
//	lang  = ( "lang" | "language" ) "=" `"` 1*ALPHA `"`
//	title = "title" "=" `"` 1*( ALPHA | DIGIT | "_" | " " | "!" | "-" ) `"`
//
// The language is only recognised in the first attribute slot, directly
// after the tag name; the title may appear anywhere. A lang or title
// attribute that is misplaced or whose value falls outside its character
// class is ignored like any other unknown attribute.
//
// The body runs from the end of the opening tag to the first matching
// "[/code]" or "[/sourcecode]", with leading and trailing newlines dropped.
// A tag without a closing tag is not a listing.
type Listing struct {
	Tag   string
	Lang  string
	Title string
	Body  string

	// Start and End delimit the whole shortcode in the scanned string.
	Start int
	End   int
}

var entityReplacer = strings.NewReplacer(
	"&apos;", "'",
	"&quot;", `"`,
	"&gt;", ">",
	"&lt;", "<",
	"&amp;", "&",
)

// Render formats the listing as Markdown. Titled or multi-line listings
// become a fenced block preceded by the title line, single-line listings
// with a language become a fenced block, everything else inline code.
func (l Listing) Render() string {
	code := entityReplacer.Replace(l.Body)

	switch {
	case strings.Contains(code, "\n") || l.Title != "":
		return l.Title + "\n```" + l.Lang + "\n" + code + "\n```\n"
	case l.Lang != "":
		return "```" + l.Lang + "\n" + code + "\n```"
	default:
		return "`" + code + "`"
	}
}

// FindListings returns every listing in s in document order.
func FindListings(s string) []Listing {
	var listings []Listing

	pos := 0
	for pos < len(s) {
		i := strings.IndexByte(s[pos:], '[')
		if i < 0 {
			break
		}
		start := pos + i

		l, ok := parseListing(s, start)
		if !ok {
			pos = start + 1
			continue
		}
		listings = append(listings, l)
		pos = l.End
	}

	return listings
}

// ReplaceListings replaces every listing in s with the result of fn.
func ReplaceListings(s string, fn func(Listing) string) string {
	listings := FindListings(s)
	if len(listings) == 0 {
		return s
	}

	var b strings.Builder
	prev := 0
	for _, l := range listings {
		b.WriteString(s[prev:l.Start])
		b.WriteString(fn(l))
		prev = l.End
	}
	b.WriteString(s[prev:])
	return b.String()
}

func parseListing(s string, start int) (Listing, bool) {
	rest := s[start+1:]

	var tag string
	switch {
	case strings.HasPrefix(rest, "sourcecode"):
		tag = "sourcecode"
	case strings.HasPrefix(rest, "code"):
		tag = "code"
	default:
		return Listing{}, false
	}

	afterName := start + 1 + len(tag)
	if afterName >= len(s) || (s[afterName] != ' ' && s[afterName] != ']') {
		return Listing{}, false
	}

	closeOpen := strings.IndexByte(s[afterName:], ']')
	if closeOpen < 0 {
		return Listing{}, false
	}
	attrs := s[afterName : afterName+closeOpen]

	bodyStart := afterName + closeOpen + 1
	for bodyStart < len(s) && s[bodyStart] == '\n' {
		bodyStart++
	}

	closing := "[/" + tag + "]"
	ci := strings.Index(s[bodyStart:], closing)
	if ci < 0 {
		return Listing{}, false
	}

	l := Listing{
		Tag:   tag,
		Body:  strings.TrimRight(s[bodyStart:bodyStart+ci], "\n"),
		Start: start,
		End:   bodyStart + ci + len(closing),
	}
	l.Lang, l.Title = parseAttributes(attrs)
	return l, true
}

// parseAttributes extracts the lang and title values from the attribute
// section of an opening tag. Lang must be the first attribute, separated
// from the tag name by a single space. The first acceptable title wins.
func parseAttributes(attrs string) (lang, title string) {
	i := 0
	for slot := 0; i < len(attrs); slot++ {
		for i < len(attrs) && attrs[i] == ' ' {
			i++
		}
		nameStart := i
		for i < len(attrs) && attrs[i] != '=' && attrs[i] != ' ' {
			i++
		}
		name := attrs[nameStart:i]

		if i >= len(attrs) || attrs[i] != '=' {
			continue
		}
		i++

		var (
			value        string
			doubleQuoted bool
		)
		if i < len(attrs) && (attrs[i] == '"' || attrs[i] == '\'') {
			q := attrs[i]
			doubleQuoted = q == '"'
			i++
			end := strings.IndexByte(attrs[i:], q)
			if end < 0 {
				end = len(attrs) - i
			}
			value = attrs[i : i+end]
			i += end + 1
		} else {
			valueStart := i
			for i < len(attrs) && attrs[i] != ' ' {
				i++
			}
			value = attrs[valueStart:i]
		}

		if !doubleQuoted {
			continue
		}
		switch name {
		case "lang", "language":
			if slot == 0 && nameStart == 1 && isLangValue(value) {
				lang = value
			}
		case "title":
			if title == "" && isTitleValue(value) {
				title = value
			}
		}
	}
	return lang, title
}

func isLangValue(v string) bool {
	if v == "" {
		return false
	}
	for i := 0; i < len(v); i++ {
		if !isASCIILetter(v[i]) {
			return false
		}
	}
	return true
}

func isTitleValue(v string) bool {
	if v == "" {
		return false
	}
	for i := 0; i < len(v); i++ {
		c := v[i]
		if isASCIILetter(c) || (c >= '0' && c <= '9') {
			continue
		}
		switch c {
		case '_', ' ', '!', '-':
			continue
		}
		return false
	}
	return true
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
