package ghost

import (
	"encoding/json"
	"io"
)

// WriteDocument writes doc as compact JSON.
func WriteDocument(w io.Writer, doc *Document) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(doc)
}

// WriteRedirects writes redirects as JSON indented by two spaces. A nil
// slice is written as an empty array.
func WriteRedirects(w io.Writer, redirects []Redirect) error {
	if redirects == nil {
		redirects = []Redirect{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(redirects)
}
