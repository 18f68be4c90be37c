package ghost

import (
	"fmt"
	"time"
)

// Redirect is one entry of Ghost's redirects.json.
type Redirect struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Permanent bool   `json:"permanent"`
}

// NewRedirect maps the flat WordPress URL of a post to the
// /{year}/{month}/{day}/{slug} form, using the UTC publish date.
func NewRedirect(slug string, published time.Time) Redirect {
	y, m, d := published.UTC().Date()
	return Redirect{
		From:      "^/" + slug,
		To:        fmt.Sprintf("/%04d/%02d/%02d/%s", y, int(m), d, slug),
		Permanent: true,
	}
}
