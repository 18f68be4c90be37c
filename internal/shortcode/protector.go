package shortcode

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wp2ghost/wp2ghost/internal/id"
)

const maxNonceTries = 8

// Protector swaps content that must pass through a lossy transform
// unchanged for opaque placeholder tokens, and puts it back afterwards.
//
// Tokens have the form WPHOLD<nonce>X<n>X. The nonce is chosen so that it
// does not occur in the source text, and the trailing X keeps token 1 from
// being a prefix of token 10.
type Protector struct {
	prefix string
	held   []string
}

// NewProtector creates a protector whose tokens cannot collide with src.
func NewProtector(src string) (*Protector, error) {
	for range maxNonceTries {
		nonce, err := id.Opaque("WPHOLD")
		if err != nil {
			return nil, fmt.Errorf("generate placeholder nonce: %w", err)
		}
		prefix := nonce + "X"
		if !strings.Contains(src, prefix) {
			return &Protector{prefix: prefix}, nil
		}
	}
	return nil, fmt.Errorf("no collision-free placeholder after %d tries", maxNonceTries)
}

// Hold stores replacement and returns the token standing in for it.
func (p *Protector) Hold(replacement string) string {
	token := p.token(len(p.held))
	p.held = append(p.held, replacement)
	return token
}

// Restore substitutes every held replacement back in, by position.
func (p *Protector) Restore(s string) string {
	for i, replacement := range p.held {
		s = strings.Replace(s, p.token(i), replacement, 1)
	}
	return s
}

// Len returns the number of held replacements.
func (p *Protector) Len() int {
	return len(p.held)
}

// Leaked reports whether s still contains any placeholder token.
func (p *Protector) Leaked(s string) bool {
	return strings.Contains(s, p.prefix)
}

func (p *Protector) token(n int) string {
	return p.prefix + strconv.Itoa(n) + "X"
}

// ProtectListings replaces every code listing in html with a placeholder
// holding its rendered Markdown.
func ProtectListings(p *Protector, html string) string {
	return ReplaceListings(html, func(l Listing) string {
		return p.Hold(l.Render())
	})
}
