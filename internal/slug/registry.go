package slug

import (
	"regexp"
	"strconv"
)

// Matches a trailing "-" optionally followed by digits, e.g. "hello-3".
var numericSuffixRe = regexp.MustCompile(`-\d*$`)

// Registry tracks claimed post slugs for a single conversion run.
// It is not safe for concurrent use.
type Registry struct {
	claimed map[string]struct{}
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{claimed: make(map[string]struct{})}
}

// Claimed reports whether s has been assigned to an earlier post.
func (r *Registry) Claimed(s string) bool {
	_, ok := r.claimed[s]
	return ok
}

// Claim marks s as taken.
func (r *Registry) Claim(s string) {
	r.claimed[s] = struct{}{}
}

// Resolve claims a slug for a post and returns it. When want is free it is
// used as-is. Otherwise the slugified title is tried, and when that is empty
// or also taken the smallest free "<base>-N" with N >= 2 is used, where base
// is want without any trailing numeric suffix. The second return value
// reports whether want collided.
func (r *Registry) Resolve(want, title string) (string, bool) {
	if !r.Claimed(want) {
		r.Claim(want)
		return want, false
	}

	got := Slugify(title)
	if got == "" || r.Claimed(got) {
		base := numericSuffixRe.ReplaceAllString(want, "")
		n := 2
		for r.Claimed(base + "-" + strconv.Itoa(n)) {
			n++
		}
		got = base + "-" + strconv.Itoa(n)
	}

	r.Claim(got)
	return got, true
}
