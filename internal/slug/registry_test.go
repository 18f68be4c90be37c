package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_Resolve(t *testing.T) {
	t.Run("free slug is kept", func(t *testing.T) {
		r := NewRegistry()

		got, collided := r.Resolve("hello", "Hello")
		assert.Equal(t, "hello", got)
		assert.False(t, collided)
		assert.True(t, r.Claimed("hello"))
	})

	t.Run("title slug used when free", func(t *testing.T) {
		r := NewRegistry()
		r.Claim("hello")

		got, collided := r.Resolve("hello", "Another Title")
		assert.Equal(t, "another-title", got)
		assert.True(t, collided)
	})

	t.Run("numeric suffix when title collides", func(t *testing.T) {
		r := NewRegistry()

		first, _ := r.Resolve("hello", "Hello")
		second, _ := r.Resolve("hello", "Hello")
		third, _ := r.Resolve("hello", "Hello")

		assert.Equal(t, "hello", first)
		assert.Equal(t, "hello-2", second)
		assert.Equal(t, "hello-3", third)
	})

	t.Run("existing numeric suffix is stripped", func(t *testing.T) {
		r := NewRegistry()
		r.Claim("post-3")

		got, collided := r.Resolve("post-3", "")
		assert.Equal(t, "post-2", got)
		assert.True(t, collided)
	})

	t.Run("suffix skips claimed numbers", func(t *testing.T) {
		r := NewRegistry()
		r.Claim("hello")
		r.Claim("hello-2")
		r.Claim("hello-3")

		got, _ := r.Resolve("hello", "Hello")
		assert.Equal(t, "hello-4", got)
	})

	t.Run("reserved title", func(t *testing.T) {
		r := NewRegistry()
		r.Claim("x")

		got, _ := r.Resolve("x", "Tags")
		assert.Equal(t, "tags-post", got)
	})
}

func TestRegistry_AllDistinct(t *testing.T) {
	r := NewRegistry()
	seen := map[string]bool{}

	inputs := []struct{ slug, title string }{
		{"a", "A"}, {"a", "A"}, {"a", "B"}, {"b", "B"}, {"a-2", "A"}, {"a", ""}, {"a-2", "a 2"},
	}
	for _, in := range inputs {
		got, _ := r.Resolve(in.slug, in.title)
		assert.False(t, seen[got], "slug %q assigned twice", got)
		seen[got] = true
	}
	assert.Len(t, seen, len(inputs))
	for got := range seen {
		assert.True(t, r.Claimed(got))
	}
}
