package markdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
)

// Renderer converts an HTML fragment to Markdown.
type Renderer interface {
	Render(html string) (string, error)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(html string) (string, error)

// Render calls f(html).
func (f RendererFunc) Render(html string) (string, error) {
	return f(html)
}

// passthroughTags have no Markdown form and are written out as HTML.
var passthroughTags = []string{"audio", "video"}

// HTMLToMarkdown renders with html-to-markdown. Links and images are
// written inline, surrounding whitespace is trimmed and text is not
// escaped, so lines such as "- item" stay list items.
type HTMLToMarkdown struct {
	conv *converter.Converter
}

// NewHTMLToMarkdown creates the default renderer.
func NewHTMLToMarkdown() *HTMLToMarkdown {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
		),
		converter.WithEscapeMode(converter.EscapeModeDisabled),
	)
	for _, tag := range passthroughTags {
		conv.Register.RendererFor(tag, converter.TagTypeInline, base.RenderAsHTML, converter.PriorityEarly)
	}
	return &HTMLToMarkdown{conv: conv}
}

// Render implements Renderer.
func (h *HTMLToMarkdown) Render(html string) (string, error) {
	if html == "" {
		return "", nil
	}

	md, err := h.conv.ConvertString(html)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(md), nil
}
