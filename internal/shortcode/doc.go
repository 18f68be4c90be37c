// Package shortcode rewrites the WordPress shortcodes the converter understands:
// [caption] wrappers are stripped, [audio] and [video] become HTML5 media
// tags, and [code]/[sourcecode] listings become Markdown code.
//
// Listings and media elements must survive HTML to Markdown conversion
// verbatim, so they are swapped for opaque placeholders by a Protector before
// conversion and put back afterwards.
package shortcode
