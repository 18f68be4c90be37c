package shortcode

import (
	"path"
	"regexp"
	"strings"
)

var (
	audioRe = regexp.MustCompile(`\[audio\s(.+)\]`)
	videoRe = regexp.MustCompile(`\[video\s(.+)\]`)

	// Audio accepts single or double quoted values, video double quoted only.
	audioValueRe = regexp.MustCompile(`["'](.+?)["']`)
	videoValueRe = regexp.MustCompile(`"(.+?)"`)
)

// ProtectMedia turns every [audio ...] shortcode into an <audio controls>
// element with one <source> per single or double quoted value, and every
// [video ...] shortcode into a <video controls> element with one <source>
// per double quoted value. A video source gets a MIME type from its file
// extension. Shortcodes without quoted values are left untouched.
//
// Each element is handed to p, so the markup reaches the output as written.
func ProtectMedia(p *Protector, html string) string {
	hold := func(element func(string) string) func(string) string {
		return func(sc string) string {
			el := element(sc)
			if el == sc {
				return sc
			}
			return p.Hold(el)
		}
	}
	html = audioRe.ReplaceAllStringFunc(html, hold(audioElement))
	return videoRe.ReplaceAllStringFunc(html, hold(videoElement))
}

func audioElement(sc string) string {
	values := audioValueRe.FindAllString(sc, -1)
	if len(values) == 0 {
		return sc
	}

	var b strings.Builder
	b.WriteString("<audio controls>")
	for _, v := range values {
		b.WriteString("<source src=" + v + ">")
	}
	b.WriteString("</audio>")
	return b.String()
}

func videoElement(sc string) string {
	values := videoValueRe.FindAllString(sc, -1)
	if len(values) == 0 {
		return sc
	}

	var b strings.Builder
	b.WriteString("<video controls>")
	for _, v := range values {
		b.WriteString("<source src=" + v)
		if ext := videoExtension(v); ext != "" {
			b.WriteString(` type="video/` + ext + `"`)
		}
		b.WriteString(">")
	}
	b.WriteString("</video>")
	return b.String()
}

// videoExtension returns the extension of a quoted URL without the dot.
func videoExtension(quoted string) string {
	u := strings.Trim(quoted, `"'`)
	return strings.TrimPrefix(path.Ext(u), ".")
}
