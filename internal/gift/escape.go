package gift

import (
	"fmt"
	"regexp"
	"strings"
)

// quoted matches an attribute value delimited by encoded double or single
// quotes.
const quoted = `(?:&quot;(?:[^&]|&[#\w]+;)*?&quot;|&apos;(?:[^&]|&[#\w]+;)*?&apos;)`

// formattingTag matches an encoded opening or closing tag from the whitelist
// of formatting markup kept in question text.
var formattingTag = regexp.MustCompile(`(?i)&lt;/?(?:` + strings.Join([]string{
	`b`, `i`, `u`, `ul`, `ol`, `li`, `pre`, `strike`, `sub`, `sup`,
	`span`, `span\s+style\s*=\s*` + quoted,
	`div`, `div\s+style\s*=\s*` + quoted,
	`hr\s*/?`,
	`br\s*/?`,
	`font`, `font\s+color\s*=\s*` + quoted,
}, "|") + `)&gt;`)

var (
	doubleEscaped = regexp.MustCompile(`&amp;(\w+);`)
	giftSpecial   = regexp.MustCompile(`([~=#{}])`)
)

// EscapeHTML encodes s for an [html] GIFT field. Markup characters become
// named entities and non-ASCII runes become numeric references. With
// keepFormatting, whitelisted formatting tags are restored as markup.
// Entities typed by the author, such as "&nbsp;", survive as written.
func EscapeHTML(s string, keepFormatting bool) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		case '\'':
			b.WriteString("&apos;")
		case '`':
			b.WriteString("&#x60;")
		default:
			if r > 0x7e {
				fmt.Fprintf(&b, "&#x%X;", r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	out := b.String()

	if keepFormatting {
		out = formattingTag.ReplaceAllStringFunc(out, func(tag string) string {
			inner := tag[len("&lt;") : len(tag)-len("&gt;")]
			inner = strings.ReplaceAll(inner, "&quot;", `"`)
			inner = strings.ReplaceAll(inner, "&apos;", "'")
			return "<" + inner + ">"
		})
	}

	return doubleEscaped.ReplaceAllString(out, "&${1};")
}

// EscapeGIFT backslash-escapes the characters GIFT treats as syntax inside an
// answer block.
func EscapeGIFT(s string) string {
	return giftSpecial.ReplaceAllString(s, `\${1}`)
}
