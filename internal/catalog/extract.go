package catalog

import (
	"regexp"
	"strings"
)

// Deliberately not an HTML parser. Tool pages are authored by hand and
// the contract only requires recognizing well-formed title, meta, and
// paragraph tags.
var (
	titleRe = regexp.MustCompile(`(?is)<title>(.*?)</title>`)
	metaRe  = regexp.MustCompile(`(?i)<meta\s+name=["']description["']\s+content=["'](.*?)["']`)
	paraRe  = regexp.MustCompile(`(?is)<p[^>]*>(.*?)</p>`)
	tagRe   = regexp.MustCompile(`<[^>]+>`)
)

// ExtractTitle returns the trimmed inner text of the first title tag,
// or "" when the document has none.
func ExtractTitle(html string) string {
	m := titleRe.FindStringSubmatch(html)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// ExtractDescription prefers a meta description and falls back to the
// first paragraph's text content with nested tags stripped. Absence is
// not an error; the result is simply empty.
func ExtractDescription(html string) string {
	if m := metaRe.FindStringSubmatch(html); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := paraRe.FindStringSubmatch(html); m != nil {
		return strings.TrimSpace(tagRe.ReplaceAllString(m[1], ""))
	}
	return ""
}
