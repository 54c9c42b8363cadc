package alerts

import (
	"html"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// redirectParams are the query parameter names tracking wrappers use to
// carry the real destination (Google Alerts uses url/q; affiliate
// wrappers use murl and friends).
var redirectParams = []string{"url", "q", "u", "murl", "target", "dest"}

var whitespaceRegex = regexp.MustCompile(`\s+`)

// UnwrapRedirect extracts the destination URL embedded in a tracking
// redirect link. The wrapper is returned unchanged when no embedded
// absolute URL is found.
func UnwrapRedirect(link string) string {
	parsed, err := url.Parse(link)
	if err != nil {
		return link
	}

	query := parsed.Query()
	for _, param := range redirectParams {
		candidate := query.Get(param)
		if candidate == "" {
			continue
		}
		target, err := url.Parse(candidate)
		if err != nil {
			continue
		}
		if (target.Scheme == "http" || target.Scheme == "https") && target.Host != "" {
			return candidate
		}
	}
	return link
}

// CleanText strips markup, decodes entities, collapses whitespace, and
// truncates to max characters with an ellipsis marker. max <= 0 means
// no truncation.
func CleanText(s string, max int) string {
	text := s
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(s)); err == nil {
		text = doc.Text()
	}
	text = html.UnescapeString(text)
	text = strings.TrimSpace(whitespaceRegex.ReplaceAllString(text, " "))

	if max > 0 {
		runes := []rune(text)
		if len(runes) > max {
			text = strings.TrimSpace(string(runes[:max])) + "…"
		}
	}
	return text
}
