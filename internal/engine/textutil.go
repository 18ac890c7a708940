package engine

import (
	"html"
	"regexp"

	"github.com/anatolykoptev/go-kit/strutil"
)

// UserAgent identifies non-browser requests.
const UserAgent = "go_ytsum/1.0"

var htmlTagRe = regexp.MustCompile(`<[^>]+>`)

// CleanCaption decodes HTML entities in caption text and strips formatting
// tags (<font>, <i>, ...). Whitespace is left untouched.
func CleanCaption(s string) string {
	return htmlTagRe.ReplaceAllString(html.UnescapeString(s), "")
}

// TruncateForLog caps s at limit runes for log attributes.
func TruncateForLog(s string, limit int) string {
	return strutil.TruncateWith(s, limit, "...")
}
