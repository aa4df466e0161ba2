// Package style renders display markup into host text components.
//
// The markup is a small tag language ("<gold>Lobby <bold>Compass</bold>");
// this package does not interpret colors, it only produces the host's text
// component with the raw markup preserved and a plain fallback.
package style

import (
	"regexp"
	"strings"

	"github.com/pharogames/itemforge/internal/host"
)

var tagPattern = regexp.MustCompile(`</?[a-zA-Z][a-zA-Z0-9_#:-]*>`)

// Render converts markup into a host text component. The italic flag is set
// only when the markup explicitly requests it.
func Render(raw string) host.Text {
	return host.Text{
		Raw:    raw,
		Plain:  Strip(raw),
		Italic: hasItalicTag(raw),
	}
}

// Strip removes all markup tags, leaving the plain text.
func Strip(raw string) string {
	return tagPattern.ReplaceAllString(raw, "")
}

func hasItalicTag(raw string) bool {
	lower := strings.ToLower(raw)
	return strings.Contains(lower, "<i>") || strings.Contains(lower, "<italic>")
}
