package utils

import (
	"regexp"
	"strings"
)

var htmlTagPattern = regexp.MustCompile(`<[^>]+>`)

// CleanRoomInfo strips HTML markup and non-breaking-space entities from the
// room configuration labels the hotel provider returns.
func CleanRoomInfo(text string) string {
	if text == "" {
		return ""
	}
	text = htmlTagPattern.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "&nbsp;", " ")
	return strings.TrimSpace(text)
}
