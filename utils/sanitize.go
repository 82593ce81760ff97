package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var sanitizer = bluemonday.UGCPolicy()

// Sanitize cleans user HTML (post bodies, comments) so it can be rendered unescaped.
func Sanitize(input string) string {
	return strings.TrimSpace(sanitizer.Sanitize(input))
}
