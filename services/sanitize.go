package services

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strictPolicy strips all markup; used for single-line fields.
var strictPolicy = bluemonday.StrictPolicy()

// richTextPolicy allows basic formatting in long-form fields (description,
// background, notes) while stripping scripts and event handlers.
var richTextPolicy = bluemonday.UGCPolicy()

// SanitizePlain removes any markup and trims whitespace.
func SanitizePlain(s string) string {
	return strings.TrimSpace(strictPolicy.Sanitize(s))
}

// SanitizeRichText keeps safe formatting tags and trims whitespace.
func SanitizeRichText(s string) string {
	return strings.TrimSpace(richTextPolicy.Sanitize(s))
}
