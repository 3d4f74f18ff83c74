package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizePlain(t *testing.T) {
	assert.Equal(t, "Jane Cardinal", SanitizePlain("  Jane Cardinal  "))
	assert.Equal(t, "Jane", SanitizePlain("<script>alert(1)</script>Jane"))
	assert.Equal(t, "bold claim", SanitizePlain("<b>bold</b> claim"))
}

func TestSanitizeRichText(t *testing.T) {
	// Basic formatting survives
	assert.Equal(t, "<p>Land dispute on <strong>lot 12</strong></p>", SanitizeRichText("<p>Land dispute on <strong>lot 12</strong></p>"))
	// Scripts do not
	out := SanitizeRichText(`<p>hello</p><script>alert(1)</script>`)
	assert.NotContains(t, out, "script")
}
