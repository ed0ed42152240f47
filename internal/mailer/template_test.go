package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderReplyEmail(t *testing.T) {
	body, err := RenderReplyEmail("Jane Doe", "We will follow up next week.", "your request for a site audit")
	assert.NoError(t, err)
	assert.Contains(t, body, "Dear Jane Doe,")
	assert.Contains(t, body, "Thank you for your request for a site audit.")
	assert.Contains(t, body, "We will follow up next week.")
	assert.Contains(t, body, "AI&bull;TECH Solutions Team")
}

func TestRenderReplyEmailPlaceholder(t *testing.T) {
	body, err := RenderReplyEmail("John", "Hello.", "")
	assert.NoError(t, err)
	assert.Contains(t, body, "Thank you for your inquiry.")

	// Whitespace-only details also fall back to the placeholder
	body, err = RenderReplyEmail("John", "Hello.", "   ")
	assert.NoError(t, err)
	assert.Contains(t, body, "Thank you for your inquiry.")
}

func TestRenderReplyEmailKeepsMessageMarkup(t *testing.T) {
	body, err := RenderReplyEmail("Jane", "<p>Line one</p><p>Line two</p>", "")
	assert.NoError(t, err)
	assert.Contains(t, body, "<p>Line one</p><p>Line two</p>")
}

func TestRenderReplyEmailEscapesDetails(t *testing.T) {
	body, err := RenderReplyEmail("Jane", "ok", "<script>alert(1)</script>")
	assert.NoError(t, err)
	assert.NotContains(t, body, "<script>")
}
