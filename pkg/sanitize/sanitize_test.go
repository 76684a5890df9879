package sanitize_test

import (
	"testing"

	"circles-of-care-site/pkg/sanitize"

	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	t.Run("Should strip tags and keep text", func(t *testing.T) {
		assert.Equal(t, "Hello there", sanitize.Text("  <b>Hello</b> <script>alert(1)</script>there "))
	})

	t.Run("Should decode entities", func(t *testing.T) {
		assert.Equal(t, "Pat & Sam's plan", sanitize.Text("Pat & Sam's plan"))
	})

	t.Run("Should keep line breaks in messages", func(t *testing.T) {
		assert.Equal(t, "line one\nline two", sanitize.Text("line one\nline two"))
	})

	t.Run("Should return empty for blank input", func(t *testing.T) {
		assert.Equal(t, "", sanitize.Text("   "))
	})
}

func TestLine(t *testing.T) {
	assert.Equal(t, "Sam Smith", sanitize.Line("Sam\r\n  <i>Smith</i>"))
}
