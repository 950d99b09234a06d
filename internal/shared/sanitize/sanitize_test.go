package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTML_KeepsFormattingStripsScripts(t *testing.T) {
	in := `<p>Our <b>top pick</b> for 2026</p><script>alert(1)</script>`

	out := HTML(in)

	assert.Contains(t, out, "<b>top pick</b>")
	assert.NotContains(t, out, "script")
	assert.NotContains(t, out, "alert")
}

func TestHTML_DropsEventHandlers(t *testing.T) {
	out := HTML(`<a href="https://example.com" onclick="steal()">link</a>`)

	assert.Contains(t, out, `href="https://example.com"`)
	assert.NotContains(t, out, "onclick")
}

func TestText_StripsAllMarkup(t *testing.T) {
	out := Text(`please <b>fix</b> the <a href="x">anchor</a>`)

	assert.Equal(t, "please fix the anchor", out)
}

func TestText_PlainStringsPassThrough(t *testing.T) {
	assert.Equal(t, "no markup here", Text("no markup here"))
}
