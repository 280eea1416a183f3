package goquery_test

import (
	"testing"

	"github.com/fwojciec/mailscout"
	"github.com/fwojciec/mailscout/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Parse(t *testing.T) {
	t.Parallel()

	t.Run("extracts visible text", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><p>Contact us at jane@example.com for details</p></body></html>`

		page, err := goquery.NewParser().Parse(html)

		require.NoError(t, err)
		assert.Contains(t, page.Text, "Contact us at jane@example.com for details")
	})

	t.Run("separates adjacent elements", func(t *testing.T) {
		t.Parallel()

		html := `<div><span>jane@example.com</span><span>Next</span></div>`

		page, err := goquery.NewParser().Parse(html)

		require.NoError(t, err)
		assert.Contains(t, page.Text, "jane@example.com Next")
		assert.NotContains(t, page.Text, "jane@example.comNext")
	})

	t.Run("skips script and style contents", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><style>.a{color:red}</style><script>var x = "hidden@example.com";</script></head>
<body><p>Visible</p><!-- comment@example.com --></body></html>`

		page, err := goquery.NewParser().Parse(html)

		require.NoError(t, err)
		assert.Contains(t, page.Text, "Visible")
		assert.NotContains(t, page.Text, "hidden@example.com")
		assert.NotContains(t, page.Text, "color:red")
		assert.NotContains(t, page.Text, "comment@example.com")
	})

	t.Run("returns anchors with raw href in document order", func(t *testing.T) {
		t.Parallel()

		html := `<body>
<a href="/contact">Contact</a>
<a name="top">No href</a>
<a href="mailto:sales@example.com">Email</a>
<a href="https://example.com/blog#intro"> Blog </a>
</body>`

		page, err := goquery.NewParser().Parse(html)

		require.NoError(t, err)
		assert.Equal(t, []mailscout.Anchor{
			{Href: "/contact"},
			{Href: "mailto:sales@example.com"},
			{Href: "https://example.com/blog#intro"},
		}, page.Anchors)
	})

	t.Run("recovers from malformed markup", func(t *testing.T) {
		t.Parallel()

		html := `<div><p>unclosed <b>bold <a href="/about">About</div>`

		page, err := goquery.NewParser().Parse(html)

		require.NoError(t, err)
		assert.Contains(t, page.Text, "unclosed")
		require.Len(t, page.Anchors, 1)
		assert.Equal(t, "/about", page.Anchors[0].Href)
	})

	t.Run("handles empty document", func(t *testing.T) {
		t.Parallel()

		page, err := goquery.NewParser().Parse("")

		require.NoError(t, err)
		assert.Empty(t, page.Anchors)
	})
}
