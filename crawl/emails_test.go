package crawl_test

import (
	"testing"

	"github.com/fwojciec/mailscout"
	"github.com/fwojciec/mailscout/crawl"
	"github.com/stretchr/testify/assert"
)

func TestRules_ExtractEmails(t *testing.T) {
	t.Parallel()

	rules := crawl.DefaultRules()

	t.Run("finds address in text", func(t *testing.T) {
		t.Parallel()
		page := &mailscout.Page{Text: "Contact us at jane@example.com for details"}
		assert.Equal(t, []string{"jane@example.com"}, rules.ExtractEmails(page))
	})

	t.Run("finds address in mailto anchor", func(t *testing.T) {
		t.Parallel()
		page := &mailscout.Page{
			Text:    "Email",
			Anchors: []mailscout.Anchor{{Href: "mailto:sales@example.com"}},
		}
		assert.Equal(t, []string{"sales@example.com"}, rules.ExtractEmails(page))
	})

	t.Run("keeps matches verbatim", func(t *testing.T) {
		t.Parallel()
		page := &mailscout.Page{Text: "Write to John.Doe+news@Mail.Example.ORG today"}
		assert.Equal(t, []string{"John.Doe+news@Mail.Example.ORG"}, rules.ExtractEmails(page))
	})

	t.Run("finds several addresses", func(t *testing.T) {
		t.Parallel()
		page := &mailscout.Page{Text: "a@x.io, b_c%d@y-z.co.uk; e@x.io"}
		assert.Equal(t, []string{"a@x.io", "b_c%d@y-z.co.uk", "e@x.io"}, rules.ExtractEmails(page))
	})

	t.Run("requires a two-letter top-level segment", func(t *testing.T) {
		t.Parallel()
		page := &mailscout.Page{Text: "user@host user@host.c user@10.0.0.1"}
		assert.Empty(t, rules.ExtractEmails(page))
	})

	t.Run("takes text after last mailto", func(t *testing.T) {
		t.Parallel()
		page := &mailscout.Page{Anchors: []mailscout.Anchor{
			{Href: "mailto:mailto:info@example.com"},
			{Href: "mailto:jobs@example.com?subject=Hello"},
		}}
		assert.Equal(t, []string{"info@example.com", "jobs@example.com?subject=Hello"}, rules.ExtractEmails(page))
	})

	t.Run("skips empty mailto", func(t *testing.T) {
		t.Parallel()
		page := &mailscout.Page{Anchors: []mailscout.Anchor{{Href: "mailto:"}}}
		assert.Empty(t, rules.ExtractEmails(page))
	})

	t.Run("ignores non-mailto anchors", func(t *testing.T) {
		t.Parallel()
		page := &mailscout.Page{Anchors: []mailscout.Anchor{
			{Href: "/contact"},
			{Href: "https://example.com/?mailto:x@y.com"},
			{Href: "MAILTO:upper@example.com"},
		}}
		assert.Empty(t, rules.ExtractEmails(page))
	})

	t.Run("returns nothing for empty page", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, rules.ExtractEmails(&mailscout.Page{}))
	})
}
