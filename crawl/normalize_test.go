package crawl_test

import (
	"net/url"
	"testing"

	"github.com/fwojciec/mailscout/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeURL(t *testing.T) {
	t.Parallel()

	base := "https://example.com/docs/page.html?x=1#top"

	tests := []struct {
		name string
		link string
		want string
	}{
		{"relative path", "contact", "https://example.com/docs/contact"},
		{"parent path", "../about", "https://example.com/about"},
		{"root-relative path", "/team", "https://example.com/team"},
		{"protocol-relative", "//cdn.example.com/a", "https://cdn.example.com/a"},
		{"query-relative", "?page=2", "https://example.com/docs/page.html?page=2"},
		{"fragment only", "#section", "https://example.com/docs/page.html?x=1"},
		{"absolute with fragment", "https://example.com/legal#imprint", "https://example.com/legal"},
		{"keeps query", "/search?q=mail&lang=fr", "https://example.com/search?q=mail&lang=fr"},
		{"drops empty query", "/a?", "https://example.com/a"},
		{"empty link is the page itself", "", "https://example.com/docs/page.html?x=1"},
		{"trims surrounding whitespace", "  /support \n", "https://example.com/support"},
		{"other host", "http://other.org/x", "http://other.org/x"},
		{"keeps port", "http://example.com:8080/x", "http://example.com:8080/x"},
		{"host without path", "https://example.com", "https://example.com"},
		{"mailto stays opaque", "mailto:jane@example.com", "mailto:jane@example.com"},
		{"javascript stays opaque", "javascript:void(0)", "javascript:void(0)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, crawl.NormalizeURL(tt.link, base))
		})
	}
}

func TestNormalizeURL_relative_links_become_absolute_without_fragment(t *testing.T) {
	t.Parallel()

	bases := []string{
		"https://example.com",
		"https://example.com/",
		"http://example.com:8080/a/b/c?q=1",
		"https://example.com/deep/path/index.html#frag",
	}
	links := []string{
		"x", "./x", "../x", "../../../../x", "/x", "?q=2", "#f", "x#f", "/x?y=1#z", "//example.com/y#z",
	}

	for _, base := range bases {
		for _, link := range links {
			got := crawl.NormalizeURL(link, base)
			u, err := url.Parse(got)
			require.NoError(t, err, "base=%q link=%q", base, link)
			assert.NotEmpty(t, u.Scheme, "base=%q link=%q got=%q", base, link, got)
			assert.NotEmpty(t, u.Host, "base=%q link=%q got=%q", base, link, got)
			assert.Empty(t, u.Fragment, "base=%q link=%q got=%q", base, link, got)
			assert.NotContains(t, got, "#")
		}
	}
}

func TestNormalizeURL_returns_best_effort_for_malformed_link(t *testing.T) {
	t.Parallel()

	got := crawl.NormalizeURL("/bad\x7fpath#frag", "https://example.com/")

	assert.Equal(t, "/bad\x7fpath", got)
}

func TestEnsureScheme(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want string
	}{
		{"example.com", "https://example.com"},
		{"example.com/contact", "https://example.com/contact"},
		{"  example.com  ", "https://example.com"},
		{"//example.com", "https://example.com"},
		{"http://example.com", "http://example.com"},
		{"https://example.com/a", "https://example.com/a"},
		{"localhost:8080", "https://localhost:8080"},
		{"example.com/go?next=https://other.org", "https://example.com/go?next=https://other.org"},
		{"example.com#https://x", "https://example.com#https://x"},
		{"HTTPS://example.com", "HTTPS://example.com"},
		{"svn+ssh://example.com/repo", "svn+ssh://example.com/repo"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, crawl.EnsureScheme(tt.raw))
		})
	}
}
